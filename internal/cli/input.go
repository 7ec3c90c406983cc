// Package cli handles cmd line input and result display for DBG and testing various features
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vhaldran/buzzserve/pkg/config"
	"github.com/vhaldran/buzzserve/pkg/dictionary"
	"github.com/vhaldran/buzzserve/pkg/match"
	"github.com/vhaldran/buzzserve/pkg/search"
	"github.com/vhaldran/buzzserve/pkg/suggest"
)

var (
	phraseStyle      = lipgloss.NewStyle().Bold(true)
	translationStyle = lipgloss.NewStyle().Italic(true)
	metaStyle        = lipgloss.NewStyle().Faint(true)
)

// InputHandler reads queries from stdin and prints ranked matches. Searches
// go through a debouncer so pasted bursts only run the final query.
type InputHandler struct {
	searcher    *search.Searcher
	suggester   *suggest.Generator
	dict        *dictionary.Dictionary
	debouncer   *Debouncer
	showContext bool
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(searcher *search.Searcher, suggester *suggest.Generator, dict *dictionary.Dictionary, cfg config.CliConfig) *InputHandler {
	return &InputHandler{
		searcher:    searcher,
		suggester:   suggester,
		dict:        dict,
		debouncer:   NewDebouncer(time.Duration(cfg.DebounceMs) * time.Millisecond),
		showContext: cfg.ShowContext,
	}
}

// Start begins the interface loop. It continuously prompts for input, reads
// a line from stdin, and hands the trimmed query to the debouncer. The loop
// terminates on read error or EOF.
func (h *InputHandler) Start() error {
	log.Print("buzzserve CLI")
	log.Print("type a buzzword and press Enter (:random for a random entry, Ctrl+C to exit):")
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			h.debouncer.Stop()
			return nil
		}
		query := strings.TrimSpace(line)
		if query == ":random" {
			h.printRandom()
			continue
		}
		h.debouncer.Trigger(func() { h.handleQuery(query) })
	}
}

// handleQuery runs one search and renders whatever ordered list comes back.
func (h *InputHandler) handleQuery(query string) {
	start := time.Now()
	resp, err := h.searcher.Search(query)
	if err != nil {
		log.Errorf("Search failed: %v", err)
		log.Print("Something went wrong, try again.")
		return
	}
	elapsed := time.Since(start)

	switch resp.Status {
	case search.StatusEmpty:
		h.printBrowsing()
	case search.StatusInvalid:
		printHint(resp.Reason)
	case search.StatusOK:
		if len(resp.Results) == 0 {
			log.Printf("No matches for %q.", query)
			h.printSuggestions("Did you mean", h.suggester.Similar(query))
			return
		}
		for i, r := range resp.Results {
			h.printResult(i+1, r)
		}
		h.printSuggestions("Related", h.suggester.Related(resp.Results, query))
		log.Debugf("%d results in %v", len(resp.Results), elapsed)
	}
}

func (h *InputHandler) printResult(rank int, r match.Result) {
	fmt.Printf("%2d. %s: %s %s\n",
		rank,
		phraseStyle.Render(r.Phrase),
		translationStyle.Render(r.Translation),
		metaStyle.Render(fmt.Sprintf("[%s %.2f]", r.Type, r.Score)))
	if h.showContext && r.Context != "" {
		fmt.Printf("    %s\n", metaStyle.Render(r.Context))
	}
	for _, m := range r.Secondary {
		fmt.Printf("    also: %s\n", translationStyle.Render(m.Translation))
	}
}

func (h *InputHandler) printSuggestions(label string, suggestions []suggest.Suggestion) {
	if len(suggestions) == 0 {
		return
	}
	phrases := make([]string, len(suggestions))
	for i, s := range suggestions {
		phrases[i] = s.Phrase
	}
	fmt.Printf("%s: %s\n", label, metaStyle.Render(strings.Join(phrases, ", ")))
}

func (h *InputHandler) printBrowsing() {
	log.Printf("Catalog holds %d phrases. Some examples:", h.dict.Len())
	entries := h.dict.Entries()
	for i := 0; i < len(entries) && i < 3; i++ {
		h.printResult(i+1, exampleResult(entries[i]))
	}
}

func (h *InputHandler) printRandom() {
	h.printResult(1, exampleResult(h.dict.Random(h.suggester.Rand())))
}

func exampleResult(e dictionary.Entry) match.Result {
	return match.Result{
		Phrase:      e.Phrase,
		Translation: e.Translation,
		Category:    e.Category,
		Context:     e.Context,
		Secondary:   e.Secondary,
	}
}

func printHint(reason search.InvalidReason) {
	switch reason {
	case search.ReasonTooShort:
		log.Print("Type at least 2 characters.")
	case search.ReasonTooLong:
		log.Print("That query is too long, trim it down.")
	case search.ReasonNoLetters:
		log.Print("Queries need at least one letter.")
	}
}
