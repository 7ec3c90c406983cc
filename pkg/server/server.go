package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vhaldran/buzzserve/internal/logger"
	"github.com/vhaldran/buzzserve/pkg/dictionary"
	"github.com/vhaldran/buzzserve/pkg/match"
	"github.com/vhaldran/buzzserve/pkg/search"
	"github.com/vhaldran/buzzserve/pkg/suggest"
)

var slog = logger.New("ipc")

// Server handles the IPC for buzzword lookups.
type Server struct {
	searcher  *search.Searcher
	suggester *suggest.Generator
	dict      *dictionary.Dictionary
	dec       *msgpack.Decoder
	enc       *msgpack.Encoder
}

// NewServer creates a lookup server using stdin/stdout for IPC.
func NewServer(searcher *search.Searcher, suggester *suggest.Generator, dict *dictionary.Dictionary) *Server {
	return NewServerIO(os.Stdin, os.Stdout, searcher, suggester, dict)
}

// NewServerIO creates a lookup server over arbitrary streams.
func NewServerIO(r io.Reader, w io.Writer, searcher *search.Searcher, suggester *suggest.Generator, dict *dictionary.Dictionary) *Server {
	return &Server{
		searcher:  searcher,
		suggester: suggester,
		dict:      dict,
		dec:       msgpack.NewDecoder(r),
		enc:       msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. It returns nil on clean EOF.
func (s *Server) Start() error {
	slog.Debug("Starting server.")
	s.send(map[string]string{"status": "ready"})

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			slog.Errorf("Decoding request: %v", err)
			s.send(ErrorResponse{Error: "invalid msgpack request", Code: 400})
			continue
		}
		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req Request) {
	switch req.Op {
	case "query":
		s.handleQuery(req, false)
	case "related":
		s.handleQuery(req, true)
	case "similar":
		s.handleSimilar(req)
	case "random":
		s.handleRandom(req)
	case "health":
		s.send(Response{ID: req.ID, Status: "ok"})
	default:
		s.send(ErrorResponse{ID: req.ID, Error: fmt.Sprintf("unknown op: %s", req.Op), Code: 400})
	}
}

// handleQuery runs a search; withRelated additionally attaches related
// suggestions for a non-empty result set.
func (s *Server) handleQuery(req Request, withRelated bool) {
	start := time.Now()
	resp, err := s.searcher.Search(req.Query)
	if err != nil {
		slog.Errorf("Search fault for %q: %v", req.Query, err)
		s.send(ErrorResponse{ID: req.ID, Error: "internal error", Code: 500})
		return
	}
	elapsed := time.Since(start)

	out := Response{
		ID:        req.ID,
		Status:    string(resp.Status),
		Reason:    string(resp.Reason),
		Results:   toPayload(resp.Results),
		Count:     len(resp.Results),
		TimeTaken: elapsed.Microseconds(),
	}

	if resp.Status == search.StatusOK {
		if len(resp.Results) == 0 {
			out.Suggestions = toSuggestions(s.suggester.Similar(req.Query))
		} else if withRelated {
			out.Suggestions = toSuggestions(s.suggester.Related(resp.Results, req.Query))
		}
	}
	s.send(out)
}

func (s *Server) handleSimilar(req Request) {
	start := time.Now()
	suggestions := s.suggester.Similar(req.Query)
	s.send(Response{
		ID:          req.ID,
		Status:      "ok",
		Suggestions: toSuggestions(suggestions),
		Count:       len(suggestions),
		TimeTaken:   time.Since(start).Microseconds(),
	})
}

func (s *Server) handleRandom(req Request) {
	entry := s.dict.Random(s.suggester.Rand())
	s.send(Response{
		ID:      req.ID,
		Status:  "ok",
		Results: []ResultPayload{entryPayload(entry)},
		Count:   1,
	})
}

func (s *Server) send(v interface{}) {
	if err := s.enc.Encode(v); err != nil {
		slog.Errorf("Encoding response: %v", err)
	}
}

func toPayload(results []match.Result) []ResultPayload {
	if len(results) == 0 {
		return nil
	}
	out := make([]ResultPayload, len(results))
	for i, r := range results {
		out[i] = ResultPayload{
			Phrase:       r.Phrase,
			Translation:  r.Translation,
			Category:     r.Category,
			Context:      r.Context,
			Alternatives: r.Alternatives,
			Secondary:    toMeanings(r.Secondary),
			Score:        r.Score,
			MatchType:    string(r.Type),
			MatchedTerms: r.MatchedTerms,
		}
	}
	return out
}

func entryPayload(e dictionary.Entry) ResultPayload {
	return ResultPayload{
		Phrase:       e.Phrase,
		Translation:  e.Translation,
		Category:     e.Category,
		Context:      e.Context,
		Alternatives: e.Alternatives,
		Secondary:    toMeanings(e.Secondary),
	}
}

func toMeanings(meanings []dictionary.Meaning) []MeaningPayload {
	if len(meanings) == 0 {
		return nil
	}
	out := make([]MeaningPayload, len(meanings))
	for i, m := range meanings {
		out[i] = MeaningPayload{Translation: m.Translation, Context: m.Context}
	}
	return out
}

func toSuggestions(suggestions []suggest.Suggestion) []SuggestionPayload {
	if len(suggestions) == 0 {
		return nil
	}
	out := make([]SuggestionPayload, len(suggestions))
	for i, s := range suggestions {
		out[i] = SuggestionPayload{Phrase: s.Phrase, Category: s.Category}
	}
	return out
}
