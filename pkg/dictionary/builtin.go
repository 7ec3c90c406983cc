package dictionary

// builtinEntries is the stock corporate-speak catalog compiled into the
// binary so the tool works without any data file. A TOML file supplied at
// startup replaces it entirely.
var builtinEntries = []Entry{
	{
		Phrase:      "synergy",
		Translation: "working together produces more than working apart",
		Keywords:    []string{"synergy", "together", "collaboration", "teamwork"},
		Category:    "collaboration",
		Context:     "usually announced right before two teams get merged",
	},
	{
		Phrase:       "leverage",
		Translation:  "use something you already have",
		Keywords:     []string{"leverage", "use", "utilize", "exploit"},
		Category:     "strategy",
		Alternatives: []string{"leverage our assets", "leverage synergies"},
		Secondary: []Meaning{
			{Translation: "borrowed money multiplying gains and losses", Context: "the finance meaning, rarely intended in meetings"},
		},
	},
	{
		Phrase:       "circle back",
		Translation:  "talk about this later, possibly never",
		Keywords:     []string{"circle", "back", "later", "revisit", "followup"},
		Category:     "time",
		Alternatives: []string{"loop back", "revisit"},
	},
	{
		Phrase:      "paradigm shift",
		Translation: "a big change in how things are done",
		Keywords:    []string{"paradigm", "shift", "change", "transformation"},
		Category:    "strategy",
	},
	{
		Phrase:      "low-hanging fruit",
		Translation: "the easiest tasks with visible payoff",
		Keywords:    []string{"easy", "quick", "simple", "fruit"},
		Category:    "strategy",
		Context:     "implies the hard tasks will be somebody else's problem",
	},
	{
		Phrase:      "move the needle",
		Translation: "make a difference you can measure",
		Keywords:    []string{"needle", "impact", "progress", "metrics"},
		Category:    "strategy",
	},
	{
		Phrase:      "bandwidth",
		Translation: "time and energy to take on more work",
		Keywords:    []string{"bandwidth", "capacity", "time", "availability"},
		Category:    "resources",
		Secondary: []Meaning{
			{Translation: "data transfer capacity of a network link", Context: "the literal meaning, still alive in engineering"},
		},
	},
	{
		Phrase:       "deep dive",
		Translation:  "a detailed look at one topic",
		Keywords:     []string{"deep", "dive", "detail", "analysis", "thorough"},
		Category:     "communication",
		Alternatives: []string{"drill down"},
	},
	{
		Phrase:      "touch base",
		Translation: "have a short conversation",
		Keywords:    []string{"touch", "base", "chat", "meet", "sync"},
		Category:    "communication",
	},
	{
		Phrase:      "think outside the box",
		Translation: "come up with unconventional ideas",
		Keywords:    []string{"creative", "unconventional", "innovative", "box"},
		Category:    "innovation",
	},
	{
		Phrase:      "pivot",
		Translation: "change direction because the current one is not working",
		Keywords:    []string{"pivot", "change", "direction", "strategy"},
		Category:    "strategy",
		Secondary: []Meaning{
			{Translation: "a basketball move where one foot stays planted"},
			{Translation: "a table summarizing data by rotating rows into columns", Context: "spreadsheet jargon"},
		},
	},
	{
		Phrase:       "alignment",
		Translation:  "everyone agreeing, or at least saying they do",
		Keywords:     []string{"alignment", "agreement", "consensus", "aligned"},
		Category:     "collaboration",
		Alternatives: []string{"get aligned", "strategic alignment"},
	},
	{
		Phrase:      "stakeholder",
		Translation: "anyone who can complain about the outcome",
		Keywords:    []string{"stakeholder", "interested", "party", "sponsor"},
		Category:    "collaboration",
	},
	{
		Phrase:      "ideate",
		Translation: "have ideas",
		Keywords:    []string{"ideate", "brainstorm", "ideas", "creative"},
		Category:    "innovation",
		Context:     "saying 'think' was apparently not enough",
	},
	{
		Phrase:       "value-add",
		Translation:  "something that actually helps",
		Keywords:     []string{"value", "benefit", "useful", "improvement"},
		Category:     "strategy",
		Alternatives: []string{"added value", "value proposition"},
	},
	{
		Phrase:      "boil the ocean",
		Translation: "attempt something impossibly large",
		Keywords:    []string{"boil", "ocean", "impossible", "scope"},
		Category:    "strategy",
		Context:     "always used to reject somebody else's plan",
	},
	{
		Phrase:      "win-win",
		Translation: "an outcome good for both sides",
		Keywords:    []string{"win", "mutual", "benefit", "both"},
		Category:    "collaboration",
	},
	{
		Phrase:       "take this offline",
		Translation:  "stop discussing this in front of everyone",
		Keywords:     []string{"offline", "later", "private", "meeting"},
		Category:     "communication",
		Alternatives: []string{"park it", "sidebar"},
	},
	{
		Phrase:      "north star",
		Translation: "the one goal everything else should serve",
		Keywords:    []string{"north", "star", "goal", "vision", "mission"},
		Category:    "strategy",
	},
	{
		Phrase:      "quick win",
		Translation: "a small success to show progress early",
		Keywords:    []string{"quick", "win", "easy", "fast"},
		Category:    "strategy",
	},
	{
		Phrase:      "action item",
		Translation: "a task someone was assigned in a meeting",
		Keywords:    []string{"action", "item", "task", "todo"},
		Category:    "communication",
	},
	{
		Phrase:      "best practice",
		Translation: "the way everyone else claims to do it",
		Keywords:    []string{"best", "practice", "standard", "recommended"},
		Category:    "strategy",
	},
	{
		Phrase:      "ecosystem",
		Translation: "a group of products that lock you in together",
		Keywords:    []string{"ecosystem", "platform", "network", "integrated"},
		Category:    "innovation",
	},
	{
		Phrase:      "holistic approach",
		Translation: "considering everything at once, committing to nothing",
		Keywords:    []string{"holistic", "complete", "comprehensive", "whole"},
		Category:    "strategy",
	},
}

// Builtin returns the compiled-in catalog. The builtin set is known valid,
// so a construction failure here is a programming error.
func Builtin() *Dictionary {
	d, err := New(builtinEntries)
	if err != nil {
		panic(err)
	}
	return d
}
