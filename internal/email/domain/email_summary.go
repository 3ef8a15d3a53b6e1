package domain

// Strategy names the algorithm that produced a summary.
type Strategy string

const (
	StrategyRemote   Strategy = "remote"
	StrategyFallback Strategy = "fallback"
)

// EmailSummary is the rendered summary of one batch. Text carries the four
// sections (Overview, Priority Items, Action Required, FYI) as one block.
type EmailSummary struct {
	Text     string   `json:"summary"`
	Strategy Strategy `json:"-"`
}
