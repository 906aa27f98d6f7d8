package types

// ScoreResult is the output of the ATS scoring engine: a 0-100 value plus
// actionable feedback strings in a stable, deterministic order.
type ScoreResult struct {
	Value    int      `json:"value"`
	Feedback []string `json:"feedback"`
}
