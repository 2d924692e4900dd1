package corrector

// CorrectionResult is the per-word outcome of a correction pass.
type CorrectionResult struct {
	Original    string   `json:"original"`
	Suggestions []string `json:"suggestions"`
	BestMatch   string   `json:"best_match"`
}
