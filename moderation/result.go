package moderation

import "encoding/json"

// Threshold is the score above which a classification category is considered
// to apply.
const Threshold = 0.5

// AnalyzeTextResult is a screened text together with the classifications
// derived from its scores and terms.
type AnalyzeTextResult struct {
	Screen
}

// NewAnalyzeTextResult maps a raw screen into an AnalyzeTextResult.
func NewAnalyzeTextResult(screen *Screen) *AnalyzeTextResult {
	if screen == nil {
		return &AnalyzeTextResult{}
	}
	return &AnalyzeTextResult{Screen: *screen}
}

func (r *AnalyzeTextResult) IsSexuallyExplicit() bool {
	if r.Classification == nil {
		return false
	}
	return exceeds(r.Classification.Category1)
}

func (r *AnalyzeTextResult) IsSexuallySuggestive() bool {
	if r.Classification == nil {
		return false
	}
	return exceeds(r.Classification.Category2)
}

func (r *AnalyzeTextResult) IsOffensive() bool {
	if r.Classification == nil {
		return false
	}
	return exceeds(r.Classification.Category3)
}

func (r *AnalyzeTextResult) HasProfanityTerms() bool {
	return len(r.Terms) > 0
}

// Profanity returns the profane terms detected in the text.
func (r *AnalyzeTextResult) Profanity() []DetectedTerm {
	return r.Terms
}

func (r *AnalyzeTextResult) MarshalJSON() ([]byte, error) {
	// Screen has no MarshalJSON of its own, so embedding it here flattens its
	// fields without recursing.
	return json.Marshal(struct {
		Screen
		IsSexuallyExplicit   bool `json:"IsSexuallyExplicit"`
		IsSexuallySuggestive bool `json:"IsSexuallySuggestive"`
		IsOffensive          bool `json:"IsOffensive"`
		HasProfanityTerms    bool `json:"HasProfanityTerms"`
	}{
		Screen:               r.Screen,
		IsSexuallyExplicit:   r.IsSexuallyExplicit(),
		IsSexuallySuggestive: r.IsSexuallySuggestive(),
		IsOffensive:          r.IsOffensive(),
		HasProfanityTerms:    r.HasProfanityTerms(),
	})
}

func exceeds(s *Score) bool {
	return s != nil && s.Score > Threshold
}
