package moderation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func classified(c1, c2, c3 float64) *Screen {
	return &Screen{
		Classification: &Classification{
			Category1: &Score{Score: c1},
			Category2: &Score{Score: c2},
			Category3: &Score{Score: c3},
		},
	}
}

func TestAnalyzeTextResult_Thresholds(t *testing.T) {
	for _, tc := range []struct {
		score float64
		want  bool
	}{
		{0, false},
		{0.25, false},
		{0.4999, false},
		{0.5, false},
		{0.5001, true},
		{0.9, true},
		{1, true},
	} {
		explicit := NewAnalyzeTextResult(classified(tc.score, 0, 0))
		require.Equal(t, tc.want, explicit.IsSexuallyExplicit(), "category1=%v", tc.score)
		require.False(t, explicit.IsSexuallySuggestive())
		require.False(t, explicit.IsOffensive())

		suggestive := NewAnalyzeTextResult(classified(0, tc.score, 0))
		require.Equal(t, tc.want, suggestive.IsSexuallySuggestive(), "category2=%v", tc.score)
		require.False(t, suggestive.IsSexuallyExplicit())
		require.False(t, suggestive.IsOffensive())

		offensive := NewAnalyzeTextResult(classified(0, 0, tc.score))
		require.Equal(t, tc.want, offensive.IsOffensive(), "category3=%v", tc.score)
		require.False(t, offensive.IsSexuallyExplicit())
		require.False(t, offensive.IsSexuallySuggestive())
	}
}

func TestAnalyzeTextResult_MissingClassification(t *testing.T) {
	for _, screen := range []*Screen{
		nil,
		{},
		{Classification: &Classification{ReviewRecommended: true}},
	} {
		result := NewAnalyzeTextResult(screen)
		require.False(t, result.IsSexuallyExplicit())
		require.False(t, result.IsSexuallySuggestive())
		require.False(t, result.IsOffensive())
		require.False(t, result.HasProfanityTerms())
	}
}

func TestAnalyzeTextResult_Terms(t *testing.T) {
	result := NewAnalyzeTextResult(&Screen{Terms: []DetectedTerm{}})
	require.False(t, result.HasProfanityTerms())

	terms := []DetectedTerm{{Index: 0, Term: "crap"}}
	result = NewAnalyzeTextResult(&Screen{Terms: terms})
	require.True(t, result.HasProfanityTerms())
	require.Equal(t, terms, result.Profanity())

	result = NewAnalyzeTextResult(&Screen{Terms: append(terms, DetectedTerm{Index: 10, Term: "heck"})})
	require.True(t, result.HasProfanityTerms())
	require.Len(t, result.Profanity(), 2)
}

func TestAnalyzeTextResult_RecomputesFromScores(t *testing.T) {
	result := NewAnalyzeTextResult(classified(0.1, 0.1, 0.1))
	require.False(t, result.IsOffensive())

	result.Classification.Category3.Score = 0.75
	require.True(t, result.IsOffensive())
}

func TestAnalyzeTextResult_MarshalJSON(t *testing.T) {
	screen := classified(0.1, 0.9, 0.2)
	screen.Language = "eng"
	screen.Terms = []DetectedTerm{{Index: 3, OriginalIndex: 3, Term: "crap"}}

	data, err := json.Marshal(NewAnalyzeTextResult(screen))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "eng", decoded["Language"])
	require.Equal(t, false, decoded["IsSexuallyExplicit"])
	require.Equal(t, true, decoded["IsSexuallySuggestive"])
	require.Equal(t, false, decoded["IsOffensive"])
	require.Equal(t, true, decoded["HasProfanityTerms"])
	require.Len(t, decoded["Terms"], 1)
}

func TestTextType_ContentType(t *testing.T) {
	for textType, expected := range map[TextType]string{
		PlainText: "text/plain",
		HTML:      "text/html",
		XML:       "text/xml",
		Markdown:  "text/markdown",
	} {
		require.Equal(t, expected, textType.ContentType(), textType.String())
	}

	require.Empty(t, TextType(42).ContentType())
	require.Equal(t, "TextType(42)", TextType(42).String())
}

func TestParseTextType(t *testing.T) {
	for name, expected := range map[string]TextType{
		"plain":    PlainText,
		"HTML":     HTML,
		" xml ":    XML,
		"Markdown": Markdown,
	} {
		actual, err := ParseTextType(name)
		require.NoError(t, err)
		require.Equal(t, expected, actual)
	}

	_, err := ParseTextType("pdf")
	require.Error(t, err)
}

func TestStatusError(t *testing.T) {
	require.Equal(t, "Language not supported", (&StatusError{Description: "Error", Exception: "Language not supported"}).Error())
	require.Equal(t, "Error", (&StatusError{Description: "Error"}).Error())
	require.Equal(t, "", newStatusError(nil).Error())
}
