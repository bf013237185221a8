package moderation

import (
	"fmt"
	"strings"
)

type TextType int

const (
	PlainText TextType = iota
	HTML
	XML
	Markdown
)

var contentTypes = map[TextType]string{
	PlainText: "text/plain",
	HTML:      "text/html",
	XML:       "text/xml",
	Markdown:  "text/markdown",
}

var textTypeNames = map[TextType]string{
	PlainText: "plain",
	HTML:      "html",
	XML:       "xml",
	Markdown:  "markdown",
}

// ContentType returns the MIME type sent to the backend for t. Values outside
// the known set map to an empty string and are passed through unvalidated.
func (t TextType) ContentType() string {
	return contentTypes[t]
}

func (t TextType) String() string {
	if name, ok := textTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TextType(%d)", int(t))
}

// ParseTextType parses a text type name such as "plain" or "markdown".
func ParseTextType(name string) (TextType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range textTypeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown text type: %q", name)
}

// Score is the model's confidence, between 0 and 1, that a category applies.
type Score struct {
	Score float64 `json:"Score"`
}

// Classification holds the three category scores of a screened text.
//
//   - Category1: sexually explicit or adult language.
//   - Category2: sexually suggestive or mature language.
//   - Category3: offensive language.
type Classification struct {
	ReviewRecommended bool   `json:"ReviewRecommended"`
	Category1         *Score `json:"Category1,omitempty"`
	Category2         *Score `json:"Category2,omitempty"`
	Category3         *Score `json:"Category3,omitempty"`
}

type Status struct {
	Code        int    `json:"Code"`
	Description string `json:"Description"`
	Exception   string `json:"Exception,omitempty"`
}

// DetectedTerm is a profane term found in a screened text.
type DetectedTerm struct {
	Index         int    `json:"Index"`
	OriginalIndex int    `json:"OriginalIndex"`
	ListID        int    `json:"ListId"`
	Term          string `json:"Term"`
}

type Email struct {
	Detected string `json:"Detected"`
	SubType  string `json:"SubType"`
	Text     string `json:"Text"`
	Index    int    `json:"Index"`
}

type SSN struct {
	Text  string `json:"Text"`
	Index int    `json:"Index"`
}

type IPA struct {
	SubType string `json:"SubType"`
	Text    string `json:"Text"`
	Index   int    `json:"Index"`
}

type Phone struct {
	CountryCode string `json:"CountryCode"`
	Text        string `json:"Text"`
	Index       int    `json:"Index"`
}

type Address struct {
	Text  string `json:"Text"`
	Index int    `json:"Index"`
}

// PII lists the personal data found in a screened text.
type PII struct {
	Email   []Email   `json:"Email,omitempty"`
	SSN     []SSN     `json:"SSN,omitempty"`
	IPA     []IPA     `json:"IPA,omitempty"`
	Phone   []Phone   `json:"Phone,omitempty"`
	Address []Address `json:"Address,omitempty"`
}

// Screen is the raw outcome of screening a text.
type Screen struct {
	OriginalText      string          `json:"OriginalText,omitempty"`
	NormalizedText    string          `json:"NormalizedText,omitempty"`
	AutoCorrectedText string          `json:"AutoCorrectedText,omitempty"`
	Misrepresentation []string        `json:"Misrepresentation,omitempty"`
	Classification    *Classification `json:"Classification,omitempty"`
	Status            *Status         `json:"Status,omitempty"`
	PII               *PII            `json:"PII,omitempty"`
	Language          string          `json:"Language,omitempty"`
	Terms             []DetectedTerm  `json:"Terms"`
	TrackingID        string          `json:"TrackingId,omitempty"`
}

type DetectedLanguage struct {
	DetectedLanguage string  `json:"DetectedLanguage"`
	TrackingID       string  `json:"TrackingId,omitempty"`
	Status           *Status `json:"Status,omitempty"`
}

type KeyValuePair struct {
	Key   string `json:"Key"`
	Value string `json:"Value"`
}

// Evaluation is the backend's verdict on an image. It is returned to callers
// as received.
type Evaluation struct {
	CacheID                  string         `json:"CacheID,omitempty"`
	Result                   bool           `json:"Result"`
	TrackingID               string         `json:"TrackingId,omitempty"`
	AdultClassificationScore float64        `json:"AdultClassificationScore"`
	IsImageAdultClassified   bool           `json:"IsImageAdultClassified"`
	RacyClassificationScore  float64        `json:"RacyClassificationScore"`
	IsImageRacyClassified    bool           `json:"IsImageRacyClassified"`
	AdvancedInfo             []KeyValuePair `json:"AdvancedInfo,omitempty"`
	Status                   *Status        `json:"Status,omitempty"`
}
