package moderation

import "context"

// Client is the remote moderation backend. Implementations must be safe for
// concurrent use and must abort the underlying request when ctx is done.
type Client interface {

	// ScreenText classifies the content and reports profane terms and PII.
	ScreenText(ctx context.Context, contentType string, content []byte, language string, opts ScreenOptions) (*Screen, error)

	// DetectLanguage returns the language the backend detected for the
	// content.
	DetectLanguage(ctx context.Context, contentType string, content []byte) (*DetectedLanguage, error)

	// EvaluateImage returns the adult and racy classification of an image.
	EvaluateImage(ctx context.Context, image []byte) (*Evaluation, error)
}

// ScreenOptions toggles the optional screening features of the backend.
type ScreenOptions struct {
	Autocorrect bool
	PII         bool
	Classify    bool
}

// DefaultScreenOptions are the options used when analyzing text.
var DefaultScreenOptions = ScreenOptions{
	Autocorrect: false,
	PII:         true,
	Classify:    true,
}
