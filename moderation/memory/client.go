package memory

import (
	"context"
	"sync"

	"github.com/code-payments/content-moderator/moderation"
)

var _ moderation.Client = (*Client)(nil)

type Op string

const (
	OpScreen   Op = "screen"
	OpDetect   Op = "detect"
	OpEvaluate Op = "evaluate"
)

// ScreenCall records the arguments of a ScreenText call.
type ScreenCall struct {
	ContentType string
	Content     []byte
	Language    string
	Options     moderation.ScreenOptions
}

// DetectCall records the arguments of a DetectLanguage call.
type DetectCall struct {
	ContentType string
	Content     []byte
}

// Client is an in-memory moderation.Client that answers every call with a
// predetermined response and records the calls it receives.
type Client struct {
	mu sync.Mutex

	screen     moderation.Screen
	language   moderation.DetectedLanguage
	evaluation moderation.Evaluation

	screenErr   error
	detectErr   error
	evaluateErr error

	calls         []Op
	screenCalls   []ScreenCall
	detectCalls   []DetectCall
	evaluateCalls [][]byte
}

// NewClient creates a new memory-based moderation client that reports clean
// content in English.
func NewClient() *Client {
	return &Client{
		screen: moderation.Screen{
			Classification: &moderation.Classification{
				Category1: &moderation.Score{},
				Category2: &moderation.Score{},
				Category3: &moderation.Score{},
			},
			Status:   &moderation.Status{Code: 3000, Description: moderation.StatusOK},
			Language: "eng",
		},
		language: moderation.DetectedLanguage{
			DetectedLanguage: "eng",
			Status:           &moderation.Status{Code: 3000, Description: moderation.StatusOK},
		},
		evaluation: moderation.Evaluation{
			Status: &moderation.Status{Code: 3000, Description: moderation.StatusOK},
		},
	}
}

func (c *Client) SetScreen(screen moderation.Screen) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.screen = screen
}

func (c *Client) SetLanguage(language moderation.DetectedLanguage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.language = language
}

func (c *Client) SetEvaluation(evaluation moderation.Evaluation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.evaluation = evaluation
}

// SetErrors makes the corresponding operations fail. A nil error restores the
// canned response.
func (c *Client) SetErrors(screenErr, detectErr, evaluateErr error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.screenErr = screenErr
	c.detectErr = detectErr
	c.evaluateErr = evaluateErr
}

func (c *Client) ScreenText(ctx context.Context, contentType string, content []byte, language string, opts moderation.ScreenOptions) (*moderation.Screen, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls = append(c.calls, OpScreen)
	c.screenCalls = append(c.screenCalls, ScreenCall{
		ContentType: contentType,
		Content:     clone(content),
		Language:    language,
		Options:     opts,
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.screenErr != nil {
		return nil, c.screenErr
	}

	screen := c.screen
	screen.OriginalText = string(content)
	screen.Terms = append([]moderation.DetectedTerm(nil), c.screen.Terms...)
	return &screen, nil
}

func (c *Client) DetectLanguage(ctx context.Context, contentType string, content []byte) (*moderation.DetectedLanguage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls = append(c.calls, OpDetect)
	c.detectCalls = append(c.detectCalls, DetectCall{
		ContentType: contentType,
		Content:     clone(content),
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.detectErr != nil {
		return nil, c.detectErr
	}

	language := c.language
	return &language, nil
}

func (c *Client) EvaluateImage(ctx context.Context, image []byte) (*moderation.Evaluation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls = append(c.calls, OpEvaluate)
	c.evaluateCalls = append(c.evaluateCalls, clone(image))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.evaluateErr != nil {
		return nil, c.evaluateErr
	}

	evaluation := c.evaluation
	return &evaluation, nil
}

// Calls returns the operations received so far, in order.
func (c *Client) Calls() []Op {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Op(nil), c.calls...)
}

func (c *Client) ScreenCalls() []ScreenCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]ScreenCall(nil), c.screenCalls...)
}

func (c *Client) DetectCalls() []DetectCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]DetectCall(nil), c.detectCalls...)
}

func (c *Client) EvaluateCalls() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([][]byte(nil), c.evaluateCalls...)
}

// Reset clears the recorded calls.
func (c *Client) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = nil
	c.screenCalls = nil
	c.detectCalls = nil
	c.evaluateCalls = nil
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	copied := make([]byte, len(b))
	copy(copied, b)
	return copied
}
