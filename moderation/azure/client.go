package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/code-payments/content-moderator/config"
	"github.com/code-payments/content-moderator/image"
	"github.com/code-payments/content-moderator/moderation"
)

const (
	screenPath         = "/contentmoderator/moderate/v1.0/ProcessText/Screen"
	detectLanguagePath = "/contentmoderator/moderate/v1.0/ProcessText/DetectLanguage"
	evaluatePath       = "/contentmoderator/moderate/v1.0/ProcessImage/Evaluate"

	subscriptionKeyHeader = "Ocp-Apim-Subscription-Key"
)

var _ moderation.Client = (*Client)(nil)

// Client implements moderation.Client against the Azure Content Moderator
// REST API.
type Client struct {
	endpoint   string
	key        string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests. The default is
// http.DefaultClient.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient returns a Client for the service at endpoint, e.g.
// https://westus.api.cognitive.microsoft.com.
func NewClient(endpoint, key string, opts ...Option) (*Client, error) {
	if endpoint == "" {
		return nil, errors.New("endpoint URL is required")
	}
	if key == "" {
		return nil, errors.New("API key is required")
	}

	c := &Client{
		endpoint:   strings.TrimRight(endpoint, "/"),
		key:        key,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// FromConfig returns a Client for cfg.
func FromConfig(cfg *config.Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewClient(cfg.Endpoint, cfg.Key, opts...)
}

func (c *Client) ScreenText(ctx context.Context, contentType string, content []byte, language string, opts moderation.ScreenOptions) (*moderation.Screen, error) {
	query := url.Values{}
	query.Set("autocorrect", strconv.FormatBool(opts.Autocorrect))
	query.Set("PII", strconv.FormatBool(opts.PII))
	query.Set("classify", strconv.FormatBool(opts.Classify))
	if language != "" {
		query.Set("language", language)
	}

	var result moderation.Screen
	if err := c.post(ctx, screenPath, query, contentType, content, &result); err != nil {
		return nil, errors.Wrap(err, "failed to screen text")
	}
	return &result, nil
}

func (c *Client) DetectLanguage(ctx context.Context, contentType string, content []byte) (*moderation.DetectedLanguage, error) {
	var result moderation.DetectedLanguage
	if err := c.post(ctx, detectLanguagePath, nil, contentType, content, &result); err != nil {
		return nil, errors.Wrap(err, "failed to detect language")
	}
	return &result, nil
}

func (c *Client) EvaluateImage(ctx context.Context, data []byte) (*moderation.Evaluation, error) {
	var result moderation.Evaluation
	if err := c.post(ctx, evaluatePath, nil, image.ContentType(data), data, &result); err != nil {
		return nil, errors.Wrap(err, "failed to evaluate image")
	}
	return &result, nil
}

func (c *Client) post(ctx context.Context, path string, query url.Values, contentType string, body []byte, result any) error {
	endpoint := c.endpoint + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set(subscriptionKeyHeader, c.key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to send request")
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode != http.StatusOK {
		return newAPIError(resp.StatusCode, responseBody)
	}

	if err := json.Unmarshal(responseBody, result); err != nil {
		return errors.Wrap(err, "failed to unmarshal response")
	}
	return nil
}

// APIError is returned when the service answers with a non-200 status code.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("non-200 status code: %d, %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("non-200 status code: %d, response: %s", e.StatusCode, e.Message)
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Message: string(body)}

	// The service uses both a wrapped and a bare error envelope depending on
	// which layer rejected the request.
	var envelope struct {
		Error *errorBody `json:"error"`
		errorBody
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return apiErr
	}

	parsed := envelope.errorBody
	if envelope.Error != nil {
		parsed = *envelope.Error
	}
	if parsed.Code == "" && parsed.Message == "" {
		return apiErr
	}

	apiErr.Code = parsed.Code
	apiErr.Message = parsed.Message
	return apiErr
}
