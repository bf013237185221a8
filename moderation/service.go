package moderation

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/code-payments/content-moderator/image"
)

// AutoDetectLanguage asks AnalyzeText to detect the language of the text
// before screening it.
const AutoDetectLanguage = "auto"

// Service analyzes text and images with a remote moderation Client. It holds
// no mutable state and is safe for concurrent use when its Client is.
type Service struct {
	log    *zap.Logger
	client Client
}

// NewService returns a Service backed by client. log may be nil.
func NewService(log *zap.Logger, client Client) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		log:    log,
		client: client,
	}
}

// AnalyzeText screens text and derives its classifications. language is sent
// as is, unless it is AutoDetectLanguage, in which case it is detected first.
//
// Errors from the Client are returned unchanged.
func (s *Service) AnalyzeText(ctx context.Context, text string, textType TextType, language string) (*AnalyzeTextResult, error) {
	log := s.log.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("op", "analyze_text"),
		zap.String("text_type", textType.String()),
		zap.String("language", language),
	)

	if language == AutoDetectLanguage {
		detected, err := s.detectLanguage(ctx, log, text, textType)
		if err != nil {
			return nil, err
		}
		language = detected
		log = log.With(zap.String("detected_language", detected))
	}

	screen, err := s.client.ScreenText(ctx, textType.ContentType(), []byte(text), language, DefaultScreenOptions)
	if err != nil {
		log.Warn("Failed to screen text", zap.Error(err))
		return nil, err
	}

	result := NewAnalyzeTextResult(screen)

	log.Debug("Screened text",
		zap.Bool("explicit", result.IsSexuallyExplicit()),
		zap.Bool("suggestive", result.IsSexuallySuggestive()),
		zap.Bool("offensive", result.IsOffensive()),
		zap.Int("terms", len(result.Terms)),
	)

	return result, nil
}

// DetectLanguage returns the language code the backend detects for text. A
// non-OK status from the backend is returned as a *StatusError.
func (s *Service) DetectLanguage(ctx context.Context, text string, textType TextType) (string, error) {
	log := s.log.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("op", "detect_language"),
		zap.String("text_type", textType.String()),
	)
	return s.detectLanguage(ctx, log, text, textType)
}

func (s *Service) detectLanguage(ctx context.Context, log *zap.Logger, text string, textType TextType) (string, error) {
	resp, err := s.client.DetectLanguage(ctx, textType.ContentType(), []byte(text))
	if err != nil {
		log.Warn("Failed to detect language", zap.Error(err))
		return "", err
	}

	var status *Status
	if resp != nil {
		status = resp.Status
	}
	if status == nil || status.Description != StatusOK {
		statusErr := newStatusError(status)
		log.Warn("Language detection returned a non-OK status", zap.Error(statusErr))
		return "", statusErr
	}

	log.Debug("Detected language", zap.String("detected_language", resp.DetectedLanguage))

	return resp.DetectedLanguage, nil
}

// AnalyzeImage evaluates an image. The backend's evaluation is returned as
// received.
func (s *Service) AnalyzeImage(ctx context.Context, data []byte) (*Evaluation, error) {
	log := s.log.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("op", "analyze_image"),
		zap.Int("size", len(data)),
	)

	if info, err := image.Inspect(data); err == nil {
		log = log.With(
			zap.String("format", info.Format),
			zap.Int("width", info.Width),
			zap.Int("height", info.Height),
		)
	}

	evaluation, err := s.client.EvaluateImage(ctx, data)
	if err != nil {
		log.Warn("Failed to evaluate image", zap.Error(err))
		return nil, err
	}

	if evaluation != nil {
		log.Debug("Evaluated image", zap.Bool("result", evaluation.Result))
	}

	return evaluation, nil
}
