package tests

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/code-payments/content-moderator/moderation"
)

func RunClientTests(t *testing.T, client moderation.Client, teardown func()) {
	for _, tf := range []func(t *testing.T, client moderation.Client){
		testScreenText,
		testDetectLanguage,
		testEvaluateImage,
		testCancelledContext,
	} {
		tf(t, client)
		teardown()
	}
}

func testScreenText(t *testing.T, client moderation.Client) {
	t.Run("Screen text", func(t *testing.T) {
		result, err := client.ScreenText(context.Background(), "text/plain", []byte("This is a friendly text."), "eng", moderation.DefaultScreenOptions)
		require.NoError(t, err)
		require.NotNil(t, result)
		require.NotNil(t, result.Status)
		require.Equal(t, moderation.StatusOK, result.Status.Description)
		require.NotNil(t, result.Classification, "classification was requested")
	})
}

func testDetectLanguage(t *testing.T, client moderation.Client) {
	t.Run("Detect language", func(t *testing.T) {
		result, err := client.DetectLanguage(context.Background(), "text/plain", []byte("This is a friendly text written in English."))
		require.NoError(t, err)
		require.NotNil(t, result)
		require.NotNil(t, result.Status)
		require.Equal(t, moderation.StatusOK, result.Status.Description)
		require.Equal(t, "eng", result.DetectedLanguage)
	})
}

func testEvaluateImage(t *testing.T, client moderation.Client) {
	t.Run("Evaluate image", func(t *testing.T) {
		result, err := client.EvaluateImage(context.Background(), GeneratePNG(t, 256, 256))
		require.NoError(t, err)
		require.NotNil(t, result)
		require.NotNil(t, result.Status)
		require.Equal(t, moderation.StatusOK, result.Status.Description)
		require.False(t, result.IsImageAdultClassified)
	})
}

func testCancelledContext(t *testing.T, client moderation.Client) {
	t.Run("Cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.ScreenText(ctx, "text/plain", []byte("hello world"), "eng", moderation.DefaultScreenOptions)
		require.Error(t, err)
		require.ErrorIs(t, err, context.Canceled)

		_, err = client.DetectLanguage(ctx, "text/plain", []byte("hello world"))
		require.ErrorIs(t, err, context.Canceled)

		_, err = client.EvaluateImage(ctx, GeneratePNG(t, 128, 128))
		require.ErrorIs(t, err, context.Canceled)
	})
}

// GeneratePNG returns a PNG encoded gradient of the given size.
func GeneratePNG(t *testing.T, width, height int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
