// Package ocr provides text-recognition collaborators for the scan pipeline.
// The engines themselves (Google Vision, Tesseract) are black boxes behind
// the Recognizer interface; the pipeline only ever sees raw text or a
// classified error.
package ocr

import (
	"context"
	"errors"
)

// Recognizer turns one photographed document into raw text.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte, mimeType string) (string, error)
}

// Sentinel errors let the orchestrator show a distinct user-facing message
// per failure class.
var (
	ErrTimeout      = errors.New("ocr: request timed out")
	ErrUnauthorized = errors.New("ocr: unauthorized")
	ErrNoImage      = errors.New("ocr: empty image")
)
