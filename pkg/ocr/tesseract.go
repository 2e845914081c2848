package ocr

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// TesseractRecognizer runs OCR locally with Tesseract. It is the offline
// fallback for deployments without a Vision API key; quality on phone photos
// is noticeably below Vision, so the extraction tiers do the heavy lifting.
type TesseractRecognizer struct {
	languages []string
}

// NewTesseractRecognizer prepares a local recognizer for Turkish bills.
func NewTesseractRecognizer() *TesseractRecognizer {
	return &TesseractRecognizer{languages: []string{"tur", "eng"}}
}

// Recognize decodes the image, applies light preprocessing and feeds the
// result to Tesseract. gosseract carries no context support; the ctx is
// checked at the boundaries only.
func (t *TesseractRecognizer) Recognize(ctx context.Context, image []byte, mimeType string) (string, error) {
	if len(image) == 0 {
		return "", ErrNoImage
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	img, err := imaging.Decode(bytes.NewReader(image))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	img = prepareForOCR(img)

	tmp, err := os.CreateTemp("", "billscan-*.png")
	if err != nil {
		return "", fmt.Errorf("temp file: %w", err)
	}
	_ = tmp.Close()
	defer os.Remove(tmp.Name())
	if err := imaging.Save(img, tmp.Name()); err != nil {
		return "", fmt.Errorf("save preprocessed image: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()
	if err := client.SetLanguage(t.languages...); err != nil {
		return "", fmt.Errorf("set language: %w", err)
	}
	if err := client.SetImage(tmp.Name()); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("tesseract: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return text, nil
}
