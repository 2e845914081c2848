package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"
)

const visionEndpoint = "https://vision.googleapis.com/v1/images:annotate"

const defaultVisionTimeout = 30 * time.Second

// VisionClient recognizes text through the Google Cloud Vision REST API
// (DOCUMENT_TEXT_DETECTION with Turkish+English hints).
type VisionClient struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewVisionClient builds a Vision recognizer with the default timeout.
func NewVisionClient(apiKey string) *VisionClient {
	return &VisionClient{
		apiKey:   apiKey,
		endpoint: visionEndpoint,
		client:   &http.Client{Timeout: defaultVisionTimeout},
	}
}

type visionRequest struct {
	Requests []visionAnnotateRequest `json:"requests"`
}

type visionAnnotateRequest struct {
	Image        visionImage        `json:"image"`
	Features     []visionFeature    `json:"features"`
	ImageContext visionImageContext `json:"imageContext"`
}

type visionImage struct {
	Content string `json:"content"`
}

type visionFeature struct {
	Type       string `json:"type"`
	MaxResults int    `json:"maxResults"`
}

type visionImageContext struct {
	LanguageHints []string `json:"languageHints"`
}

type visionResponse struct {
	Responses []struct {
		FullTextAnnotation struct {
			Text string `json:"text"`
		} `json:"fullTextAnnotation"`
		Error *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	} `json:"responses"`
}

// Recognize sends the image and returns the full text annotation. Transport
// and auth failures map onto the package sentinels so callers can message
// the user per failure class.
func (v *VisionClient) Recognize(ctx context.Context, image []byte, mimeType string) (string, error) {
	if len(image) == 0 {
		return "", ErrNoImage
	}
	payload := visionRequest{Requests: []visionAnnotateRequest{{
		Image:        visionImage{Content: base64.StdEncoding.EncodeToString(image)},
		Features:     []visionFeature{{Type: "DOCUMENT_TEXT_DETECTION", MaxResults: 1}},
		ImageContext: visionImageContext{LanguageHints: []string{"tr", "en"}},
	}}}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("vision marshal: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint+"?key="+v.apiKey, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("vision request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := v.client.Do(req)
	if err != nil {
		return "", classifyTransportErr(err)
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", fmt.Errorf("vision status %d: %w", resp.StatusCode, ErrUnauthorized)
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("vision status %d", resp.StatusCode)
	}
	var out visionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("vision decode: %w", err)
	}
	if len(out.Responses) == 0 {
		return "", nil
	}
	if e := out.Responses[0].Error; e != nil {
		log.Printf("vision api error code=%d msg=%s", e.Code, e.Message)
		return "", fmt.Errorf("vision api error: %s", e.Message)
	}
	return out.Responses[0].FullTextAnnotation.Text, nil
}

func classifyTransportErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("vision call: %w", ErrTimeout)
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return fmt.Errorf("vision call: %w", ErrTimeout)
	}
	return fmt.Errorf("vision call: %w", err)
}
