package ocr

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestVisionClient(srv *httptest.Server) *VisionClient {
	return &VisionClient{
		apiKey:   "test-key",
		endpoint: srv.URL,
		client:   srv.Client(),
	}
}

func TestVisionRecognize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing api key on request")
		}
		var req visionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Requests) != 1 || req.Requests[0].Features[0].Type != "DOCUMENT_TEXT_DETECTION" {
			t.Errorf("unexpected request payload: %+v", req)
		}
		hints := req.Requests[0].ImageContext.LanguageHints
		if len(hints) == 0 || hints[0] != "tr" {
			t.Errorf("language hints = %v, want tr first", hints)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"responses":[{"fullTextAnnotation":{"text":"ENERJİSA\nToplam: 125,00 TL"}}]}`))
	}))
	defer srv.Close()

	text, err := newTestVisionClient(srv).Recognize(context.Background(), []byte{0xFF, 0xD8}, "image/jpeg")
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if text != "ENERJİSA\nToplam: 125,00 TL" {
		t.Errorf("text = %q", text)
	}
}

func TestVisionRecognizeUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := newTestVisionClient(srv).Recognize(context.Background(), []byte{1}, "image/jpeg")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestVisionRecognizeTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := newTestVisionClient(srv)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := c.Recognize(ctx, []byte{1}, "image/jpeg")
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("err = %v, want ErrTimeout", err)
	}
}

func TestVisionRecognizeEmptyImage(t *testing.T) {
	c := NewVisionClient("k")
	if _, err := c.Recognize(context.Background(), nil, "image/jpeg"); !errors.Is(err, ErrNoImage) {
		t.Fatalf("err = %v, want ErrNoImage", err)
	}
}

func TestVisionRecognizeAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"responses":[{"error":{"code":3,"message":"bad image"}}]}`))
	}))
	defer srv.Close()

	_, err := newTestVisionClient(srv).Recognize(context.Background(), []byte{1}, "image/jpeg")
	if err == nil {
		t.Fatalf("expected error for api-level failure")
	}
	if errors.Is(err, ErrTimeout) || errors.Is(err, ErrUnauthorized) {
		t.Errorf("api error misclassified: %v", err)
	}
}
