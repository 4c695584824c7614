package huggingface

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fitflow/ai-gateway/pkg/domain"
)

func TestGenerateImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/black-forest-labs/FLUX.1-schnell" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var req inferenceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if req.Inputs != "a salad" {
			t.Errorf("inputs = %q", req.Inputs)
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("PNGDATA"))
	}))
	defer srv.Close()

	c, err := NewClient("hf-token", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}

	imageBytes, mediaType, err := c.GenerateImage(context.Background(), "a salad", "black-forest-labs/FLUX.1-schnell")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(imageBytes) != "PNGDATA" {
		t.Errorf("bytes = %q", imageBytes)
	}
	if mediaType != "image/png" {
		t.Errorf("media type = %q", mediaType)
	}
}

func TestGenerateImage_SniffsMissingContentType(t *testing.T) {
	// Real PNG magic so DetectContentType can identify it.
	pngHeader := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write(pngHeader)
	}))
	defer srv.Close()

	c, _ := NewClient("hf-token", WithBaseURL(srv.URL))

	_, mediaType, err := c.GenerateImage(context.Background(), "p", "some/model")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mediaType != "image/png" {
		t.Errorf("media type = %q, want sniffed image/png", mediaType)
	}
}

func TestGenerateImage_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Model is currently loading"}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c, _ := NewClient("hf-token", WithBaseURL(srv.URL))

	_, _, err := c.GenerateImage(context.Background(), "p", "some/model")
	var pe *domain.ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("got %v, want ProviderError", err)
	}
	if pe.Status != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", pe.Status)
	}
}

func TestGenerateImage_EmptyPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c, _ := NewClient("hf-token", WithBaseURL(srv.URL))

	if _, _, err := c.GenerateImage(context.Background(), "p", "some/model"); !domain.IsProviderError(err) {
		t.Errorf("got %v, want ProviderError", err)
	}
}
