package wms

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestAttachOrderFileRebuildsBodyAcrossAttempts(t *testing.T) {
	var bodies []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("form file: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		if header.Filename != "waybill.pdf" {
			t.Errorf("filename = %s", header.Filename)
		}
		data, _ := io.ReadAll(file)
		bodies = append(bodies, string(data))

		if len(bodies) == 1 {
			// first attempt hits the handshake race
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	var delays []time.Duration
	c := newTestClient(t, server.URL, &delays)

	err := c.AttachOrderFile(context.Background(), "o-1", FileFromString("waybill.pdf", "pdf-bytes"))
	if err != nil {
		t.Fatalf("AttachOrderFile: %v", err)
	}
	if len(bodies) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(bodies))
	}
	for i, body := range bodies {
		if body != "pdf-bytes" {
			t.Fatalf("attempt %d body = %q, want full content on every attempt", i+1, body)
		}
	}
	if len(delays) != 1 || delays[0] != 200*time.Millisecond {
		t.Fatalf("expected one 200ms delay, got %v", delays)
	}
}

func TestAttachOrderFileRequiresContent(t *testing.T) {
	var delays []time.Duration
	c := newTestClient(t, "http://127.0.0.1:0", &delays)

	err := c.AttachOrderFile(context.Background(), "o-1", FileInput{})
	if err == nil || !strings.Contains(err.Error(), "no content") {
		t.Fatalf("expected missing-content error, got %v", err)
	}
}
