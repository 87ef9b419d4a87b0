package publishers

import (
	"os"
	"path/filepath"
	"testing"
)

func writePublishersFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	file := filepath.Join(dir, "publishers.yaml")
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatalf("write publishers file: %v", err)
	}
	return file
}

func TestLoadRegistryYAML(t *testing.T) {
	file := writePublishersFile(t, `
publishers:
  - id: orders-queue
    type: sqs
    sqs:
      uri: https://sqs.eu-west-1.amazonaws.com/123/orders
      region: eu-west-1
  - id: orders-topic
    type: sns
    sns:
      arn: arn:aws:sns:eu-west-1:123:orders
      region: eu-west-1
  - id: orders-pubsub
    type: gcp_pubsub
    gcp:
      project_id: cargoflow
      topic: wms-orders
  - id: webhook
    type: http
    enabled: false
    http:
      url: https://upstream.example/events
`)

	reg, err := LoadRegistry(file)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}

	if got := len(reg.All()); got != 4 {
		t.Fatalf("expected 4 publishers, got %d", got)
	}
	if got := len(reg.Enabled()); got != 3 {
		t.Fatalf("expected 3 enabled publishers, got %d", got)
	}

	cfg, ok := reg.ByID("orders-queue")
	if !ok {
		t.Fatalf("expected publisher orders-queue")
	}
	if cfg.SQS == nil || cfg.SQS.Region != "eu-west-1" {
		t.Fatalf("unexpected sqs config: %+v", cfg.SQS)
	}

	cfg, ok = reg.ByID("orders-pubsub")
	if !ok || cfg.GCP == nil || cfg.GCP.Topic != "wms-orders" {
		t.Fatalf("unexpected gcp config: %+v", cfg.GCP)
	}
}

func TestLoadRegistryDuplicateID(t *testing.T) {
	file := writePublishersFile(t, `
publishers:
  - id: dup
    type: http
    http:
      url: https://one.example
  - id: dup
    type: http
    http:
      url: https://two.example
`)

	if _, err := LoadRegistry(file); err == nil {
		t.Fatalf("expected duplicate publisher error, got nil")
	}
}

func TestLoadRegistryValidation(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{
			name: "sqs missing region",
			content: `
publishers:
  - id: q
    type: sqs
    sqs:
      uri: https://sqs.example/queue
`,
		},
		{
			name: "sns missing arn",
			content: `
publishers:
  - id: topic
    type: sns
    sns:
      region: eu-west-1
`,
		},
		{
			name: "gcp missing topic",
			content: `
publishers:
  - id: ps
    type: gcp_pubsub
    gcp:
      project_id: cargoflow
`,
		},
		{
			name: "http missing url",
			content: `
publishers:
  - id: hook
    type: http
    http:
      method: POST
`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			file := writePublishersFile(t, tc.content)
			if _, err := LoadRegistry(file); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestSanitizeDefaultsHTTPMethodAndTimeout(t *testing.T) {
	cfg := sanitizePublisherConfig(PublisherConfig{
		ID:   " hook ",
		Type: "HTTP",
		HTTP: &HTTPPublisherConfig{URL: " https://example.com "},
	})

	if cfg.ID != "hook" || cfg.Type != "http" {
		t.Fatalf("id/type not normalized: %+v", cfg)
	}
	if cfg.HTTP.Method != "POST" {
		t.Fatalf("default method = %q", cfg.HTTP.Method)
	}
	if cfg.HTTP.TimeoutSeconds != httpDefaultTimeoutSeconds {
		t.Fatalf("default timeout = %d", cfg.HTTP.TimeoutSeconds)
	}
	if !cfg.EnabledValue() {
		t.Fatalf("enabled should default to true")
	}
}
