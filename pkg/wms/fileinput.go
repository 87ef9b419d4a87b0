package wms

import (
	"bytes"
	"io"
	"strings"
)

// FileInput names the content attached to an upload call. Callers pick the
// source through one of the constructors; the client never inspects the
// payload type at runtime.
type FileInput struct {
	name   string
	reader io.Reader
}

// FileFromReader wraps an already-open file handle.
func FileFromReader(name string, r io.Reader) FileInput {
	return FileInput{name: name, reader: r}
}

// FileFromBytes wraps raw bytes as an upload.
func FileFromBytes(name string, data []byte) FileInput {
	return FileInput{name: name, reader: bytes.NewReader(data)}
}

// FileFromString wraps a raw string payload as an upload.
func FileFromString(name, content string) FileInput {
	return FileInput{name: name, reader: strings.NewReader(content)}
}

// Name returns the display name sent with the upload.
func (f FileInput) Name() string { return f.name }
