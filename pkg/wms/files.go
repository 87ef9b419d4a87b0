package wms

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/go-resty/resty/v2"
)

// AttachOrderFile uploads a document (waybill, invoice scan) to an order.
// The content is buffered once so the multipart body can be rebuilt for
// every attempt of the retry schedule.
func (c *Client) AttachOrderFile(ctx context.Context, orderID string, file FileInput) error {
	if file.reader == nil {
		return fmt.Errorf("file input has no content")
	}
	data, err := io.ReadAll(file.reader)
	if err != nil {
		return fmt.Errorf("read file input %q: %w", file.name, err)
	}

	path := "orders/" + url.PathEscape(orderID) + "/files"
	build := func() *resty.Request {
		return c.http.R().
			SetContext(ctx).
			SetFileReader("file", file.name, bytes.NewReader(data))
	}
	_, err = c.execute(ctx, resty.MethodPost, path, build)
	return err
}
