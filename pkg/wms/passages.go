package wms

import (
	"context"
	"net/url"
	"time"

	"github.com/cargoflow-hq/wms-bridge/internal/domain"
	"github.com/go-resty/resty/v2"
)

// PassageDraft records one vehicle movement through a warehouse gate.
type PassageDraft struct {
	FlightID  string
	Direction string
	GateID    string
	PassedAt  time.Time
}

// CreatePassage registers a gate passage for a flight.
func (c *Client) CreatePassage(ctx context.Context, draft PassageDraft) (domain.Passage, error) {
	passedAt := draft.PassedAt
	if passedAt.IsZero() {
		passedAt = time.Now()
	}
	params := Params{
		"flight_id": draft.FlightID,
		"direction": draft.Direction,
		"gate_id":   draft.GateID,
		"passed_at": passedAt.UTC().Format(time.RFC3339),
	}
	var out domain.Passage
	err := c.callJSON(ctx, resty.MethodPost, "passages", params, &out)
	return out, err
}

// ClosePassage marks a passage as completed.
func (c *Client) ClosePassage(ctx context.Context, id string) (domain.Passage, error) {
	var out domain.Passage
	err := c.callJSON(ctx, resty.MethodPut, "passages/"+url.PathEscape(id)+"/close", Params{"closed": true}, &out)
	return out, err
}
