package wms

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/cargoflow-hq/wms-bridge/internal/domain"
	"github.com/go-resty/resty/v2"
)

// OrderFilter narrows Orders listings. Zero-value fields are omitted from
// the request entirely.
type OrderFilter struct {
	From       time.Time
	To         time.Time
	Status     string
	Depositors []string
}

// orderListParams assembles the query mapping for an order listing.
func orderListParams(f OrderFilter) Params {
	params := Params{}
	if !f.From.IsZero() {
		params["date_from"] = f.From.UTC().Format(time.RFC3339)
	}
	if !f.To.IsZero() {
		params["date_to"] = f.To.UTC().Format(time.RFC3339)
	}
	if f.Status != "" {
		params["status"] = f.Status
	}
	return withDepositorFilter(params, f.Depositors)
}

// Orders lists orders matching the filter.
func (c *Client) Orders(ctx context.Context, f OrderFilter) ([]domain.Order, error) {
	var out []domain.Order
	if err := c.callJSON(ctx, resty.MethodGet, "orders", orderListParams(f), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// OrdersUpdatedSince lists orders whose state changed after the given time.
func (c *Client) OrdersUpdatedSince(ctx context.Context, since time.Time, depositors []string) ([]domain.Order, error) {
	params := Params{"updated_after": since.UTC().Format(time.RFC3339)}
	var out []domain.Order
	if err := c.callJSON(ctx, resty.MethodGet, "orders", withDepositorFilter(params, depositors), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Order fetches a single order by id.
func (c *Client) Order(ctx context.Context, id string) (domain.Order, error) {
	var out domain.Order
	err := c.callJSON(ctx, resty.MethodGet, "orders/"+url.PathEscape(id), nil, &out)
	return out, err
}

// OrderDraft carries the fields required to create an order.
type OrderDraft struct {
	Number      string
	DepositorID string
	WarehouseID string
	Lines       []domain.OrderLine
}

// CreateOrder registers a new order and returns the created record.
func (c *Client) CreateOrder(ctx context.Context, draft OrderDraft) (domain.Order, error) {
	lines := make([]Params, 0, len(draft.Lines))
	for _, line := range draft.Lines {
		lines = append(lines, Params{
			"nomenclature_id": line.NomenclatureID,
			"quantity":        line.Quantity,
			"unit":            line.Unit,
		})
	}
	params := Params{
		"number":       draft.Number,
		"depositor_id": draft.DepositorID,
		"warehouse_id": draft.WarehouseID,
		"lines":        lines,
	}
	var out domain.Order
	err := c.callJSON(ctx, resty.MethodPost, "orders", params, &out)
	return out, err
}

// UpdateOrderStatus transitions an order to the given status.
func (c *Client) UpdateOrderStatus(ctx context.Context, id, status string) (domain.Order, error) {
	if status == "" {
		return domain.Order{}, fmt.Errorf("order status is empty")
	}
	var out domain.Order
	err := c.callJSON(ctx, resty.MethodPut, "orders/"+url.PathEscape(id)+"/status", Params{"status": status}, &out)
	return out, err
}

// CancelOrder removes a not-yet-assembled order.
func (c *Client) CancelOrder(ctx context.Context, id string) error {
	_, err := c.call(ctx, resty.MethodDelete, "orders/"+url.PathEscape(id), nil)
	return err
}
