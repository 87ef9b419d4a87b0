package wms

import (
	"context"
	"net/url"
	"time"

	"github.com/cargoflow-hq/wms-bridge/internal/domain"
	"github.com/go-resty/resty/v2"
)

// FlightFilter narrows Flights listings.
type FlightFilter struct {
	Date       time.Time
	Status     string
	Depositors []string
}

func flightListParams(f FlightFilter) Params {
	params := Params{}
	if !f.Date.IsZero() {
		params["date"] = f.Date.UTC().Format("2006-01-02")
	}
	if f.Status != "" {
		params["status"] = f.Status
	}
	return withDepositorFilter(params, f.Depositors)
}

// Flights lists flights matching the filter.
func (c *Client) Flights(ctx context.Context, f FlightFilter) ([]domain.Flight, error) {
	var out []domain.Flight
	if err := c.callJSON(ctx, resty.MethodGet, "flights", flightListParams(f), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Flight fetches a single flight by id.
func (c *Client) Flight(ctx context.Context, id string) (domain.Flight, error) {
	var out domain.Flight
	err := c.callJSON(ctx, resty.MethodGet, "flights/"+url.PathEscape(id), nil, &out)
	return out, err
}

// FlightDraft carries the fields required to schedule a flight.
type FlightDraft struct {
	Number     string
	CarBrand   string
	CarNumber  string
	DriverName string
	PlannedAt  time.Time
	OrderIDs   []string
}

// CreateFlight schedules a new flight and returns the created record.
func (c *Client) CreateFlight(ctx context.Context, draft FlightDraft) (domain.Flight, error) {
	params := Params{
		"number":      draft.Number,
		"car_brand":   draft.CarBrand,
		"car_number":  draft.CarNumber,
		"driver_name": draft.DriverName,
		"planned_at":  draft.PlannedAt.UTC().Format(time.RFC3339),
		"order_ids":   draft.OrderIDs,
	}
	var out domain.Flight
	err := c.callJSON(ctx, resty.MethodPost, "flights", params, &out)
	return out, err
}

// FlightPassages lists gate passages recorded for a flight.
func (c *Client) FlightPassages(ctx context.Context, flightID string) ([]domain.Passage, error) {
	var out []domain.Passage
	err := c.callJSON(ctx, resty.MethodGet, "flights/"+url.PathEscape(flightID)+"/passages", nil, &out)
	return out, err
}
