package publishers

import (
	"time"

	"github.com/cargoflow-hq/wms-bridge/internal/domain"
)

// Event represents the normalized order payload published downstream.
type Event struct {
	Source      string       `json:"source"`
	Order       domain.Order `json:"order"`
	CompanyName string       `json:"company_name,omitempty"`
	ObservedAt  time.Time    `json:"observed_at"`
}

// NewEvent constructs an Event for the given order.
func NewEvent(source string, order domain.Order, companyName string) Event {
	return Event{
		Source:      source,
		Order:       order,
		CompanyName: companyName,
		ObservedAt:  time.Now().UTC(),
	}
}
