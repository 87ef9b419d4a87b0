package domain

import "time"

// Domain contains the WMS entities decoded from upstream responses.

// Order is a warehouse order as returned by the WMS.
type Order struct {
	ID          string      `json:"id"`
	Number      string      `json:"number"`
	Status      string      `json:"status"`
	DepositorID string      `json:"depositor_id"`
	CompanyID   string      `json:"company_id"`
	WarehouseID string      `json:"warehouse_id"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	Lines       []OrderLine `json:"lines,omitempty"`
}

// OrderLine is a single nomenclature position within an order.
type OrderLine struct {
	NomenclatureID string  `json:"nomenclature_id"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
}

// Flight is a scheduled vehicle trip carrying one or more orders.
type Flight struct {
	ID          string    `json:"id"`
	Number      string    `json:"number"`
	Status      string    `json:"status"`
	CarBrand    string    `json:"car_brand"`
	CarNumber   string    `json:"car_number"`
	DriverName  string    `json:"driver_name"`
	PlannedAt   time.Time `json:"planned_at"`
	WarehouseID string    `json:"warehouse_id"`
	OrderIDs    []string  `json:"order_ids,omitempty"`
}

// Passage records a vehicle entering or leaving the warehouse gate.
type Passage struct {
	ID        string    `json:"id"`
	FlightID  string    `json:"flight_id"`
	Direction string    `json:"direction"`
	GateID    string    `json:"gate_id"`
	PassedAt  time.Time `json:"passed_at"`
	Closed    bool      `json:"closed"`
}

// Company is a counterparty record within the WMS.
type Company struct {
	ID         string `json:"id"`
	ExternalID string `json:"external_id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	TaxNumber  string `json:"tax_number"`
	Active     bool   `json:"active"`
}

// Depositor is a client/tenant entity used as a filter key in list operations.
type Depositor struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CompanyID string `json:"company_id"`
}

// NomenclatureItem describes a stock keeping unit known to the WMS.
type NomenclatureItem struct {
	ID          string  `json:"id"`
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Unit        string  `json:"unit"`
	Weight      float64 `json:"weight"`
	Volume      float64 `json:"volume"`
	DepositorID string  `json:"depositor_id"`
}

// ReferenceEntry is one row of a WMS reference dictionary.
type ReferenceEntry struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}
