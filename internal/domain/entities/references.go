package entities

import "github.com/shopspring/decimal"

// Client, Vehicle, Service and StockItem are owned by other bounded contexts.
// The OS service only reads them through gateways to validate references.

type Vehicle struct {
	ID    string `json:"id"`
	Plate string `json:"plate"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Year  int    `json:"year"`
}

type Client struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Document string    `json:"document"`
	Vehicles []Vehicle `json:"vehicles"`
}

// OwnsVehicle reports whether vehicleID is registered to the client.
func (c Client) OwnsVehicle(vehicleID string) bool {
	for _, v := range c.Vehicles {
		if v.ID == vehicleID {
			return true
		}
	}
	return false
}

type Service struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Available   bool            `json:"available"`
}

// StockItem is the on-hand view of an insumo kept by the stock ledger.
type StockItem struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Quantity        int    `json:"quantity"`
	MinimumQuantity int    `json:"minimum_quantity"`
}

// BelowMinimum reports whether the on-hand quantity crossed the restock threshold.
func (s StockItem) BelowMinimum() bool {
	return s.Quantity < s.MinimumQuantity
}
