package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vehicle owns an ordered sequence of fuel logs.
type Vehicle struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Plate    string    `json:"plate,omitempty"`
	Make     string    `json:"make,omitempty"`
	Model    string    `json:"model,omitempty"`
	Year     int       `json:"year,omitempty"`
	FuelLogs []FuelLog `json:"logs"`
}

// FuelLog is a single refuel. Odometer is expected to be non-decreasing per
// vehicle; the client does not enforce it.
type FuelLog struct {
	ID              int64            `json:"id"`
	VehicleID       int64            `json:"vehicleId"`
	Date            time.Time        `json:"date"`
	Odometer        decimal.Decimal  `json:"odometer"`
	Liters          decimal.Decimal  `json:"liters"`
	PricePerLiter   decimal.Decimal  `json:"pricePerLiter"`
	TotalCost       decimal.Decimal  `json:"totalCost"`
	TankLevelBefore *decimal.Decimal `json:"tankLevelBefore,omitempty"`
	TankLevelAfter  *decimal.Decimal `json:"tankLevelAfter,omitempty"`
	IsFullTank      bool             `json:"isFullTank"`
}
