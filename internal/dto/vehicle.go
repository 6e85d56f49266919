package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/lifedash/internal/apperrors"
	"github.com/SscSPs/lifedash/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateVehicleRequest defines the data needed to register a vehicle.
type CreateVehicleRequest struct {
	Name  string `json:"name" binding:"required"`
	Plate string `json:"plate"`
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year" binding:"min=0"`
}

// CreateFuelLogRequest records a refuel. When AccountID is set the backend
// posts the purchase as an expense against that account.
type CreateFuelLogRequest struct {
	VehicleID       int64            `json:"vehicleId" binding:"required,gt=0"`
	AccountID       *int64           `json:"accountId,omitempty"`
	Date            time.Time        `json:"date"`
	Odometer        decimal.Decimal  `json:"odometer"`
	Liters          decimal.Decimal  `json:"liters"`
	PricePerLiter   decimal.Decimal  `json:"pricePerLiter"`
	TotalCost       decimal.Decimal  `json:"totalCost"`
	TankLevelBefore *decimal.Decimal `json:"tankLevelBefore,omitempty"`
	TankLevelAfter  *decimal.Decimal `json:"tankLevelAfter,omitempty"`
	IsFullTank      bool             `json:"isFullTank"`
}

func (r CreateFuelLogRequest) Validate() error {
	if !r.Liters.IsPositive() {
		return fmt.Errorf("%w: liters must be positive", apperrors.ErrValidation)
	}
	if r.Odometer.IsNegative() || r.PricePerLiter.IsNegative() || r.TotalCost.IsNegative() {
		return fmt.Errorf("%w: odometer, price and cost cannot be negative", apperrors.ErrValidation)
	}
	return nil
}

// Cost returns TotalCost, or liters times price when the total was not given.
func (r CreateFuelLogRequest) Cost() decimal.Decimal {
	if r.TotalCost.IsZero() {
		return r.Liters.Mul(r.PricePerLiter).Round(2)
	}
	return r.TotalCost
}

// FuelLogResponse is how the backend serializes a fuel log.
type FuelLogResponse struct {
	ID              int64            `json:"id"`
	VehicleID       int64            `json:"vehicle_id"`
	Date            time.Time        `json:"date"`
	Odometer        decimal.Decimal  `json:"odometer"`
	Liters          decimal.Decimal  `json:"liters"`
	PricePerLiter   decimal.Decimal  `json:"price_per_liter"`
	TotalCost       decimal.Decimal  `json:"total_cost"`
	TankLevelBefore *decimal.Decimal `json:"tank_level_before,omitempty"`
	TankLevelAfter  *decimal.Decimal `json:"tank_level_after,omitempty"`
	IsFullTank      bool             `json:"is_full_tank"`
}

// VehicleResponse is how the backend serializes a vehicle with its logs.
type VehicleResponse struct {
	ID    int64             `json:"id"`
	Name  string            `json:"name"`
	Plate string            `json:"plate,omitempty"`
	Make  string            `json:"make,omitempty"`
	Model string            `json:"model,omitempty"`
	Year  int               `json:"year,omitempty"`
	Logs  []FuelLogResponse `json:"logs"`
}

// ToVehicleResponse converts a domain.Vehicle and its logs.
func ToVehicleResponse(v *domain.Vehicle) VehicleResponse {
	logs := make([]FuelLogResponse, len(v.FuelLogs))
	for i, l := range v.FuelLogs {
		logs[i] = FuelLogResponse{
			ID:              l.ID,
			VehicleID:       l.VehicleID,
			Date:            l.Date,
			Odometer:        l.Odometer,
			Liters:          l.Liters,
			PricePerLiter:   l.PricePerLiter,
			TotalCost:       l.TotalCost,
			TankLevelBefore: l.TankLevelBefore,
			TankLevelAfter:  l.TankLevelAfter,
			IsFullTank:      l.IsFullTank,
		}
	}
	return VehicleResponse{
		ID:    v.ID,
		Name:  v.Name,
		Plate: v.Plate,
		Make:  v.Make,
		Model: v.Model,
		Year:  v.Year,
		Logs:  logs,
	}
}
