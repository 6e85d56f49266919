package repositories

import (
	"context"

	"github.com/SscSPs/lifedash/internal/core/domain"
)

// VehicleReader returns vehicles with their fuel logs attached, oldest log first.
type VehicleReader interface {
	FindVehicleByID(ctx context.Context, userID string, vehicleID int64) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context, userID string) ([]domain.Vehicle, error)
}

type VehicleWriter interface {
	SaveVehicle(ctx context.Context, userID string, v domain.Vehicle) (domain.Vehicle, error)
	SaveFuelLog(ctx context.Context, userID string, log domain.FuelLog) (domain.FuelLog, error)
}

// VehicleRepositoryFacade combines all vehicle-related repository interfaces
type VehicleRepositoryFacade interface {
	VehicleReader
	VehicleWriter
}
