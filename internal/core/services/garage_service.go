package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/lifedash/internal/core/domain"
	portsrepo "github.com/SscSPs/lifedash/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/lifedash/internal/core/ports/services"
	"github.com/SscSPs/lifedash/internal/dto"
)

// FuelCategory is the transaction category used for fuel purchases.
const FuelCategory = "Fuel"

type garageService struct {
	BaseService
	vehicleRepo portsrepo.VehicleRepositoryFacade
	finance     portssvc.FinanceSvcFacade
}

// NewGarageService creates the backend vehicle service. Fuel purchases paid
// from an account are posted through finance.
func NewGarageService(vehicleRepo portsrepo.VehicleRepositoryFacade, finance portssvc.FinanceSvcFacade) portssvc.GarageSvcFacade {
	return &garageService{vehicleRepo: vehicleRepo, finance: finance}
}

func (s *garageService) ListVehicles(ctx context.Context, userID string) ([]domain.Vehicle, error) {
	return s.vehicleRepo.ListVehicles(ctx, userID)
}

func (s *garageService) CreateVehicle(ctx context.Context, userID string, req dto.CreateVehicleRequest) (*domain.Vehicle, error) {
	v, err := s.vehicleRepo.SaveVehicle(ctx, userID, domain.Vehicle{
		Name:  strings.TrimSpace(req.Name),
		Plate: req.Plate,
		Make:  req.Make,
		Model: req.Model,
		Year:  req.Year,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}
	return &v, nil
}

func (s *garageService) AddFuelLog(ctx context.Context, userID string, req dto.CreateFuelLogRequest) (*domain.FuelLog, error) {
	vehicle, err := s.vehicleRepo.FindVehicleByID(ctx, userID, req.VehicleID)
	if err != nil {
		return nil, err
	}

	entry := domain.FuelLog{
		VehicleID:       vehicle.ID,
		Date:            req.Date,
		Odometer:        req.Odometer,
		Liters:          req.Liters,
		PricePerLiter:   req.PricePerLiter,
		TotalCost:       req.Cost(),
		TankLevelBefore: req.TankLevelBefore,
		TankLevelAfter:  req.TankLevelAfter,
		IsFullTank:      req.IsFullTank,
	}
	if entry.Date.IsZero() {
		entry.Date = time.Now().UTC()
	}

	// Post the expense first so an unknown account leaves no orphan log.
	if req.AccountID != nil && entry.TotalCost.IsPositive() {
		_, err := s.finance.CreateTransaction(ctx, userID, dto.CreateTransactionRequest{
			AccountID:   *req.AccountID,
			Type:        domain.Expense,
			Amount:      entry.TotalCost,
			Category:    FuelCategory,
			Description: fmt.Sprintf("%s: %s L", vehicle.Name, entry.Liters.String()),
			Date:        entry.Date,
		})
		if err != nil {
			s.LogError(ctx, err, "Failed to post fuel expense", slog.Int64("vehicle_id", vehicle.ID))
			return nil, err
		}
	}

	saved, err := s.vehicleRepo.SaveFuelLog(ctx, userID, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to save fuel log: %w", err)
	}
	s.LogInfo(ctx, "Fuel log recorded", slog.Int64("vehicle_id", vehicle.ID), slog.Int64("fuel_log_id", saved.ID))
	return &saved, nil
}
