package services

import (
	"context"
	"net/http"

	"github.com/SscSPs/lifedash/internal/core/domain"
	"github.com/SscSPs/lifedash/internal/core/ports"
	"github.com/SscSPs/lifedash/internal/dto"
	"github.com/SscSPs/lifedash/internal/utils/accounting"
	"github.com/SscSPs/lifedash/internal/utils/mapping"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	vehiclesPath = "vehicles"
	fuelLogsPath = "vehicles/logs"
)

// GarageStore mirrors vehicles together with their fuel logs.
type GarageStore struct {
	BaseService
	gw        ports.Gateway
	validator *validator.Validate
	finance   *FinanceStore

	Vehicles *Collection[domain.Vehicle]
}

// NewGarageStore creates the store. finance, when set, is refreshed after a
// fuel purchase is charged to an account.
func NewGarageStore(gw ports.Gateway, finance *FinanceStore) *GarageStore {
	return &GarageStore{
		gw:        gw,
		validator: newRequestValidator(),
		finance:   finance,
		Vehicles:  NewCollection[domain.Vehicle](),
	}
}

func (s *GarageStore) validate(req any) error {
	return validateRequest(s.validator, req)
}

func (s *GarageStore) FetchVehicles(ctx context.Context) error {
	return fetchInto(ctx, &s.BaseService, s.gw, s.Vehicles, vehiclesPath, mapping.NormalizeVehicles)
}

func (s *GarageStore) CreateVehicle(ctx context.Context, req dto.CreateVehicleRequest) error {
	if err := write(ctx, &s.BaseService, s.gw, s.Vehicles, s.validate, http.MethodPost, vehiclesPath, req); err != nil {
		return err
	}
	return s.FetchVehicles(ctx)
}

// AddFuelLog records a refuel. The server may post it as an expense, so
// accounts and transactions are refetched along with the vehicles.
func (s *GarageStore) AddFuelLog(ctx context.Context, req dto.CreateFuelLogRequest) error {
	if err := write(ctx, &s.BaseService, s.gw, s.Vehicles, s.validate, http.MethodPost, fuelLogsPath, req); err != nil {
		return err
	}
	errs := []error{s.FetchVehicles(ctx)}
	if s.finance != nil {
		errs = append(errs, s.finance.FetchAccounts(ctx), s.finance.FetchTransactions(ctx))
	}
	return firstErr(errs...)
}

// Vehicle returns the mirrored vehicle with the given id.
func (s *GarageStore) Vehicle(id int64) (domain.Vehicle, bool) {
	for _, v := range s.Vehicles.Items() {
		if v.ID == id {
			return v, true
		}
	}
	return domain.Vehicle{}, false
}

// FuelEfficiency is the distance per liter of a mirrored vehicle.
func (s *GarageStore) FuelEfficiency(id int64) decimal.Decimal {
	v, ok := s.Vehicle(id)
	if !ok {
		return decimal.Zero
	}
	return accounting.FuelEfficiency(v)
}
