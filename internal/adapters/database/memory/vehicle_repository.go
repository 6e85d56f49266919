package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/SscSPs/lifedash/internal/apperrors"
	"github.com/SscSPs/lifedash/internal/core/domain"
	portsrepo "github.com/SscSPs/lifedash/internal/core/ports/repositories"
)

type VehicleRepository struct {
	mu       sync.RWMutex
	vehicles ownedRows[domain.Vehicle]
	logs     ownedRows[domain.FuelLog]
}

var _ portsrepo.VehicleRepositoryFacade = (*VehicleRepository)(nil)

func NewVehicleRepository() *VehicleRepository {
	return &VehicleRepository{
		vehicles: newOwnedRows[domain.Vehicle](),
		logs:     newOwnedRows[domain.FuelLog](),
	}
}

func (r *VehicleRepository) SaveVehicle(_ context.Context, userID string, v domain.Vehicle) (domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v.ID = r.vehicles.newID()
	v.FuelLogs = nil
	r.vehicles.rows[userID] = append(r.vehicles.rows[userID], v)
	v.FuelLogs = []domain.FuelLog{}
	return v, nil
}

func (r *VehicleRepository) SaveFuelLog(_ context.Context, userID string, log domain.FuelLog) (domain.FuelLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.vehicles.index(userID, func(v domain.Vehicle) bool { return v.ID == log.VehicleID }) < 0 {
		return domain.FuelLog{}, apperrors.ErrNotFound
	}
	log.ID = r.logs.newID()
	r.logs.rows[userID] = append(r.logs.rows[userID], log)
	return log, nil
}

func (r *VehicleRepository) FindVehicleByID(_ context.Context, userID string, vehicleID int64) (*domain.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.vehicles.index(userID, func(v domain.Vehicle) bool { return v.ID == vehicleID })
	if i < 0 {
		return nil, apperrors.ErrNotFound
	}
	v := r.withLogs(userID, r.vehicles.rows[userID][i])
	return &v, nil
}

func (r *VehicleRepository) ListVehicles(_ context.Context, userID string) ([]domain.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := r.vehicles.list(userID)
	for i := range out {
		out[i] = r.withLogs(userID, out[i])
	}
	return out, nil
}

// withLogs attaches the vehicle's logs ordered by date. Callers hold the lock.
func (r *VehicleRepository) withLogs(userID string, v domain.Vehicle) domain.Vehicle {
	v.FuelLogs = []domain.FuelLog{}
	for _, l := range r.logs.rows[userID] {
		if l.VehicleID == v.ID {
			v.FuelLogs = append(v.FuelLogs, l)
		}
	}
	sort.SliceStable(v.FuelLogs, func(i, j int) bool {
		return v.FuelLogs[i].Date.Before(v.FuelLogs[j].Date)
	})
	return v
}
