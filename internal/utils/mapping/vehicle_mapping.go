package mapping

import (
	"encoding/json"

	"github.com/SscSPs/lifedash/internal/core/domain"
)

var vehicleSchema = struct {
	ID, Name, Plate, Make, Model, Year, Logs aliases
}{
	ID:    aliases{"id", "vehicle_id", "vehicleId"},
	Name:  aliases{"name", "nickname"},
	Plate: aliases{"plate", "license_plate", "licensePlate"},
	Make:  aliases{"make", "brand"},
	Model: aliases{"model"},
	Year:  aliases{"year"},
	Logs:  aliases{"logs", "fuel_logs", "fuelLogs"},
}

var fuelLogSchema = struct {
	ID, VehicleID, Date, Odometer, Liters, PricePerLiter, TotalCost,
	TankLevelBefore, TankLevelAfter, IsFullTank aliases
}{
	ID:              aliases{"id", "log_id", "logId"},
	VehicleID:       aliases{"vehicleId", "vehicle_id"},
	Date:            aliases{"date", "log_date", "logDate"},
	Odometer:        aliases{"odometer", "mileage"},
	Liters:          aliases{"liters", "litres"},
	PricePerLiter:   aliases{"pricePerLiter", "price_per_liter"},
	TotalCost:       aliases{"totalCost", "total_cost"},
	TankLevelBefore: aliases{"tankLevelBefore", "tank_level_before"},
	TankLevelAfter:  aliases{"tankLevelAfter", "tank_level_after"},
	IsFullTank:      aliases{"isFullTank", "is_full_tank", "full_tank"},
}

// NormalizeVehicles converts a wire list of vehicles together with their fuel logs.
func NormalizeVehicles(raw json.RawMessage) []domain.Vehicle {
	items := decodeList(raw)
	vehicles := make([]domain.Vehicle, 0, len(items))
	for _, item := range items {
		vehicles = append(vehicles, toDomainVehicle(item))
	}
	return vehicles
}

func toDomainVehicle(o rawObject) domain.Vehicle {
	s := vehicleSchema
	v := domain.Vehicle{
		ID:    o.int64(s.ID),
		Name:  o.str(s.Name),
		Plate: o.str(s.Plate),
		Make:  o.str(s.Make),
		Model: o.str(s.Model),
		Year:  o.int(s.Year),
	}
	v.FuelLogs = normalizeFuelLogs(o.list(s.Logs), v.ID)
	return v
}

// NormalizeFuelLogs converts a wire list of fuel logs owned by vehicleID.
func NormalizeFuelLogs(raw json.RawMessage, vehicleID int64) []domain.FuelLog {
	return normalizeFuelLogs(decodeList(raw), vehicleID)
}

func normalizeFuelLogs(items []rawObject, vehicleID int64) []domain.FuelLog {
	logs := make([]domain.FuelLog, 0, len(items))
	for _, o := range items {
		s := fuelLogSchema
		l := domain.FuelLog{
			ID:            o.int64(s.ID),
			VehicleID:     o.int64(s.VehicleID),
			Date:          o.time(s.Date),
			Odometer:      o.decimal(s.Odometer),
			Liters:        o.decimal(s.Liters),
			PricePerLiter: o.decimal(s.PricePerLiter),
			TotalCost:     o.decimal(s.TotalCost),
			IsFullTank:    o.bool(s.IsFullTank),
		}
		l.TankLevelBefore, _ = o.optDecimal(s.TankLevelBefore)
		l.TankLevelAfter, _ = o.optDecimal(s.TankLevelAfter)
		// nested logs may omit the back-reference
		if l.VehicleID == 0 {
			l.VehicleID = vehicleID
		}
		logs = append(logs, l)
	}
	return logs
}
