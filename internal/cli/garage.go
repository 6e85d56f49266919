package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/SscSPs/lifedash/internal/dto"
	"github.com/SscSPs/lifedash/internal/utils"
	"github.com/google/subcommands"
)

type vehiclesCmd struct {
	app *App
}

func (*vehiclesCmd) Name() string             { return "vehicles" }
func (*vehiclesCmd) Synopsis() string         { return "list vehicles with fuel efficiency" }
func (*vehiclesCmd) Usage() string            { return "lifedash vehicles\n" }
func (*vehiclesCmd) SetFlags(_ *flag.FlagSet) {}

func (p *vehiclesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.app.requireSession() {
		return subcommands.ExitFailure
	}
	garage := p.app.Workspace.Garage
	if err := garage.FetchVehicles(ctx); err != nil {
		return p.app.fail(err)
	}
	vehicles := garage.Vehicles.Items()
	if len(vehicles) == 0 {
		emptyNote(p.app.out, "vehicles")
		return subcommands.ExitSuccess
	}
	rows := [][]string{{"ID", "NAME", "PLATE", "LOGS", "KM/L", "LAST ODOMETER"}}
	for _, v := range vehicles {
		efficiency := "-"
		if e := garage.FuelEfficiency(v.ID); e.IsPositive() {
			efficiency = e.StringFixed(2)
		}
		odometer := "-"
		if n := len(v.FuelLogs); n > 0 {
			odometer = v.FuelLogs[n-1].Odometer.String()
		}
		rows = append(rows, []string{fmt.Sprint(v.ID), v.Name, v.Plate, fmt.Sprint(len(v.FuelLogs)), efficiency, odometer})
	}
	writeTable(p.app.out, rows)
	return subcommands.ExitSuccess
}

type addVehicleCmd struct {
	app *App
	req dto.CreateVehicleRequest
}

func (*addVehicleCmd) Name() string     { return "add-vehicle" }
func (*addVehicleCmd) Synopsis() string { return "register a vehicle" }
func (*addVehicleCmd) Usage() string {
	return "lifedash add-vehicle -name <name> [-plate P] [-make M] [-model M] [-year Y]\n"
}

func (p *addVehicleCmd) SetFlags(f *flag.FlagSet) {
	p.req = dto.CreateVehicleRequest{}
	f.StringVar(&p.req.Name, "name", "", "Vehicle name.")
	f.StringVar(&p.req.Plate, "plate", "", "License plate.")
	f.StringVar(&p.req.Make, "make", "", "Manufacturer.")
	f.StringVar(&p.req.Model, "model", "", "Model.")
	f.IntVar(&p.req.Year, "year", 0, "Model year.")
}

func (p *addVehicleCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.app.requireSession() {
		return subcommands.ExitFailure
	}
	if err := p.app.Workspace.Garage.CreateVehicle(ctx, p.req); err != nil {
		return p.app.fail(err)
	}
	fmt.Fprintf(p.app.out, "Vehicle %q added\n", p.req.Name)
	return subcommands.ExitSuccess
}

// fuelCmd logs a refuel. With -account the purchase is also charged to that
// account as a Fuel expense.
type fuelCmd struct {
	app *App
	req dto.CreateFuelLogRequest
}

func (*fuelCmd) Name() string     { return "fuel" }
func (*fuelCmd) Synopsis() string { return "log a refuel" }
func (*fuelCmd) Usage() string {
	return `lifedash fuel -vehicle <id> -odometer <km> -liters <l> -price <per liter> [-full] [-account <id>]
`
}

func (p *fuelCmd) SetFlags(f *flag.FlagSet) {
	p.req = dto.CreateFuelLogRequest{}
	f.Int64Var(&p.req.VehicleID, "vehicle", 0, "Vehicle id.")
	f.Var(optionalInt64{&p.req.AccountID}, "account", "Charge the purchase to this account.")
	f.Var(dateValue{&p.req.Date}, "date", "Refuel date, today when omitted.")
	f.Var(decimalValue{&p.req.Odometer}, "odometer", "Odometer reading.")
	f.Var(decimalValue{&p.req.Liters}, "liters", "Liters filled.")
	f.Var(decimalValue{&p.req.PricePerLiter}, "price", "Price per liter.")
	f.Var(decimalValue{&p.req.TotalCost}, "total", "Total paid, liters times price when omitted.")
	f.BoolVar(&p.req.IsFullTank, "full", false, "The tank was filled up.")
}

func (p *fuelCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.app.requireSession() {
		return subcommands.ExitFailure
	}
	garage := p.app.Workspace.Garage
	if err := garage.AddFuelLog(ctx, p.req); err != nil {
		return p.app.fail(err)
	}
	fmt.Fprintf(p.app.out, "Logged %s L for %s\n", p.req.Liters, utils.FormatMoney(p.req.Cost(), utils.DefaultCurrency))
	if e := garage.FuelEfficiency(p.req.VehicleID); e.IsPositive() {
		fmt.Fprintf(p.app.out, "Efficiency: %s km/L\n", e.StringFixed(2))
	}
	return subcommands.ExitSuccess
}
