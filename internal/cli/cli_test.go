package cli

import (
	"bytes"
	"context"
	"flag"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	dbmemory "github.com/SscSPs/lifedash/internal/adapters/database/memory"
	kvmemory "github.com/SscSPs/lifedash/internal/adapters/storage/memory"
	"github.com/SscSPs/lifedash/internal/core/services"
	"github.com/SscSPs/lifedash/internal/handlers"
	"github.com/SscSPs/lifedash/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/google/subcommands"
	"github.com/stretchr/testify/suite"
)

// CLITestSuite runs commands against the reference backend. Every run builds a
// fresh App over the same state store, like separate invocations of the binary.
type CLITestSuite struct {
	suite.Suite
	server *httptest.Server
	store  *kvmemory.KVStore
	cfg    *config.ClientConfig
}

type result struct {
	status subcommands.ExitStatus
	out    string
	errOut string
}

func (suite *CLITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		JWTSecret:         "cli-test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "lifedash-test",
		RateLimit:         "1000-M",
	}
	router := gin.New()
	suite.Require().NoError(handlers.RegisterRoutes(router, cfg, services.NewServiceContainer(cfg, dbmemory.NewRepositoryProvider())))
	suite.server = httptest.NewServer(router)
	suite.store = kvmemory.NewKVStore()
	suite.cfg = &config.ClientConfig{APIBaseURL: suite.server.URL + "/api"}
}

func (suite *CLITestSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *CLITestSuite) run(args ...string) result {
	ctx := context.Background()
	var out, errOut bytes.Buffer
	app, err := newApp(ctx, suite.store, suite.cfg, &out, &errOut)
	suite.Require().NoError(err)

	fs := flag.NewFlagSet("lifedash", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cdr := subcommands.NewCommander(fs, "lifedash")
	cdr.Output = io.Discard
	cdr.Error = io.Discard
	Register(cdr, app)
	suite.Require().NoError(fs.Parse(args))

	status := cdr.Execute(ctx)
	return result{status: status, out: out.String(), errOut: errOut.String()}
}

func (suite *CLITestSuite) signUp() {
	res := suite.run("register", "-email", "ana@example.com", "-password", "secret1", "-name", "Ana")
	suite.Require().Equal(subcommands.ExitSuccess, res.status, res.errOut)
}

func (suite *CLITestSuite) TestCommandsRequireSession() {
	res := suite.run("accounts")
	suite.Equal(subcommands.ExitFailure, res.status)
	suite.Contains(res.errOut, "Not signed in")
}

func (suite *CLITestSuite) TestSessionSurvivesInvocations() {
	suite.signUp()

	res := suite.run("whoami")
	suite.Equal(subcommands.ExitSuccess, res.status)
	suite.Contains(res.out, "Ana <ana@example.com>")

	suite.Equal(subcommands.ExitSuccess, suite.run("logout").status)
	suite.Equal(subcommands.ExitFailure, suite.run("whoami").status)
}

func (suite *CLITestSuite) TestLoginFailureShowsServerMessage() {
	suite.signUp()
	suite.run("logout")

	res := suite.run("login", "-email", "ana@example.com", "-password", "wrong-pass")
	suite.Equal(subcommands.ExitFailure, res.status)
	suite.Contains(res.errOut, "Invalid email or password")

	res = suite.run("login", "-email", "ana@example.com", "-password", "secret1")
	suite.Equal(subcommands.ExitSuccess, res.status)
	suite.Contains(res.out, "Signed in as Ana")
}

func (suite *CLITestSuite) TestTransactionUpdatesBalanceAndSummary() {
	suite.signUp()

	res := suite.run("add-account", "-name", "Nómina", "-type", "card", "-subtype", "payroll", "-balance", "500")
	suite.Require().Equal(subcommands.ExitSuccess, res.status, res.errOut)

	res = suite.run("add-tx", "-account", "1", "-type", "income", "-amount", "1000", "-category", "Salario")
	suite.Require().Equal(subcommands.ExitSuccess, res.status, res.errOut)
	suite.Contains(res.out, "Nómina balance:")
	suite.Contains(res.out, "1,500.00")

	res = suite.run("add-tx", "-account", "1", "-amount", "200", "-category", "Comida", "-desc", "super")
	suite.Require().Equal(subcommands.ExitSuccess, res.status, res.errOut)
	suite.Contains(res.out, "1,300.00")

	res = suite.run("transactions")
	suite.Equal(subcommands.ExitSuccess, res.status)
	suite.Contains(res.out, "super")
	suite.Contains(res.out, "Nómina")

	res = suite.run("summary")
	suite.Require().Equal(subcommands.ExitSuccess, res.status, res.errOut)
	suite.Contains(res.out, "Net budget")
	suite.Contains(res.out, "800.00")
	suite.Contains(res.out, "Comida")
}

func (suite *CLITestSuite) TestValidationErrorIsReported() {
	suite.signUp()

	res := suite.run("add-tx", "-account", "1", "-amount", "-5", "-category", "Comida")
	suite.Equal(subcommands.ExitFailure, res.status)
	suite.Contains(res.errOut, "Error:")
}

func (suite *CLITestSuite) TestBadFlagValueIsUsageError() {
	suite.signUp()

	res := suite.run("add-account", "-name", "X", "-type", "boat")
	suite.Equal(subcommands.ExitUsageError, res.status)
}

func (suite *CLITestSuite) TestFuelLogsReportEfficiency() {
	suite.signUp()
	suite.Require().Equal(subcommands.ExitSuccess, suite.run("add-vehicle", "-name", "Versa").status)

	res := suite.run("fuel", "-vehicle", "1", "-odometer", "1000", "-liters", "40", "-price", "24.5", "-full")
	suite.Require().Equal(subcommands.ExitSuccess, res.status, res.errOut)
	suite.Contains(res.out, "980.00")

	res = suite.run("fuel", "-vehicle", "1", "-odometer", "1500", "-liters", "40", "-price", "24.5", "-full")
	suite.Require().Equal(subcommands.ExitSuccess, res.status, res.errOut)
	suite.Contains(res.out, "Efficiency: 12.50 km/L")

	res = suite.run("vehicles")
	suite.Contains(res.out, "Versa")
	suite.Contains(res.out, "12.50")
}

func (suite *CLITestSuite) TestTaskLifecycle() {
	suite.signUp()
	suite.Require().Equal(subcommands.ExitSuccess, suite.run("add-task", "-title", "Pagar luz").status)

	res := suite.run("tasks")
	suite.Contains(res.out, "Pagar luz")
	suite.Contains(res.out, "pending")

	res = suite.run("task-status", "1", "completed")
	suite.Require().Equal(subcommands.ExitSuccess, res.status, res.errOut)

	suite.Contains(suite.run("tasks").out, "No tasks yet.")
	suite.Contains(suite.run("tasks", "-all").out, "Pagar luz")

	suite.Equal(subcommands.ExitUsageError, suite.run("task-status", "1", "someday").status)
}

func (suite *CLITestSuite) TestRejectedTokenSignsOut() {
	res := suite.run("auth-callback", "not-a-real-token")
	suite.Require().Equal(subcommands.ExitSuccess, res.status, res.errOut)

	res = suite.run("accounts")
	suite.Equal(subcommands.ExitFailure, res.status)
	suite.Contains(res.errOut, "lifedash login")

	suite.Equal(subcommands.ExitFailure, suite.run("whoami").status)
}

func (suite *CLITestSuite) TestCategorySuggestions() {
	res := suite.run("categories", "-suggest", "Comdia")
	suite.Equal(subcommands.ExitSuccess, res.status)
	suite.Regexp(`^Comida\n`, res.out)
}

func TestCLITestSuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}
