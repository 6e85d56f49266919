package services_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	dbmemory "github.com/SscSPs/lifedash/internal/adapters/database/memory"
	"github.com/SscSPs/lifedash/internal/adapters/gateway/rest"
	kvmemory "github.com/SscSPs/lifedash/internal/adapters/storage/memory"
	"github.com/SscSPs/lifedash/internal/apperrors"
	"github.com/SscSPs/lifedash/internal/core/domain"
	"github.com/SscSPs/lifedash/internal/core/services"
	"github.com/SscSPs/lifedash/internal/dto"
	"github.com/SscSPs/lifedash/internal/handlers"
	"github.com/SscSPs/lifedash/internal/middleware"
	"github.com/SscSPs/lifedash/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// WorkspaceTestSuite runs the client stores against the reference backend.
type WorkspaceTestSuite struct {
	suite.Suite
	server    *httptest.Server
	navigator *middleware.MemoryNavigator
	ws        *services.Workspace
	ctx       context.Context
}

func (suite *WorkspaceTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		JWTSecret:         "workspace-test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "lifedash-test",
		RateLimit:         "1000-M",
		FrontendBaseURL:   "http://localhost:5173",
	}
	router := gin.New()
	suite.Require().NoError(handlers.RegisterRoutes(router, cfg, services.NewServiceContainer(cfg, dbmemory.NewRepositoryProvider())))
	suite.server = httptest.NewServer(router)

	session := services.NewSession(kvmemory.NewKVStore())
	suite.navigator = middleware.NewMemoryNavigator("/wallet", nil, session.IsAuthenticated)
	gw := rest.NewGateway(suite.server.URL+"/api", session, rest.WithNavigator(suite.navigator))
	suite.ws = services.NewWorkspace(gw, session)
	suite.ctx = context.Background()

	suite.Require().NoError(suite.ws.Auth.Register(suite.ctx, "ana@example.com", "secret1", "Ana"))
	suite.Require().True(suite.ws.Session.IsAuthenticated())
}

func (suite *WorkspaceTestSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *WorkspaceTestSuite) firstAccountID() int64 {
	accounts := suite.ws.Finance.Accounts.Items()
	suite.Require().NotEmpty(accounts)
	return accounts[0].ID
}

func (suite *WorkspaceTestSuite) TestInitializePopulatesEverything() {
	suite.Require().NoError(suite.ws.Initialize(suite.ctx))

	suite.Equal(services.StatePopulated, suite.ws.Finance.Accounts.State())
	suite.Equal(services.StatePopulated, suite.ws.Finance.Transactions.State())
	suite.Equal(services.StatePopulated, suite.ws.Finance.Subscriptions.State())
	suite.Equal(services.StatePopulated, suite.ws.Garage.Vehicles.State())
	suite.Equal(services.StatePopulated, suite.ws.Tasks.Tasks.State())
	suite.Zero(suite.ws.Finance.Accounts.Len())
}

func (suite *WorkspaceTestSuite) TestAddTransactionMovesTotalsBySignedAmount() {
	suite.Require().NoError(suite.ws.Finance.CreateAccount(suite.ctx, dto.AccountRequest{
		Name: "Nómina", Type: domain.Card, SubType: domain.Payroll, Currency: "MXN", Balance: decimal.NewFromInt(500),
	}))
	accountID := suite.firstAccountID()

	cases := []dto.CreateTransactionRequest{
		{AccountID: accountID, Type: domain.Income, Amount: decimal.NewFromInt(1000), Category: "Salario"},
		{AccountID: accountID, Type: domain.Expense, Amount: decimal.NewFromFloat(120.5), Category: "Comida"},
		{AccountID: accountID, Type: domain.Transfer, Amount: decimal.NewFromInt(50), Category: "Otros"},
	}
	for _, req := range cases {
		before := suite.ws.Finance.TotalIncome().Sub(suite.ws.Finance.TotalExpense())
		suite.Require().NoError(suite.ws.Finance.AddTransaction(suite.ctx, req))
		after := suite.ws.Finance.TotalIncome().Sub(suite.ws.Finance.TotalExpense())

		want := domain.Transaction{Type: req.Type, Amount: req.Amount}.SignedAmount()
		suite.True(want.Equal(after.Sub(before)), "type %s: want delta %s, got %s", req.Type, want, after.Sub(before))
	}

	// 500 + 1000 - 120.5 - 50
	suite.True(decimal.NewFromFloat(1329.5).Equal(suite.ws.Finance.TotalBalance()), suite.ws.Finance.TotalBalance().String())
	txs := suite.ws.Finance.Transactions.Items()
	suite.Require().Len(txs, 3)
	suite.Equal("Nómina", txs[0].AccountName)
}

func (suite *WorkspaceTestSuite) TestFuelLogRefreshesFinance() {
	suite.Require().NoError(suite.ws.Finance.CreateAccount(suite.ctx, dto.AccountRequest{
		Name: "Crédito", Type: domain.Card, SubType: domain.Credit, Currency: "MXN",
	}))
	accountID := suite.firstAccountID()
	suite.Require().NoError(suite.ws.Garage.CreateVehicle(suite.ctx, dto.CreateVehicleRequest{Name: "Versa"}))
	vehicleID := suite.ws.Garage.Vehicles.Items()[0].ID

	logs := []dto.CreateFuelLogRequest{
		{VehicleID: vehicleID, AccountID: &accountID, Odometer: decimal.NewFromInt(1000), Liters: decimal.NewFromInt(40), TotalCost: decimal.NewFromInt(900), IsFullTank: true, Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{VehicleID: vehicleID, Odometer: decimal.NewFromInt(1500), Liters: decimal.NewFromInt(40), TotalCost: decimal.NewFromInt(900), IsFullTank: true, Date: time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, l := range logs {
		suite.Require().NoError(suite.ws.Garage.AddFuelLog(suite.ctx, l))
	}

	suite.True(decimal.NewFromFloat(12.5).Equal(suite.ws.Garage.FuelEfficiency(vehicleID)))
	suite.True(decimal.NewFromInt(-900).Equal(suite.ws.Finance.TotalBalance()), suite.ws.Finance.TotalBalance().String())
	suite.True(decimal.NewFromInt(900).Equal(suite.ws.Finance.TotalExpense()))
	suite.True(suite.ws.Finance.Categories.Contains(services.FuelCategory))
}

func (suite *WorkspaceTestSuite) TestServerValidationIsRecorded() {
	suite.Require().NoError(suite.ws.Finance.FetchTransactions(suite.ctx))
	err := suite.ws.Finance.AddTransaction(suite.ctx, dto.CreateTransactionRequest{
		AccountID: 999, Type: domain.Expense, Amount: decimal.NewFromInt(10), Category: "Comida",
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.NotEmpty(suite.ws.Finance.Transactions.Err())
	suite.Zero(suite.ws.Finance.Transactions.Len())
	suite.True(suite.ws.Session.IsAuthenticated())
}

func (suite *WorkspaceTestSuite) TestRejectedCredentialSignsOut() {
	user, _ := suite.ws.Session.User()
	suite.Require().NoError(suite.ws.Session.SetSession(suite.ctx, "not-a-valid-token", user))

	err := suite.ws.Finance.FetchAccounts(suite.ctx)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.False(suite.ws.Session.IsAuthenticated())
	_, ok := suite.ws.Session.User()
	suite.False(ok)
	suite.Equal(middleware.LoginPath, suite.navigator.CurrentPath())
}

func (suite *WorkspaceTestSuite) TestLoginFailureKeepsUserOnLoginPage() {
	suite.Require().NoError(suite.ws.Auth.Logout(suite.ctx))
	suite.navigator.Redirect(middleware.LoginPath)

	err := suite.ws.Auth.Login(suite.ctx, "ana@example.com", "wrong-password")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Equal("Invalid email or password", suite.ws.Auth.Err())
	suite.Equal(middleware.LoginPath, suite.navigator.CurrentPath())

	suite.Require().NoError(suite.ws.Auth.Login(suite.ctx, "ana@example.com", "secret1"))
	user, ok := suite.ws.Session.User()
	suite.Require().True(ok)
	suite.Equal("Ana", user.Name)
}

func TestWorkspace(t *testing.T) {
	suite.Run(t, new(WorkspaceTestSuite))
}
