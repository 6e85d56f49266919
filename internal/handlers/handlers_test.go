package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/lifedash/internal/adapters/database/memory"
	"github.com/SscSPs/lifedash/internal/core/services"
	"github.com/SscSPs/lifedash/internal/dto"
	"github.com/SscSPs/lifedash/internal/handlers"
	"github.com/SscSPs/lifedash/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

type HandlersTestSuite struct {
	suite.Suite
	router *gin.Engine
	cfg    *config.Config
	token  string
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "lifedash-test",
		RateLimit:         "1000-M",
		CORSOrigins:       []string{"http://localhost:5173"},
		FrontendBaseURL:   "http://localhost:5173",
	}
	container := services.NewServiceContainer(suite.cfg, memory.NewRepositoryProvider())

	suite.router = gin.New()
	suite.Require().NoError(handlers.RegisterRoutes(suite.router, suite.cfg, container))

	w, env := suite.do(http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email: "ana@example.com", Password: "secret1", Name: "Ana",
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var auth dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &auth))
	suite.Require().NotEmpty(auth.Token)
	suite.token = auth.Token
}

func (suite *HandlersTestSuite) do(method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

func (suite *HandlersTestSuite) createAccount(name string, balance int64) dto.AccountResponse {
	w, env := suite.do(http.MethodPost, "/api/finance/accounts", suite.token, dto.AccountRequest{
		Name: name, Type: "cash", Currency: "MXN", Balance: decimal.NewFromInt(balance),
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var acc dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &acc))
	return acc
}

func (suite *HandlersTestSuite) listAccounts() []dto.AccountResponse {
	w, env := suite.do(http.MethodGet, "/api/finance/accounts", suite.token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var accounts []dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &accounts))
	return accounts
}

func (suite *HandlersTestSuite) TestHealth() {
	w, _ := suite.do(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlersTestSuite) TestLogin() {
	w, env := suite.do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "ana@example.com", Password: "secret1"})
	suite.Equal(http.StatusOK, w.Code)
	suite.True(env.Success)

	var auth dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &auth))
	suite.Equal("ana@example.com", auth.User.Email)
	suite.Equal("Ana", auth.User.Name)

	w, env = suite.do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "ana@example.com", Password: "wrong"})
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.False(env.Success)
	suite.Equal("Invalid email or password", env.Message)
}

func (suite *HandlersTestSuite) TestRegister_DuplicateEmail() {
	w, env := suite.do(http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email: "ANA@example.com", Password: "secret2",
	})
	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("Email is already registered", env.Message)
}

func (suite *HandlersTestSuite) TestProtectedRoutesRequireToken() {
	w, env := suite.do(http.MethodGet, "/api/finance/accounts", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.False(env.Success)
	suite.NotEmpty(env.Message)
}

func (suite *HandlersTestSuite) TestTransactionMovesBalance() {
	acc := suite.createAccount("Cartera", 100)

	w, env := suite.do(http.MethodPost, "/api/finance/transactions", suite.token, dto.CreateTransactionRequest{
		AccountID: acc.ID, Type: "income", Amount: decimal.NewFromInt(50), Category: "Salario",
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var tx dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &tx))
	suite.Require().NotNil(tx.Account)
	suite.Equal("Cartera", tx.Account.Name)

	w, _ = suite.do(http.MethodPost, "/api/finance/transactions", suite.token, dto.CreateTransactionRequest{
		AccountID: acc.ID, Type: "expense", Amount: decimal.NewFromInt(30), Category: "Comida",
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	accounts := suite.listAccounts()
	suite.Require().Len(accounts, 1)
	suite.True(decimal.NewFromInt(120).Equal(accounts[0].Balance), accounts[0].Balance.String())

	w, env = suite.do(http.MethodGet, "/api/finance/transactions", suite.token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var txs []dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &txs))
	suite.Len(txs, 2)
}

func (suite *HandlersTestSuite) TestTransactionValidation() {
	acc := suite.createAccount("Cartera", 0)

	w, env := suite.do(http.MethodPost, "/api/finance/transactions", suite.token, dto.CreateTransactionRequest{
		AccountID: acc.ID, Type: "expense", Amount: decimal.NewFromInt(-5), Category: "Comida",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(env.Message, "amount must be positive")

	w, _ = suite.do(http.MethodPost, "/api/finance/transactions", suite.token, dto.CreateTransactionRequest{
		AccountID: acc.ID + 99, Type: "expense", Amount: decimal.NewFromInt(5), Category: "Comida",
	})
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestUpdateAccountKeepsBalance() {
	acc := suite.createAccount("Cartera", 100)

	w, env := suite.do(http.MethodPut, fmt.Sprintf("/api/finance/accounts/%d", acc.ID), suite.token, dto.AccountRequest{
		Name: "Efectivo", Type: "cash", Currency: "MXN", Balance: decimal.NewFromInt(999),
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var updated dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &updated))
	suite.Equal("Efectivo", updated.Name)
	suite.True(decimal.NewFromInt(100).Equal(updated.Balance))
}

func (suite *HandlersTestSuite) TestDeleteAccountCascades() {
	acc := suite.createAccount("Cartera", 0)
	w, _ := suite.do(http.MethodPost, "/api/finance/transactions", suite.token, dto.CreateTransactionRequest{
		AccountID: acc.ID, Type: "income", Amount: decimal.NewFromInt(10), Category: "Salario",
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	w, _ = suite.do(http.MethodDelete, fmt.Sprintf("/api/finance/accounts/%d", acc.ID), suite.token, nil)
	suite.Equal(http.StatusOK, w.Code)

	suite.Empty(suite.listAccounts())
	_, env := suite.do(http.MethodGet, "/api/finance/transactions", suite.token, nil)
	var txs []dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &txs))
	suite.Empty(txs)

	w, _ = suite.do(http.MethodDelete, fmt.Sprintf("/api/finance/accounts/%d", acc.ID), suite.token, nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestFuelLogPostsExpense() {
	acc := suite.createAccount("Tarjeta", 1000)

	w, env := suite.do(http.MethodPost, "/api/vehicles", suite.token, dto.CreateVehicleRequest{Name: "Versa"})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var v dto.VehicleResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &v))

	w, _ = suite.do(http.MethodPost, "/api/vehicles/logs", suite.token, dto.CreateFuelLogRequest{
		VehicleID:     v.ID,
		AccountID:     &acc.ID,
		Odometer:      decimal.NewFromInt(12000),
		Liters:        decimal.NewFromInt(40),
		PricePerLiter: decimal.NewFromFloat(24.5),
		IsFullTank:    true,
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	accounts := suite.listAccounts()
	suite.Require().Len(accounts, 1)
	suite.True(decimal.NewFromInt(20).Equal(accounts[0].Balance), accounts[0].Balance.String())

	_, env = suite.do(http.MethodGet, "/api/finance/transactions", suite.token, nil)
	var txs []dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &txs))
	suite.Require().Len(txs, 1)
	suite.Equal(services.FuelCategory, txs[0].Category)
	suite.EqualValues("expense", txs[0].Type)

	_, env = suite.do(http.MethodGet, "/api/vehicles", suite.token, nil)
	var vehicles []dto.VehicleResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &vehicles))
	suite.Require().Len(vehicles, 1)
	suite.Len(vehicles[0].Logs, 1)
}

func (suite *HandlersTestSuite) TestTasks() {
	w, env := suite.do(http.MethodPost, "/api/tasks", suite.token, dto.TaskRequest{Title: "Declaración anual", DurationMinutes: 90})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	suite.Require().NoError(json.Unmarshal(env.Data, &created))
	suite.Equal("pending", created.Status)

	w, _ = suite.do(http.MethodPut, fmt.Sprintf("/api/tasks/%d", created.ID), suite.token, dto.TaskRequest{Title: "Declaración anual", Status: "completed"})
	suite.Equal(http.StatusOK, w.Code)

	w, _ = suite.do(http.MethodDelete, "/api/tasks/abc", suite.token, nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w, _ = suite.do(http.MethodDelete, fmt.Sprintf("/api/tasks/%d", created.ID), suite.token, nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlersTestSuite) TestGoogleLoginDisabled() {
	w, env := suite.do(http.MethodGet, "/api/auth/google/login", "", nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Google login is not configured", env.Message)
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
