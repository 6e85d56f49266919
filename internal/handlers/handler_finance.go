package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/lifedash/internal/core/ports/services"
	"github.com/SscSPs/lifedash/internal/dto"
	"github.com/SscSPs/lifedash/internal/middleware"
	"github.com/gin-gonic/gin"
)

// financeHandler serves accounts, transactions and subscriptions.
type financeHandler struct {
	financeService portssvc.FinanceSvcFacade
}

func newFinanceHandler(fs portssvc.FinanceSvcFacade) *financeHandler {
	return &financeHandler{financeService: fs}
}

// registerFinanceRoutes registers the /finance routes.
func registerFinanceRoutes(rg *gin.RouterGroup, financeService portssvc.FinanceSvcFacade) {
	h := newFinanceHandler(financeService)

	finance := rg.Group("/finance")
	{
		finance.GET("/accounts", h.listAccounts)
		finance.POST("/accounts", h.createAccount)
		finance.PUT("/accounts/:id", h.updateAccount)
		finance.DELETE("/accounts/:id", h.deleteAccount)

		finance.GET("/transactions", h.listTransactions)
		finance.POST("/transactions", h.createTransaction)

		finance.GET("/subscriptions", h.listSubscriptions)
		finance.POST("/subscriptions", h.createSubscription)
		finance.PUT("/subscriptions/:id", h.updateSubscription)
		finance.DELETE("/subscriptions/:id", h.deleteSubscription)
	}
}

func (h *financeHandler) listAccounts(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	accounts, err := h.financeService.ListAccounts(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list accounts")
		return
	}
	respondData(c, http.StatusOK, dto.ToListAccountResponse(accounts))
}

func (h *financeHandler) createAccount(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.AccountRequest
	if !bindJSON(c, &req) {
		return
	}
	account, err := h.financeService.CreateAccount(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create account")
		return
	}
	respondData(c, http.StatusCreated, dto.ToAccountResponse(account))
}

func (h *financeHandler) updateAccount(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.AccountRequest
	if !bindJSON(c, &req) {
		return
	}
	account, err := h.financeService.UpdateAccount(c.Request.Context(), userID, id, req)
	if err != nil {
		respondServiceError(c, err, "Failed to update account")
		return
	}
	respondData(c, http.StatusOK, dto.ToAccountResponse(account))
}

func (h *financeHandler) deleteAccount(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.financeService.DeleteAccount(c.Request.Context(), userID, id); err != nil {
		respondServiceError(c, err, "Failed to delete account")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Account deleted", slog.Int64("account_id", id))
	respondData(c, http.StatusOK, nil)
}

func (h *financeHandler) listTransactions(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	txs, err := h.financeService.ListTransactions(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list transactions")
		return
	}
	res := make([]dto.TransactionResponse, len(txs))
	for i := range txs {
		res[i] = dto.ToTransactionResponse(&txs[i], txs[i].AccountName)
	}
	respondData(c, http.StatusOK, res)
}

func (h *financeHandler) createTransaction(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.CreateTransactionRequest
	if !bindJSON(c, &req) {
		return
	}
	tx, err := h.financeService.CreateTransaction(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create transaction")
		return
	}
	respondData(c, http.StatusCreated, dto.ToTransactionResponse(tx, tx.AccountName))
}

func (h *financeHandler) listSubscriptions(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	subs, err := h.financeService.ListSubscriptions(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list subscriptions")
		return
	}
	res := make([]dto.SubscriptionResponse, len(subs))
	for i := range subs {
		res[i] = dto.ToSubscriptionResponse(&subs[i])
	}
	respondData(c, http.StatusOK, res)
}

func (h *financeHandler) createSubscription(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.SubscriptionRequest
	if !bindJSON(c, &req) {
		return
	}
	sub, err := h.financeService.CreateSubscription(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create subscription")
		return
	}
	respondData(c, http.StatusCreated, dto.ToSubscriptionResponse(sub))
}

func (h *financeHandler) updateSubscription(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.SubscriptionRequest
	if !bindJSON(c, &req) {
		return
	}
	sub, err := h.financeService.UpdateSubscription(c.Request.Context(), userID, id, req)
	if err != nil {
		respondServiceError(c, err, "Failed to update subscription")
		return
	}
	respondData(c, http.StatusOK, dto.ToSubscriptionResponse(sub))
}

func (h *financeHandler) deleteSubscription(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.financeService.DeleteSubscription(c.Request.Context(), userID, id); err != nil {
		respondServiceError(c, err, "Failed to delete subscription")
		return
	}
	respondData(c, http.StatusOK, nil)
}
