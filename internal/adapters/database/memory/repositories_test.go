package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/lifedash/internal/adapters/database/memory"
	"github.com/SscSPs/lifedash/internal/apperrors"
	"github.com/SscSPs/lifedash/internal/core/domain"
	"github.com/SscSPs/lifedash/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()

	require.NoError(t, repo.SaveUser(ctx, models.User{UserID: "u1", Email: "Ana@Example.com", AuthProvider: models.ProviderLocal}))
	assert.ErrorIs(t, repo.SaveUser(ctx, models.User{UserID: "u2", Email: "ana@example.com"}), apperrors.ErrDuplicate)

	found, err := repo.FindUserByEmail(ctx, "ANA@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", found.UserID)

	// saving the same user again is an update
	found.ProviderUserID = "google-123"
	found.AuthProvider = models.ProviderGoogle
	require.NoError(t, repo.SaveUser(ctx, *found))
	byProvider, err := repo.FindUserByProviderDetails(ctx, "google", "google-123")
	require.NoError(t, err)
	assert.Equal(t, "u1", byProvider.UserID)

	_, err = repo.FindUserByID(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAccountRepository_ScopedToOwner(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()

	acc, err := repo.SaveAccount(ctx, "u1", domain.Account{Name: "Cartera", Balance: decimal.NewFromInt(10)})
	require.NoError(t, err)
	assert.NotZero(t, acc.ID)

	_, err = repo.FindAccountByID(ctx, "u2", acc.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteAccount(ctx, "u2", acc.ID), apperrors.ErrNotFound)

	require.NoError(t, repo.AdjustBalance(ctx, "u1", acc.ID, decimal.NewFromInt(-25)))
	require.NoError(t, repo.UpdateAccount(ctx, "u1", domain.Account{ID: acc.ID, Name: "Efectivo", Balance: decimal.NewFromInt(9999)}))

	got, err := repo.FindAccountByID(ctx, "u1", acc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Efectivo", got.Name)
	assert.True(t, decimal.NewFromInt(-15).Equal(got.Balance), got.Balance.String())
}

func TestTransactionRepository_NewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTransactionRepository()
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	_, err := repo.SaveTransaction(ctx, "u1", domain.Transaction{AccountID: 1, Date: day})
	require.NoError(t, err)
	_, err = repo.SaveTransaction(ctx, "u1", domain.Transaction{AccountID: 2, Date: day.AddDate(0, 0, 1)})
	require.NoError(t, err)
	third, err := repo.SaveTransaction(ctx, "u1", domain.Transaction{AccountID: 1, Date: day})
	require.NoError(t, err)

	txs, err := repo.ListTransactions(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, txs, 3)
	assert.Equal(t, int64(2), txs[0].AccountID)
	assert.Equal(t, third.ID, txs[1].ID)

	require.NoError(t, repo.DeleteTransactionsByAccount(ctx, "u1", 1))
	txs, err = repo.ListTransactions(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, int64(2), txs[0].AccountID)
}

func TestVehicleRepository_LogsOrderedByDate(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewVehicleRepository()

	v, err := repo.SaveVehicle(ctx, "u1", domain.Vehicle{Name: "Versa"})
	require.NoError(t, err)
	assert.NotNil(t, v.FuelLogs)

	late := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err = repo.SaveFuelLog(ctx, "u1", domain.FuelLog{VehicleID: v.ID, Date: late})
	require.NoError(t, err)
	_, err = repo.SaveFuelLog(ctx, "u1", domain.FuelLog{VehicleID: v.ID, Date: late.AddDate(0, -1, 0)})
	require.NoError(t, err)

	_, err = repo.SaveFuelLog(ctx, "u2", domain.FuelLog{VehicleID: v.ID})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	got, err := repo.FindVehicleByID(ctx, "u1", v.ID)
	require.NoError(t, err)
	require.Len(t, got.FuelLogs, 2)
	assert.True(t, got.FuelLogs[0].Date.Before(got.FuelLogs[1].Date))
}

func TestTaskRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTaskRepository()

	task, err := repo.SaveTask(ctx, "u1", domain.Task{Title: "Taxes", Status: domain.Pending})
	require.NoError(t, err)

	task.Status = domain.Completed
	require.NoError(t, repo.UpdateTask(ctx, "u1", task))
	tasks, err := repo.ListTasks(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, domain.Completed, tasks[0].Status)

	assert.ErrorIs(t, repo.UpdateTask(ctx, "u2", task), apperrors.ErrNotFound)
	require.NoError(t, repo.DeleteTask(ctx, "u1", task.ID))
	assert.ErrorIs(t, repo.DeleteTask(ctx, "u1", task.ID), apperrors.ErrNotFound)
}
