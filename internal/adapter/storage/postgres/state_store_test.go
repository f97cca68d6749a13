package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateStore_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewStateStore(mock)

	mock.ExpectQuery("SELECT value FROM ledger_state WHERE key").
		WithArgs("demo_balance").
		WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow("40"))

	value, ok, err := store.Get(context.Background(), "demo_balance")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "40", value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStateStore_Get_Missing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewStateStore(mock)

	mock.ExpectQuery("SELECT value FROM ledger_state WHERE key").
		WithArgs("demo_hasNFT").
		WillReturnError(pgx.ErrNoRows)

	value, ok, err := store.Get(context.Background(), "demo_hasNFT")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStateStore_Get_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewStateStore(mock)

	mock.ExpectQuery("SELECT value FROM ledger_state WHERE key").
		WithArgs("demoMode").
		WillReturnError(errors.New("connection reset"))

	_, _, err = store.Get(context.Background(), "demoMode")
	assert.ErrorContains(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStateStore_Set(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewStateStore(mock)

	mock.ExpectExec("INSERT INTO ledger_state").
		WithArgs("walletConnected", "true").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = store.Set(context.Background(), "walletConnected", "true")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStateStore_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewStateStore(mock)

	mock.ExpectExec("DELETE FROM ledger_state WHERE key").
		WithArgs("walletConnected").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err = store.Delete(context.Background(), "walletConnected")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS ledger_state").
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))

	assert.NoError(t, EnsureSchema(context.Background(), mock))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStateStore_Ping(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("SELECT 1 FROM ledger_state").WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectExec("SELECT 1 FROM ledger_state").WillReturnError(errors.New("relation \"ledger_state\" does not exist"))

	store := NewStateStore(mock)
	assert.NoError(t, store.Ping(context.Background()))
	assert.Error(t, store.Ping(context.Background()))
	assert.Equal(t, "postgresql", store.Name())
	assert.NoError(t, mock.ExpectationsWereMet())
}
