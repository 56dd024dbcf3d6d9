package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"monero-wallet-manager/internal/core/domain"
	"monero-wallet-manager/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecord() *domain.AddressRecord {
	label := "user-42-deposit"
	return &domain.AddressRecord{
		UserID:       42,
		Address:      "85kTp8aBsrLcwPraGZbRBmT2Lv6p3nU4aRnNY2dQmkNPVVzfmTAacbUWeJLqCgjvKximEerBTBAqMg2Vu8keGUjb2XTgihV",
		Label:        &label,
		AccountIndex: 0,
		AddressIndex: 7,
	}
}

func addressColumns() []string {
	return []string{"id", "user_id", "address", "label", "account_index", "address_index", "created_at"}
}

func addressRow(rec *domain.AddressRecord) *pgxmock.Rows {
	return pgxmock.NewRows(addressColumns()).AddRow(
		rec.ID, rec.UserID, rec.Address, rec.Label,
		rec.AccountIndex, rec.AddressIndex, rec.CreatedAt,
	)
}

func TestAddressRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAddressRepo(mock)
	rec := newTestRecord()
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery("INSERT INTO address_map").
		WithArgs(rec.UserID, rec.Address, rec.Label, rec.AccountIndex, rec.AddressIndex).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(3), now))

	err = repo.Create(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, int64(3), rec.ID)
	assert.Equal(t, now, rec.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressRepo_Create_DuplicateAddress(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAddressRepo(mock)
	rec := newTestRecord()

	mock.ExpectQuery("INSERT INTO address_map").
		WithArgs(rec.UserID, rec.Address, rec.Label, rec.AccountIndex, rec.AddressIndex).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_address_map_address"})

	err = repo.Create(context.Background(), rec)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "LEDGER_002", appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressRepo_List_All(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAddressRepo(mock)
	rec := newTestRecord()
	rec.ID = 1
	rec.CreatedAt = time.Now().UTC()

	mock.ExpectQuery("SELECT .+ FROM address_map ORDER BY id").
		WillReturnRows(addressRow(rec))

	records, err := repo.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, rec.Address, records[0].Address)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressRepo_List_ByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAddressRepo(mock)
	userID := int64(42)

	mock.ExpectQuery("SELECT .+ FROM address_map WHERE user_id").
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows(addressColumns()))

	records, err := repo.List(context.Background(), &userID)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NotNil(t, records, "empty result must be a non-nil slice")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressRepo_GetByLabel(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAddressRepo(mock)
	rec := newTestRecord()
	rec.ID = 9
	rec.CreatedAt = time.Now().UTC()

	mock.ExpectQuery("SELECT .+ FROM address_map WHERE label").
		WithArgs("user-42-deposit").
		WillReturnRows(addressRow(rec))

	got, err := repo.GetByLabel(context.Background(), "user-42-deposit")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(9), got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressRepo_GetByLabel_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAddressRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM address_map WHERE label").
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows(addressColumns()))

	got, err := repo.GetByLabel(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressRepo_GetByAddress(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAddressRepo(mock)
	rec := newTestRecord()
	rec.ID = 5
	rec.CreatedAt = time.Now().UTC()

	mock.ExpectQuery("SELECT .+ FROM address_map WHERE address").
		WithArgs(rec.Address).
		WillReturnRows(addressRow(rec))

	got, err := repo.GetByAddress(context.Background(), rec.Address)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(5), got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitSchema(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS address_map").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, InitSchema(context.Background(), mock))
	assert.NoError(t, mock.ExpectationsWereMet())
}
