package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"bistro_boss/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testID = "6f1c2f4e-5a1b-4c7e-9d3a-2b8e4f6a7c10"

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestUserRepository_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(pgxmock.AnyArg(), "Ann", "ann@bistro.test", "", model.RoleDefault, "", now, model.Extra{}).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	user := &model.User{Name: "Ann", Email: "ann@bistro.test", Role: model.RoleDefault, CreatedAt: now}
	require.NoError(t, repo.Create(context.Background(), user))
	assert.NotEmpty(t, user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs("ann@bistro.test").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "photo", "role", "password_hash", "created_at", "extra"}).
			AddRow(testID, "Ann", "ann@bistro.test", "", model.RoleAdmin, "", created, model.Extra{"phone": "555-0100"}))

	user, err := repo.FindByEmail(context.Background(), "ann@bistro.test")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, testID, user.ID)
	assert.True(t, user.IsAdmin())
	assert.Equal(t, created, user.CreatedAt)
	assert.Equal(t, model.Extra{"phone": "555-0100"}, user.Extra)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs("ghost@bistro.test").
		WillReturnError(pgx.ErrNoRows)

	user, err := repo.FindByEmail(context.Background(), "ghost@bistro.test")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_SetRole(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET role = $2")).
		WithArgs(testID, model.RoleAdmin).
		WillReturnRows(pgxmock.NewRows([]string{"matched", "modified"}).AddRow(int64(1), int64(0)))

	res, err := repo.SetRole(context.Background(), testID, model.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, &model.UpdateResult{MatchedCount: 1, ModifiedCount: 0}, res)
	assert.NoError(t, mock.ExpectationsWereMet())

	_, err = repo.SetRole(context.Background(), "42", model.RoleAdmin)
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestMenuRepository_FindAll(t *testing.T) {
	mock := newMock(t)
	repo := NewMenuRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, category, price, recipe, image FROM menu")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "category", "price", "recipe", "image"}).
			AddRow(testID, "Caesar", "salad", 9.5, "lettuce", "caesar.jpg"))

	items, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, model.MenuItem{ID: testID, Name: "Caesar", Category: "salad", Price: 9.5, Recipe: "lettuce", Image: "caesar.jpg"}, items[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMenuRepository_Delete(t *testing.T) {
	mock := newMock(t)
	repo := NewMenuRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM menu WHERE id = $1")).
		WithArgs(testID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	res, err := repo.Delete(context.Background(), testID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.DeletedCount)
	assert.NoError(t, mock.ExpectationsWereMet())

	_, err = repo.Delete(context.Background(), "not-an-id")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestCartRepository_FindByEmail(t *testing.T) {
	mock := newMock(t)
	repo := NewCartRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM cart WHERE email = $1")).
		WithArgs("ann@bistro.test").
		WillReturnRows(pgxmock.NewRows([]string{"id", "item_id", "email", "name", "image", "price", "extra"}))

	items, err := repo.FindByEmail(context.Background(), "ann@bistro.test")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepository_CreateAndDelete(t *testing.T) {
	mock := newMock(t)
	repo := NewCartRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cart")).
		WithArgs(pgxmock.AnyArg(), "menu-1", "ann@bistro.test", "Soup", "", 4.0, model.Extra{}).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cart WHERE id = $1")).
		WithArgs(testID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	item := &model.CartItem{ItemID: "menu-1", Email: "ann@bistro.test", Name: "Soup", Price: 4}
	require.NoError(t, repo.Create(context.Background(), item))
	assert.NotEmpty(t, item.ID)

	res, err := repo.Delete(context.Background(), testID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.DeletedCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepository_KeepsExtraFields(t *testing.T) {
	mock := newMock(t)
	repo := NewCartRepository(mock)
	extra := model.Extra{"menuItemId": "m1", "category": "salad"}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cart")).
		WithArgs(pgxmock.AnyArg(), "", "ann@bistro.test", "Caesar", "", 0.0, extra).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery(regexp.QuoteMeta("FROM cart WHERE email = $1")).
		WithArgs("ann@bistro.test").
		WillReturnRows(pgxmock.NewRows([]string{"id", "item_id", "email", "name", "image", "price", "extra"}).
			AddRow(testID, "", "ann@bistro.test", "Caesar", "", 0.0, extra))

	require.NoError(t, repo.Create(context.Background(), &model.CartItem{Email: "ann@bistro.test", Name: "Caesar", Extra: extra}))

	items, err := repo.FindByEmail(context.Background(), "ann@bistro.test")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, extra, items[0].Extra)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_RecordCheckout_Commits(t *testing.T) {
	mock := newMock(t)
	repo := NewPaymentRepository(mock)
	cartIDs := []string{testID}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payments")).
		WithArgs(pgxmock.AnyArg(), "ann@bistro.test", 12.5, "pi_1", pgxmock.AnyArg(), cartIDs, []string{}, model.PaymentStatusPending).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cart WHERE id = ANY($1)")).
		WithArgs(cartIDs).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	p := &model.Payment{Email: "ann@bistro.test", Price: 12.5, TransactionID: "pi_1", Date: time.Now(), CartIDs: cartIDs, Status: model.PaymentStatusPending}
	res, err := repo.RecordCheckout(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, p.ID, res.PaymentResult.InsertedID)
	assert.Equal(t, int64(1), res.DeleteResult.DeletedCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_RecordCheckout_RollsBack(t *testing.T) {
	mock := newMock(t)
	repo := NewPaymentRepository(mock)
	cartIDs := []string{testID}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payments")).
		WithArgs(pgxmock.AnyArg(), "ann@bistro.test", 0.0, "", pgxmock.AnyArg(), cartIDs, []string{}, "").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cart WHERE id = ANY($1)")).
		WithArgs(cartIDs).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	res, err := repo.RecordCheckout(context.Background(), &model.Payment{Email: "ann@bistro.test", CartIDs: cartIDs})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to clear cart items")
	assert.Nil(t, res)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_RecordCheckout_InvalidCartID(t *testing.T) {
	mock := newMock(t)
	repo := NewPaymentRepository(mock)

	_, err := repo.RecordCheckout(context.Background(), &model.Payment{CartIDs: []string{testID, "bogus"}})
	assert.ErrorIs(t, err, ErrInvalidID)
	// Nothing reached the database
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEstimatedCount(t *testing.T) {
	mock := newMock(t)
	users := NewUserRepository(mock)
	payments := NewPaymentRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM pg_class")).
		WithArgs("users").
		WillReturnRows(pgxmock.NewRows([]string{"reltuples"}).AddRow(int64(42)))
	mock.ExpectQuery(regexp.QuoteMeta("FROM pg_class")).
		WithArgs("payments").
		WillReturnError(pgx.ErrNoRows)

	n, err := users.EstimatedCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	n, err = payments.EstimatedCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
