package pg

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ibeloyar/loangateway/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderColumns = []string{
	"id", "status", "total", "shipping_total", "shipping_method",
	"discount_total", "total_refunded", "payment_method", "created_at",
}

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &Repository{db: db, classifier: NewPostgresErrorClassifier()}, mock
}

func noRetryDelay(t *testing.T) {
	t.Helper()

	saved := retryDelays
	retryDelays = []time.Duration{0, 0}
	t.Cleanup(func() { retryDelays = saved })
}

func expectLoadOrder(mock sqlmock.Sqlmock, id int64, createdAt time.Time) {
	mock.ExpectQuery("SELECT id, status, total, .* FROM orders WHERE id = \\$1").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(orderColumns).
			AddRow(id, "processing", "120.00", "20.00", "Courier", "0.00", "0.00", model.GatewayID, createdAt))

	mock.ExpectQuery("SELECT name, quantity, subtotal FROM order_items WHERE order_id = \\$1").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"name", "quantity", "subtotal"}).
			AddRow("Chair", int64(1), "100.00"))

	mock.ExpectQuery("SELECT key, value FROM order_meta WHERE order_id = \\$1").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).
			AddRow(model.MetaOrderToken, "token").
			AddRow(model.MetaLoanRequestReference, "SMPL123456789"))
}

func TestRepository_GetOrder_Found(t *testing.T) {
	repo, mock := newMockRepo(t)
	createdAt := time.Now()

	expectLoadOrder(mock, 7, createdAt)

	order, err := repo.GetOrder(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), order.ID)
	assert.Equal(t, model.OrderStatusProcessing, order.Status)
	assert.True(t, order.Total.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, "Courier", order.ShippingMethod)
	assert.True(t, order.IsPaidWithGateway())
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Chair", order.Items[0].Name)
	assert.Equal(t, "SMPL123456789", order.GetMeta(model.MetaLoanRequestReference))
	assert.WithinDuration(t, createdAt, order.CreatedAt, time.Second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetOrder_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT id, status, total, .* FROM orders WHERE id = \\$1").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	order, err := repo.GetOrder(context.Background(), 404)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, model.ErrOrderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetOrdersByMeta(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT order_id FROM order_meta WHERE key = \\$1 AND value = \\$2 ORDER BY order_id").
		WithArgs(model.MetaLoanRequestReference, "SMPL123456789").
		WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(int64(7)))
	expectLoadOrder(mock, 7, time.Now())

	orders, err := repo.GetOrdersByMeta(context.Background(), model.MetaLoanRequestReference, "SMPL123456789")

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(7), orders[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetOrdersByMeta_Empty(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT order_id FROM order_meta").
		WithArgs(model.MetaLoanRequestReference, "UNKNOWN").
		WillReturnRows(sqlmock.NewRows([]string{"order_id"}))

	orders, err := repo.GetOrdersByMeta(context.Background(), model.MetaLoanRequestReference, "UNKNOWN")

	assert.NoError(t, err)
	assert.Len(t, orders, 0)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SetMeta(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO order_meta \\(order_id, key, value\\) VALUES \\(\\$1, \\$2, \\$3\\) ON CONFLICT \\(order_id, key\\) DO UPDATE").
		WithArgs(int64(7), model.MetaLoanStatus, "approved").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetMeta(context.Background(), 7, model.MetaLoanStatus, "approved")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus_WithNote(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE orders SET status = \\$1 WHERE id = \\$2").
		WithArgs(model.OrderStatusPending, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO order_notes \\(order_id, note\\) VALUES \\(\\$1, \\$2\\)").
		WithArgs(int64(7), model.NoteAwaitingApproval).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.UpdateStatus(context.Background(), 7, model.OrderStatusPending, model.NoteAwaitingApproval)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus_WithoutNote(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE orders SET status").
		WithArgs(model.OrderStatusCompleted, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateStatus(context.Background(), 7, model.OrderStatusCompleted, "")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE orders SET status").
		WithArgs(model.OrderStatusFailed, int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.UpdateStatus(context.Background(), 404, model.OrderStatusFailed, model.NoteLoanDeclined)

	assert.ErrorIs(t, err, model.ErrOrderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus_RetriesSerializationFailure(t *testing.T) {
	noRetryDelay(t)
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE orders SET status").
		WithArgs(model.OrderStatusProcessing, int64(7)).
		WillReturnError(&pgconn.PgError{Code: "40001"})
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE orders SET status").
		WithArgs(model.OrderStatusProcessing, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO order_notes").
		WithArgs(int64(7), model.NoteLoanAccepted).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.UpdateStatus(context.Background(), 7, model.OrderStatusProcessing, model.NoteLoanAccepted)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ExecuteWithRetry_GivesUp(t *testing.T) {
	noRetryDelay(t)
	repo, _ := newMockRepo(t)

	calls := 0
	err := repo.executeWithRetryConnection(context.Background(), func(*sql.DB) error {
		calls++
		return &pgconn.PgError{Code: "08006"}
	})

	assert.Error(t, err)
	assert.Equal(t, maxAttempts, calls)
}

func TestRepository_ExecuteWithRetry_NoDelayAfterLastAttempt(t *testing.T) {
	noRetryDelay(t)
	repo, _ := newMockRepo(t)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := repo.executeWithRetryConnection(ctx, func(*sql.DB) error {
		return &pgconn.PgError{Code: "40001"}
	})

	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, "40001", pgErr.Code)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestRepository_ExecuteWithRetry_NonRetriable(t *testing.T) {
	repo, _ := newMockRepo(t)

	calls := 0
	want := errors.New("syntax")
	err := repo.executeWithRetryConnection(context.Background(), func(*sql.DB) error {
		calls++
		return want
	})

	assert.ErrorIs(t, err, want)
	assert.Equal(t, 1, calls)
}

func TestRepository_ExecuteWithRetry_ContextCanceled(t *testing.T) {
	repo, _ := newMockRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.executeWithRetryConnection(ctx, func(*sql.DB) error {
		return &pgconn.PgError{Code: "08006"}
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRepository_GetNotes(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT note, created_at FROM order_notes WHERE order_id = \\$1 ORDER BY id").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"note", "created_at"}).
			AddRow(model.NoteAwaitingApproval, now).
			AddRow(model.NoteLoanAccepted, now))

	notes, err := repo.GetNotes(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, model.NoteLoanAccepted, notes[1].Note)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateOrder(t *testing.T) {
	repo, mock := newMockRepo(t)

	dto := model.CreateOrderDTO{
		Total:          decimal.RequireFromString("15.00"),
		ShippingTotal:  decimal.RequireFromString("5.00"),
		ShippingMethod: "Flat rate",
		DiscountTotal:  decimal.Zero,
		PaymentMethod:  model.GatewayID,
		Items: []model.LineItem{
			{Name: "Mug", Quantity: 2, Subtotal: decimal.RequireFromString("10.00")},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders .* RETURNING id").
		WithArgs(model.OrderStatusPending, dto.Total, dto.ShippingTotal, dto.ShippingMethod, dto.DiscountTotal, dto.PaymentMethod).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(int64(11), "Mug", int64(2), dto.Items[0].Subtotal).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	id, err := repo.CreateOrder(context.Background(), dto)

	assert.NoError(t, err)
	assert.Equal(t, int64(11), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateOrder_Error(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnError(&pgconn.PgError{Code: "23514"})
	mock.ExpectRollback()

	id, err := repo.CreateOrder(context.Background(), model.CreateOrderDTO{})

	assert.Error(t, err)
	assert.Zero(t, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Ping(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	repo := &Repository{db: db, classifier: NewPostgresErrorClassifier()}
	mock.ExpectPing()

	assert.NoError(t, repo.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
