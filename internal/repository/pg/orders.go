package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ibeloyar/loangateway/internal/model"
)

func (s *Repository) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	var order *model.Order

	err := s.executeWithRetryConnection(ctx, func(db *sql.DB) error {
		o, err := loadOrder(ctx, db, id)
		if err != nil {
			return err
		}

		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// GetOrdersByMeta - заказы, у которых метаданные key равны value, по возрастанию id
func (s *Repository) GetOrdersByMeta(ctx context.Context, key, value string) ([]model.Order, error) {
	result := make([]model.Order, 0)

	err := s.executeWithRetryConnection(ctx, func(db *sql.DB) error {
		result = result[:0]

		rows, err := db.QueryContext(ctx,
			`SELECT order_id FROM order_meta WHERE key = $1 AND value = $2 ORDER BY order_id`,
			key, value,
		)
		if err != nil {
			return err
		}

		ids := make([]int64, 0)
		for rows.Next() {
			var id int64
			if err := rows.Scan(&id); err != nil {
				rows.Close()
				return err
			}
			ids = append(ids, id)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		for _, id := range ids {
			o, err := loadOrder(ctx, db, id)
			if err != nil {
				return err
			}
			result = append(result, *o)
		}

		return nil
	})

	return result, err
}

func (s *Repository) SetMeta(ctx context.Context, orderID int64, key, value string) error {
	return s.executeWithRetryConnection(ctx, func(db *sql.DB) error {
		_, err := db.ExecContext(ctx,
			`INSERT INTO order_meta (order_id, key, value) VALUES ($1, $2, $3)
			ON CONFLICT (order_id, key) DO UPDATE SET value = EXCLUDED.value`,
			orderID, key, value,
		)

		return err
	})
}

// UpdateStatus меняет статус и добавляет заметку в одной транзакции
func (s *Repository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, note string) error {
	return s.executeWithRetryConnection(ctx, func(db *sql.DB) error {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		res, err := tx.ExecContext(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, status, orderID)
		if err != nil {
			return err
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return model.ErrOrderNotFound
		}

		if note != "" {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO order_notes (order_id, note) VALUES ($1, $2)`,
				orderID, note,
			); err != nil {
				return err
			}
		}

		return tx.Commit()
	})
}

func (s *Repository) GetNotes(ctx context.Context, orderID int64) ([]model.OrderNote, error) {
	result := make([]model.OrderNote, 0)

	err := s.executeWithRetryConnection(ctx, func(db *sql.DB) error {
		result = result[:0]

		rows, err := db.QueryContext(ctx,
			`SELECT note, created_at FROM order_notes WHERE order_id = $1 ORDER BY id`,
			orderID,
		)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var n model.OrderNote
			if err := rows.Scan(&n.Note, &n.CreatedAt); err != nil {
				return err
			}
			result = append(result, n)
		}

		return rows.Err()
	})

	return result, err
}

func (s *Repository) CreateOrder(ctx context.Context, dto model.CreateOrderDTO) (int64, error) {
	var id int64

	err := s.executeWithRetryConnection(ctx, func(db *sql.DB) error {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		err = tx.QueryRowContext(ctx,
			`INSERT INTO orders (status, total, shipping_total, shipping_method, discount_total, payment_method)
			VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
			model.OrderStatusPending,
			dto.Total,
			dto.ShippingTotal,
			dto.ShippingMethod,
			dto.DiscountTotal,
			dto.PaymentMethod,
		).Scan(&id)
		if err != nil {
			return err
		}

		for _, item := range dto.Items {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO order_items (order_id, name, quantity, subtotal) VALUES ($1, $2, $3, $4)`,
				id, item.Name, item.Quantity, item.Subtotal,
			); err != nil {
				return err
			}
		}

		return tx.Commit()
	})
	if err != nil {
		return 0, fmt.Errorf("create order: %w", err)
	}

	return id, nil
}

func loadOrder(ctx context.Context, db *sql.DB, id int64) (*model.Order, error) {
	var o model.Order

	err := db.QueryRowContext(ctx,
		`SELECT id, status, total, shipping_total, shipping_method, discount_total, total_refunded, payment_method, created_at
		FROM orders WHERE id = $1`,
		id,
	).Scan(
		&o.ID,
		&o.Status,
		&o.Total,
		&o.ShippingTotal,
		&o.ShippingMethod,
		&o.DiscountTotal,
		&o.TotalRefunded,
		&o.PaymentMethod,
		&o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrOrderNotFound
		}
		return nil, err
	}

	items, err := db.QueryContext(ctx,
		`SELECT name, quantity, subtotal FROM order_items WHERE order_id = $1 ORDER BY id`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer items.Close()

	o.Items = make([]model.LineItem, 0)
	for items.Next() {
		var item model.LineItem
		if err := items.Scan(&item.Name, &item.Quantity, &item.Subtotal); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, item)
	}
	if err := items.Err(); err != nil {
		return nil, err
	}

	meta, err := db.QueryContext(ctx, `SELECT key, value FROM order_meta WHERE order_id = $1`, id)
	if err != nil {
		return nil, err
	}
	defer meta.Close()

	o.Meta = make(map[string]string)
	for meta.Next() {
		var key, value string
		if err := meta.Scan(&key, &value); err != nil {
			return nil, err
		}
		o.Meta[key] = value
	}

	return &o, meta.Err()
}
