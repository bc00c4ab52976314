package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/furnishfusion/storefront/internal/domain/entity"
	"github.com/furnishfusion/storefront/internal/domain/repository"
)

type postgresOrderRepository struct {
	db *sql.DB
}

func NewPostgresOrderRepository(db *sql.DB) repository.OrderRepository {
	return &postgresOrderRepository{db: db}
}

const orderColumns = `id, user_id, total, status, payment_method, payment_status,
	advance_amount, COALESCE(payment_proof_url,''), coupon_id, COALESCE(discount_amount,0),
	COALESCE(contact_mobile,''), COALESCE(contact_address,''), created_at, updated_at`

func (r *postgresOrderRepository) Create(ctx context.Context, order entity.Order, items []entity.OrderItem) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin order: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	var orderID int64
	err = tx.QueryRowContext(ctx, `
	INSERT INTO orders (user_id, total, status, payment_method, payment_status,
		advance_amount, payment_proof_url, coupon_id, discount_amount,
		contact_mobile, contact_address, created_at, updated_at)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$12) RETURNING id`,
		order.UserID, order.Total, order.Status, order.PaymentMethod, order.PaymentStatus,
		order.AdvanceAmount, nullString(order.PaymentProofURL), order.CouponID, order.DiscountAmount,
		order.ContactMobile, order.ContactAddress, now).Scan(&orderID)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}

	for _, item := range items {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO order_items (order_id, product_id, quantity, price) VALUES ($1,$2,$3,$4)`,
			orderID, item.ProductID, item.Quantity, item.Price); err != nil {
			return 0, fmt.Errorf("insert order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit order: %w", err)
	}
	return orderID, nil
}

func (r *postgresOrderRepository) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	return scanOrderRow(row)
}

func (r *postgresOrderRepository) GetForUser(ctx context.Context, id, userID int64) (*entity.Order, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1 AND user_id = $2`, id, userID)
	return scanOrderRow(row)
}

func (r *postgresOrderRepository) ListByUser(ctx context.Context, userID int64) ([]entity.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders by user: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows, false)
}

func (r *postgresOrderRepository) ListAll(ctx context.Context) ([]entity.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT o.id, o.user_id, o.total, o.status, o.payment_method, o.payment_status,
		o.advance_amount, COALESCE(o.payment_proof_url,''), o.coupon_id, COALESCE(o.discount_amount,0),
		COALESCE(o.contact_mobile,''), COALESCE(o.contact_address,''), o.created_at, o.updated_at,
		u.name, u.email
	FROM orders o
	JOIN users u ON o.user_id = u.id
	ORDER BY o.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list all orders: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows, true)
}

func (r *postgresOrderRepository) ItemsByOrder(ctx context.Context, orderID int64) ([]entity.OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price, p.name, COALESCE(p.description,'')
	FROM order_items oi
	JOIN products p ON oi.product_id = p.id
	WHERE oi.order_id = $1`, orderID)
	if err != nil {
		return nil, fmt.Errorf("order items: %w", err)
	}
	defer rows.Close()

	var out []entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.Price,
			&it.ProductName, &it.Description); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *postgresOrderRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	_, err := r.db.ExecContext(ctx, `
	UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

func (r *postgresOrderRepository) UpdatePaymentStatus(ctx context.Context, id int64, paymentStatus string) error {
	_, err := r.db.ExecContext(ctx, `
	UPDATE orders SET payment_status = $1 WHERE id = $2`, paymentStatus, id)
	if err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}
	return nil
}

func (r *postgresOrderRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

func (r *postgresOrderRepository) TotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	if err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(total), 0) FROM orders`).Scan(&total); err != nil {
		return 0, fmt.Errorf("total revenue: %w", err)
	}
	return total, nil
}

func (r *postgresOrderRepository) Recent(ctx context.Context, limit int) ([]entity.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT o.id, o.user_id, o.total, o.status, o.payment_method, o.payment_status,
		o.advance_amount, COALESCE(o.payment_proof_url,''), o.coupon_id, COALESCE(o.discount_amount,0),
		COALESCE(o.contact_mobile,''), COALESCE(o.contact_address,''), o.created_at, o.updated_at,
		u.name, u.email
	FROM orders o
	JOIN users u ON o.user_id = u.id
	ORDER BY o.created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent orders: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows, true)
}

func (r *postgresOrderRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count user orders: %w", err)
	}
	return n, nil
}

func (r *postgresOrderRepository) TotalSpentByUser(ctx context.Context, userID int64) (float64, error) {
	var total float64
	if err := r.db.QueryRowContext(ctx, `
	SELECT COALESCE(SUM(total), 0) FROM orders WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return 0, fmt.Errorf("user total spent: %w", err)
	}
	return total, nil
}

func (r *postgresOrderRepository) RecentByUser(ctx context.Context, userID int64, limit int) ([]entity.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent user orders: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows, false)
}

func (r *postgresOrderRepository) UserHasPurchased(ctx context.Context, userID, productID int64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `
	SELECT 1
	FROM orders o
	JOIN order_items oi ON oi.order_id = o.id
	WHERE o.user_id = $1 AND oi.product_id = $2
	LIMIT 1`, userID, productID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check purchase: %w", err)
	}
	return true, nil
}

func scanOrderFields(s rowScanner, o *entity.Order, withUser bool) error {
	var advance sql.NullFloat64
	var couponID sql.NullInt64
	dest := []any{&o.ID, &o.UserID, &o.Total, &o.Status, &o.PaymentMethod, &o.PaymentStatus,
		&advance, &o.PaymentProofURL, &couponID, &o.DiscountAmount,
		&o.ContactMobile, &o.ContactAddress, &o.CreatedAt, &o.UpdatedAt}
	if withUser {
		dest = append(dest, &o.UserName, &o.UserEmail)
	}
	if err := s.Scan(dest...); err != nil {
		return err
	}
	if advance.Valid {
		o.AdvanceAmount = &advance.Float64
	}
	if couponID.Valid {
		o.CouponID = &couponID.Int64
	}
	return nil
}

func scanOrderRow(row *sql.Row) (*entity.Order, error) {
	var o entity.Order
	err := scanOrderFields(row, &o, false)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan order: %w", err)
	}
	return &o, nil
}

func scanOrders(rows *sql.Rows, withUser bool) ([]entity.Order, error) {
	var out []entity.Order
	for rows.Next() {
		var o entity.Order
		if err := scanOrderFields(rows, &o, withUser); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
