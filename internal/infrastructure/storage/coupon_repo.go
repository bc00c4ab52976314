package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/furnishfusion/storefront/internal/domain/entity"
	"github.com/furnishfusion/storefront/internal/domain/repository"
)

type postgresCouponRepository struct {
	db *sql.DB
}

func NewPostgresCouponRepository(db *sql.DB) repository.CouponRepository {
	return &postgresCouponRepository{db: db}
}

func (r *postgresCouponRepository) Create(ctx context.Context, c entity.Coupon) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
	INSERT INTO coupons (code, discount_type, discount_value, is_active)
	VALUES ($1,$2,$3,TRUE) RETURNING id`,
		strings.ToUpper(strings.TrimSpace(c.Code)), c.DiscountType, c.DiscountValue).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert coupon: %w", err)
	}
	return id, nil
}

func (r *postgresCouponRepository) GetActiveByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, code, discount_type, discount_value, is_active, created_at
	FROM coupons
	WHERE UPPER(TRIM(code)) = $1 AND is_active = TRUE`,
		strings.ToUpper(strings.TrimSpace(code)))
	var c entity.Coupon
	err := row.Scan(&c.ID, &c.Code, &c.DiscountType, &c.DiscountValue, &c.IsActive, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get coupon by code: %w", err)
	}
	return &c, nil
}

func (r *postgresCouponRepository) List(ctx context.Context) ([]entity.Coupon, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, code, discount_type, discount_value, is_active, created_at
	FROM coupons ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list coupons: %w", err)
	}
	defer rows.Close()

	var out []entity.Coupon
	for rows.Next() {
		var c entity.Coupon
		if err := rows.Scan(&c.ID, &c.Code, &c.DiscountType, &c.DiscountValue, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *postgresCouponRepository) SetActive(ctx context.Context, id int64, active bool) error {
	_, err := r.db.ExecContext(ctx, `UPDATE coupons SET is_active = $1 WHERE id = $2`, active, id)
	if err != nil {
		return fmt.Errorf("toggle coupon %d: %w", id, err)
	}
	return nil
}

func (r *postgresCouponRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM coupons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete coupon %d: %w", id, err)
	}
	return nil
}

type postgresReviewRepository struct {
	db *sql.DB
}

func NewPostgresReviewRepository(db *sql.DB) repository.ReviewRepository {
	return &postgresReviewRepository{db: db}
}

func (r *postgresReviewRepository) Upsert(ctx context.Context, rev entity.Review) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO product_reviews (user_id, product_id, rating, comment)
	VALUES ($1,$2,$3,$4)
	ON CONFLICT (user_id, product_id) DO UPDATE SET
		rating = EXCLUDED.rating,
		comment = EXCLUDED.comment,
		created_at = NOW()`,
		rev.UserID, rev.ProductID, rev.Rating, nullString(rev.Comment))
	if err != nil {
		return fmt.Errorf("save review: %w", err)
	}
	return nil
}

func (r *postgresReviewRepository) ListByProduct(ctx context.Context, productID int64) ([]entity.Review, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, user_id, product_id, rating, COALESCE(comment,''), created_at
	FROM product_reviews WHERE product_id = $1 ORDER BY created_at DESC`, productID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var out []entity.Review
	for rows.Next() {
		var rev entity.Review
		if err := rows.Scan(&rev.ID, &rev.UserID, &rev.ProductID, &rev.Rating, &rev.Comment, &rev.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rev)
	}
	return out, rows.Err()
}
