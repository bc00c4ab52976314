package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/furnishfusion/storefront/internal/domain/entity"
	"github.com/furnishfusion/storefront/internal/domain/repository"
)

type postgresWishlistRepository struct {
	db *sql.DB
}

func NewPostgresWishlistRepository(db *sql.DB) repository.WishlistRepository {
	return &postgresWishlistRepository{db: db}
}

func (r *postgresWishlistRepository) Add(ctx context.Context, userID, productID int64) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO wishlist (user_id, product_id) VALUES ($1,$2)
	ON CONFLICT (user_id, product_id) DO NOTHING`, userID, productID)
	if err != nil {
		return fmt.Errorf("add to wishlist: %w", err)
	}
	return nil
}

func (r *postgresWishlistRepository) Remove(ctx context.Context, userID, productID int64) error {
	_, err := r.db.ExecContext(ctx, `
	DELETE FROM wishlist WHERE user_id = $1 AND product_id = $2`, userID, productID)
	if err != nil {
		return fmt.Errorf("remove from wishlist: %w", err)
	}
	return nil
}

func (r *postgresWishlistRepository) ListByUser(ctx context.Context, userID int64) ([]entity.ProductWithRating, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT p.id, p.name, COALESCE(p.description,''), p.price, COALESCE(p.image_url,''),
	       COALESCE(p.category,''), COALESCE(p.rating,0), p.created_at,
	       COALESCE(AVG(r.rating), 0) AS avg_rating, COUNT(r.id) AS rating_count
	FROM wishlist w
	JOIN products p ON p.id = w.product_id
	LEFT JOIN product_reviews r ON r.product_id = p.id
	WHERE w.user_id = $1
	GROUP BY p.id, w.created_at
	ORDER BY w.created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	defer rows.Close()
	return scanProductsWithRating(rows)
}

func (r *postgresWishlistRepository) IDsByUser(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT product_id FROM wishlist WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("wishlist ids: %w", err)
	}
	defer rows.Close()

	var out []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r *postgresWishlistRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
	SELECT COUNT(*) FROM wishlist WHERE user_id = $1`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count wishlist: %w", err)
	}
	return n, nil
}

type postgresContactRepository struct {
	db *sql.DB
}

func NewPostgresContactRepository(db *sql.DB) repository.ContactRepository {
	return &postgresContactRepository{db: db}
}

func (r *postgresContactRepository) GetContact(ctx context.Context) (*entity.ContactInfo, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, company_name, email, phone, address, COALESCE(city,''), COALESCE(state,''),
	       COALESCE(zip_code,''), COALESCE(country,''), COALESCE(website,''), updated_at
	FROM contact_info ORDER BY id LIMIT 1`)
	var info entity.ContactInfo
	err := row.Scan(&info.ID, &info.CompanyName, &info.Email, &info.Phone, &info.Address,
		&info.City, &info.State, &info.ZipCode, &info.Country, &info.Website, &info.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get contact info: %w", err)
	}
	return &info, nil
}

func (r *postgresContactRepository) SaveContact(ctx context.Context, info entity.ContactInfo) error {
	existing, err := r.GetContact(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		_, err = r.db.ExecContext(ctx, `
		UPDATE contact_info SET company_name=$1, email=$2, phone=$3, address=$4, city=$5,
			state=$6, zip_code=$7, country=$8, website=$9, updated_at=NOW()
		WHERE id=$10`,
			info.CompanyName, info.Email, info.Phone, info.Address, info.City,
			info.State, info.ZipCode, info.Country, info.Website, existing.ID)
	} else {
		_, err = r.db.ExecContext(ctx, `
		INSERT INTO contact_info (company_name, email, phone, address, city, state, zip_code, country, website)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
			info.CompanyName, info.Email, info.Phone, info.Address, info.City,
			info.State, info.ZipCode, info.Country, info.Website)
	}
	if err != nil {
		return fmt.Errorf("save contact info: %w", err)
	}
	return nil
}

func (r *postgresContactRepository) GetUPIQR(ctx context.Context) (*entity.UPIQR, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT COALESCE(image_url,''), updated_at FROM upi_qr WHERE id = 1`)
	var qr entity.UPIQR
	err := row.Scan(&qr.ImageURL, &qr.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get upi qr: %w", err)
	}
	return &qr, nil
}

func (r *postgresContactRepository) SaveUPIQR(ctx context.Context, imageURL string) error {
	_, err := r.db.ExecContext(ctx, `
	UPDATE upi_qr SET image_url = $1, updated_at = NOW() WHERE id = 1`, imageURL)
	if err != nil {
		return fmt.Errorf("save upi qr: %w", err)
	}
	return nil
}
