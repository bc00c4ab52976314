package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/furnishfusion/storefront/internal/domain/entity"
	"github.com/furnishfusion/storefront/internal/domain/repository"
)

type postgresProductRepository struct {
	db *sql.DB
}

// NewPostgresProductRepository returns the Postgres-backed catalog store.
func NewPostgresProductRepository(db *sql.DB) repository.ProductRepository {
	return &postgresProductRepository{db: db}
}

func (r *postgresProductRepository) Create(ctx context.Context, p entity.Product) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
	INSERT INTO products (name, description, price, image_url, category, rating)
	VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`,
		p.Name, p.Description, p.Price, p.ImageURL, nullString(p.Category), p.Rating).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return id, nil
}

func (r *postgresProductRepository) SaveMany(ctx context.Context, products []entity.Product) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin bulk insert: %w", err)
	}
	defer tx.Rollback()

	saved := 0
	for _, p := range products {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO products (name, description, price, image_url, category, rating)
		VALUES ($1,$2,$3,$4,$5,$6)`,
			p.Name, p.Description, p.Price, p.ImageURL, nullString(p.Category), p.Rating); err != nil {
			return 0, fmt.Errorf("insert product %q: %w", p.Name, err)
		}
		saved++
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit bulk insert: %w", err)
	}
	return saved, nil
}

func (r *postgresProductRepository) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, name, COALESCE(description,''), price, COALESCE(image_url,''), COALESCE(category,''), COALESCE(rating,0), created_at
	FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	return p, nil
}

func (r *postgresProductRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return nil
}

func (r *postgresProductRepository) List(ctx context.Context, filter entity.ProductFilter) ([]entity.ProductWithRating, error) {
	query := strings.Builder{}
	query.WriteString(`
	SELECT p.id, p.name, COALESCE(p.description,''), p.price, COALESCE(p.image_url,''),
	       COALESCE(p.category,''), COALESCE(p.rating,0), p.created_at,
	       COALESCE(AVG(r.rating), 0) AS avg_rating, COUNT(r.id) AS rating_count
	FROM products p
	LEFT JOIN product_reviews r ON r.product_id = p.id
	WHERE 1=1`)

	var params []any
	arg := func(v any) string {
		params = append(params, v)
		return fmt.Sprintf("$%d", len(params))
	}

	if filter.MinPrice != nil {
		query.WriteString(" AND p.price >= " + arg(*filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		query.WriteString(" AND p.price <= " + arg(*filter.MaxPrice))
	}
	if filter.Category != "" {
		query.WriteString(" AND p.category = " + arg(filter.Category))
	}

	query.WriteString(" GROUP BY p.id")
	if filter.MinRating != nil {
		query.WriteString(" HAVING COALESCE(AVG(r.rating), 0) >= " + arg(*filter.MinRating))
	}

	switch filter.Sort {
	case "rating_desc":
		query.WriteString(" ORDER BY avg_rating DESC, rating_count DESC, p.created_at DESC")
	case "price_asc":
		query.WriteString(" ORDER BY p.price ASC, p.created_at DESC")
	case "price_desc":
		query.WriteString(" ORDER BY p.price DESC, p.created_at DESC")
	default:
		query.WriteString(" ORDER BY p.created_at DESC")
	}

	rows, err := r.db.QueryContext(ctx, query.String(), params...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return scanProductsWithRating(rows)
}

func (r *postgresProductRepository) All(ctx context.Context) ([]entity.ProductWithRating, error) {
	return r.List(ctx, entity.ProductFilter{})
}

func (r *postgresProductRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT DISTINCT category FROM products WHERE category IS NOT NULL ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *postgresProductRepository) PriceRange(ctx context.Context) (float64, float64, error) {
	var min, max sql.NullFloat64
	err := r.db.QueryRowContext(ctx, `SELECT MIN(price), MAX(price) FROM products`).Scan(&min, &max)
	if err != nil {
		return 0, 0, fmt.Errorf("price range: %w", err)
	}
	lo, hi := 0.0, 100000.0
	if min.Valid {
		lo = min.Float64
	}
	if max.Valid {
		hi = max.Float64
	}
	return lo, hi, nil
}

func (r *postgresProductRepository) Recent(ctx context.Context, limit int) ([]entity.Product, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, COALESCE(description,''), price, COALESCE(image_url,''), COALESCE(category,''), COALESCE(rating,0), created_at
	FROM products ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *postgresProductRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// FindByKeywordsAndMaxPrice ORs a LIKE clause per keyword over name and
// category, keeps rows within maxPrice, and prefers the most expensive
// affordable options (ORDER BY price DESC). That ordering is the planner's
// "maximize perceived value within budget" rule; keep it explicit.
func (r *postgresProductRepository) FindByKeywordsAndMaxPrice(ctx context.Context, keywords []string, maxPrice float64, limit int) ([]entity.Product, error) {
	if len(keywords) == 0 {
		return nil, nil
	}

	var conditions []string
	var params []any
	for _, kw := range keywords {
		pattern := "%" + strings.ToLower(kw) + "%"
		params = append(params, pattern, pattern)
		n := len(params)
		conditions = append(conditions, fmt.Sprintf(
			"(LOWER(p.name) LIKE $%d OR (p.category IS NOT NULL AND LOWER(p.category) LIKE $%d))", n-1, n))
	}
	params = append(params, maxPrice)
	priceArg := len(params)
	params = append(params, limit)
	limitArg := len(params)

	query := fmt.Sprintf(`
	SELECT p.id, p.name, COALESCE(p.description,''), p.price, COALESCE(p.image_url,''), COALESCE(p.category,''), COALESCE(p.rating,0), p.created_at
	FROM products p
	WHERE (%s) AND p.price <= $%d
	ORDER BY p.price DESC
	LIMIT $%d`, strings.Join(conditions, " OR "), priceArg, limitArg)

	rows, err := r.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("keyword search: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *postgresProductRepository) ReferencedByOrders(ctx context.Context, id int64) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM order_items WHERE product_id = $1`, id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check product references: %w", err)
	}
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.Category, &p.Rating, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProducts(rows *sql.Rows) ([]entity.Product, error) {
	var out []entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func scanProductsWithRating(rows *sql.Rows) ([]entity.ProductWithRating, error) {
	var out []entity.ProductWithRating
	for rows.Next() {
		var p entity.ProductWithRating
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL,
			&p.Category, &p.Rating, &p.CreatedAt, &p.AvgRating, &p.RatingCount); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func nullString(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}
