package storage

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

const (
	connectAttemptsDefault = 20
	connectDelayDefault    = 2 * time.Second
)

// BuildDSNFromEnv assembles a postgres URL from POSTGRES_* parts when
// DATABASE_URL is not set. Returns "" when the parts are incomplete.
func BuildDSNFromEnv() string {
	host := strings.TrimSpace(os.Getenv("POSTGRES_HOST"))
	user := strings.TrimSpace(os.Getenv("POSTGRES_USER"))
	password := os.Getenv("POSTGRES_PASSWORD")
	db := strings.TrimSpace(os.Getenv("POSTGRES_DB"))
	port := strings.TrimSpace(os.Getenv("POSTGRES_PORT"))
	sslmode := strings.TrimSpace(os.Getenv("POSTGRES_SSLMODE"))

	if host == "" || user == "" || db == "" {
		return ""
	}
	if port == "" {
		port = "5432"
	}
	if sslmode == "" {
		sslmode = "disable"
	}

	db = strings.TrimPrefix(db, "/")
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(host, port),
		Path:   "/" + db,
	}
	if password == "" {
		u.User = url.User(user)
	} else {
		u.User = url.UserPassword(user, password)
	}
	q := u.Query()
	q.Set("sslmode", sslmode)
	u.RawQuery = q.Encode()
	return u.String()
}

// Open connects with retries so the service survives a database that is
// still starting, then applies pool limits.
func Open(dsn string) (*sql.DB, error) {
	attempts := getenvInt("POSTGRES_CONNECT_MAX_ATTEMPTS", connectAttemptsDefault)
	delaySeconds := getenvInt("POSTGRES_CONNECT_RETRY_SECONDS", int(connectDelayDefault/time.Second))
	delay := time.Duration(delaySeconds) * time.Second
	if attempts <= 0 {
		attempts = connectAttemptsDefault
	}
	if delay <= 0 {
		delay = connectDelayDefault
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := sql.Open("postgres", dsn)
		if err == nil {
			if pingErr := db.Ping(); pingErr == nil {
				db.SetMaxOpenConns(10)
				db.SetMaxIdleConns(5)
				db.SetConnMaxLifetime(30 * time.Minute)
				return db, nil
			} else {
				err = pingErr
			}
		}
		if db != nil {
			_ = db.Close()
		}
		lastErr = err
		if attempt < attempts {
			time.Sleep(delay)
		}
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("postgres connection failed")
	}
	return nil, lastErr
}

func getenvInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// InitSchema creates all tables and applies back-compat column additions,
// then seeds defaults (contact info, admin account, sample products).
func InitSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS admins (
			id BIGSERIAL PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			price DOUBLE PRECISION NOT NULL,
			image_url TEXT,
			category TEXT,
			rating DOUBLE PRECISION DEFAULT 0,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id),
			total DOUBLE PRECISION NOT NULL,
			status TEXT DEFAULT 'pending',
			payment_method TEXT DEFAULT 'cod',
			payment_status TEXT DEFAULT 'pending',
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`ALTER TABLE orders ADD COLUMN IF NOT EXISTS advance_amount DOUBLE PRECISION`,
		`ALTER TABLE orders ADD COLUMN IF NOT EXISTS payment_proof_url TEXT`,
		`ALTER TABLE orders ADD COLUMN IF NOT EXISTS coupon_id BIGINT`,
		`ALTER TABLE orders ADD COLUMN IF NOT EXISTS discount_amount DOUBLE PRECISION DEFAULT 0`,
		`ALTER TABLE orders ADD COLUMN IF NOT EXISTS contact_mobile TEXT`,
		`ALTER TABLE orders ADD COLUMN IF NOT EXISTS contact_address TEXT`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id BIGSERIAL PRIMARY KEY,
			order_id BIGINT NOT NULL REFERENCES orders(id),
			product_id BIGINT NOT NULL REFERENCES products(id),
			quantity INTEGER DEFAULT 1,
			price DOUBLE PRECISION NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS product_reviews (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id),
			product_id BIGINT NOT NULL REFERENCES products(id),
			rating INTEGER NOT NULL CHECK (rating >= 1 AND rating <= 5),
			comment TEXT,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			UNIQUE (user_id, product_id)
		)`,
		`CREATE TABLE IF NOT EXISTS wishlist (
			user_id BIGINT NOT NULL REFERENCES users(id),
			product_id BIGINT NOT NULL REFERENCES products(id),
			created_at TIMESTAMPTZ DEFAULT NOW(),
			PRIMARY KEY (user_id, product_id)
		)`,
		`CREATE TABLE IF NOT EXISTS coupons (
			id BIGSERIAL PRIMARY KEY,
			code TEXT UNIQUE NOT NULL,
			discount_type TEXT NOT NULL CHECK (discount_type IN ('percent','fixed')),
			discount_value DOUBLE PRECISION NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS contact_info (
			id BIGSERIAL PRIMARY KEY,
			company_name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			address TEXT NOT NULL,
			city TEXT,
			state TEXT,
			zip_code TEXT,
			country TEXT,
			website TEXT,
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS upi_qr (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			image_url TEXT,
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`INSERT INTO upi_qr (id, image_url) VALUES (1, NULL) ON CONFLICT (id) DO NOTHING`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	if err := seedContactInfo(ctx, db); err != nil {
		return err
	}
	if err := seedDefaultAdmin(ctx, db); err != nil {
		return err
	}
	return seedSampleProducts(ctx, db)
}

func seedContactInfo(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_info`).Scan(&count); err != nil {
		return fmt.Errorf("count contact_info: %w", err)
	}
	if count > 0 {
		return nil
	}
	_, err := db.ExecContext(ctx, `
	INSERT INTO contact_info (company_name, email, phone, address, city, state, zip_code, country, website)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		"FurnishFusion", "info@furnishfusion.com", "+91 1234567890",
		"123 Furniture Street", "Mumbai", "Maharashtra", "400001", "India",
		"https://www.furnishfusion.com")
	if err != nil {
		return fmt.Errorf("seed contact_info: %w", err)
	}
	return nil
}

func seedDefaultAdmin(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count); err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		return nil
	}
	password := strings.TrimSpace(os.Getenv("DEFAULT_ADMIN_PASSWORD"))
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}
	_, err = db.ExecContext(ctx, `
	INSERT INTO admins (username, email, password_hash) VALUES ($1,$2,$3)`,
		"admin", "admin@furnishfusion.com", string(hash))
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}

func seedSampleProducts(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return nil
	}
	samples := []struct {
		name, desc string
		price      float64
		image      string
	}{
		{"Modern Sofa Set", "Comfortable 3-seater sofa with matching cushions. Perfect for your living room.", 45000.00, "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=500"},
		{"Wooden Dining Table", "Elegant 6-seater dining table made from premium oak wood.", 35000.00, "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=500"},
		{"Ergonomic Office Chair", "Comfortable office chair with lumbar support and adjustable height.", 12000.00, "https://images.unsplash.com/photo-1506439773649-6e0eb8cfb237?w=500"},
		{"Queen Size Bed Frame", "Sturdy metal bed frame with modern design. Includes headboard.", 28000.00, "https://images.unsplash.com/photo-1631049307264-da0ec9d70304?w=500"},
		{"Bookshelf Unit", "5-tier bookshelf with adjustable shelves. Perfect for organizing your space.", 15000.00, "https://images.unsplash.com/photo-1594620302200-9a762244a094?w=500"},
		{"Coffee Table", "Glass top coffee table with wooden legs. Modern and elegant design.", 18000.00, "https://images.unsplash.com/photo-1532372320572-cda25653a26d?w=500"},
		{"Wardrobe Cabinet", "Spacious 3-door wardrobe with mirror. Ample storage space.", 42000.00, "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=500"},
		{"Study Desk", "Compact study desk with drawers. Perfect for home office.", 22000.00, "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=500"},
	}
	for _, s := range samples {
		if _, err := db.ExecContext(ctx, `
		INSERT INTO products (name, description, price, image_url) VALUES ($1,$2,$3,$4)`,
			s.name, s.desc, s.price, s.image); err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
	}
	return nil
}
