package testhelpers

import (
	"context"
	"os"
	"testing"
	"time"

	"threadmart/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TestDB holds the database connection for testing.
type TestDB struct {
	Pool    *pgxpool.Pool
	Cleanup func() error
}

// SetupTestDB creates a pooled connection for testing. Tests are skipped
// when no database is reachable.
func SetupTestDB(t *testing.T, connString string) *TestDB {
	t.Helper()

	if connString == "" {
		connString = os.Getenv("TEST_DATABASE_URL")
		if connString == "" {
			connString = "host=localhost port=5432 user=postgres password=postgres dbname=threadmart_test sslmode=disable"
		}
	}

	pool, err := pgxpool.New(context.Background(), connString)
	if err != nil {
		t.Fatalf("Failed to configure test database pool: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Skipf("Test database not reachable: %v", err)
	}

	return &TestDB{
		Pool: pool,
		Cleanup: func() error {
			pool.Close()
			return nil
		},
	}
}

// SetupTestUser creates a test user row.
func SetupTestUser(t *testing.T, db *TestDB) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	query := `
		INSERT INTO users (id, email, name, email_verified, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	email := userID.String() + "@test.local"
	_, err := db.Pool.Exec(context.Background(), query, userID, email, "Test User", true, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return userID
}

// SetupTestProduct creates a test product row.
func SetupTestProduct(t *testing.T, db *TestDB) *models.Product {
	t.Helper()

	description := "Heavyweight cotton tee"
	product := &models.Product{
		ID:          uuid.New(),
		Name:        "Test Tee",
		Description: &description,
		Price:       24.99,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	query := `
		INSERT INTO products (id, name, description, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := db.Pool.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.CreatedAt, product.UpdatedAt)
	if err != nil {
		t.Fatalf("Failed to create test product: %v", err)
	}
	return product
}

// SetupTestSize creates a size row and links it to the given product.
func SetupTestSize(t *testing.T, db *TestDB, productID uuid.UUID) uuid.UUID {
	t.Helper()

	sizeID := uuid.New()
	_, err := db.Pool.Exec(context.Background(),
		`INSERT INTO sizes (id, name) VALUES ($1, $2)`, sizeID, "M-"+sizeID.String()[:8])
	if err != nil {
		t.Fatalf("Failed to create test size: %v", err)
	}
	_, err = db.Pool.Exec(context.Background(),
		`INSERT INTO product_sizes (product_id, size_id) VALUES ($1, $2)`, productID, sizeID)
	if err != nil {
		t.Fatalf("Failed to link test size: %v", err)
	}
	return sizeID
}
