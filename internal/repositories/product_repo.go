package repositories

import (
	"context"
	"fmt"

	"threadmart/internal/models"

	"github.com/google/uuid"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *models.ProductFilter) ([]*models.Product, error)
	SetImageObject(ctx context.Context, id uuid.UUID, objectName string) error

	AttachCategory(ctx context.Context, productID, categoryID uuid.UUID) error
	DetachCategory(ctx context.Context, productID, categoryID uuid.UUID) error
	CategoriesFor(ctx context.Context, productID uuid.UUID) ([]*models.Category, error)

	AttachSize(ctx context.Context, productID, sizeID uuid.UUID) error
	DetachSize(ctx context.Context, productID, sizeID uuid.UUID) error
	SizesFor(ctx context.Context, productID uuid.UUID) ([]*models.Size, error)
	SizeLinked(ctx context.Context, productID, sizeID uuid.UUID) (bool, error)
}

type productRepo struct {
	db DB
}

func NewProductRepo(db DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, image_object, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, product.ID, product.Name, product.Description, product.Price, product.ImageObject)
	return err
}

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product := &models.Product{}
	query := `
		SELECT id, name, description, price, image_object, created_at, updated_at
		FROM products
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&product.ID, &product.Name, &product.Description, &product.Price, &product.ImageObject, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepo) Update(ctx context.Context, product *models.Product) error {
	query := `
		UPDATE products
		SET name = $1, description = $2, price = $3, updated_at = NOW()
		WHERE id = $4
	`
	_, err := r.db.Exec(ctx, query, product.Name, product.Description, product.Price, product.ID)
	return err
}

func (r *productRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM products WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *productRepo) SetImageObject(ctx context.Context, id uuid.UUID, objectName string) error {
	query := `UPDATE products SET image_object = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.Exec(ctx, query, objectName, id)
	return err
}

// List filters the catalog by optional category, size, and name substring.
func (r *productRepo) List(ctx context.Context, filter *models.ProductFilter) ([]*models.Product, error) {
	if filter.Limit == 0 {
		filter.Limit = 50
	}

	queryBase := `
		SELECT p.id, p.name, p.description, p.price, p.image_object, p.created_at, p.updated_at
		FROM products p
		WHERE TRUE
	`
	args := []any{}
	conditionCount := 0

	if filter.CategoryID != nil {
		conditionCount++
		queryBase += fmt.Sprintf(` AND EXISTS (
			SELECT 1 FROM product_categories pc
			WHERE pc.product_id = p.id AND pc.category_id = $%d
		)`, conditionCount)
		args = append(args, *filter.CategoryID)
	}

	if filter.SizeID != nil {
		conditionCount++
		queryBase += fmt.Sprintf(` AND EXISTS (
			SELECT 1 FROM product_sizes ps
			WHERE ps.product_id = p.id AND ps.size_id = $%d
		)`, conditionCount)
		args = append(args, *filter.SizeID)
	}

	if filter.Query != "" {
		conditionCount++
		queryBase += fmt.Sprintf(` AND p.name ILIKE $%d`, conditionCount)
		args = append(args, "%"+filter.Query+"%")
	}

	queryBase += ` ORDER BY p.created_at DESC`

	conditionCount++
	queryBase += fmt.Sprintf(` LIMIT $%d`, conditionCount)
	args = append(args, filter.Limit)
	if filter.Offset > 0 {
		conditionCount++
		queryBase += fmt.Sprintf(` OFFSET $%d`, conditionCount)
		args = append(args, filter.Offset)
	}

	rows, err := r.db.Query(ctx, queryBase, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product := &models.Product{}
		if err := rows.Scan(&product.ID, &product.Name, &product.Description, &product.Price, &product.ImageObject, &product.CreatedAt, &product.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (r *productRepo) AttachCategory(ctx context.Context, productID, categoryID uuid.UUID) error {
	query := `
		INSERT INTO product_categories (product_id, category_id)
		VALUES ($1, $2)
		ON CONFLICT (product_id, category_id) DO NOTHING
	`
	_, err := r.db.Exec(ctx, query, productID, categoryID)
	return err
}

func (r *productRepo) DetachCategory(ctx context.Context, productID, categoryID uuid.UUID) error {
	query := `DELETE FROM product_categories WHERE product_id = $1 AND category_id = $2`
	_, err := r.db.Exec(ctx, query, productID, categoryID)
	return err
}

func (r *productRepo) CategoriesFor(ctx context.Context, productID uuid.UUID) ([]*models.Category, error) {
	query := `
		SELECT c.id, c.name
		FROM categories c
		JOIN product_categories pc ON pc.category_id = c.id
		WHERE pc.product_id = $1
		ORDER BY c.name ASC
	`
	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		category := &models.Category{}
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *productRepo) AttachSize(ctx context.Context, productID, sizeID uuid.UUID) error {
	query := `
		INSERT INTO product_sizes (product_id, size_id)
		VALUES ($1, $2)
		ON CONFLICT (product_id, size_id) DO NOTHING
	`
	_, err := r.db.Exec(ctx, query, productID, sizeID)
	return err
}

func (r *productRepo) DetachSize(ctx context.Context, productID, sizeID uuid.UUID) error {
	query := `DELETE FROM product_sizes WHERE product_id = $1 AND size_id = $2`
	_, err := r.db.Exec(ctx, query, productID, sizeID)
	return err
}

func (r *productRepo) SizesFor(ctx context.Context, productID uuid.UUID) ([]*models.Size, error) {
	query := `
		SELECT s.id, s.name
		FROM sizes s
		JOIN product_sizes ps ON ps.size_id = s.id
		WHERE ps.product_id = $1
		ORDER BY s.name ASC
	`
	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sizes []*models.Size
	for rows.Next() {
		size := &models.Size{}
		if err := rows.Scan(&size.ID, &size.Name); err != nil {
			return nil, err
		}
		sizes = append(sizes, size)
	}
	return sizes, rows.Err()
}

func (r *productRepo) SizeLinked(ctx context.Context, productID, sizeID uuid.UUID) (bool, error) {
	var linked bool
	query := `SELECT EXISTS (SELECT 1 FROM product_sizes WHERE product_id = $1 AND size_id = $2)`
	err := r.db.QueryRow(ctx, query, productID, sizeID).Scan(&linked)
	if err != nil {
		return false, err
	}
	return linked, nil
}
