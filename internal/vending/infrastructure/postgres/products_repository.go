package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexstar1995/vending-machine-application/internal/pkg/database"
	"github.com/alexstar1995/vending-machine-application/internal/vending/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProductsRepository struct {
	db database.QueryExecuter
}

func NewProductsRepository(db database.QueryExecuter) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

func (r *ProductsRepository) CreateProduct(ctx context.Context, name string, cost, stock uint32, sellerID uuid.UUID) (domain.Product, error) {
	creationSQL := `INSERT INTO products (id, name, cost, stock, seller_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, name, cost, stock, seller_id`

	var product domain.Product
	row := r.db.QueryRow(ctx, creationSQL, uuid.New(), name, cost, stock, sellerID)
	err := row.Scan(&product.ID, &product.Name, &product.Cost, &product.Stock, &product.SellerID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Product{}, &domain.AlreadyExistsError{Msg: fmt.Sprintf("product %s already exists", name)}
		}

		return domain.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (r *ProductsRepository) GetProduct(ctx context.Context, productID uuid.UUID) (domain.Product, error) {
	findSQL := `SELECT id, name, cost, stock, seller_id FROM products WHERE id = $1`

	var product domain.Product
	err := r.db.QueryRow(ctx, findSQL, productID).Scan(&product.ID, &product.Name, &product.Cost, &product.Stock, &product.SellerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, &domain.ProductNotFoundError{Msg: fmt.Sprintf("product %s not found", productID)}
		}

		return domain.Product{}, fmt.Errorf("failed to find product: %w", err)
	}

	return product, nil
}

func (r *ProductsRepository) GetProductByName(ctx context.Context, name string) (domain.Product, error) {
	findSQL := `SELECT id, name, cost, stock, seller_id FROM products WHERE name = $1`

	var product domain.Product
	err := r.db.QueryRow(ctx, findSQL, name).Scan(&product.ID, &product.Name, &product.Cost, &product.Stock, &product.SellerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, &domain.ProductNotFoundError{Msg: fmt.Sprintf("product %s not found", name)}
		}

		return domain.Product{}, fmt.Errorf("failed to find product by name: %w", err)
	}

	return product, nil
}

func (r *ProductsRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	listSQL := `SELECT id, name, cost, stock, seller_id FROM products ORDER BY name`

	rows, err := r.db.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		var product domain.Product
		err = rows.Scan(&product.ID, &product.Name, &product.Cost, &product.Stock, &product.SellerID)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

// UpdateProduct never touches seller_id: the owner of a product is immutable
// after creation.
func (r *ProductsRepository) UpdateProduct(ctx context.Context, productID uuid.UUID, name string, cost, stock uint32) (domain.Product, error) {
	updateSQL := `UPDATE products SET name = $2, cost = $3, stock = $4 WHERE id = $1
RETURNING id, name, cost, stock, seller_id`

	var product domain.Product
	row := r.db.QueryRow(ctx, updateSQL, productID, name, cost, stock)
	err := row.Scan(&product.ID, &product.Name, &product.Cost, &product.Stock, &product.SellerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, &domain.ProductNotFoundError{Msg: fmt.Sprintf("product %s not found", productID)}
		}
		if isUniqueViolation(err) {
			return domain.Product{}, &domain.AlreadyExistsError{Msg: fmt.Sprintf("product %s already exists", name)}
		}

		return domain.Product{}, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

func (r *ProductsRepository) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	deleteSQL := `DELETE FROM products WHERE id = $1`

	tag, err := r.db.Exec(ctx, deleteSQL, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return &domain.ProductNotFoundError{Msg: fmt.Sprintf("product %s not found", productID)}
	}

	return nil
}

// ProductLocker reads a product with a FOR UPDATE row lock, keeping the row
// locked until the enclosing transaction finishes.
type ProductLocker struct {
}

func NewProductLocker() *ProductLocker {
	return &ProductLocker{}
}

func (pl *ProductLocker) LockAndGetProduct(ctx context.Context, querier database.Querier, productID uuid.UUID) (domain.Product, error) {
	lockSQL := `SELECT id, name, cost, stock, seller_id FROM products WHERE id = $1 FOR UPDATE`

	var product domain.Product
	err := querier.QueryRow(ctx, lockSQL, productID).Scan(&product.ID, &product.Name, &product.Cost, &product.Stock, &product.SellerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, &domain.ProductNotFoundError{Msg: fmt.Sprintf("product %s not found", productID)}
		}

		return domain.Product{}, fmt.Errorf("failed to lock product row: %w", err)
	}

	return product, nil
}
