package domain

import (
	"context"

	"github.com/alexstar1995/vending-machine-application/internal/pkg/database"
	"github.com/google/uuid"
)

type Product struct {
	ID       uuid.UUID
	Name     string
	Cost     uint32
	Stock    uint32
	SellerID uuid.UUID
}

// ValidateCost enforces that a product cost is a positive multiple of 5.
func ValidateCost(cost uint32) error {
	if cost == 0 || cost%5 != 0 {
		return &InvalidInputError{Msg: "product cost must be a positive multiple of 5"}
	}

	return nil
}

type ProductsRepository interface {
	CreateProduct(ctx context.Context, name string, cost, stock uint32, sellerID uuid.UUID) (Product, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (Product, error)
	GetProductByName(ctx context.Context, name string) (Product, error)
	ListProducts(ctx context.Context) ([]Product, error)
	UpdateProduct(ctx context.Context, productID uuid.UUID, name string, cost, stock uint32) (Product, error)
	DeleteProduct(ctx context.Context, productID uuid.UUID) error
}

// ProductLocker reads a product under a row lock held for the rest of the
// enclosing transaction.
type ProductLocker interface {
	LockAndGetProduct(ctx context.Context, querier database.Querier, productID uuid.UUID) (Product, error)
}
