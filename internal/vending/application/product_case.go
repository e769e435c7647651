package application

import (
	"context"

	"github.com/alexstar1995/vending-machine-application/internal/pkg/logging"
	"github.com/alexstar1995/vending-machine-application/internal/vending/domain"
	"github.com/google/uuid"
)

type ProductCase struct {
	products domain.ProductsRepository
	accounts domain.AccountsRepository
	gate     *domain.AuthorizationGate
	logger   logging.Logger
}

func NewProductCase(
	products domain.ProductsRepository,
	accounts domain.AccountsRepository,
	gate *domain.AuthorizationGate,
	logger logging.Logger,
) *ProductCase {
	return &ProductCase{
		products: products,
		accounts: accounts,
		gate:     gate,
		logger:   logger,
	}
}

func (pc *ProductCase) Create(ctx context.Context, identity domain.Identity, name string, cost, stock uint32) (domain.Product, error) {
	if err := pc.gate.Allow(identity, domain.ActionCreateProduct, uuid.Nil); err != nil {
		return domain.Product{}, err
	}

	if name == "" {
		return domain.Product{}, &domain.InvalidInputError{Msg: "product name is required"}
	}

	if err := domain.ValidateCost(cost); err != nil {
		return domain.Product{}, err
	}

	// The seller comes from the authenticated identity, but the account may
	// have been deleted after the token was issued.
	if _, err := pc.accounts.GetAccount(ctx, identity.AccountID); err != nil {
		return domain.Product{}, err
	}

	product, err := pc.products.CreateProduct(ctx, name, cost, stock, identity.AccountID)
	if err != nil {
		return domain.Product{}, err
	}

	pc.logger.Info("created product", "product_id", product.ID, "seller_id", product.SellerID)
	return product, nil
}

// Update re-validates the cost and rejects any attempt to hand the product to
// a different seller.
func (pc *ProductCase) Update(ctx context.Context, identity domain.Identity, productID uuid.UUID, name string, cost, stock uint32, sellerID uuid.UUID) (domain.Product, error) {
	existing, err := pc.products.GetProduct(ctx, productID)
	if err != nil {
		return domain.Product{}, err
	}

	if err := pc.gate.Allow(identity, domain.ActionUpdateProduct, existing.SellerID); err != nil {
		return domain.Product{}, err
	}

	if sellerID != uuid.Nil && sellerID != existing.SellerID {
		return domain.Product{}, &domain.OwnershipViolationError{Msg: "cannot change the seller of a product"}
	}

	if name == "" {
		return domain.Product{}, &domain.InvalidInputError{Msg: "product name is required"}
	}

	if err := domain.ValidateCost(cost); err != nil {
		return domain.Product{}, err
	}

	product, err := pc.products.UpdateProduct(ctx, productID, name, cost, stock)
	if err != nil {
		return domain.Product{}, err
	}

	pc.logger.Info("updated product", "product_id", product.ID)
	return product, nil
}

func (pc *ProductCase) Delete(ctx context.Context, identity domain.Identity, productID uuid.UUID) error {
	existing, err := pc.products.GetProduct(ctx, productID)
	if err != nil {
		return err
	}

	if err := pc.gate.Allow(identity, domain.ActionDeleteProduct, existing.SellerID); err != nil {
		return err
	}

	return pc.products.DeleteProduct(ctx, productID)
}

func (pc *ProductCase) GetByID(ctx context.Context, productID uuid.UUID) (domain.Product, error) {
	return pc.products.GetProduct(ctx, productID)
}

func (pc *ProductCase) GetByName(ctx context.Context, name string) (domain.Product, error) {
	return pc.products.GetProductByName(ctx, name)
}

func (pc *ProductCase) List(ctx context.Context) ([]domain.Product, error) {
	return pc.products.ListProducts(ctx)
}
