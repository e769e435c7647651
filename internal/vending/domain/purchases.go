package domain

import (
	"context"

	"github.com/alexstar1995/vending-machine-application/internal/pkg/database"
	"github.com/google/uuid"
)

// PurchaseReceipt is returned once per purchase and never persisted.
type PurchaseReceipt struct {
	ProductID  uuid.UUID
	Quantity   uint32
	TotalSpent uint32
	Change     []uint32
}

// PurchaseApplier commits both sides of a purchase: the stock decrement and
// the balance decrement. Both updates are conditional server-side decrements
// executed on the same transaction executor, so either both apply or the
// transaction rolls back.
type PurchaseApplier interface {
	ApplyPurchase(ctx context.Context, executor database.Executor, buyerID, productID uuid.UUID, quantity, cost uint32) error
}
