package postgres

import (
	"context"
	"fmt"

	"github.com/alexstar1995/vending-machine-application/internal/pkg/database"
	"github.com/alexstar1995/vending-machine-application/internal/vending/domain"
	"github.com/google/uuid"
)

// Purchaser applies both sides of a purchase on the caller's transaction
// executor. Each update is a conditional server-side decrement that refuses
// to drive the value negative; the row lock taken earlier in the transaction
// makes the affordability check and the decrement one critical section, and
// the conditional update guards the invariant even if that discipline is ever
// broken.
type Purchaser struct {
}

func NewPurchaser() *Purchaser {
	return &Purchaser{}
}

func (p *Purchaser) ApplyPurchase(ctx context.Context, executor database.Executor, buyerID, productID uuid.UUID, quantity, cost uint32) error {
	decrementStockSQL := `UPDATE products SET stock = stock - $1 WHERE id = $2 AND stock >= $1`
	tag, err := executor.Exec(ctx, decrementStockSQL, quantity, productID)
	if err != nil {
		return fmt.Errorf("failed to decrement product stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.InsufficientBalanceError{Msg: "insufficient stock"}
	}

	decrementBalanceSQL := `UPDATE accounts SET balance = balance - $1 WHERE id = $2 AND balance >= $1`
	tag, err = executor.Exec(ctx, decrementBalanceSQL, cost, buyerID)
	if err != nil {
		return fmt.Errorf("failed to decrement buyer balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.InsufficientBalanceError{Msg: "insufficient balance"}
	}

	return nil
}
