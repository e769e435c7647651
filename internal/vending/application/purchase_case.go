package application

import (
	"context"

	"github.com/alexstar1995/vending-machine-application/internal/pkg/database"
	"github.com/alexstar1995/vending-machine-application/internal/pkg/logging"
	"github.com/alexstar1995/vending-machine-application/internal/vending/domain"
	"github.com/google/uuid"
)

// PurchaseCase coordinates a purchase: it locks the product and the buyer's
// balance for the span of one transaction, clamps the requested quantity to
// what is in stock and what the buyer can afford, and applies both decrements
// through conditional server-side updates. An unaffordable or out-of-stock
// request is reduced, never rejected: a zero-quantity receipt is a successful
// outcome.
type PurchaseCase struct {
	productLocker domain.ProductLocker
	balanceLocker domain.BalanceLocker
	purchaser     domain.PurchaseApplier
	txManager     database.TxManager
	gate          *domain.AuthorizationGate
	coins         domain.CoinSet
	logger        logging.Logger
}

func NewPurchaseCase(
	productLocker domain.ProductLocker,
	balanceLocker domain.BalanceLocker,
	purchaser domain.PurchaseApplier,
	txManager database.TxManager,
	gate *domain.AuthorizationGate,
	coins domain.CoinSet,
	logger logging.Logger,
) *PurchaseCase {
	return &PurchaseCase{
		productLocker: productLocker,
		balanceLocker: balanceLocker,
		purchaser:     purchaser,
		txManager:     txManager,
		gate:          gate,
		coins:         coins,
		logger:        logger,
	}
}

func (pc *PurchaseCase) Buy(ctx context.Context, identity domain.Identity, productID uuid.UUID, amount uint32) (domain.PurchaseReceipt, error) {
	if err := pc.gate.Allow(identity, domain.ActionBuy, uuid.Nil); err != nil {
		return domain.PurchaseReceipt{}, err
	}

	if amount == 0 {
		return domain.PurchaseReceipt{}, &domain.InvalidInputError{Msg: "amount must be positive"}
	}

	var receipt domain.PurchaseReceipt

	err := pc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		product, err := pc.productLocker.LockAndGetProduct(ctx, executor, productID)
		if err != nil {
			return err
		}

		balance, err := pc.balanceLocker.LockAndGetBalance(ctx, executor, identity.AccountID)
		if err != nil {
			return err
		}

		quantity := min(amount, product.Stock)

		// Compare in uint64: quantity*cost can exceed uint32 range before the
		// affordability clamp brings it under the balance.
		if uint64(quantity)*uint64(product.Cost) > uint64(balance) {
			quantity = balance / product.Cost
		}
		cost := quantity * product.Cost

		if quantity == 0 {
			receipt = domain.PurchaseReceipt{ProductID: productID, Change: []uint32{}}
			return nil
		}

		err = pc.purchaser.ApplyPurchase(ctx, executor, identity.AccountID, productID, quantity, cost)
		if err != nil {
			return err
		}

		receipt = domain.PurchaseReceipt{
			ProductID:  productID,
			Quantity:   quantity,
			TotalSpent: cost,
			Change:     domain.MakeChange(balance-cost, pc.coins),
		}
		return nil
	})
	if err != nil {
		return domain.PurchaseReceipt{}, err
	}

	pc.logger.Info("processed purchase",
		"buyer_id", identity.AccountID,
		"product_id", receipt.ProductID,
		"quantity", receipt.Quantity,
		"total_spent", receipt.TotalSpent,
	)
	return receipt, nil
}
