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

// AccountsLedger performs balance mutations as single server-side arithmetic
// updates. The balance is never read, recomputed and written back, so
// concurrent mutations cannot lose updates.
type AccountsLedger struct {
	db database.QueryExecuter
}

func NewAccountsLedger(db database.QueryExecuter) *AccountsLedger {
	return &AccountsLedger{
		db: db,
	}
}

func (l *AccountsLedger) Deposit(ctx context.Context, accountID uuid.UUID, coin uint32) (uint32, error) {
	depositSQL := `UPDATE accounts SET balance = balance + $1 WHERE id = $2 RETURNING balance`

	var balance uint32
	err := l.db.QueryRow(ctx, depositSQL, coin, accountID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &domain.AccountNotFoundError{Msg: fmt.Sprintf("account %s not found", accountID)}
		}

		return 0, fmt.Errorf("failed to deposit coin: %w", err)
	}

	return balance, nil
}

// ResetBalance sets the balance to 0 and returns the new balance (always 0).
func (l *AccountsLedger) ResetBalance(ctx context.Context, accountID uuid.UUID) (uint32, error) {
	resetSQL := `UPDATE accounts SET balance = 0 WHERE id = $1 RETURNING balance`

	var balance uint32
	err := l.db.QueryRow(ctx, resetSQL, accountID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &domain.AccountNotFoundError{Msg: fmt.Sprintf("account %s not found", accountID)}
		}

		return 0, fmt.Errorf("failed to reset balance: %w", err)
	}

	return balance, nil
}

// BalanceLocker reads an account balance with a FOR UPDATE row lock, keeping
// the row locked until the enclosing transaction finishes.
type BalanceLocker struct {
}

func NewBalanceLocker() *BalanceLocker {
	return &BalanceLocker{}
}

func (bl *BalanceLocker) LockAndGetBalance(ctx context.Context, querier database.Querier, accountID uuid.UUID) (uint32, error) {
	lockSQL := `SELECT balance FROM accounts WHERE id = $1 FOR UPDATE`

	var balance uint32
	err := querier.QueryRow(ctx, lockSQL, accountID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &domain.AccountNotFoundError{Msg: fmt.Sprintf("account %s not found", accountID)}
		}

		return 0, fmt.Errorf("failed to lock account row: %w", err)
	}

	return balance, nil
}
