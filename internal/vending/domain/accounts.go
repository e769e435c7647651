package domain

import (
	"context"

	"github.com/alexstar1995/vending-machine-application/internal/pkg/database"
	"github.com/google/uuid"
)

type Role string

const (
	RoleBuyer  Role = "BUYER"
	RoleSeller Role = "SELLER"
)

func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleBuyer, RoleSeller:
		return Role(value), nil
	default:
		return "", &InvalidInputError{Msg: "role must be BUYER or SELLER"}
	}
}

type Account struct {
	ID       uuid.UUID
	Username string
	Role     Role
	Balance  uint32
}

type AccountCredentials struct {
	ID           uuid.UUID
	Username     string
	Role         Role
	PasswordHash string
}

type AccountsRepository interface {
	CreateAccount(ctx context.Context, username, passwordHash string, role Role) (Account, error)
	GetAccount(ctx context.Context, accountID uuid.UUID) (Account, error)
	GetAccountByUsername(ctx context.Context, username string) (Account, error)
	TryGetCredentials(ctx context.Context, username string) (AccountCredentials, bool, error)
	ListAccounts(ctx context.Context) ([]Account, error)
	UpdateAccount(ctx context.Context, accountID uuid.UUID, username, passwordHash string, role Role, resetBalance bool) (Account, error)
	DeleteAccount(ctx context.Context, accountID uuid.UUID) error
}

// AccountLedger owns every mutation of an account balance. All three
// operations are single server-side arithmetic updates, never a
// read-modify-write round trip.
type AccountLedger interface {
	// Deposit adds coin to the balance and returns the updated balance.
	Deposit(ctx context.Context, accountID uuid.UUID, coin uint32) (uint32, error)
	// ResetBalance sets the balance to 0 and returns the new balance,
	// which is always 0.
	ResetBalance(ctx context.Context, accountID uuid.UUID) (uint32, error)
}

// BalanceLocker reads a balance under a row lock held for the rest of the
// enclosing transaction.
type BalanceLocker interface {
	LockAndGetBalance(ctx context.Context, querier database.Querier, accountID uuid.UUID) (uint32, error)
}
