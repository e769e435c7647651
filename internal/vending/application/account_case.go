package application

import (
	"context"
	"fmt"

	"github.com/alexstar1995/vending-machine-application/internal/pkg/logging"
	"github.com/alexstar1995/vending-machine-application/internal/vending/domain"
	"github.com/google/uuid"
)

type AccountCase struct {
	accounts       domain.AccountsRepository
	ledger         domain.AccountLedger
	passwordHasher domain.PasswordHasher
	gate           *domain.AuthorizationGate
	coins          domain.CoinSet
	logger         logging.Logger
}

func NewAccountCase(
	accounts domain.AccountsRepository,
	ledger domain.AccountLedger,
	passwordHasher domain.PasswordHasher,
	gate *domain.AuthorizationGate,
	coins domain.CoinSet,
	logger logging.Logger,
) *AccountCase {
	return &AccountCase{
		accounts:       accounts,
		ledger:         ledger,
		passwordHasher: passwordHasher,
		gate:           gate,
		coins:          coins,
		logger:         logger,
	}
}

// Register creates an account with a zero balance. Signup is open to anyone.
func (ac *AccountCase) Register(ctx context.Context, username, password, role string) (domain.Account, error) {
	if username == "" || password == "" {
		return domain.Account{}, &domain.InvalidInputError{Msg: "username and password are required"}
	}

	parsedRole, err := domain.ParseRole(role)
	if err != nil {
		return domain.Account{}, err
	}

	passwordHash, err := ac.passwordHasher.HashPassword(password)
	if err != nil {
		return domain.Account{}, err
	}

	account, err := ac.accounts.CreateAccount(ctx, username, passwordHash, parsedRole)
	if err != nil {
		return domain.Account{}, err
	}

	ac.logger.Info("registered account", "username", account.Username, "role", account.Role)
	return account, nil
}

func (ac *AccountCase) GetByUsername(ctx context.Context, identity domain.Identity, username string) (domain.Account, error) {
	if err := ac.gate.Allow(identity, domain.ActionReadAccount, uuid.Nil); err != nil {
		return domain.Account{}, err
	}

	return ac.accounts.GetAccountByUsername(ctx, username)
}

func (ac *AccountCase) List(ctx context.Context, identity domain.Identity) ([]domain.Account, error) {
	if err := ac.gate.Allow(identity, domain.ActionReadAccount, uuid.Nil); err != nil {
		return nil, err
	}

	return ac.accounts.ListAccounts(ctx)
}

// Update changes the caller's own account. The balance cannot be changed
// through this path; switching role resets the balance to 0.
func (ac *AccountCase) Update(ctx context.Context, identity domain.Identity, username, password, role string) (domain.Account, error) {
	if err := ac.gate.Allow(identity, domain.ActionUpdateAccount, identity.AccountID); err != nil {
		return domain.Account{}, err
	}

	if username == "" || password == "" {
		return domain.Account{}, &domain.InvalidInputError{Msg: "username and password are required"}
	}

	parsedRole, err := domain.ParseRole(role)
	if err != nil {
		return domain.Account{}, err
	}

	current, err := ac.accounts.GetAccount(ctx, identity.AccountID)
	if err != nil {
		return domain.Account{}, err
	}

	passwordHash, err := ac.passwordHasher.HashPassword(password)
	if err != nil {
		return domain.Account{}, err
	}

	resetBalance := current.Role != parsedRole
	account, err := ac.accounts.UpdateAccount(ctx, identity.AccountID, username, passwordHash, parsedRole, resetBalance)
	if err != nil {
		return domain.Account{}, err
	}

	ac.logger.Info("updated account", "account_id", account.ID, "balance_reset", resetBalance)
	return account, nil
}

func (ac *AccountCase) Delete(ctx context.Context, identity domain.Identity) error {
	if err := ac.gate.Allow(identity, domain.ActionDeleteAccount, identity.AccountID); err != nil {
		return err
	}

	return ac.accounts.DeleteAccount(ctx, identity.AccountID)
}

// Deposit adds a single coin to the caller's balance. The coin must be one of
// the accepted denominations.
func (ac *AccountCase) Deposit(ctx context.Context, identity domain.Identity, coin uint32) (domain.Account, error) {
	if err := ac.gate.Allow(identity, domain.ActionDeposit, uuid.Nil); err != nil {
		return domain.Account{}, err
	}

	if !ac.coins.Contains(coin) {
		return domain.Account{}, &domain.InvalidInputError{
			Msg: fmt.Sprintf("coin %d is not in the allowed set %s", coin, ac.coins),
		}
	}

	balance, err := ac.ledger.Deposit(ctx, identity.AccountID, coin)
	if err != nil {
		return domain.Account{}, err
	}

	ac.logger.Info("deposited coin", "account_id", identity.AccountID, "coin", coin)
	return domain.Account{ID: identity.AccountID, Username: identity.Username, Role: identity.Role, Balance: balance}, nil
}

func (ac *AccountCase) ResetDeposit(ctx context.Context, identity domain.Identity) (domain.Account, error) {
	if err := ac.gate.Allow(identity, domain.ActionResetDeposit, uuid.Nil); err != nil {
		return domain.Account{}, err
	}

	balance, err := ac.ledger.ResetBalance(ctx, identity.AccountID)
	if err != nil {
		return domain.Account{}, err
	}

	ac.logger.Info("reset deposit", "account_id", identity.AccountID)
	return domain.Account{ID: identity.AccountID, Username: identity.Username, Role: identity.Role, Balance: balance}, nil
}
