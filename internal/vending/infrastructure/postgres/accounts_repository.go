package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexstar1995/vending-machine-application/internal/pkg/database"
	"github.com/alexstar1995/vending-machine-application/internal/vending/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

type AccountsRepository struct {
	db database.QueryExecuter
}

func NewAccountsRepository(db database.QueryExecuter) *AccountsRepository {
	return &AccountsRepository{
		db: db,
	}
}

func (r *AccountsRepository) CreateAccount(ctx context.Context, username, passwordHash string, role domain.Role) (domain.Account, error) {
	creationSQL := `INSERT INTO accounts (id, username, password_hash, role, balance)
VALUES ($1, $2, $3, $4, 0)
RETURNING id, username, role, balance`

	var account domain.Account
	row := r.db.QueryRow(ctx, creationSQL, uuid.New(), username, passwordHash, role)
	err := row.Scan(&account.ID, &account.Username, &account.Role, &account.Balance)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Account{}, &domain.AlreadyExistsError{Msg: fmt.Sprintf("username %s already exists", username)}
		}

		return domain.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	return account, nil
}

func (r *AccountsRepository) GetAccount(ctx context.Context, accountID uuid.UUID) (domain.Account, error) {
	findSQL := `SELECT id, username, role, balance FROM accounts WHERE id = $1`

	var account domain.Account
	err := r.db.QueryRow(ctx, findSQL, accountID).Scan(&account.ID, &account.Username, &account.Role, &account.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Account{}, &domain.AccountNotFoundError{Msg: fmt.Sprintf("account %s not found", accountID)}
		}

		return domain.Account{}, fmt.Errorf("failed to find account: %w", err)
	}

	return account, nil
}

func (r *AccountsRepository) GetAccountByUsername(ctx context.Context, username string) (domain.Account, error) {
	findSQL := `SELECT id, username, role, balance FROM accounts WHERE username = $1`

	var account domain.Account
	err := r.db.QueryRow(ctx, findSQL, username).Scan(&account.ID, &account.Username, &account.Role, &account.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Account{}, &domain.AccountNotFoundError{Msg: fmt.Sprintf("username %s not found", username)}
		}

		return domain.Account{}, fmt.Errorf("failed to find account by username: %w", err)
	}

	return account, nil
}

func (r *AccountsRepository) TryGetCredentials(ctx context.Context, username string) (domain.AccountCredentials, bool, error) {
	findSQL := `SELECT id, username, role, password_hash FROM accounts WHERE username = $1`

	var creds domain.AccountCredentials
	err := r.db.QueryRow(ctx, findSQL, username).Scan(&creds.ID, &creds.Username, &creds.Role, &creds.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.AccountCredentials{}, false, nil
		}

		return domain.AccountCredentials{}, false, fmt.Errorf("failed to find credentials: %w", err)
	}

	return creds, true, nil
}

func (r *AccountsRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	listSQL := `SELECT id, username, role, balance FROM accounts ORDER BY username`

	rows, err := r.db.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]domain.Account, 0)
	for rows.Next() {
		var account domain.Account
		err = rows.Scan(&account.ID, &account.Username, &account.Role, &account.Balance)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

func (r *AccountsRepository) UpdateAccount(ctx context.Context, accountID uuid.UUID, username, passwordHash string, role domain.Role, resetBalance bool) (domain.Account, error) {
	updateSQL := `UPDATE accounts
SET username = $2, password_hash = $3, role = $4, balance = CASE WHEN $5 THEN 0 ELSE balance END
WHERE id = $1
RETURNING id, username, role, balance`

	var account domain.Account
	row := r.db.QueryRow(ctx, updateSQL, accountID, username, passwordHash, role, resetBalance)
	err := row.Scan(&account.ID, &account.Username, &account.Role, &account.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Account{}, &domain.AccountNotFoundError{Msg: fmt.Sprintf("account %s not found", accountID)}
		}
		if isUniqueViolation(err) {
			return domain.Account{}, &domain.AlreadyExistsError{Msg: fmt.Sprintf("username %s already exists", username)}
		}

		return domain.Account{}, fmt.Errorf("failed to update account: %w", err)
	}

	return account, nil
}

func (r *AccountsRepository) DeleteAccount(ctx context.Context, accountID uuid.UUID) error {
	deleteSQL := `DELETE FROM accounts WHERE id = $1`

	tag, err := r.db.Exec(ctx, deleteSQL, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return &domain.AccountNotFoundError{Msg: fmt.Sprintf("account %s not found", accountID)}
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
