package application

import (
	"context"
	"time"

	"github.com/alexstar1995/vending-machine-application/internal/pkg/jwt"
	"github.com/alexstar1995/vending-machine-application/internal/vending/domain"
)

const tokenTimeLimit = time.Hour

type Authenticator struct {
	accounts       domain.AccountsRepository
	passwordHasher domain.PasswordHasher
	tokenIssuer    jwt.TokenIssuer
	secretKey      []byte
}

func NewAuthenticator(
	accounts domain.AccountsRepository,
	passwordHasher domain.PasswordHasher,
	tokenIssuer jwt.TokenIssuer,
	secretKey string,
) *Authenticator {
	return &Authenticator{
		accounts:       accounts,
		passwordHasher: passwordHasher,
		tokenIssuer:    tokenIssuer,
		secretKey:      []byte(secretKey),
	}
}

// Authenticate verifies the credentials and issues a signed token carrying
// the account id, username and role. Unknown usernames and wrong passwords
// fail the same way, so callers cannot probe for registered names.
func (a *Authenticator) Authenticate(ctx context.Context, username, password string) (string, error) {
	creds, found, err := a.accounts.TryGetCredentials(ctx, username)
	if err != nil {
		return "", err
	}

	if !found {
		return "", &domain.CredentialsMismatchError{Msg: "username or password is incorrect"}
	}

	valid, err := a.passwordHasher.VerifyPassword(password, creds.PasswordHash)
	if err != nil {
		return "", err
	}

	if !valid {
		return "", &domain.CredentialsMismatchError{Msg: "username or password is incorrect"}
	}

	return a.tokenIssuer.IssueToken(a.secretKey, creds.ID, creds.Username, string(creds.Role), tokenTimeLimit)
}
