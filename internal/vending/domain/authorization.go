package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Identity is the authenticated actor of a request, as resolved from its
// credentials by the auth layer.
type Identity struct {
	AccountID uuid.UUID
	Username  string
	Role      Role
}

type Action string

const (
	ActionReadProduct   Action = "product:read"
	ActionCreateProduct Action = "product:create"
	ActionUpdateProduct Action = "product:update"
	ActionDeleteProduct Action = "product:delete"
	ActionBuy           Action = "product:buy"

	ActionReadAccount   Action = "account:read"
	ActionUpdateAccount Action = "account:update"
	ActionDeleteAccount Action = "account:delete"
	ActionDeposit       Action = "account:deposit"
	ActionResetDeposit  Action = "account:reset-deposit"
)

// AuthorizationGate is the single place where role and ownership rules live.
// Ownership is always decided by stable id equality, never by comparing
// entity values.
type AuthorizationGate struct {
}

func NewAuthorizationGate() *AuthorizationGate {
	return &AuthorizationGate{}
}

// Allow reports whether identity may perform action on the resource owned by
// ownerID. Actions without a resource pass uuid.Nil as ownerID. A role
// mismatch fails with OperationNotAllowedError; acting on a resource owned by
// someone else fails with OwnershipViolationError.
func (g *AuthorizationGate) Allow(identity Identity, action Action, ownerID uuid.UUID) error {
	switch action {
	case ActionReadProduct:
		return nil

	case ActionCreateProduct:
		return g.requireRole(identity, RoleSeller, action)

	case ActionUpdateProduct, ActionDeleteProduct:
		if err := g.requireRole(identity, RoleSeller, action); err != nil {
			return err
		}
		if identity.AccountID != ownerID {
			return &OwnershipViolationError{Msg: "cannot alter a product not created by you"}
		}
		return nil

	case ActionBuy, ActionDeposit, ActionResetDeposit:
		return g.requireRole(identity, RoleBuyer, action)

	case ActionReadAccount:
		return nil

	case ActionUpdateAccount, ActionDeleteAccount:
		if identity.AccountID != ownerID {
			return &OperationNotAllowedError{Msg: "cannot act on another user's account"}
		}
		return nil

	default:
		return &OperationNotAllowedError{Msg: fmt.Sprintf("unknown action %s", action)}
	}
}

func (g *AuthorizationGate) requireRole(identity Identity, role Role, action Action) error {
	if identity.Role != role {
		return &OperationNotAllowedError{Msg: fmt.Sprintf("action %s requires role %s", action, role)}
	}

	return nil
}
