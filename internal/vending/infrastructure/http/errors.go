package http

import (
	"errors"
	"net/http"

	"github.com/alexstar1995/vending-machine-application/internal/vending/domain"
	"github.com/gin-gonic/gin"
)

// handleDomainError maps typed domain failures onto conventional status
// codes: not-found to 404, business-rule violations to 400, authorization
// failures to 403. Anything unrecognized is a 500 with a generic body.
func handleDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, &domain.AccountNotFoundError{}),
		errors.Is(err, &domain.ProductNotFoundError{}):
		c.JSON(http.StatusNotFound, gin.H{"errors": err.Error()})

	case errors.Is(err, &domain.AlreadyExistsError{}),
		errors.Is(err, &domain.InvalidInputError{}),
		errors.Is(err, &domain.InsufficientBalanceError{}):
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})

	case errors.Is(err, &domain.OwnershipViolationError{}),
		errors.Is(err, &domain.OperationNotAllowedError{}):
		c.JSON(http.StatusForbidden, gin.H{"errors": err.Error()})

	case errors.Is(err, &domain.CredentialsMismatchError{}):
		c.JSON(http.StatusUnauthorized, gin.H{"errors": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
	}
}
