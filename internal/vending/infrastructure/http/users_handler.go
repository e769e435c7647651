package http

import (
	"net/http"

	"github.com/alexstar1995/vending-machine-application/internal/vending/application"
	"github.com/alexstar1995/vending-machine-application/internal/vending/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const UsernameKey = "username"

type signupRequestBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type loginRequestBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type depositRequestBody struct {
	Coin uint32 `json:"coin" binding:"required,gt=0"`
}

type userResponseBody struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	Deposit  uint32    `json:"deposit"`
}

func toUserResponse(account domain.Account) userResponseBody {
	return userResponseBody{
		ID:       account.ID,
		Username: account.Username,
		Role:     string(account.Role),
		Deposit:  account.Balance,
	}
}

type UsersHandler struct {
	authenticator *application.Authenticator
	accountCase   *application.AccountCase
}

func NewUsersHandler(authenticator *application.Authenticator, accountCase *application.AccountCase) *UsersHandler {
	return &UsersHandler{
		authenticator: authenticator,
		accountCase:   accountCase,
	}
}

func (h *UsersHandler) Login(c *gin.Context) {
	var body loginRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	token, err := h.authenticator.Authenticate(c.Request.Context(), body.Username, body.Password)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *UsersHandler) Signup(c *gin.Context) {
	var body signupRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	account, err := h.accountCase.Register(c.Request.Context(), body.Username, body.Password, body.Role)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(account))
}

func (h *UsersHandler) GetUser(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "unauthenticated"})
		return
	}

	account, err := h.accountCase.GetByUsername(c.Request.Context(), identity, c.Param(UsernameKey))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(account))
}

func (h *UsersHandler) GetAllUsers(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "unauthenticated"})
		return
	}

	accounts, err := h.accountCase.List(c.Request.Context(), identity)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	response := make([]userResponseBody, 0, len(accounts))
	for _, account := range accounts {
		response = append(response, toUserResponse(account))
	}

	c.JSON(http.StatusOK, response)
}

func (h *UsersHandler) UpdateUser(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "unauthenticated"})
		return
	}

	var body signupRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	account, err := h.accountCase.Update(c.Request.Context(), identity, body.Username, body.Password, body.Role)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(account))
}

func (h *UsersHandler) DeleteUser(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "unauthenticated"})
		return
	}

	if err := h.accountCase.Delete(c.Request.Context(), identity); err != nil {
		handleDomainError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (h *UsersHandler) Deposit(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "unauthenticated"})
		return
	}

	var body depositRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	account, err := h.accountCase.Deposit(c.Request.Context(), identity, body.Coin)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(account))
}

func (h *UsersHandler) ResetDeposit(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "unauthenticated"})
		return
	}

	account, err := h.accountCase.ResetDeposit(c.Request.Context(), identity)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(account))
}
