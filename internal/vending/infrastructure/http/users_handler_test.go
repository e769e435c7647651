package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	mock_domain "github.com/alexstar1995/vending-machine-application/gen/mocks/domain"
	"github.com/alexstar1995/vending-machine-application/internal/pkg/jwt"
	"github.com/alexstar1995/vending-machine-application/internal/pkg/logging"
	"github.com/alexstar1995/vending-machine-application/internal/vending/application"
	"github.com/alexstar1995/vending-machine-application/internal/vending/domain"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersHandler_Deposit(t *testing.T) {
	t.Parallel()

	buyerID := uuid.New()
	buyer := domain.Identity{AccountID: buyerID, Username: "buyer", Role: domain.RoleBuyer}
	seller := domain.Identity{AccountID: uuid.New(), Username: "seller", Role: domain.RoleSeller}

	type testCase struct {
		name     string
		identity *domain.Identity
		body     string

		expectedStatus int

		prepareFn       func(t *testing.T, ledger *mock_domain.MockAccountLedger)
		checkResponseFn func(t *testing.T, recorder *httptest.ResponseRecorder)
	}

	tests := []testCase{
		{
			name:     "successful deposit",
			identity: &buyer,
			body:     `{"coin": 50}`,

			expectedStatus: http.StatusOK,

			prepareFn: func(t *testing.T, ledger *mock_domain.MockAccountLedger) {
				ledger.EXPECT().Deposit(gomock.Any(), buyerID, uint32(50)).Return(uint32(70), nil)
			},
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				var response struct {
					Username string `json:"username"`
					Deposit  uint32 `json:"deposit"`
				}
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
				assert.Equal(t, "buyer", response.Username)
				assert.Equal(t, uint32(70), response.Deposit)
			},
		},
		{
			name:     "rejected coin",
			identity: &buyer,
			body:     `{"coin": 7}`,

			expectedStatus: http.StatusBadRequest,

			prepareFn: func(t *testing.T, ledger *mock_domain.MockAccountLedger) {},
		},
		{
			name:     "seller cannot deposit",
			identity: &seller,
			body:     `{"coin": 50}`,

			expectedStatus: http.StatusForbidden,

			prepareFn: func(t *testing.T, ledger *mock_domain.MockAccountLedger) {},
		},
		{
			name:     "unauthenticated request",
			identity: nil,
			body:     `{"coin": 50}`,

			expectedStatus: http.StatusUnauthorized,

			prepareFn: func(t *testing.T, ledger *mock_domain.MockAccountLedger) {},
		},
		{
			name:     "malformed body",
			identity: &buyer,
			body:     `{"coin": "fifty"}`,

			expectedStatus: http.StatusBadRequest,

			prepareFn: func(t *testing.T, ledger *mock_domain.MockAccountLedger) {},
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			accounts := mock_domain.NewMockAccountsRepository(ctrl)
			ledger := mock_domain.NewMockAccountLedger(ctrl)
			tt.prepareFn(t, ledger)

			coins, err := domain.NewCoinSet([]uint32{5, 10, 20, 50, 100})
			require.NoError(t, err)

			hasher := domain.NewArgonPasswordHasher()
			accountCase := application.NewAccountCase(accounts, ledger, hasher, domain.NewAuthorizationGate(), coins, logging.StdoutLogger)
			authenticator := application.NewAuthenticator(accounts, hasher, jwt.NewJWTTokenIssuer(), "secret")
			handler := NewUsersHandler(authenticator, accountCase)

			writer := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(writer)
			c.Request = httptest.NewRequest(http.MethodPut, "/", bytes.NewBufferString(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")
			if tt.identity != nil {
				c.Set(identityContextKey, *tt.identity)
			}

			handler.Deposit(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
			if tt.checkResponseFn != nil {
				tt.checkResponseFn(t, writer)
			}
		})
	}
}
