package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/alexstar1995/vending-machine-application/internal/pkg/database"
	"github.com/alexstar1995/vending-machine-application/internal/pkg/logging"
	"github.com/alexstar1995/vending-machine-application/internal/vending/bootstrap"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/jackc/pgx/v5/stdlib"

	"testing"

	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const baseUrl = "http://localhost:8080/api/v1"

type authResponse struct {
	Token string `json:"token"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Deposit  uint32 `json:"deposit"`
}

type productResponse struct {
	ID       string `json:"id"`
	Name     string `json:"productName"`
	Cost     uint32 `json:"cost"`
	Stock    uint32 `json:"amountAvailable"`
	SellerID string `json:"sellerId"`
}

type buyResponse struct {
	ProductID  string   `json:"productId"`
	Quantity   uint32   `json:"numberOfProducts"`
	TotalSpent uint32   `json:"totalSpent"`
	Change     []uint32 `json:"change"`
}

func TestVendingScenario(t *testing.T) {
	logger := logging.StdoutLogger
	gin.SetMode(gin.TestMode)

	pg, err := postgres.Run(
		t.Context(),
		"postgres:16-alpine",
		postgres.WithDatabase("vending_db"),
		postgres.WithUsername("admin"),
		postgres.WithPassword("password"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(t.Context()) })

	connStr, err := pg.ConnectionString(t.Context(), "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.Eventually(t, func() bool {
		timeCtx, cancel := context.WithTimeout(t.Context(), 500*time.Millisecond)
		defer cancel()
		return db.PingContext(timeCtx) == nil
	}, 30*time.Second, 500*time.Millisecond)

	dbSettings := database.PostgresSettings{
		User:       "admin",
		Password:   "password",
		DBName:     "vending_db",
		SSlEnabled: false,
	}

	dbHost, err := pg.Host(t.Context())
	require.NoError(t, err)
	dbPort, err := pg.MappedPort(t.Context(), "5432/tcp")
	require.NoError(t, err)

	dbSettings.Host = dbHost
	dbSettings.Port = dbPort.Port()

	cfg := bootstrap.Config{
		HttpPort:     ":8080",
		DbSettings:   dbSettings,
		JwtSecret:    "secret-key",
		AllowedCoins: []uint32{5, 10, 20, 50, 100},
	}
	app := bootstrap.NewVendingApp(cfg, logger)

	go func() {
		err := app.Run(t.Context())
		require.NoError(t, err)
	}()
	t.Cleanup(func() {
		app.Shutdown()
	})

	time.Sleep(5 * time.Second)

	// SIGNUP
	sellerUser := userResponse{}
	doRequest(t, http.MethodPost, baseUrl+"/users/signup", "", map[string]string{
		"username": "seller",
		"password": "seller-password",
		"role":     "SELLER",
	}, &sellerUser)
	assert.Equal(t, "SELLER", sellerUser.Role)
	assert.Zero(t, sellerUser.Deposit)

	buyerUser := userResponse{}
	doRequest(t, http.MethodPost, baseUrl+"/users/signup", "", map[string]string{
		"username": "buyer",
		"password": "buyer-password",
		"role":     "BUYER",
	}, &buyerUser)

	// LOGIN
	sellerAuth := authResponse{}
	doRequest(t, http.MethodPost, baseUrl+"/auth", "", map[string]string{
		"username": "seller",
		"password": "seller-password",
	}, &sellerAuth)

	buyerAuth := authResponse{}
	doRequest(t, http.MethodPost, baseUrl+"/auth", "", map[string]string{
		"username": "buyer",
		"password": "buyer-password",
	}, &buyerAuth)

	// SELLER CREATES A PRODUCT
	product := productResponse{}
	doRequest(t, http.MethodPost, baseUrl+"/products", sellerAuth.Token, map[string]any{
		"productName":     "soda",
		"cost":            20,
		"amountAvailable": 5,
	}, &product)
	assert.Equal(t, sellerUser.ID, product.SellerID)

	// BUYER DEPOSITS 50 + 20
	deposited := userResponse{}
	doRequest(t, http.MethodPut, baseUrl+"/users/deposit", buyerAuth.Token, map[string]any{
		"coin": 50,
	}, &deposited)
	assert.Equal(t, uint32(50), deposited.Deposit)

	doRequest(t, http.MethodPut, baseUrl+"/users/deposit", buyerAuth.Token, map[string]any{
		"coin": 20,
	}, &deposited)
	assert.Equal(t, uint32(70), deposited.Deposit)

	// BUYER BUYS 3 UNITS FOR 60, CHANGE IS A SINGLE 10 COIN
	receipt := buyResponse{}
	doRequest(t, http.MethodPut, baseUrl+"/products/buy", buyerAuth.Token, map[string]any{
		"productId": product.ID,
		"amount":    3,
	}, &receipt)
	assert.Equal(t, product.ID, receipt.ProductID)
	assert.Equal(t, uint32(3), receipt.Quantity)
	assert.Equal(t, uint32(60), receipt.TotalSpent)
	assert.Equal(t, []uint32{10}, receipt.Change)

	// STOCK WENT DOWN, ONLY THE COST WAS TAKEN FROM THE DEPOSIT
	doRequest(t, http.MethodGet, baseUrl+"/products/"+product.ID, "", nil, &product)
	assert.Equal(t, uint32(2), product.Stock)

	buyerInfo := userResponse{}
	doRequest(t, http.MethodGet, baseUrl+"/users/buyer", buyerAuth.Token, nil, &buyerInfo)
	assert.Equal(t, uint32(10), buyerInfo.Deposit)

	// ASKING FOR MORE THAN THE STOCK CLAMPS TO WHAT CAN BE FULFILLED
	doRequest(t, http.MethodPut, baseUrl+"/users/deposit", buyerAuth.Token, map[string]any{
		"coin": 100,
	}, &deposited)
	assert.Equal(t, uint32(110), deposited.Deposit)

	doRequest(t, http.MethodPut, baseUrl+"/products/buy", buyerAuth.Token, map[string]any{
		"productId": product.ID,
		"amount":    10,
	}, &receipt)
	assert.Equal(t, uint32(2), receipt.Quantity)
	assert.Equal(t, uint32(40), receipt.TotalSpent)
	assert.Equal(t, []uint32{50, 20}, receipt.Change)

	doRequest(t, http.MethodGet, baseUrl+"/products/"+product.ID, "", nil, &product)
	assert.Zero(t, product.Stock)

	// OUT OF STOCK PRODUCES AN EMPTY RECEIPT, NOTHING IS CHARGED
	doRequest(t, http.MethodPut, baseUrl+"/products/buy", buyerAuth.Token, map[string]any{
		"productId": product.ID,
		"amount":    1,
	}, &receipt)
	assert.Zero(t, receipt.Quantity)
	assert.Zero(t, receipt.TotalSpent)
	assert.Empty(t, receipt.Change)

	doRequest(t, http.MethodGet, baseUrl+"/users/buyer", buyerAuth.Token, nil, &buyerInfo)
	assert.Equal(t, uint32(70), buyerInfo.Deposit)

	// RESET RETURNS THE DEPOSIT TO ZERO
	doRequest(t, http.MethodPut, baseUrl+"/users/deposit/reset", buyerAuth.Token, nil, &buyerInfo)
	assert.Zero(t, buyerInfo.Deposit)

	// CONCURRENT DEPOSITS AND DRAINING PURCHASES LOSE NO UPDATES
	chips := productResponse{}
	doRequest(t, http.MethodPost, baseUrl+"/products", sellerAuth.Token, map[string]any{
		"productName":     "chips",
		"cost":            5,
		"amountAvailable": 200,
	}, &chips)

	const depositWorkers = 8
	const depositsPerWorker = 5
	const buyWorkers = 8

	var wg sync.WaitGroup
	errs := make(chan error, depositWorkers*depositsPerWorker+buyWorkers)
	receipts := make(chan buyResponse, buyWorkers)

	for range depositWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range depositsPerWorker {
				if err := tryRequest(http.MethodPut, baseUrl+"/users/deposit", buyerAuth.Token, map[string]any{
					"coin": 5,
				}, nil); err != nil {
					errs <- err
				}
			}
		}()
	}

	for range buyWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			concurrentReceipt := buyResponse{}
			if err := tryRequest(http.MethodPut, baseUrl+"/products/buy", buyerAuth.Token, map[string]any{
				"productId": chips.ID,
				"amount":    4,
			}, &concurrentReceipt); err != nil {
				errs <- err
				return
			}
			receipts <- concurrentReceipt
		}()
	}

	wg.Wait()
	close(errs)
	close(receipts)

	for err := range errs {
		require.NoError(t, err)
	}

	var totalSpent, totalBought uint32
	for concurrentReceipt := range receipts {
		totalSpent += concurrentReceipt.TotalSpent
		totalBought += concurrentReceipt.Quantity
	}
	assert.Equal(t, totalBought*5, totalSpent)

	// EVERY DEPOSITED COIN IS EITHER SPENT OR STILL ON THE ACCOUNT
	totalDeposited := uint32(depositWorkers * depositsPerWorker * 5)

	doRequest(t, http.MethodGet, baseUrl+"/users/buyer", buyerAuth.Token, nil, &buyerInfo)
	assert.Equal(t, totalDeposited-totalSpent, buyerInfo.Deposit)

	doRequest(t, http.MethodGet, baseUrl+"/products/"+chips.ID, "", nil, &chips)
	assert.Equal(t, uint32(200)-totalBought, chips.Stock)
}

func doRequest(t *testing.T, method, url, token string, body any, out any) {
	t.Helper()

	require.NoError(t, tryRequest(method, url, token, body, out))
}

// tryRequest carries no *testing.T so it is safe to call from the worker
// goroutines in the concurrency section.
func tryRequest(method, url, token string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		bodyJson, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(bodyJson)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s %s: status %d: %s", method, url, resp.StatusCode, respBody)
	}

	if out != nil {
		return json.Unmarshal(respBody, out)
	}
	return nil
}
