package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/alexstar1995/vending-machine-application/internal/pkg/database"
	"github.com/alexstar1995/vending-machine-application/internal/pkg/jwt"
	"github.com/alexstar1995/vending-machine-application/internal/pkg/logging"
	"github.com/alexstar1995/vending-machine-application/internal/vending/application"
	"github.com/alexstar1995/vending-machine-application/internal/vending/domain"
	httpwrap "github.com/alexstar1995/vending-machine-application/internal/vending/infrastructure/http"
	"github.com/alexstar1995/vending-machine-application/internal/vending/infrastructure/postgres"
	"github.com/alexstar1995/vending-machine-application/migrations"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	shutdownTimeout = 5 * time.Second

	migrationsDir     = "."
	migrationsDriver  = "pgx"
	migrationsDialect = "postgres"
)

type VendingApp struct {
	cfg    Config
	logger logging.Logger

	server *http.Server
	dbpool *pgxpool.Pool
}

func NewVendingApp(cfg Config, logger logging.Logger) *VendingApp {
	return &VendingApp{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *VendingApp) Run(ctx context.Context) error {
	logger := a.logger
	cfg := a.cfg

	coinSet, err := domain.NewCoinSet(cfg.AllowedCoins)
	if err != nil {
		return fmt.Errorf("invalid allowed coins configuration: %w", err)
	}

	dbURL := cfg.DbSettings.GetUrl()

	err = database.MigrateDatabase(dbURL, migrations.FS, migrationsDir, migrationsDriver, migrationsDialect)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	dbpool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.dbpool = dbpool

	txManager := database.NewDelegateTxManager(dbpool, logger)
	gate := domain.NewAuthorizationGate()
	passwordHasher := domain.NewArgonPasswordHasher()

	accountsRepository := postgres.NewAccountsRepository(dbpool)
	accountsLedger := postgres.NewAccountsLedger(dbpool)
	balanceLocker := postgres.NewBalanceLocker()
	productsRepository := postgres.NewProductsRepository(dbpool)
	productLocker := postgres.NewProductLocker()
	purchaser := postgres.NewPurchaser()

	authenticator := application.NewAuthenticator(accountsRepository, passwordHasher, jwt.NewJWTTokenIssuer(), cfg.JwtSecret)
	accountCase := application.NewAccountCase(accountsRepository, accountsLedger, passwordHasher, gate, coinSet, logger)
	productCase := application.NewProductCase(productsRepository, accountsRepository, gate, logger)
	purchaseCase := application.NewPurchaseCase(productLocker, balanceLocker, purchaser, txManager, gate, coinSet, logger)

	usersHandler := httpwrap.NewUsersHandler(authenticator, accountCase)
	productsHandler := httpwrap.NewProductsHandler(productCase, purchaseCase)

	router := createRouter(usersHandler, productsHandler, cfg.JwtSecret)

	a.server = &http.Server{
		Addr:    cfg.HttpPort,
		Handler: router,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server", "port", cfg.HttpPort)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("error while starting http server: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (a *VendingApp) Shutdown() {
	if a.server == nil {
		return
	}

	a.logger.Info("shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server shutdown failed", "error", err.Error())
	}

	a.dbpool.Close()
	a.logger.Info("HTTP server stopped")
}

func createRouter(usersHandler *httpwrap.UsersHandler, productsHandler *httpwrap.ProductsHandler, jwtSecret string) *gin.Engine {
	router := gin.Default()
	authMiddleware := httpwrap.NewAuthMiddleware([]byte(jwtSecret), jwt.NewJWTTokenParser())

	api := router.Group("/api/v1")
	{
		api.POST("/auth", usersHandler.Login)

		users := api.Group("/users")
		{
			users.POST("/signup", usersHandler.Signup)

			authenticated := users.Group("/", authMiddleware)
			{
				authenticated.GET("", usersHandler.GetAllUsers)
				authenticated.GET("/:"+httpwrap.UsernameKey, usersHandler.GetUser)
				authenticated.PUT("", usersHandler.UpdateUser)
				authenticated.DELETE("", usersHandler.DeleteUser)
				authenticated.PUT("/deposit", usersHandler.Deposit)
				authenticated.PUT("/deposit/reset", usersHandler.ResetDeposit)
			}
		}

		products := api.Group("/products")
		{
			products.GET("", productsHandler.GetAllProducts)
			products.GET("/:"+httpwrap.ProductIDKey, productsHandler.GetProduct)

			authenticated := products.Group("/", authMiddleware)
			{
				authenticated.POST("", productsHandler.CreateProduct)
				authenticated.PUT("", productsHandler.UpdateProduct)
				authenticated.PUT("/buy", productsHandler.BuyProduct)
				authenticated.DELETE("/:"+httpwrap.ProductIDKey, productsHandler.DeleteProduct)
			}
		}
	}

	return router
}
