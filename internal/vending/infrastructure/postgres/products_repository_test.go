package postgres

import (
	"testing"

	"github.com/alexstar1995/vending-machine-application/internal/vending/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductsRepository_CreateProduct(t *testing.T) {
	t.Parallel()

	sellerID := uuid.New()

	type testCase struct {
		name    string
		product string

		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name:    "successful creation",
			product: "soda",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"id", "name", "cost", "stock", "seller_id"}).
					AddRow(uuid.New(), "soda", uint32(20), uint32(5), sellerID)
				mock.ExpectQuery("INSERT INTO products").
					WithArgs(pgxmock.AnyArg(), "soda", uint32(20), uint32(5), sellerID).
					WillReturnRows(rows)
			},
			expectedErr: nil,
		},
		{
			name:    "duplicate product name",
			product: "soda",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("INSERT INTO products").
					WithArgs(pgxmock.AnyArg(), "soda", uint32(20), uint32(5), sellerID).
					WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})
			},
			expectedErr: &domain.AlreadyExistsError{},
		},
		{
			name:    "database error",
			product: "soda",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("INSERT INTO products").
					WithArgs(pgxmock.AnyArg(), "soda", uint32(20), uint32(5), sellerID).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			repo := NewProductsRepository(mock)
			product, err := repo.CreateProduct(t.Context(), tt.product, 20, 5, sellerID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.product, product.Name)
				assert.Equal(t, sellerID, product.SellerID)
			}
		})
	}
}

func TestProductsRepository_GetProduct(t *testing.T) {
	t.Parallel()

	productID := uuid.New()
	sellerID := uuid.New()

	type testCase struct {
		name string

		expectedRes domain.Product
		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name: "product found",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"id", "name", "cost", "stock", "seller_id"}).
					AddRow(productID, "soda", uint32(20), uint32(5), sellerID)
				mock.ExpectQuery("SELECT").
					WithArgs(productID).
					WillReturnRows(rows)
			},
			expectedRes: domain.Product{ID: productID, Name: "soda", Cost: 20, Stock: 5, SellerID: sellerID},
			expectedErr: nil,
		},
		{
			name: "product not found",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT").
					WithArgs(productID).
					WillReturnError(pgx.ErrNoRows)
			},
			expectedErr: &domain.ProductNotFoundError{},
		},
		{
			name: "database error",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT").
					WithArgs(productID).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			repo := NewProductsRepository(mock)
			res, err := repo.GetProduct(t.Context(), productID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRes, res)
			}
		})
	}
}

func TestProductLocker_LockAndGetProduct(t *testing.T) {
	t.Parallel()

	productID := uuid.New()
	sellerID := uuid.New()

	type testCase struct {
		name string

		expectedRes domain.Product
		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name: "successful lock",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"id", "name", "cost", "stock", "seller_id"}).
					AddRow(productID, "soda", uint32(20), uint32(5), sellerID)
				mock.ExpectQuery("SELECT").
					WithArgs(productID).
					WillReturnRows(rows)
			},
			expectedRes: domain.Product{ID: productID, Name: "soda", Cost: 20, Stock: 5, SellerID: sellerID},
			expectedErr: nil,
		},
		{
			name: "product not found",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT").
					WithArgs(productID).
					WillReturnError(pgx.ErrNoRows)
			},
			expectedErr: &domain.ProductNotFoundError{},
		},
		{
			name: "database error",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT").
					WithArgs(productID).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			productLocker := NewProductLocker()
			res, err := productLocker.LockAndGetProduct(t.Context(), mock, productID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRes, res)
			}
		})
	}
}

func TestProductsRepository_DeleteProduct(t *testing.T) {
	t.Parallel()

	productID := uuid.New()

	type testCase struct {
		name string

		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name: "successful deletion",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("DELETE FROM products").
					WithArgs(productID).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			expectedErr: nil,
		},
		{
			name: "product not found",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("DELETE FROM products").
					WithArgs(productID).
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
			expectedErr: &domain.ProductNotFoundError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			repo := NewProductsRepository(mock)
			err = repo.DeleteProduct(t.Context(), productID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
