package http

import (
	"net/http"

	"github.com/alexstar1995/vending-machine-application/internal/vending/application"
	"github.com/alexstar1995/vending-machine-application/internal/vending/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ProductIDKey = "id"

type productRequestBody struct {
	Name     string    `json:"productName" binding:"required"`
	Cost     uint32    `json:"cost" binding:"required,gt=0"`
	Stock    uint32    `json:"amountAvailable"`
	SellerID uuid.UUID `json:"sellerId"`
}

type updateProductRequestBody struct {
	ID       uuid.UUID `json:"id" binding:"required"`
	Name     string    `json:"productName" binding:"required"`
	Cost     uint32    `json:"cost" binding:"required,gt=0"`
	Stock    uint32    `json:"amountAvailable"`
	SellerID uuid.UUID `json:"sellerId"`
}

type buyRequestBody struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Amount    uint32    `json:"amount" binding:"required,gt=0"`
}

type productResponseBody struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"productName"`
	Cost     uint32    `json:"cost"`
	Stock    uint32    `json:"amountAvailable"`
	SellerID uuid.UUID `json:"sellerId"`
}

type buyResponseBody struct {
	ProductID  uuid.UUID `json:"productId"`
	Quantity   uint32    `json:"numberOfProducts"`
	TotalSpent uint32    `json:"totalSpent"`
	Change     []uint32  `json:"change"`
}

func toProductResponse(product domain.Product) productResponseBody {
	return productResponseBody{
		ID:       product.ID,
		Name:     product.Name,
		Cost:     product.Cost,
		Stock:    product.Stock,
		SellerID: product.SellerID,
	}
}

type ProductsHandler struct {
	productCase  *application.ProductCase
	purchaseCase *application.PurchaseCase
}

func NewProductsHandler(productCase *application.ProductCase, purchaseCase *application.PurchaseCase) *ProductsHandler {
	return &ProductsHandler{
		productCase:  productCase,
		purchaseCase: purchaseCase,
	}
}

// GetProduct resolves the path parameter as a product id first and falls back
// to a name lookup, so both /products/<uuid> and /products/<name> work.
func (h *ProductsHandler) GetProduct(c *gin.Context) {
	param := c.Param(ProductIDKey)

	if productID, err := uuid.Parse(param); err == nil {
		product, err := h.productCase.GetByID(c.Request.Context(), productID)
		if err != nil {
			handleDomainError(c, err)
			return
		}

		c.JSON(http.StatusOK, toProductResponse(product))
		return
	}

	product, err := h.productCase.GetByName(c.Request.Context(), param)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(product))
}

func (h *ProductsHandler) GetAllProducts(c *gin.Context) {
	products, err := h.productCase.List(c.Request.Context())
	if err != nil {
		handleDomainError(c, err)
		return
	}

	response := make([]productResponseBody, 0, len(products))
	for _, product := range products {
		response = append(response, toProductResponse(product))
	}

	c.JSON(http.StatusOK, response)
}

func (h *ProductsHandler) CreateProduct(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "unauthenticated"})
		return
	}

	var body productRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	product, err := h.productCase.Create(c.Request.Context(), identity, body.Name, body.Cost, body.Stock)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(product))
}

func (h *ProductsHandler) UpdateProduct(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "unauthenticated"})
		return
	}

	var body updateProductRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	product, err := h.productCase.Update(c.Request.Context(), identity, body.ID, body.Name, body.Cost, body.Stock, body.SellerID)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(product))
}

func (h *ProductsHandler) DeleteProduct(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "unauthenticated"})
		return
	}

	productID, err := uuid.Parse(c.Param(ProductIDKey))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid product id"})
		return
	}

	if err := h.productCase.Delete(c.Request.Context(), identity, productID); err != nil {
		handleDomainError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (h *ProductsHandler) BuyProduct(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "unauthenticated"})
		return
	}

	var body buyRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	receipt, err := h.purchaseCase.Buy(c.Request.Context(), identity, body.ProductID, body.Amount)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, buyResponseBody{
		ProductID:  receipt.ProductID,
		Quantity:   receipt.Quantity,
		TotalSpent: receipt.TotalSpent,
		Change:     receipt.Change,
	})
}
