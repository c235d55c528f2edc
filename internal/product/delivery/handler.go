package delivery

import (
	"net/http"

	authdomain "shop-backend/internal/auth/domain"
	"shop-backend/internal/product/domain"
	"shop-backend/internal/product/dto"
	"shop-backend/internal/product/usecase"
	"shop-backend/pkg/apperr"
	"shop-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productUsecase usecase.ProductUsecase
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productUsecase usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{
		productUsecase: productUsecase,
	}
}

// ListProducts returns all products
// GET /products?q=lamp&seller_id=...
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productUsecase.ListProducts(c.Request.Context(), domain.Filter{
		SellerID: c.Query("seller_id"),
		Query:    c.Query("q"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewProductResponses(products))
}

// GetProduct returns a specific product
// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productUsecase.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewProductResponse(product))
}

// CreateProduct lists a new product for the caller
// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context, session *authdomain.Session) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation("invalid request body"))
		return
	}

	product, err := h.productUsecase.CreateProduct(c.Request.Context(), session, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewProductResponse(product))
}

// UpdateProduct updates a product owned by the caller
// PATCH /products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context, session *authdomain.Session) {
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req = dto.UpdateProductRequest{BindErr: err}
	}

	product, err := h.productUsecase.UpdateProduct(c.Request.Context(), session, c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewProductResponse(product))
}

// DeleteProduct deletes a product owned by the caller
// DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context, session *authdomain.Session) {
	product, err := h.productUsecase.DeleteProduct(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewProductResponse(product))
}
