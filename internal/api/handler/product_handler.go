package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/stocklane/inventory-system/internal/api/metrics"
	"github.com/stocklane/inventory-system/internal/core/domain"
	"github.com/stocklane/inventory-system/internal/core/ports"
)

// ProductHandler handles HTTP requests for product operations.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// Create handles POST /products.
//
// @Summary      Add a new product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  createProductResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.service.Create(c.Request().Context(), claims, ports.CreateProductInput{
		Name:        req.Name,
		Type:        req.Type,
		SKU:         req.SKU,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Quantity:    *req.Quantity,
		Price:       *req.Price,
	})
	if err != nil {
		return err
	}

	metrics.ProductsCreatedTotal.WithLabelValues(req.Type).Inc()
	return c.JSON(http.StatusCreated, createProductResponse{ProductID: id})
}

// List handles GET /products with the strict pagination policy: when either
// parameter is missing or invalid, the entire collection is returned as a
// bare array, matching what the frontend expects.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Items per page"
// @Success      200    {object}  paginatedProductsResponse
// @Failure      401    {object}  map[string]string
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	page, ok := domain.ParsePageStrict(c.QueryParam("page"), c.QueryParam("limit"))
	if !ok {
		products, err := h.service.ListAll(c.Request().Context())
		if err != nil {
			return err
		}
		if products == nil {
			products = []domain.Product{}
		}
		return c.JSON(http.StatusOK, products)
	}

	result, err := h.service.ListPage(c.Request().Context(), page)
	if err != nil {
		return err
	}
	if result.Products == nil {
		result.Products = []domain.Product{}
	}
	return c.JSON(http.StatusOK, paginatedProductsResponse{
		Products: result.Products,
		Total:    result.Total,
		Page:     result.Page,
		Limit:    result.Limit,
	})
}

// Get handles GET /products/:id.
//
// @Summary      Get a product by ID
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}

	product, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// UpdateQuantity handles PUT /products/:id/quantity. Only the creator or an
// admin may update; the response carries the full updated record.
//
// @Summary      Update the quantity of a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Product ID"
// @Param        body  body      updateQuantityRequest  true  "New quantity"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /products/{id}/quantity [put]
func (h *ProductHandler) UpdateQuantity(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}

	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.UpdateQuantity(c.Request().Context(), claims, id, *req.Quantity)
	if err != nil {
		return err
	}

	metrics.QuantityUpdatesTotal.Inc()
	return c.JSON(http.StatusOK, product)
}

// Mine handles GET /products/mine: the caller's own products, or every
// product for an admin.
//
// @Summary      List products created by the current user
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Product
// @Failure      401  {object}  map[string]string
// @Router       /products/mine [get]
func (h *ProductHandler) Mine(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	products, err := h.service.Mine(c.Request().Context(), claims)
	if err != nil {
		return err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return c.JSON(http.StatusOK, products)
}

// Recent handles GET /products/recent (admin only, defaulted pagination).
//
// @Summary      Recently added products
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  countedProductsResponse
// @Failure      403  {object}  map[string]string
// @Router       /products/recent [get]
func (h *ProductHandler) Recent(c echo.Context) error {
	page := domain.ParsePageDefaulted(c.QueryParam("page"), c.QueryParam("limit"))

	result, err := h.service.Recent(c.Request().Context(), page)
	if err != nil {
		return err
	}
	if result.Products == nil {
		result.Products = []domain.Product{}
	}
	return c.JSON(http.StatusOK, countedProductsResponse{Products: result.Products, Total: result.Total})
}

// Valuable handles GET /products/valuable (admin only, defaulted pagination).
//
// @Summary      Most valuable products
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  valuedProductsResponse
// @Failure      403  {object}  map[string]string
// @Router       /products/valuable [get]
func (h *ProductHandler) Valuable(c echo.Context) error {
	page := domain.ParsePageDefaulted(c.QueryParam("page"), c.QueryParam("limit"))

	result, err := h.service.Valuable(c.Request().Context(), page)
	if err != nil {
		return err
	}
	if result.Products == nil {
		result.Products = []ports.ValuedProduct{}
	}
	return c.JSON(http.StatusOK, valuedProductsResponse{Products: result.Products, Total: result.Total})
}

// CategoryBreakdown handles GET /products/category-breakdown (admin only).
//
// @Summary      Product category breakdown
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.CategoryStat
// @Failure      403  {object}  map[string]string
// @Router       /products/category-breakdown [get]
func (h *ProductHandler) CategoryBreakdown(c echo.Context) error {
	stats, err := h.service.CategoryBreakdown(c.Request().Context())
	if err != nil {
		return err
	}
	if stats == nil {
		stats = []ports.CategoryStat{}
	}
	return c.JSON(http.StatusOK, stats)
}

// Analytics handles GET /products/analytics (admin only).
//
// @Summary      Inventory analytics summary
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.AnalyticsResult
// @Failure      403  {object}  map[string]string
// @Router       /products/analytics [get]
func (h *ProductHandler) Analytics(c echo.Context) error {
	result, err := h.service.Analytics(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}
