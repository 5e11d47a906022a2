package handler

import (
	"net/http"

	"inventory-service/internal/model"
	"inventory-service/internal/repository"
	"inventory-service/pkg/logger"
	"inventory-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProductRequest defines the structure for product creation/update requests
type ProductRequest struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

func (r *ProductRequest) validate(c echo.Context) (ok bool, err error) {
	if r.Name == "" {
		return false, c.JSON(http.StatusBadRequest, echo.Map{
			"error": "'name' field is required",
		})
	}
	if r.Price <= 0 {
		return false, c.JSON(http.StatusBadRequest, echo.Map{
			"error": "'price' must be greater than zero",
		})
	}
	return true, nil
}

// ProductHandler serves the product CRUD endpoints over one repository.
type ProductHandler struct {
	repo *repository.Repository[model.Product]
}

// NewProductHandler binds the handler to an engine handle.
func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{repo: repository.New[model.Product](db)}
}

// Register attaches the product routes to a route group.
func (h *ProductHandler) Register(g *echo.Group) {
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// List handles retrieving all products
func (h *ProductHandler) List(c echo.Context) error {
	log := logger.FromContext(c)

	products, err := h.repo.GetAll(c.Request().Context())
	if err != nil {
		return storageErrorResponse(c, log, err, "Product")
	}

	log.Info("Products retrieved successfully", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, products)
}

// Get handles retrieving a single product by ID
func (h *ProductHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)

	id, ok := parseID(c)
	if !ok {
		return nil
	}

	product, err := h.repo.GetOne(c.Request().Context(), id)
	if err != nil {
		return storageErrorResponse(c, log, err, "Product")
	}

	return c.JSON(http.StatusOK, product)
}

// Create handles adding a new product
func (h *ProductHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}
	if ok, err := req.validate(c); !ok {
		return err
	}

	product := model.Product{
		ID:          req.ID,
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
	}
	if err := h.repo.Add(c.Request().Context(), &product); err != nil {
		return storageErrorResponse(c, log, err, "Product")
	}

	prometheus.RecordOperation("product", "add")
	log.Info("Product created successfully",
		zap.Uint("product_id", product.ID),
		zap.String("name", product.Name),
		zap.Float64("price", product.Price))
	return c.JSON(http.StatusCreated, product)
}

// Update handles updating an existing product
func (h *ProductHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)

	id, ok := parseID(c)
	if !ok {
		return nil
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}
	if ok, err := req.validate(c); !ok {
		return err
	}

	err := h.repo.Update(c.Request().Context(), id, map[string]any{
		"name":        req.Name,
		"price":       req.Price,
		"description": req.Description,
	})
	if err != nil {
		return storageErrorResponse(c, log, err, "Product")
	}

	prometheus.RecordOperation("product", "update")
	log.Info("Product updated successfully", zap.Uint("product_id", id))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Product updated successfully",
	})
}

// Delete handles deleting a product; dependent orders are removed by the
// store's cascade rule.
func (h *ProductHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)

	id, ok := parseID(c)
	if !ok {
		return nil
	}

	if err := h.repo.Delete(c.Request().Context(), id); err != nil {
		return storageErrorResponse(c, log, err, "Product")
	}

	prometheus.RecordOperation("product", "delete")
	log.Info("Product deleted successfully", zap.Uint("product_id", id))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Product deleted successfully",
	})
}
