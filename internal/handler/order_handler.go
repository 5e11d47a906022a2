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

// OrderRequest defines the structure for order creation/update requests
type OrderRequest struct {
	ID         uint `json:"id"`
	Qty        int  `json:"qty"`
	CustomerID uint `json:"customer_id"`
	ProductID  uint `json:"product_id"`
}

// validate covers field shape only; whether the referenced customer and
// product exist is the store's call and comes back as a RelationError.
func (r *OrderRequest) validate(c echo.Context) (ok bool, err error) {
	if r.Qty < 1 {
		return false, c.JSON(http.StatusBadRequest, echo.Map{
			"error": "'qty' must be at least 1",
		})
	}
	if r.CustomerID == 0 || r.ProductID == 0 {
		return false, c.JSON(http.StatusBadRequest, echo.Map{
			"error": "'customer_id' and 'product_id' fields are required",
		})
	}
	return true, nil
}

// OrderHandler serves the order CRUD endpoints over one repository.
type OrderHandler struct {
	repo *repository.Repository[model.Order]
}

// NewOrderHandler binds the handler to an engine handle.
func NewOrderHandler(db *gorm.DB) *OrderHandler {
	return &OrderHandler{repo: repository.New[model.Order](db)}
}

// Register attaches the order routes to a route group.
func (h *OrderHandler) Register(g *echo.Group) {
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// List handles retrieving all orders
func (h *OrderHandler) List(c echo.Context) error {
	log := logger.FromContext(c)

	orders, err := h.repo.GetAll(c.Request().Context())
	if err != nil {
		return storageErrorResponse(c, log, err, "Order")
	}

	log.Info("Orders retrieved successfully", zap.Int("count", len(orders)))
	return c.JSON(http.StatusOK, orders)
}

// Get handles retrieving a single order by ID
func (h *OrderHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)

	id, ok := parseID(c)
	if !ok {
		return nil
	}

	order, err := h.repo.GetOne(c.Request().Context(), id)
	if err != nil {
		return storageErrorResponse(c, log, err, "Order")
	}

	return c.JSON(http.StatusOK, order)
}

// Create handles adding a new order
func (h *OrderHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}
	if ok, err := req.validate(c); !ok {
		return err
	}

	order := model.Order{
		ID:         req.ID,
		Qty:        req.Qty,
		CustomerID: req.CustomerID,
		ProductID:  req.ProductID,
	}
	if err := h.repo.Add(c.Request().Context(), &order); err != nil {
		return storageErrorResponse(c, log, err, "Order")
	}

	prometheus.RecordOperation("order", "add")
	log.Info("Order created successfully",
		zap.Uint("order_id", order.ID),
		zap.Uint("customer_id", order.CustomerID),
		zap.Uint("product_id", order.ProductID),
		zap.Int("qty", order.Qty))
	return c.JSON(http.StatusCreated, order)
}

// Update handles updating an existing order
func (h *OrderHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)

	id, ok := parseID(c)
	if !ok {
		return nil
	}

	var req OrderRequest
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
		"qty":         req.Qty,
		"customer_id": req.CustomerID,
		"product_id":  req.ProductID,
	})
	if err != nil {
		return storageErrorResponse(c, log, err, "Order")
	}

	prometheus.RecordOperation("order", "update")
	log.Info("Order updated successfully", zap.Uint("order_id", id))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Order updated successfully",
	})
}

// Delete handles deleting an order
func (h *OrderHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)

	id, ok := parseID(c)
	if !ok {
		return nil
	}

	if err := h.repo.Delete(c.Request().Context(), id); err != nil {
		return storageErrorResponse(c, log, err, "Order")
	}

	prometheus.RecordOperation("order", "delete")
	log.Info("Order deleted successfully", zap.Uint("order_id", id))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Order deleted successfully",
	})
}
