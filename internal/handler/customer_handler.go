package handler

import (
	"net/http"
	"regexp"

	"inventory-service/internal/model"
	"inventory-service/internal/repository"
	"inventory-service/pkg/logger"
	"inventory-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// emailPattern accepts the basic local@domain.tld shape; anything stricter is
// not worth fighting over at this layer.
var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// CustomerRequest defines the structure for customer creation/update requests
type CustomerRequest struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// validate performs the field-level checks the store does not cover.
func (r *CustomerRequest) validate(c echo.Context) (ok bool, err error) {
	if r.FullName == "" {
		return false, c.JSON(http.StatusBadRequest, echo.Map{
			"error": "'full_name' field is required",
		})
	}
	if r.Email == "" || !emailPattern.MatchString(r.Email) {
		return false, c.JSON(http.StatusBadRequest, echo.Map{
			"error": "'email' field is missing or has an invalid format",
		})
	}
	return true, nil
}

// CustomerHandler serves the customer CRUD endpoints over one repository.
type CustomerHandler struct {
	repo *repository.Repository[model.Customer]
}

// NewCustomerHandler binds the handler to an engine handle.
func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{repo: repository.New[model.Customer](db)}
}

// Register attaches the customer routes to a route group.
func (h *CustomerHandler) Register(g *echo.Group) {
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// List handles retrieving all customers
func (h *CustomerHandler) List(c echo.Context) error {
	log := logger.FromContext(c)

	customers, err := h.repo.GetAll(c.Request().Context())
	if err != nil {
		return storageErrorResponse(c, log, err, "Customer")
	}

	log.Info("Customers retrieved successfully", zap.Int("count", len(customers)))
	return c.JSON(http.StatusOK, customers)
}

// Get handles retrieving a single customer by ID
func (h *CustomerHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)

	id, ok := parseID(c)
	if !ok {
		return nil
	}

	customer, err := h.repo.GetOne(c.Request().Context(), id)
	if err != nil {
		return storageErrorResponse(c, log, err, "Customer")
	}

	return c.JSON(http.StatusOK, customer)
}

// Create handles adding a new customer
func (h *CustomerHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}
	if ok, err := req.validate(c); !ok {
		return err
	}

	customer := model.Customer{
		ID:       req.ID,
		FullName: req.FullName,
		Email:    req.Email,
	}
	if err := h.repo.Add(c.Request().Context(), &customer); err != nil {
		return storageErrorResponse(c, log, err, "Customer")
	}

	prometheus.RecordOperation("customer", "add")
	log.Info("Customer created successfully",
		zap.Uint("customer_id", customer.ID),
		zap.String("full_name", customer.FullName))
	return c.JSON(http.StatusCreated, customer)
}

// Update handles updating an existing customer
func (h *CustomerHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)

	id, ok := parseID(c)
	if !ok {
		return nil
	}

	var req CustomerRequest
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
		"full_name": req.FullName,
		"email":     req.Email,
	})
	if err != nil {
		return storageErrorResponse(c, log, err, "Customer")
	}

	prometheus.RecordOperation("customer", "update")
	log.Info("Customer updated successfully", zap.Uint("customer_id", id))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Customer updated successfully",
	})
}

// Delete handles deleting a customer; dependent orders are removed by the
// store's cascade rule.
func (h *CustomerHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)

	id, ok := parseID(c)
	if !ok {
		return nil
	}

	if err := h.repo.Delete(c.Request().Context(), id); err != nil {
		return storageErrorResponse(c, log, err, "Customer")
	}

	prometheus.RecordOperation("customer", "delete")
	log.Info("Customer deleted successfully", zap.Uint("customer_id", id))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Customer deleted successfully",
	})
}
