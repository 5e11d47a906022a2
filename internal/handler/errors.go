package handler

import (
	"errors"
	"net/http"

	"inventory-service/internal/repository"
	"inventory-service/pkg/database"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// storageErrorResponse maps the repository error taxonomy to HTTP responses.
// Invalid field values and broken references are the caller's to fix; missing
// rows are 404; anything else is logged with its diagnostics and surfaced as
// a generic 500 so driver detail never reaches the client.
func storageErrorResponse(c echo.Context, log *zap.Logger, err error, entity string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": entity + " not found",
		})
	}

	var invalidErr *repository.InvalidDataError
	if errors.As(err, &invalidErr) {
		log.Warn("Rejected invalid field value",
			zap.String("entity", entity),
			zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "A field value was rejected by the store",
		})
	}

	var relationErr *repository.RelationError
	if errors.As(err, &relationErr) {
		log.Warn("Rejected conflicting record",
			zap.String("entity", entity),
			zap.Error(err))
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "Referenced rows are missing or a uniqueness constraint is violated",
		})
	}

	var connErr *database.ConnectionError
	if errors.As(err, &connErr) {
		log.Error("Backend unreachable",
			zap.String("entity", entity),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Storage backend is unreachable",
		})
	}

	log.Error("Storage operation failed",
		zap.String("entity", entity),
		zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{
		"error": "Something went wrong, please contact support if the error persists",
	})
}

// parseID reads the numeric id path parameter. The second return value is
// false when the parameter was rejected and the response already written.
func parseID(c echo.Context) (uint, bool) {
	var id uint
	if err := echo.PathParamsBinder(c).Uint("id", &id).BindError(); err != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid id",
		})
		return 0, false
	}
	return id, true
}
