package handler

import (
	"net/http"
	"time"

	"inventory-service/internal/export"
	"inventory-service/pkg/config"
	"inventory-service/pkg/database"
	"inventory-service/pkg/logger"
	"inventory-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ExportRequest names the source and destination engines of an export run.
type ExportRequest struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

// ExportHandler triggers full-dataset copies between configured engines.
// Handles are opened fresh for every run and closed when it finishes; the
// handler owns no connection state between requests.
type ExportHandler struct {
	cfg *config.Config
}

// NewExportHandler binds the handler to the engine configuration.
func NewExportHandler(cfg *config.Config) *ExportHandler {
	return &ExportHandler{cfg: cfg}
}

// Register attaches the export route to a route group.
func (h *ExportHandler) Register(g *echo.Group) {
	g.POST("", h.Export)
}

// Export handles copying the full dataset from one engine to another
func (h *ExportHandler) Export(c echo.Context) error {
	log := logger.FromContext(c)

	var req ExportRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}
	if req.Source == "" || req.Destination == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "'source' and 'destination' fields are required",
		})
	}
	if req.Source == req.Destination {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "'source' and 'destination' must differ",
		})
	}

	sourceEngine, err := h.cfg.Engine(req.Source)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Unknown source engine",
		})
	}
	destinationEngine, err := h.cfg.Engine(req.Destination)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Unknown destination engine",
		})
	}

	log.Info("Starting export",
		zap.String("source", req.Source),
		zap.String("destination", req.Destination))
	start := time.Now()

	sourceDB, err := database.Open(sourceEngine, h.cfg.DB)
	if err != nil {
		prometheus.RecordExportRun(req.Source, req.Destination, "error", start)
		return storageErrorResponse(c, log, err, "Export")
	}
	defer database.Close(sourceDB)

	destinationDB, err := database.Open(destinationEngine, h.cfg.DB)
	if err != nil {
		prometheus.RecordExportRun(req.Source, req.Destination, "error", start)
		return storageErrorResponse(c, log, err, "Export")
	}
	defer database.Close(destinationDB)

	if err := export.Export(c.Request().Context(), sourceDB, destinationDB); err != nil {
		// Not atomic: rows replayed before the failure stay in the
		// destination.
		prometheus.RecordExportRun(req.Source, req.Destination, "error", start)
		return storageErrorResponse(c, log, err, "Export")
	}

	prometheus.RecordExportRun(req.Source, req.Destination, "success", start)
	log.Info("Export completed",
		zap.String("source", req.Source),
		zap.String("destination", req.Destination),
		zap.Duration("elapsed", time.Since(start)))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Export completed successfully",
	})
}
