package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"inventory-service/internal/handler"
	"inventory-service/internal/model"
	"inventory-service/internal/repository"
	"inventory-service/pkg/config"
	"inventory-service/pkg/database"
	"inventory-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	// Collectors register against the default registry once per test binary.
	prometheus.InitMetrics(&config.Config{Metrics: config.MetricsConfig{Prefix: "test"}})
	os.Exit(m.Run())
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "shop.db") + "?_pragma=foreign_keys(1)"
	db, err := database.Open(
		config.Engine{Driver: config.DriverSQLite, DSN: dsn},
		config.DBConfig{MaxIdleConns: 1, MaxOpenConns: 1, ConnMaxLifetime: time.Hour},
	)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	require.NoError(t, db.AutoMigrate(model.Tables()...))
	return db
}

func newTestServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()

	db := openTestDB(t)
	e := echo.New()
	handler.NewCustomerHandler(db).Register(e.Group("/api/customers"))
	handler.NewProductHandler(db).Register(e.Group("/api/products"))
	handler.NewOrderHandler(db).Register(e.Group("/api/orders"))
	return e, db
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateCustomer(t *testing.T) {
	e, db := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/customers",
		`{"id": 1, "full_name": "Nick", "email": "espozito@dog.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created model.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, "Nick", created.FullName)

	stored, err := repository.New[model.Customer](db).GetOne(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "espozito@dog.com", stored.Email)
}

func TestCreateCustomerRejectsBadEmail(t *testing.T) {
	e, _ := newTestServer(t)

	for _, body := range []string{
		`{"full_name": "Nick"}`,
		`{"full_name": "Nick", "email": "not-an-email"}`,
		`{"full_name": "Nick", "email": "missing@tld"}`,
	} {
		rec := doRequest(e, http.MethodPost, "/api/customers", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
	}
}

func TestCreateCustomerRejectsEmptyName(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/customers", `{"email": "espozito@dog.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMissingCustomerReturns404(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/customers/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteMissingCustomerReturns404(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodDelete, "/api/customers/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateProductRejectsNonPositivePrice(t *testing.T) {
	e, db := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/products", `{"name": "Hog", "price": -5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	all, err := repository.New[model.Product](db).GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateOrderWithMissingCustomerReturns409(t *testing.T) {
	e, db := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/products", `{"id": 1, "name": "Ball", "price": 9.5}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(e, http.MethodPost, "/api/orders",
		`{"customer_id": 999, "product_id": 1, "qty": 1}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	all, err := repository.New[model.Order](db).GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateOrderRejectsZeroQty(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/orders",
		`{"customer_id": 1, "product_id": 1, "qty": 0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateMissingCustomerIsNoOp(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodPut, "/api/customers/999",
		`{"full_name": "Nobody", "email": "nobody@dog.com"}`)
	assert.Equal(t, http.StatusOK, rec.Code, "set-based update of zero rows succeeds")
}

func TestInvalidIDParamReturns400(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/customers/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func newExportServer(t *testing.T, cfg *config.Config) *echo.Echo {
	t.Helper()
	e := echo.New()
	handler.NewExportHandler(cfg).Register(e.Group("/api/export"))
	return e
}

func exportConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DB: config.DBConfig{MaxIdleConns: 1, MaxOpenConns: 1, ConnMaxLifetime: time.Hour},
		Engines: config.EnginesConfig{
			Primary: config.DriverSQLite,
			MySQL: config.Engine{
				Driver: config.DriverMySQL,
				DSN:    "not a valid dsn",
			},
			SQLite: config.Engine{
				Driver: config.DriverSQLite,
				DSN:    filepath.Join(t.TempDir(), "shop.db") + "?_pragma=foreign_keys(1)",
			},
		},
	}
}

func TestExportRejectsSameSourceAndDestination(t *testing.T) {
	e := newExportServer(t, exportConfig(t))

	rec := doRequest(e, http.MethodPost, "/api/export",
		`{"source": "sqlite", "destination": "sqlite"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportRejectsUnknownEngine(t *testing.T) {
	e := newExportServer(t, exportConfig(t))

	rec := doRequest(e, http.MethodPost, "/api/export",
		`{"source": "sqlite", "destination": "oracle"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportRejectsMissingFields(t *testing.T) {
	e := newExportServer(t, exportConfig(t))

	rec := doRequest(e, http.MethodPost, "/api/export", `{"source": "sqlite"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportSurfacesConnectionFailure(t *testing.T) {
	e := newExportServer(t, exportConfig(t))

	// The MySQL engine's DSN is malformed, so opening the destination fails.
	rec := doRequest(e, http.MethodPost, "/api/export",
		`{"source": "sqlite", "destination": "mysql"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
