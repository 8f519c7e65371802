package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zodmy/SiriusAuto-sub001/database"
)

func newTestHandler(t *testing.T) (*Handler, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return New(&database.DB{DB: db}, "test-secret"), mock
}

func postJSON(t *testing.T, handler gin.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	router := gin.New()
	router.POST(path, handler)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateHierarchicalCompatibilitiesValidation(t *testing.T) {
	h, mock := newTestHandler(t)

	// Missing productId is rejected before any store access.
	rec := postJSON(t, h.CreateHierarchicalCompatibilities, "/compatibilities/hierarchical",
		gin.H{"carMakeId": 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Malformed productId likewise.
	rec = postJSON(t, h.CreateHierarchicalCompatibilities, "/compatibilities/hierarchical",
		gin.H{"productId": "not-a-uuid", "carMakeId": 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateHierarchicalCompatibilitiesRejectsSelectionGap(t *testing.T) {
	h, mock := newTestHandler(t)
	productID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`)).
		WithArgs(productID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	// Year without model: not a contiguous prefix.
	rec := postJSON(t, h.CreateHierarchicalCompatibilities, "/compatibilities/hierarchical",
		gin.H{"productId": productID.String(), "carMakeId": 1, "carYearId": 3})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateHierarchicalCompatibilitiesDuplicateAccounting(t *testing.T) {
	h, mock := newTestHandler(t)
	productID := uuid.New()

	body := gin.H{
		"productId":     productID.String(),
		"carMakeId":     1,
		"carModelId":    2,
		"carYearId":     3,
		"carBodyTypeId": 4,
		"carEngineId":   5,
	}

	expectCall := func(rowsAffected int64) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`)).
			WithArgs(productID).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO compatibilities`)).
			WithArgs(productID, int64(1), int64(2), int64(3), int64(4), int64(5)).
			WillReturnResult(sqlmock.NewResult(0, rowsAffected))
	}

	// First call inserts the row, second call finds it already present.
	expectCall(1)
	rec := postJSON(t, h.CreateHierarchicalCompatibilities, "/compatibilities/hierarchical", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"created": 1, "total": 1}`, rec.Body.String())

	expectCall(0)
	rec = postJSON(t, h.CreateHierarchicalCompatibilities, "/compatibilities/hierarchical", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"created": 0, "total": 1}`, rec.Body.String())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCompatibilityRejectsInconsistentChain(t *testing.T) {
	h, mock := newTestHandler(t)
	productID := uuid.New()

	// The stored chain for engine 5 runs through make 1; the request claims make 9.
	mock.ExpectQuery(regexp.QuoteMeta(`FROM car_engines e`)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"make_id", "model_id", "year_id", "body_type_id"}).
			AddRow(1, 2, 3, 4))

	rec := postJSON(t, h.CreateCompatibility, "/compatibilities", gin.H{
		"productId":     productID.String(),
		"carMakeId":     9,
		"carModelId":    2,
		"carYearId":     3,
		"carBodyTypeId": 4,
		"carEngineId":   5,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindCompatibleProductsByCarRequiresIds(t *testing.T) {
	h, mock := newTestHandler(t)

	router := gin.New()
	router.GET("/compatibilities/find-by-car", h.FindCompatibleProductsByCar)

	for _, query := range []string{"", "makeId=1", "makeId=1&modelId=2", "makeId=x&modelId=2&yearId=3"} {
		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/compatibilities/find-by-car?%s", query), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "query %q", query)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}
