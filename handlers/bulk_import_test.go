package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulkImportPartialFailure(t *testing.T) {
	h, mock := newTestHandler(t)

	// Product "Oil Filter" names a category that does not exist; "Air Filter"
	// is valid and must still be created.
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM categories WHERE name = $1`)).
		WithArgs("No Such Category").
		WillReturnError(sql.ErrNoRows)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM products WHERE name = $1`)).
		WithArgs("Air Filter").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO products`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))

	rec := postJSON(t, h.BulkImport, "/admin/supply/bulk-import", gin.H{
		"products": []gin.H{
			{"name": "Oil Filter", "price": 9.99, "categoryName": "No Such Category"},
			{"name": "Air Filter", "price": 7.50},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Results []struct {
			Type    string `json:"type"`
			Name    string `json:"name"`
			Status  string `json:"status"`
			Message string `json:"message"`
		} `json:"results"`
		Summary struct {
			Total      int `json:"total"`
			Successful int `json:"successful"`
			Failed     int `json:"failed"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 2, resp.Summary.Total)
	assert.Equal(t, 1, resp.Summary.Successful)
	assert.Equal(t, 1, resp.Summary.Failed)

	require.Len(t, resp.Results, 2)
	assert.Equal(t, "error", resp.Results[0].Status)
	assert.Contains(t, resp.Results[0].Message, "category not found")
	assert.Equal(t, "created", resp.Results[1].Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkImportManufacturersAndCategories(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO manufacturers`)).
		WithArgs("Bosch", "Germany", nil).
		WillReturnRows(sqlmock.NewRows([]string{"inserted"}).AddRow(true))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO categories`)).
		WithArgs("Filters", nil).
		WillReturnRows(sqlmock.NewRows([]string{"inserted"}).AddRow(false))

	rec := postJSON(t, h.BulkImport, "/admin/supply/bulk-import", gin.H{
		"manufacturers": []gin.H{{"name": "Bosch", "country": "Germany"}},
		"categories":    []gin.H{{"name": "Filters"}},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Results []struct {
			Type   string `json:"type"`
			Status string `json:"status"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "created", resp.Results[0].Status)
	assert.Equal(t, "updated", resp.Results[1].Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkImportRejectsNamelessEntries(t *testing.T) {
	h, mock := newTestHandler(t)

	rec := postJSON(t, h.BulkImport, "/admin/supply/bulk-import", gin.H{
		"manufacturers": []gin.H{{"country": "Germany"}},
		"products":      []gin.H{{"price": 1.0}},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Summary struct {
			Total  int `json:"total"`
			Failed int `json:"failed"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Summary.Total)
	assert.Equal(t, 2, resp.Summary.Failed)

	assert.NoError(t, mock.ExpectationsWereMet())
}
