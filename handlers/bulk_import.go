package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zodmy/SiriusAuto-sub001/database"
	"github.com/zodmy/SiriusAuto-sub001/fitment"
)

type BulkImportRequest struct {
	Manufacturers []BulkManufacturer `json:"manufacturers"`
	Categories    []BulkCategory     `json:"categories"`
	Products      []BulkProduct      `json:"products"`
}

type BulkManufacturer struct {
	Name        string `json:"name"`
	Country     string `json:"country"`
	Description string `json:"description"`
}

type BulkCategory struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type BulkProduct struct {
	Name               string               `json:"name"`
	Description        string               `json:"description"`
	Price              float64              `json:"price"`
	Stock              int                  `json:"stock"`
	ManufacturerName   string               `json:"manufacturerName"`
	CategoryName       string               `json:"categoryName"`
	ImageURL           string               `json:"imageUrl"`
	CompatibleVehicles []fitment.VehicleRef `json:"compatibleVehicles"`
}

type bulkEntryResult struct {
	Type    string      `json:"type"`
	Name    string      `json:"name"`
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Detail  interface{} `json:"detail,omitempty"`
}

// BulkImport processes a supply document entry by entry. A failing entry is
// recorded with status "error" and processing continues; the call as a whole
// succeeds with a per-entry breakdown and a summary.
func (h *Handler) BulkImport(c *gin.Context) {
	var req BulkImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var results []bulkEntryResult

	for _, m := range req.Manufacturers {
		results = append(results, h.importManufacturer(m))
	}
	for _, cat := range req.Categories {
		results = append(results, h.importCategory(cat))
	}
	for _, p := range req.Products {
		results = append(results, h.importProduct(p)...)
	}

	successful, failed := 0, 0
	for _, r := range results {
		if r.Status == "error" {
			failed++
		} else {
			successful++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"summary": gin.H{
			"total":      len(results),
			"successful": successful,
			"failed":     failed,
		},
	})
}

func (h *Handler) importManufacturer(m BulkManufacturer) bulkEntryResult {
	result := bulkEntryResult{Type: "manufacturer", Name: m.Name}
	if m.Name == "" {
		result.Status = "error"
		result.Message = "manufacturer name is required"
		return result
	}

	var country, description *string
	if m.Country != "" {
		country = &m.Country
	}
	if m.Description != "" {
		description = &m.Description
	}

	var inserted bool
	query := `INSERT INTO manufacturers (name, country, description) VALUES ($1, $2, $3)
	          ON CONFLICT (name) DO UPDATE SET country = EXCLUDED.country, description = EXCLUDED.description
	          RETURNING (xmax = 0)`
	if err := h.DB.QueryRow(query, m.Name, country, description).Scan(&inserted); err != nil {
		result.Status = "error"
		result.Message = database.ClassifyError(err).Error()
		return result
	}

	if inserted {
		result.Status = "created"
	} else {
		result.Status = "updated"
	}
	return result
}

func (h *Handler) importCategory(cat BulkCategory) bulkEntryResult {
	result := bulkEntryResult{Type: "category", Name: cat.Name}
	if cat.Name == "" {
		result.Status = "error"
		result.Message = "category name is required"
		return result
	}

	var description *string
	if cat.Description != "" {
		description = &cat.Description
	}

	var inserted bool
	query := `INSERT INTO categories (name, description) VALUES ($1, $2)
	          ON CONFLICT (name) DO UPDATE SET description = EXCLUDED.description
	          RETURNING (xmax = 0)`
	if err := h.DB.QueryRow(query, cat.Name, description).Scan(&inserted); err != nil {
		result.Status = "error"
		result.Message = database.ClassifyError(err).Error()
		return result
	}

	if inserted {
		result.Status = "created"
	} else {
		result.Status = "updated"
	}
	return result
}

// importProduct creates or updates one product, then replaces its
// compatibility list. The product and each of its vehicles are separate
// result entries, so one bad vehicle never sinks the product or its siblings.
func (h *Handler) importProduct(p BulkProduct) []bulkEntryResult {
	result := bulkEntryResult{Type: "product", Name: p.Name}
	if p.Name == "" {
		result.Status = "error"
		result.Message = "product name is required"
		return []bulkEntryResult{result}
	}

	var manufacturerID, categoryID *uuid.UUID
	if p.ManufacturerName != "" {
		var id uuid.UUID
		err := h.DB.QueryRow(`SELECT id FROM manufacturers WHERE name = $1`, p.ManufacturerName).Scan(&id)
		if err != nil {
			result.Status = "error"
			result.Message = "manufacturer not found: " + p.ManufacturerName
			return []bulkEntryResult{result}
		}
		manufacturerID = &id
	}
	if p.CategoryName != "" {
		var id uuid.UUID
		err := h.DB.QueryRow(`SELECT id FROM categories WHERE name = $1`, p.CategoryName).Scan(&id)
		if err != nil {
			result.Status = "error"
			result.Message = "category not found: " + p.CategoryName
			return []bulkEntryResult{result}
		}
		categoryID = &id
	}

	var description, imageURL *string
	if p.Description != "" {
		description = &p.Description
	}
	if p.ImageURL != "" {
		imageURL = &p.ImageURL
	}

	var productID uuid.UUID
	err := h.DB.QueryRow(`SELECT id FROM products WHERE name = $1`, p.Name).Scan(&productID)
	switch {
	case err == nil:
		_, err = h.DB.Exec(
			`UPDATE products SET description = $1, price = $2, stock = $3,
			        manufacturer_id = $4, category_id = $5, image_url = $6, updated_at = now()
			 WHERE id = $7`,
			description, p.Price, p.Stock, manufacturerID, categoryID, imageURL, productID,
		)
		if err != nil {
			result.Status = "error"
			result.Message = database.ClassifyError(err).Error()
			return []bulkEntryResult{result}
		}
		result.Status = "updated"
	case database.IsNotFound(database.ClassifyError(err)):
		err = h.DB.QueryRow(
			`INSERT INTO products (name, description, price, stock, manufacturer_id, category_id, image_url)
			 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
			p.Name, description, p.Price, p.Stock, manufacturerID, categoryID, imageURL,
		).Scan(&productID)
		if err != nil {
			result.Status = "error"
			result.Message = database.ClassifyError(err).Error()
			return []bulkEntryResult{result}
		}
		result.Status = "created"
	default:
		result.Status = "error"
		result.Message = database.ClassifyError(err).Error()
		return []bulkEntryResult{result}
	}

	results := []bulkEntryResult{result}

	if p.CompatibleVehicles != nil {
		for _, entry := range h.Ledger.Replace(productID, p.CompatibleVehicles) {
			results = append(results, bulkEntryResult{
				Type:    "vehicle",
				Name:    p.Name,
				Status:  entry.Status,
				Message: entry.Message,
				Detail:  entry.Vehicle,
			})
		}
	}

	return results
}
