package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zodmy/SiriusAuto-sub001/database"
	"github.com/zodmy/SiriusAuto-sub001/fitment"
	"github.com/zodmy/SiriusAuto-sub001/models"
)

// GetManufacturers lists manufacturers, optionally narrowed to those with at
// least one product fitting the selected vehicle. Universal products count,
// so a manufacturer of fits-everything parts always stays visible.
func (h *Handler) GetManufacturers(c *gin.Context) {
	filter := fitment.VehicleFilter{
		Make:     c.Query("carMake"),
		Model:    c.Query("carModel"),
		BodyType: c.Query("carBodyType"),
		Engine:   c.Query("carEngine"),
		ShowAll:  c.Query("showAllProducts") == "true",
	}
	if v := c.Query("carYear"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid carYear"})
			return
		}
		filter.Year = year
	}

	query := `SELECT m.id, m.name, m.country, m.description, m.created_at FROM manufacturers m`
	var args []interface{}

	if clause, clauseArgs, _ := filter.Clause("p.id", 1); clause != "" {
		query += fmt.Sprintf(` WHERE EXISTS (
			SELECT 1 FROM products p
			WHERE p.manufacturer_id = m.id AND %s
		)`, clause)
		args = clauseArgs
	}
	query += " ORDER BY m.name"

	rows, err := h.DB.Query(query, args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch manufacturers"})
		return
	}
	defer rows.Close()

	manufacturers := []models.Manufacturer{}
	for rows.Next() {
		var m models.Manufacturer
		if err := rows.Scan(&m.ID, &m.Name, &m.Country, &m.Description, &m.CreatedAt); err != nil {
			continue
		}
		manufacturers = append(manufacturers, m)
	}

	c.JSON(http.StatusOK, gin.H{"manufacturers": manufacturers})
}

func (h *Handler) GetManufacturer(c *gin.Context) {
	manufacturerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid manufacturer ID"})
		return
	}

	var m models.Manufacturer
	query := `SELECT id, name, country, description, created_at FROM manufacturers WHERE id = $1`
	err = h.DB.QueryRow(query, manufacturerID).Scan(&m.ID, &m.Name, &m.Country, &m.Description, &m.CreatedAt)
	if err != nil {
		if database.IsNotFound(database.ClassifyError(err)) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Manufacturer not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch manufacturer"})
		}
		return
	}

	c.JSON(http.StatusOK, m)
}

func (h *Handler) CreateManufacturer(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Country     string `json:"country"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var country, description *string
	if req.Country != "" {
		country = &req.Country
	}
	if req.Description != "" {
		description = &req.Description
	}

	var manufacturerID uuid.UUID
	query := `INSERT INTO manufacturers (name, country, description) VALUES ($1, $2, $3) RETURNING id`
	err := h.DB.QueryRow(query, req.Name, country, description).Scan(&manufacturerID)
	if err != nil {
		if database.IsUniqueViolation(database.ClassifyError(err)) {
			c.JSON(http.StatusConflict, gin.H{"error": "Manufacturer already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create manufacturer"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      manufacturerID,
		"name":    req.Name,
		"message": "Manufacturer created successfully",
	})
}

func (h *Handler) UpdateManufacturer(c *gin.Context) {
	manufacturerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid manufacturer ID"})
		return
	}

	var req struct {
		Name        string `json:"name" binding:"required"`
		Country     string `json:"country"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var country, description *string
	if req.Country != "" {
		country = &req.Country
	}
	if req.Description != "" {
		description = &req.Description
	}

	res, err := h.DB.Exec(
		`UPDATE manufacturers SET name = $1, country = $2, description = $3 WHERE id = $4`,
		req.Name, country, description, manufacturerID,
	)
	if err != nil {
		if database.IsUniqueViolation(database.ClassifyError(err)) {
			c.JSON(http.StatusConflict, gin.H{"error": "Manufacturer already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update manufacturer"})
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Manufacturer not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Manufacturer updated successfully"})
}

func (h *Handler) DeleteManufacturer(c *gin.Context) {
	manufacturerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid manufacturer ID"})
		return
	}

	res, err := h.DB.Exec(`DELETE FROM manufacturers WHERE id = $1`, manufacturerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete manufacturer"})
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Manufacturer not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Manufacturer deleted successfully"})
}
