package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zodmy/SiriusAuto-sub001/database"
	"github.com/zodmy/SiriusAuto-sub001/models"
)

func (h *Handler) GetCarYears(c *gin.Context) {
	rows, err := h.DB.Query(`SELECT id, model_id, year FROM car_years ORDER BY year`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch car years"})
		return
	}
	defer rows.Close()

	years := []models.CarYear{}
	for rows.Next() {
		var year models.CarYear
		if err := rows.Scan(&year.ID, &year.ModelID, &year.Year); err != nil {
			continue
		}
		years = append(years, year)
	}

	c.JSON(http.StatusOK, gin.H{"carYears": years})
}

func (h *Handler) GetCarYearBodyTypes(c *gin.Context) {
	yearID, ok := idParam(c)
	if !ok {
		return
	}

	var exists bool
	err := h.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM car_years WHERE id = $1)`, yearID).Scan(&exists)
	if err != nil || !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Car year not found"})
		return
	}

	rows, err := h.DB.Query(`SELECT id, year_id, name FROM car_body_types WHERE year_id = $1 ORDER BY name`, yearID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch car body types"})
		return
	}
	defer rows.Close()

	bodyTypes := []models.CarBodyType{}
	for rows.Next() {
		var bodyType models.CarBodyType
		if err := rows.Scan(&bodyType.ID, &bodyType.YearID, &bodyType.Name); err != nil {
			continue
		}
		bodyTypes = append(bodyTypes, bodyType)
	}

	c.JSON(http.StatusOK, gin.H{"carBodyTypes": bodyTypes})
}

func (h *Handler) CreateCarYear(c *gin.Context) {
	var req struct {
		ModelID int64 `json:"modelId" binding:"required"`
		Year    int   `json:"year" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Year <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Year must be positive"})
		return
	}

	var exists bool
	err := h.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM car_models WHERE id = $1)`, req.ModelID).Scan(&exists)
	if err != nil || !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Car model not found"})
		return
	}

	var year models.CarYear
	err = h.DB.QueryRow(
		`INSERT INTO car_years (model_id, year) VALUES ($1, $2) RETURNING id, model_id, year`,
		req.ModelID, req.Year,
	).Scan(&year.ID, &year.ModelID, &year.Year)
	if err != nil {
		if database.IsUniqueViolation(database.ClassifyError(err)) {
			c.JSON(http.StatusConflict, gin.H{"error": "Car year already exists for this model"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create car year"})
		return
	}

	c.JSON(http.StatusCreated, year)
}

func (h *Handler) UpdateCarYear(c *gin.Context) {
	yearID, ok := idParam(c)
	if !ok {
		return
	}

	var req struct {
		Year int `json:"year" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Year <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Year must be positive"})
		return
	}

	res, err := h.DB.Exec(`UPDATE car_years SET year = $1 WHERE id = $2`, req.Year, yearID)
	if err != nil {
		if database.IsUniqueViolation(database.ClassifyError(err)) {
			c.JSON(http.StatusConflict, gin.H{"error": "Car year already exists for this model"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update car year"})
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Car year not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Car year updated successfully"})
}

func (h *Handler) DeleteCarYear(c *gin.Context) {
	yearID, ok := idParam(c)
	if !ok {
		return
	}

	res, err := h.DB.Exec(`DELETE FROM car_years WHERE id = $1`, yearID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete car year"})
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Car year not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Car year deleted successfully"})
}
