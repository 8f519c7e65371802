package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zodmy/SiriusAuto-sub001/database"
	"github.com/zodmy/SiriusAuto-sub001/models"
)

func (h *Handler) GetCarModels(c *gin.Context) {
	rows, err := h.DB.Query(`SELECT id, make_id, name FROM car_models ORDER BY name`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch car models"})
		return
	}
	defer rows.Close()

	carModels := []models.CarModel{}
	for rows.Next() {
		var model models.CarModel
		if err := rows.Scan(&model.ID, &model.MakeID, &model.Name); err != nil {
			continue
		}
		carModels = append(carModels, model)
	}

	c.JSON(http.StatusOK, gin.H{"carModels": carModels})
}

func (h *Handler) GetCarModelYears(c *gin.Context) {
	modelID, ok := idParam(c)
	if !ok {
		return
	}

	var exists bool
	err := h.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM car_models WHERE id = $1)`, modelID).Scan(&exists)
	if err != nil || !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Car model not found"})
		return
	}

	rows, err := h.DB.Query(`SELECT id, model_id, year FROM car_years WHERE model_id = $1 ORDER BY year`, modelID)
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

func (h *Handler) CreateCarModel(c *gin.Context) {
	var req struct {
		MakeID int64  `json:"makeId" binding:"required"`
		Name   string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var exists bool
	err := h.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM car_makes WHERE id = $1)`, req.MakeID).Scan(&exists)
	if err != nil || !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Car make not found"})
		return
	}

	var model models.CarModel
	err = h.DB.QueryRow(
		`INSERT INTO car_models (make_id, name) VALUES ($1, $2) RETURNING id, make_id, name`,
		req.MakeID, req.Name,
	).Scan(&model.ID, &model.MakeID, &model.Name)
	if err != nil {
		if database.IsUniqueViolation(database.ClassifyError(err)) {
			c.JSON(http.StatusConflict, gin.H{"error": "Car model already exists for this make"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create car model"})
		return
	}

	c.JSON(http.StatusCreated, model)
}

func (h *Handler) UpdateCarModel(c *gin.Context) {
	modelID, ok := idParam(c)
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.DB.Exec(`UPDATE car_models SET name = $1 WHERE id = $2`, req.Name, modelID)
	if err != nil {
		if database.IsUniqueViolation(database.ClassifyError(err)) {
			c.JSON(http.StatusConflict, gin.H{"error": "Car model already exists for this make"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update car model"})
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Car model not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Car model updated successfully"})
}

func (h *Handler) DeleteCarModel(c *gin.Context) {
	modelID, ok := idParam(c)
	if !ok {
		return
	}

	res, err := h.DB.Exec(`DELETE FROM car_models WHERE id = $1`, modelID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete car model"})
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Car model not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Car model deleted successfully"})
}
