package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zodmy/SiriusAuto-sub001/database"
	"github.com/zodmy/SiriusAuto-sub001/models"
)

func (h *Handler) GetCarMakes(c *gin.Context) {
	rows, err := h.DB.Query(`SELECT id, name FROM car_makes ORDER BY name`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch car makes"})
		return
	}
	defer rows.Close()

	makes := []models.CarMake{}
	for rows.Next() {
		var make models.CarMake
		if err := rows.Scan(&make.ID, &make.Name); err != nil {
			continue
		}
		makes = append(makes, make)
	}

	c.JSON(http.StatusOK, gin.H{"carMakes": makes})
}

func (h *Handler) GetCarMakeModels(c *gin.Context) {
	makeID, ok := idParam(c)
	if !ok {
		return
	}

	var exists bool
	err := h.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM car_makes WHERE id = $1)`, makeID).Scan(&exists)
	if err != nil || !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Car make not found"})
		return
	}

	rows, err := h.DB.Query(`SELECT id, make_id, name FROM car_models WHERE make_id = $1 ORDER BY name`, makeID)
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

func (h *Handler) CreateCarMake(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var make models.CarMake
	err := h.DB.QueryRow(`INSERT INTO car_makes (name) VALUES ($1) RETURNING id, name`, req.Name).
		Scan(&make.ID, &make.Name)
	if err != nil {
		if database.IsUniqueViolation(database.ClassifyError(err)) {
			c.JSON(http.StatusConflict, gin.H{"error": "Car make already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create car make"})
		return
	}

	c.JSON(http.StatusCreated, make)
}

func (h *Handler) UpdateCarMake(c *gin.Context) {
	makeID, ok := idParam(c)
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

	res, err := h.DB.Exec(`UPDATE car_makes SET name = $1 WHERE id = $2`, req.Name, makeID)
	if err != nil {
		if database.IsUniqueViolation(database.ClassifyError(err)) {
			c.JSON(http.StatusConflict, gin.H{"error": "Car make already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update car make"})
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Car make not found"})
		return
	}

	c.JSON(http.StatusOK, models.CarMake{ID: makeID, Name: req.Name})
}

func (h *Handler) DeleteCarMake(c *gin.Context) {
	makeID, ok := idParam(c)
	if !ok {
		return
	}

	res, err := h.DB.Exec(`DELETE FROM car_makes WHERE id = $1`, makeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete car make"})
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Car make not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Car make deleted successfully"})
}
