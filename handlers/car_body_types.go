package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zodmy/SiriusAuto-sub001/database"
	"github.com/zodmy/SiriusAuto-sub001/models"
)

func (h *Handler) GetCarBodyTypes(c *gin.Context) {
	rows, err := h.DB.Query(`SELECT id, year_id, name FROM car_body_types ORDER BY name`)
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

func (h *Handler) GetCarBodyTypeEngines(c *gin.Context) {
	bodyTypeID, ok := idParam(c)
	if !ok {
		return
	}

	var exists bool
	err := h.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM car_body_types WHERE id = $1)`, bodyTypeID).Scan(&exists)
	if err != nil || !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Car body type not found"})
		return
	}

	rows, err := h.DB.Query(
		`SELECT id, body_type_id, name, capacity, horsepower FROM car_engines WHERE body_type_id = $1 ORDER BY name`,
		bodyTypeID,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch car engines"})
		return
	}
	defer rows.Close()

	engines := []models.CarEngine{}
	for rows.Next() {
		var engine models.CarEngine
		if err := rows.Scan(&engine.ID, &engine.BodyTypeID, &engine.Name, &engine.Capacity, &engine.Horsepower); err != nil {
			continue
		}
		engines = append(engines, engine)
	}

	c.JSON(http.StatusOK, gin.H{"carEngines": engines})
}

func (h *Handler) CreateCarBodyType(c *gin.Context) {
	var req struct {
		YearID int64  `json:"yearId" binding:"required"`
		Name   string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var exists bool
	err := h.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM car_years WHERE id = $1)`, req.YearID).Scan(&exists)
	if err != nil || !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Car year not found"})
		return
	}

	var bodyType models.CarBodyType
	err = h.DB.QueryRow(
		`INSERT INTO car_body_types (year_id, name) VALUES ($1, $2) RETURNING id, year_id, name`,
		req.YearID, req.Name,
	).Scan(&bodyType.ID, &bodyType.YearID, &bodyType.Name)
	if err != nil {
		if database.IsUniqueViolation(database.ClassifyError(err)) {
			c.JSON(http.StatusConflict, gin.H{"error": "Car body type already exists for this year"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create car body type"})
		return
	}

	c.JSON(http.StatusCreated, bodyType)
}

func (h *Handler) UpdateCarBodyType(c *gin.Context) {
	bodyTypeID, ok := idParam(c)
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

	res, err := h.DB.Exec(`UPDATE car_body_types SET name = $1 WHERE id = $2`, req.Name, bodyTypeID)
	if err != nil {
		if database.IsUniqueViolation(database.ClassifyError(err)) {
			c.JSON(http.StatusConflict, gin.H{"error": "Car body type already exists for this year"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update car body type"})
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Car body type not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Car body type updated successfully"})
}

func (h *Handler) DeleteCarBodyType(c *gin.Context) {
	bodyTypeID, ok := idParam(c)
	if !ok {
		return
	}

	res, err := h.DB.Exec(`DELETE FROM car_body_types WHERE id = $1`, bodyTypeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete car body type"})
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Car body type not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Car body type deleted successfully"})
}
