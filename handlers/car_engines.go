package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zodmy/SiriusAuto-sub001/database"
	"github.com/zodmy/SiriusAuto-sub001/models"
)

func (h *Handler) GetCarEngines(c *gin.Context) {
	rows, err := h.DB.Query(`SELECT id, body_type_id, name, capacity, horsepower FROM car_engines ORDER BY name`)
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

func (h *Handler) CreateCarEngine(c *gin.Context) {
	var req struct {
		BodyTypeID int64    `json:"bodyTypeId" binding:"required"`
		Name       string   `json:"name" binding:"required"`
		Capacity   *float64 `json:"capacity"`
		Horsepower *int     `json:"horsepower"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var exists bool
	err := h.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM car_body_types WHERE id = $1)`, req.BodyTypeID).Scan(&exists)
	if err != nil || !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Car body type not found"})
		return
	}

	var engine models.CarEngine
	err = h.DB.QueryRow(
		`INSERT INTO car_engines (body_type_id, name, capacity, horsepower) VALUES ($1, $2, $3, $4)
		 RETURNING id, body_type_id, name, capacity, horsepower`,
		req.BodyTypeID, req.Name, req.Capacity, req.Horsepower,
	).Scan(&engine.ID, &engine.BodyTypeID, &engine.Name, &engine.Capacity, &engine.Horsepower)
	if err != nil {
		if database.IsUniqueViolation(database.ClassifyError(err)) {
			c.JSON(http.StatusConflict, gin.H{"error": "Car engine already exists for this body type"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create car engine"})
		return
	}

	c.JSON(http.StatusCreated, engine)
}

func (h *Handler) UpdateCarEngine(c *gin.Context) {
	engineID, ok := idParam(c)
	if !ok {
		return
	}

	var req struct {
		Name       string   `json:"name" binding:"required"`
		Capacity   *float64 `json:"capacity"`
		Horsepower *int     `json:"horsepower"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.DB.Exec(
		`UPDATE car_engines SET name = $1, capacity = $2, horsepower = $3 WHERE id = $4`,
		req.Name, req.Capacity, req.Horsepower, engineID,
	)
	if err != nil {
		if database.IsUniqueViolation(database.ClassifyError(err)) {
			c.JSON(http.StatusConflict, gin.H{"error": "Car engine already exists for this body type"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update car engine"})
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Car engine not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Car engine updated successfully"})
}

func (h *Handler) DeleteCarEngine(c *gin.Context) {
	engineID, ok := idParam(c)
	if !ok {
		return
	}

	res, err := h.DB.Exec(`DELETE FROM car_engines WHERE id = $1`, engineID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete car engine"})
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Car engine not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Car engine deleted successfully"})
}
