package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zodmy/SiriusAuto-sub001/database"
	"github.com/zodmy/SiriusAuto-sub001/fitment"
)

// CreateCompatibility is the raw admin create: a full five-id tuple for one
// product. The ids are verified to form one consistent hierarchy chain before
// the insert, so this path cannot produce tuples the expander never would.
func (h *Handler) CreateCompatibility(c *gin.Context) {
	var req struct {
		ProductID     string `json:"productId" binding:"required"`
		CarMakeID     int64  `json:"carMakeId" binding:"required"`
		CarModelID    int64  `json:"carModelId" binding:"required"`
		CarYearID     int64  `json:"carYearId" binding:"required"`
		CarBodyTypeID int64  `json:"carBodyTypeId" binding:"required"`
		CarEngineID   int64  `json:"carEngineId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	tuple := fitment.Tuple{
		MakeID:     req.CarMakeID,
		ModelID:    req.CarModelID,
		YearID:     req.CarYearID,
		BodyTypeID: req.CarBodyTypeID,
		EngineID:   req.CarEngineID,
	}

	if err := h.Store.VerifyChain(tuple); err != nil {
		if database.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Car engine not found"})
			return
		}
		if errors.Is(err, fitment.ErrInconsistentLink) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Vehicle ids do not form a consistent hierarchy chain"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify vehicle hierarchy"})
		return
	}

	created, err := h.Ledger.Create(productID, tuple)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create compatibility"})
		return
	}
	if !created {
		c.JSON(http.StatusConflict, gin.H{"error": "Compatibility already exists"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"productId":     productID,
		"carMakeId":     tuple.MakeID,
		"carModelId":    tuple.ModelID,
		"carYearId":     tuple.YearID,
		"carBodyTypeId": tuple.BodyTypeID,
		"carEngineId":   tuple.EngineID,
		"message":       "Compatibility created successfully",
	})
}

// CreateHierarchicalCompatibilities expands a partial vehicle selection and
// creates one compatibility row per concrete vehicle beneath it. Duplicates
// are skipped silently: total counts every tuple attempted, created only the
// fresh inserts.
func (h *Handler) CreateHierarchicalCompatibilities(c *gin.Context) {
	var req struct {
		ProductID     string `json:"productId" binding:"required"`
		CarMakeID     int64  `json:"carMakeId" binding:"required"`
		CarModelID    int64  `json:"carModelId"`
		CarYearID     int64  `json:"carYearId"`
		CarBodyTypeID int64  `json:"carBodyTypeId"`
		CarEngineID   int64  `json:"carEngineId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var exists bool
	err = h.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, productID).Scan(&exists)
	if err != nil || !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	sel := fitment.Selection{
		MakeID:     req.CarMakeID,
		ModelID:    req.CarModelID,
		YearID:     req.CarYearID,
		BodyTypeID: req.CarBodyTypeID,
		EngineID:   req.CarEngineID,
	}

	created, total, err := h.Ledger.CreateForSelection(productID, sel)
	if err != nil {
		if errors.Is(err, fitment.ErrMakeRequired) || errors.Is(err, fitment.ErrSelectionGap) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create compatibilities"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"created": created, "total": total})
}

// FindCompatibleProductsByCar returns every product with at least one
// compatibility row matching the supplied vehicle ids. makeId, modelId and
// yearId are required; bodyTypeId and engineId narrow further.
func (h *Handler) FindCompatibleProductsByCar(c *gin.Context) {
	makeID, err1 := strconv.ParseInt(c.Query("makeId"), 10, 64)
	modelID, err2 := strconv.ParseInt(c.Query("modelId"), 10, 64)
	yearID, err3 := strconv.ParseInt(c.Query("yearId"), 10, 64)
	if err1 != nil || err2 != nil || err3 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "makeId, modelId and yearId are required"})
		return
	}

	var bodyTypeID, engineID int64
	if v := c.Query("bodyTypeId"); v != "" {
		if bodyTypeID, err1 = strconv.ParseInt(v, 10, 64); err1 != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bodyTypeId"})
			return
		}
	}
	if v := c.Query("engineId"); v != "" {
		if engineID, err1 = strconv.ParseInt(v, 10, 64); err1 != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid engineId"})
			return
		}
	}

	products, err := h.Ledger.FindMatching(makeID, modelID, yearID, bodyTypeID, engineID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find compatible products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *Handler) GetProductCompatibilities(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	details, err := h.Ledger.FindByProduct(productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch compatibilities"})
		return
	}
	if details == nil {
		details = []fitment.CompatibilityDetail{}
	}

	c.JSON(http.StatusOK, gin.H{"compatibilities": details})
}

func (h *Handler) DeleteCompatibility(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.Ledger.Delete(id); err != nil {
		if database.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Compatibility not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete compatibility"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Compatibility deleted successfully"})
}
