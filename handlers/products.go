package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/zodmy/SiriusAuto-sub001/database"
	"github.com/zodmy/SiriusAuto-sub001/fitment"
	"github.com/zodmy/SiriusAuto-sub001/models"
)

// ProductListRequest holds the listing filters. All of them compose by AND;
// the vehicle fields feed the fitment filter and showAllProducts disables it.
type ProductListRequest struct {
	Search          string   `form:"search"`
	Manufacturers   []string `form:"manufacturer"`
	MinPrice        string   `form:"minPrice"`
	MaxPrice        string   `form:"maxPrice"`
	InStock         string   `form:"inStock"`
	CarMake         string   `form:"carMake"`
	CarModel        string   `form:"carModel"`
	CarYear         string   `form:"carYear"`
	CarBodyType     string   `form:"carBodyType"`
	CarEngine       string   `form:"carEngine"`
	ShowAllProducts string   `form:"showAllProducts"`
}

func (r ProductListRequest) vehicleFilter() (fitment.VehicleFilter, error) {
	filter := fitment.VehicleFilter{
		Make:     r.CarMake,
		Model:    r.CarModel,
		BodyType: r.CarBodyType,
		Engine:   r.CarEngine,
		ShowAll:  r.ShowAllProducts == "true",
	}
	if r.CarYear != "" {
		year, err := strconv.Atoi(r.CarYear)
		if err != nil {
			return fitment.VehicleFilter{}, fmt.Errorf("invalid carYear: %q", r.CarYear)
		}
		filter.Year = year
	}
	return filter, nil
}

func (h *Handler) GetProducts(c *gin.Context) {
	var req ProductListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle, err := req.vehicleFilter()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var conditions []string
	var args []interface{}
	argIndex := 1

	if req.Search != "" {
		searchTerm := "%" + strings.ToLower(req.Search) + "%"
		conditions = append(conditions, fmt.Sprintf(
			"(LOWER(p.name) LIKE $%d OR LOWER(p.description) LIKE $%d)", argIndex, argIndex))
		args = append(args, searchTerm)
		argIndex++
	}

	if len(req.Manufacturers) > 0 {
		conditions = append(conditions, fmt.Sprintf("m.name = ANY($%d)", argIndex))
		args = append(args, pq.Array(req.Manufacturers))
		argIndex++
	}

	if req.MinPrice != "" {
		minPrice, err := strconv.ParseFloat(req.MinPrice, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid minPrice"})
			return
		}
		conditions = append(conditions, fmt.Sprintf("p.price >= $%d", argIndex))
		args = append(args, minPrice)
		argIndex++
	}

	if req.MaxPrice != "" {
		maxPrice, err := strconv.ParseFloat(req.MaxPrice, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maxPrice"})
			return
		}
		conditions = append(conditions, fmt.Sprintf("p.price <= $%d", argIndex))
		args = append(args, maxPrice)
		argIndex++
	}

	if req.InStock == "true" {
		conditions = append(conditions, "p.stock > 0")
	}

	if clause, clauseArgs, next := vehicle.Clause("p.id", argIndex); clause != "" {
		conditions = append(conditions, clause)
		args = append(args, clauseArgs...)
		argIndex = next
	}

	query := `SELECT p.id, p.name, p.description, p.price, p.stock,
	                 p.manufacturer_id, p.category_id, p.image_url, p.created_at, p.updated_at,
	                 m.name
	          FROM products p
	          LEFT JOIN manufacturers m ON p.manufacturer_id = m.id`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY p.name"

	rows, err := h.DB.Query(query, args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	defer rows.Close()

	products := []gin.H{}
	for rows.Next() {
		var p models.Product
		var manufacturerName *string
		err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock,
			&p.ManufacturerID, &p.CategoryID, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
			&manufacturerName,
		)
		if err != nil {
			continue
		}

		products = append(products, gin.H{
			"id":             p.ID,
			"name":           p.Name,
			"description":    p.Description,
			"price":          p.Price,
			"stock":          p.Stock,
			"manufacturerId": p.ManufacturerID,
			"manufacturer":   manufacturerName,
			"categoryId":     p.CategoryID,
			"imageUrl":       p.ImageURL,
			"createdAt":      p.CreatedAt,
			"updatedAt":      p.UpdatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *Handler) GetProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var p models.Product
	query := `SELECT id, name, description, price, stock, manufacturer_id, category_id, image_url, created_at, updated_at
	          FROM products WHERE id = $1`
	err = h.DB.QueryRow(query, productID).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock,
		&p.ManufacturerID, &p.CategoryID, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if database.IsNotFound(database.ClassifyError(err)) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		}
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req struct {
		Name           string  `json:"name" binding:"required"`
		Description    string  `json:"description"`
		Price          float64 `json:"price"`
		Stock          int     `json:"stock"`
		ManufacturerID string  `json:"manufacturerId"`
		CategoryID     string  `json:"categoryId"`
		ImageURL       string  `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var description, imageURL *string
	if req.Description != "" {
		description = &req.Description
	}
	if req.ImageURL != "" {
		imageURL = &req.ImageURL
	}

	var manufacturerID, categoryID *uuid.UUID
	if req.ManufacturerID != "" {
		parsed, err := uuid.Parse(req.ManufacturerID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid manufacturer ID"})
			return
		}
		manufacturerID = &parsed
	}
	if req.CategoryID != "" {
		parsed, err := uuid.Parse(req.CategoryID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
			return
		}
		categoryID = &parsed
	}

	var productID uuid.UUID
	query := `INSERT INTO products (name, description, price, stock, manufacturer_id, category_id, image_url)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := h.DB.QueryRow(query, req.Name, description, req.Price, req.Stock, manufacturerID, categoryID, imageURL).
		Scan(&productID)
	if err != nil {
		if database.IsForeignKeyViolation(database.ClassifyError(err)) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Manufacturer or category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      productID,
		"name":    req.Name,
		"message": "Product created successfully",
	})
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var req struct {
		Name        string  `json:"name" binding:"required"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Stock       int     `json:"stock"`
		ImageURL    string  `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var description, imageURL *string
	if req.Description != "" {
		description = &req.Description
	}
	if req.ImageURL != "" {
		imageURL = &req.ImageURL
	}

	query := `UPDATE products SET name = $1, description = $2, price = $3, stock = $4, image_url = $5, updated_at = now()
	          WHERE id = $6`
	res, err := h.DB.Exec(query, req.Name, description, req.Price, req.Stock, imageURL, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	res, err := h.DB.Exec(`DELETE FROM products WHERE id = $1`, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
