package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"github.com/zodmy/SiriusAuto-sub001/config"
	"github.com/zodmy/SiriusAuto-sub001/database"
	"github.com/zodmy/SiriusAuto-sub001/handlers"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	// Initialize tables
	if err := db.InitializeTables(); err != nil {
		log.Fatal("Failed to initialize tables:", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	h := handlers.New(db, cfg.JWTSecret)

	router := gin.Default()

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "SiriusAuto server is running",
		})
	})

	// Admin authentication routes (no auth required)
	router.POST("/admin/signup", h.AdminSignup)
	router.POST("/admin/login", h.AdminLogin)

	// Public vehicle hierarchy reads
	router.GET("/car-makes", h.GetCarMakes)
	router.GET("/car-makes/:id/models", h.GetCarMakeModels)
	router.GET("/car-models", h.GetCarModels)
	router.GET("/car-models/:id/years", h.GetCarModelYears)
	router.GET("/car-years", h.GetCarYears)
	router.GET("/car-years/:id/body-types", h.GetCarYearBodyTypes)
	router.GET("/car-body-types", h.GetCarBodyTypes)
	router.GET("/car-body-types/:id/engines", h.GetCarBodyTypeEngines)
	router.GET("/car-engines", h.GetCarEngines)

	// Public catalog reads
	router.GET("/products", h.GetProducts)
	router.GET("/products/:id", h.GetProduct)
	router.GET("/products/:id/compatibilities", h.GetProductCompatibilities)
	router.GET("/manufacturers", h.GetManufacturers)
	router.GET("/manufacturers/:id", h.GetManufacturer)
	router.GET("/categories", h.GetCategories)
	router.GET("/compatibilities/find-by-car", h.FindCompatibleProductsByCar)

	// Admin routes (protected)
	admin := router.Group("")
	admin.Use(h.AuthMiddleware(), h.AdminMiddleware())
	{
		admin.POST("/car-makes", h.CreateCarMake)
		admin.PUT("/car-makes/:id", h.UpdateCarMake)
		admin.DELETE("/car-makes/:id", h.DeleteCarMake)

		admin.POST("/car-models", h.CreateCarModel)
		admin.PUT("/car-models/:id", h.UpdateCarModel)
		admin.DELETE("/car-models/:id", h.DeleteCarModel)

		admin.POST("/car-years", h.CreateCarYear)
		admin.PUT("/car-years/:id", h.UpdateCarYear)
		admin.DELETE("/car-years/:id", h.DeleteCarYear)

		admin.POST("/car-body-types", h.CreateCarBodyType)
		admin.PUT("/car-body-types/:id", h.UpdateCarBodyType)
		admin.DELETE("/car-body-types/:id", h.DeleteCarBodyType)

		admin.POST("/car-engines", h.CreateCarEngine)
		admin.PUT("/car-engines/:id", h.UpdateCarEngine)
		admin.DELETE("/car-engines/:id", h.DeleteCarEngine)

		admin.POST("/compatibilities", h.CreateCompatibility)
		admin.POST("/compatibilities/hierarchical", h.CreateHierarchicalCompatibilities)
		admin.DELETE("/compatibilities/:id", h.DeleteCompatibility)

		admin.POST("/products", h.CreateProduct)
		admin.PUT("/products/:id", h.UpdateProduct)
		admin.DELETE("/products/:id", h.DeleteProduct)

		admin.POST("/manufacturers", h.CreateManufacturer)
		admin.PUT("/manufacturers/:id", h.UpdateManufacturer)
		admin.DELETE("/manufacturers/:id", h.DeleteManufacturer)

		admin.POST("/categories", h.CreateCategory)
		admin.PUT("/categories/:id", h.UpdateCategory)
		admin.DELETE("/categories/:id", h.DeleteCategory)

		admin.POST("/admin/supply/bulk-import", h.BulkImport)
	}

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	// Start server
	log.Printf("Starting SiriusAuto server on 0.0.0.0:%s", cfg.ServerPort)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.ServerPort, corsHandler.Handler(router)))
}
