package main

import (
	"fmt"
	"net/http"
	"time"

	_ "github.com/ovenline/pizza-order-api/docs" // Import generated docs
	"github.com/ovenline/pizza-order-api/internal/config"
	"github.com/ovenline/pizza-order-api/internal/controllers"
	"github.com/ovenline/pizza-order-api/internal/database"
	"github.com/ovenline/pizza-order-api/internal/middleware"
	"github.com/ovenline/pizza-order-api/internal/models"
	"github.com/ovenline/pizza-order-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db              *gorm.DB
	pizzaService    services.PizzaService
	userService     services.UserService
	orderService    services.OrderService
	pizzaController controllers.PizzaController
	orderController controllers.OrderController
	authController  *controllers.AuthController
	configuration   *config.Config
)

// @title Pizza Ordering API
// @version 1.0
// @description Backend for a pizza-ordering application: catalog, signup/login and order placement
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Set JWT secret from configuration
	middleware.SetJWTSecret(configuration.JWTSecret)

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize services and controllers
	pizzaService = services.NewPizzaService(db)
	userService = services.NewUserService(db)
	orderService = services.NewOrderService(db, configuration.DBQueryTimeout,
		services.NewLogOrderObserver(log.StandardLogger()))
	pizzaController = controllers.NewPizzaController(pizzaService)
	orderController = controllers.NewOrderController(orderService)
	authController = controllers.NewAuthController(userService, configuration.JWTSecret)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %+v", conf)
	return conf
}

// setupDatabase initializes the database connection and returns a gorm.DB instance
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.DatabaseConfig{
		Driver:          conf.DBDriver,
		Host:            conf.DBHost,
		Port:            conf.DBPort,
		User:            conf.DBUser,
		Password:        conf.DBPassword,
		Name:            conf.DBName,
		SSLMode:         conf.DBSSLMode,
		Path:            conf.DBPath,
		MaxOpenConns:    conf.DBMaxOpenConns,
		MaxIdleConns:    conf.DBMaxIdleConns,
		ConnMaxLifetime: conf.DBConnMaxLifetime,
	})
	checkPanicErr(err)

	// Migrate the schema
	err = db.AutoMigrate(&models.Pizza{}, &models.User{}, &models.Order{})
	checkPanicErr(err)

	// Seed the catalog only if it is empty
	var count int64
	db.Model(&models.Pizza{}).Count(&count)
	if count == 0 {
		log.Info("Catalog is empty, seeding initial data")
		seedCatalog()
	} else {
		log.Info("Catalog already seeded with initial data")
	}
	return db
}

// seedCatalog seeds the pizza catalog with its static reference data
func seedCatalog() {
	log.Info("Seeding catalog with initial data")
	pizzas := []models.Pizza{
		{Name: "Margherita", Cost: 9.99, Category: models.CategoryVeg, Available: true},
		{Name: "Farmhouse", Cost: 11.49, Category: models.CategoryVeg, Available: true},
		{Name: "Peppy Paneer", Cost: 10.99, Category: models.CategoryVeg, Available: true},
		{Name: "Veggie Supreme", Cost: 8.50, Category: models.CategoryVeg, Available: true},
		{Name: "Pepperoni", Cost: 12.99, Category: models.CategoryNonVeg, Available: true},
		{Name: "Chicken Tikka", Cost: 12.49, Category: models.CategoryNonVeg, Available: true},
		{Name: "BBQ Chicken", Cost: 13.49, Category: models.CategoryNonVeg, Available: false},
		{Name: "Truffle Feast", Cost: 15.99, Category: models.CategorySpecial, Available: true},
		{Name: "Quattro Formaggi", Cost: 14.99, Category: models.CategorySpecial, Available: true},
	}
	for _, pizza := range pizzas {
		db.Create(&pizza)
	}
	log.Info("Catalog seeded successfully")
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	// Initialize Gin router
	router := gin.Default()

	// Cross-cutting middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(configuration.CORSAllowOrigin))

	// Define routes
	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	v1 := router.Group("/api/v1")
	{
		publicApi := v1.Group("/public")
		{
			publicApi.GET("/pizzas", pizzaController.GetAllPizzas)
			publicApi.GET("/pizzas/:id", pizzaController.GetPizzaByID)
		}

		// Authentication routes (public but for auth purposes)
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", authController.Signup)
			auth.POST("/login", authController.Login)
		}

		// Protected routes (requires JWT authentication)
		// This group will use the JWTAuth middleware
		// and will require a valid JWT token to access
		protectedApi := v1.Group("/protected")
		protectedApi.Use(middleware.JWTAuth())
		{
			protectedApi.POST("/orders", orderController.PlaceOrder)
			protectedApi.GET("/orders/:userId", orderController.GetOrdersByUser)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "pizza-order-api",
	})
}
