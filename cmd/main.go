package main

import (
	"fmt"
	"net/http"
	"time"

	_ "github.com/franciscosanchezn/pizza-catalog-api/docs" // Import generated docs
	"github.com/franciscosanchezn/pizza-catalog-api/internal/auth"
	"github.com/franciscosanchezn/pizza-catalog-api/internal/config"
	"github.com/franciscosanchezn/pizza-catalog-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-catalog-api/internal/database"
	"github.com/franciscosanchezn/pizza-catalog-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-catalog-api/internal/models"
	"github.com/franciscosanchezn/pizza-catalog-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db            *gorm.DB
	configuration *config.Config

	tokenService auth.TokenService
	oauthService *auth.OAuthService

	userService        services.UserService
	pizzaService       services.PizzaService
	ingredientService  services.IngredientService
	associationService services.AssociationService
	clientService      services.ClientService

	authController        *controllers.AuthController
	pizzaController       controllers.PizzaController
	ingredientController  controllers.IngredientController
	associationController controllers.AssociationController
	clientController      *controllers.ClientController
)

// @title Pizza Catalog API
// @version 1.0
// @description Catalog management API for pizzas, ingredients and their associations
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

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize token issuance
	tokenService = auth.NewTokenService(configuration.JWTSecret,
		configuration.AccessTokenTTL(), configuration.RefreshTokenTTL())
	oauthService = auth.NewOAuthService(db, configuration.JWTSecret, configuration.AccessTokenTTL())

	// Initialize services and controllers
	userService = services.NewUserService(db)
	pizzaService = services.NewPizzaService(db)
	ingredientService = services.NewIngredientService(db)
	associationService = services.NewAssociationService(db)
	clientService = services.NewClientService(db)

	authController = controllers.NewAuthController(userService, tokenService)
	pizzaController = controllers.NewPizzaController(pizzaService)
	ingredientController = controllers.NewIngredientController(ingredientService)
	associationController = controllers.NewAssociationController(associationService)
	clientController = controllers.NewClientController(clientService)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	checkPanicErr(router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port)))
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
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase initializes the database connection and migrates the schema
func setupDatabase(conf *config.Config) {
	var err error
	db, err = database.InitDatabase(database.FromAppConfig(conf))
	checkPanicErr(err)
	checkPanicErr(database.Migrate(db))

	// Seed only if the catalog is empty
	var count int64
	db.Model(&models.Pizza{}).Count(&count)
	if count == 0 {
		log.Info("Database is empty, seeding initial data")
		seedDatabase()
	} else {
		log.Info("Database already seeded with initial data")
	}
}

// seedDatabase seeds the catalog with a starter menu
func seedDatabase() {
	ingredients := []models.Ingredient{
		{Name: "Tomato Sauce", Category: "sauce"},
		{Name: "Mozzarella", Category: "cheese"},
		{Name: "Basil", Category: "herb"},
		{Name: "Pepperoni", Category: "meat"},
		{Name: "Bell Peppers", Category: "vegetable"},
		{Name: "Olives", Category: "vegetable"},
	}
	for i := range ingredients {
		if err := db.Create(&ingredients[i]).Error; err != nil {
			log.WithError(err).Warn("Failed to seed ingredient")
			return
		}
	}

	menu := []struct {
		pizza   models.Pizza
		indexes []int
	}{
		{models.Pizza{Name: "Margherita", Price: 1099, IsActive: true}, []int{0, 1, 2}},
		{models.Pizza{Name: "Pepperoni", Price: 1299, IsActive: true}, []int{0, 1, 3}},
		{models.Pizza{Name: "Vegetarian", Price: 1199, IsActive: true}, []int{0, 1, 4, 5}},
	}
	for _, item := range menu {
		pizza := item.pizza
		if err := db.Create(&pizza).Error; err != nil {
			log.WithError(err).Warn("Failed to seed pizza")
			return
		}
		for _, idx := range item.indexes {
			link := models.PizzaIngredient{PizzaID: pizza.ID, IngredientID: ingredients[idx].ID}
			if err := db.Create(&link).Error; err != nil {
				log.WithError(err).Warn("Failed to seed association")
				return
			}
		}
	}
	log.Info("Database seeded successfully")
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	// Initialize Gin router
	router := gin.Default()

	// Define routes
	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Public endpoints
	router.GET("/", homeHandler)
	router.GET("/health", healthCheckHandler)

	router.POST("/signup", authController.Signup)
	router.POST("/login", authController.Login)

	// Pizza detail stays public so the menu can be browsed without an account
	router.GET("/pizzas/:id", pizzaController.GetPizzaByID)

	// Machine client token endpoint
	router.POST("/oauth/token", oauthService.HandleToken)

	// Protected routes (require a valid access token)
	authorized := router.Group("/")
	authorized.Use(middleware.RequireAuth(tokenService, userService))
	{
		authorized.GET("/pizzas", pizzaController.GetAllPizzas)
		authorized.POST("/pizzas", pizzaController.CreatePizza)
		authorized.PATCH("/pizzas/:id", pizzaController.UpdatePizza)

		authorized.GET("/ingredients/:id", ingredientController.GetIngredientByID)
		authorized.POST("/ingredients", ingredientController.CreateIngredient)
		authorized.PATCH("/ingredients/:id", ingredientController.UpdateIngredient)
		authorized.DELETE("/ingredients/:id", ingredientController.DeleteIngredient)

		authorized.POST("/pizzas/ingredients/:pizza_id/:ingredient_id", associationController.AddIngredientToPizza)
		authorized.DELETE("/pizzas/ingredients/:pizza_id/:ingredient_id", associationController.RemoveIngredientFromPizza)

		authorized.POST("/oauth/clients", clientController.CreateClient)
		authorized.GET("/oauth/clients", clientController.ListClients)
		authorized.DELETE("/oauth/clients/:id", clientController.DeleteClient)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// homeHandler welcomes visitors to the pizza app
// @Summary Home
// @Description Welcome endpoint
// @Tags home
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func homeHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"Welcome": "to the pizza app",
	})
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
		"service":   "pizza-catalog-api",
	})
}
