package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"threadmart/internal/caching"
	"threadmart/internal/handlers"
	"threadmart/internal/jobs/background"
	"threadmart/internal/middleware"
	"threadmart/internal/repositories"
	"threadmart/internal/services"
	"threadmart/pkg/database"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Database connection
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}
	pool, err := database.NewPool(databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Redis configuration
	redisAddr := getenv("REDIS_ADDR", "localhost:6379")
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := 0
	if raw := os.Getenv("REDIS_DB"); raw != "" {
		if db, err := strconv.Atoi(raw); err == nil {
			redisDB = db
		}
	}
	cacheSvc := caching.NewRedisCacheService(redisAddr, redisPassword, redisDB)

	// MinIO configuration
	minioEndpoint := getenv("MINIO_ENDPOINT", "localhost:9000")
	minioAccessKey := getenv("MINIO_ACCESS_KEY", "minioadmin")
	minioSecretKey := getenv("MINIO_SECRET_KEY", "minioadmin")
	minioUseSSL := os.Getenv("MINIO_USE_SSL") == "true"
	minioSvc, err := services.NewMinioService(minioEndpoint, minioAccessKey, minioSecretKey, minioUseSSL)
	if err != nil {
		log.Fatalf("Failed to create MinIO client: %v", err)
	}
	if err := minioSvc.EnsureBucketExists(context.Background(), services.ProductImageBucket); err != nil {
		log.Printf("WARNING: could not ensure image bucket: %v", err)
	}

	// Auth provider and mailer
	providerURL := os.Getenv("AUTH_PROVIDER_URL")
	if providerURL == "" {
		log.Fatal("AUTH_PROVIDER_URL environment variable is required")
	}
	providerKey := os.Getenv("AUTH_PROVIDER_KEY")
	providerSvc := services.NewAuthProviderService(providerURL, providerKey)

	mailerSvc := services.NewMailerService(
		getenv("EMAIL_ENDPOINT", "https://api.resend.com/emails"),
		os.Getenv("EMAIL_API_KEY"),
		getenv("EMAIL_SENDER", "no-reply@threadmart.io"),
	)

	// Token verification: JWKS when the provider publishes one, shared
	// secret otherwise.
	keyFn, err := middleware.NewKeyfunc(os.Getenv("AUTH_JWKS_URL"), os.Getenv("JWT_SECRET"))
	if err != nil {
		log.Fatalf("Failed to configure token verification: %v", err)
	}

	// Repositories
	userRepo := repositories.NewUserRepo(pool)
	superuserRepo := repositories.NewSuperuserRepo(pool)
	productRepo := repositories.NewProductRepo(pool)
	categoryRepo := repositories.NewCategoryRepo(pool)
	sizeRepo := repositories.NewSizeRepo(pool)
	cartRepo := repositories.NewCartRepo(pool)
	orderRepo := repositories.NewOrderRepo(pool)
	orderItemRepo := repositories.NewOrderItemRepo(pool)
	reviewRepo := repositories.NewReviewRepo(pool)
	replyRepo := repositories.NewReplyRepo(pool)
	messageRepo := repositories.NewMessageRepo(pool)
	otpRepo := repositories.NewOTPRepo(pool)
	txManager := repositories.NewTxManager(pool)

	// Services
	permissionSvc := services.NewPermissionService(superuserRepo)
	authSvc := services.NewAuthService(providerSvc, mailerSvc, userRepo, otpRepo, cacheSvc)
	productSvc := services.NewProductService(productRepo, categoryRepo, sizeRepo, minioSvc, cacheSvc)
	categorySvc := services.NewCategoryService(categoryRepo)
	sizeSvc := services.NewSizeService(sizeRepo)
	cartSvc := services.NewCartService(cartRepo, productRepo, sizeRepo)
	orderSvc := services.NewOrderService(txManager, orderRepo, orderItemRepo, productRepo, sizeRepo)
	reviewSvc := services.NewReviewService(reviewRepo, replyRepo, productRepo)
	messageSvc := services.NewMessageService(messageRepo)

	// Handlers
	authHandlers := handlers.NewAuthHandlers(authSvc, userRepo)
	productHandlers := handlers.NewProductHandlers(productSvc)
	categoryHandlers := handlers.NewCategoryHandlers(categorySvc)
	sizeHandlers := handlers.NewSizeHandlers(sizeSvc)
	cartHandlers := handlers.NewCartHandlers(cartSvc, orderSvc)
	orderHandlers := handlers.NewOrderHandlers(orderSvc)
	reviewHandlers := handlers.NewReviewHandlers(reviewSvc)
	messageHandlers := handlers.NewMessageHandlers(messageSvc)
	adminHandlers := handlers.NewAdminHandlers(permissionSvc, superuserRepo)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc, minioSvc, services.ProductImageBucket)

	adminGuard := middleware.NewAdminMiddleware(permissionSvc)

	// Background jobs
	scheduler, err := background.NewJobScheduler(otpRepo, orderRepo)
	if err != nil {
		log.Fatalf("Failed to create job scheduler: %v", err)
	}
	scheduler.Start()
	defer func() {
		if err := scheduler.Stop(); err != nil {
			log.Printf("Failed to stop job scheduler: %v", err)
		}
	}()

	e := echo.New()
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Pre(echoMiddleware.RemoveTrailingSlash())

	// Health
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/live", healthHandlers.LivenessCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/signup", authHandlers.Signup)
	api.POST("/auth/login", authHandlers.Login)
	api.POST("/auth/otp/request", authHandlers.RequestOTP)
	api.POST("/auth/otp/verify", authHandlers.VerifyOTP)
	api.POST("/auth/password/reset", authHandlers.ResetPassword)

	api.GET("/products", productHandlers.ListProducts)
	api.GET("/products/:id", productHandlers.GetProduct)
	api.GET("/products/:id/reviews", reviewHandlers.ListProductReviews)
	api.GET("/categories", categoryHandlers.ListCategories)
	api.GET("/categories/:id", categoryHandlers.GetCategory)
	api.GET("/sizes", sizeHandlers.ListSizes)
	api.POST("/messages", messageHandlers.Submit)

	// Authenticated routes
	authed := api.Group("", middleware.JWTMiddleware(keyFn))
	authed.GET("/me", authHandlers.Me)

	authed.POST("/cart", cartHandlers.AddItem)
	authed.GET("/cart", cartHandlers.ListItems)
	authed.DELETE("/cart", cartHandlers.Clear)
	authed.DELETE("/cart/:id", cartHandlers.RemoveItem)
	authed.POST("/cart/place-order", cartHandlers.PlaceOrder)

	authed.POST("/orders", orderHandlers.CreateOrder)
	authed.GET("/orders", orderHandlers.ListMyOrders)
	authed.GET("/orders/:id", orderHandlers.GetOrder)

	authed.POST("/products/:id/reviews", reviewHandlers.CreateReview)
	authed.DELETE("/reviews/:id", reviewHandlers.DeleteReview)
	authed.POST("/reviews/:id/replies", reviewHandlers.CreateReply)
	authed.DELETE("/replies/:id", reviewHandlers.DeleteReply)

	// Admin routes
	admin := api.Group("/admin", middleware.JWTMiddleware(keyFn), adminGuard.RequireSuperuser())

	admin.POST("/products", productHandlers.CreateProduct)
	admin.PUT("/products/:id", productHandlers.UpdateProduct)
	admin.DELETE("/products/:id", productHandlers.DeleteProduct)
	admin.POST("/products/:id/image", productHandlers.UploadImage)
	admin.POST("/products/:id/categories/:categoryID", productHandlers.AttachCategory)
	admin.DELETE("/products/:id/categories/:categoryID", productHandlers.DetachCategory)
	admin.POST("/products/:id/sizes/:sizeID", productHandlers.AttachSize)
	admin.DELETE("/products/:id/sizes/:sizeID", productHandlers.DetachSize)

	admin.POST("/categories", categoryHandlers.CreateCategory)
	admin.PUT("/categories/:id", categoryHandlers.UpdateCategory)
	admin.DELETE("/categories/:id", categoryHandlers.DeleteCategory)

	admin.POST("/sizes", sizeHandlers.CreateSize)
	admin.PUT("/sizes/:id", sizeHandlers.UpdateSize)
	admin.DELETE("/sizes/:id", sizeHandlers.DeleteSize)

	admin.GET("/orders", orderHandlers.ListAllOrders)
	admin.PUT("/orders/:id/status", orderHandlers.UpdateStatus)

	admin.GET("/messages", messageHandlers.List)

	admin.POST("/superusers", adminHandlers.GrantSuperuser)
	admin.DELETE("/superusers/:id", adminHandlers.RevokeSuperuser)
	admin.GET("/superusers", adminHandlers.ListSuperusers)

	port := getenv("PORT", "8080")
	log.Fatal(e.Start(":" + port))
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
