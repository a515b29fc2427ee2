package config

import (
	"DonorLink/internal/api/handlers"
	"DonorLink/internal/api/routes"
	"DonorLink/internal/middleware"
	"DonorLink/internal/utils"
	"DonorLink/internal/utils/mailing"
	"DonorLink/internal/utils/storage"
	"DonorLink/pkg/account"
	"DonorLink/pkg/donation"
	"DonorLink/pkg/jwt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	uploadDir := utils.GetConfig("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	var store storage.Storage
	if utils.GetConfig("STORAGE_DRIVER") == "s3" {
		store = storage.NewAwsS3()
	} else {
		store = storage.NewLocalStorage(uploadDir)
	}
	mailer := mailing.NewMailer()

	// Repository
	donorRepository := account.NewDonorRepository(db)
	ngoRepository := account.NewNgoRepository(db)
	donationRepository := donation.NewDonationRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	accountService := account.NewAccountService(donorRepository, ngoRepository, jwtService)
	donationService := donation.NewDonationService(donationRepository, store, mailer)

	// Handler
	accountHandler := handlers.NewAccountHandler(accountService, validator, jwtService)
	donationHandler := handlers.NewDonationHandler(donationService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		AccountHandler:  accountHandler,
		DonationHandler: donationHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
		UploadDir:       uploadDir,
	}
	routesConfig.Setup()
	return app, nil
}
