package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"rentmate/internal/adapter/api"
	"rentmate/internal/adapter/api/handler"
	apimiddleware "rentmate/internal/adapter/api/middleware"
	"rentmate/internal/adapter/api/router"
	"rentmate/internal/adapter/repository"
	"rentmate/internal/infrastructure/firebase"
	"rentmate/internal/infrastructure/geocode"
	"rentmate/internal/infrastructure/pdf"
	"rentmate/internal/infrastructure/ratelimit"
	"rentmate/internal/infrastructure/storage"
	"rentmate/internal/usecase"
	"rentmate/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	clients, err := firebase.NewClients(ctx, cfg.FirebaseProject, cfg.StorageBucket)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}
	defer clients.Close()

	storageClient := storage.NewCloudStorageClient(clients.Bucket, cfg.StorageBucket, cfg.SignedURLTTLDays)
	geocoder := geocode.NewGoogleGeocoder(cfg.MapsAPIKey)
	leaseRenderer := pdf.NewLeaseRenderer(cfg.ContractTemplate)

	userRepo := repository.NewFirestoreUserRepository(clients.Firestore)
	rentalRepo := repository.NewFirestoreRentalRepository(clients.Firestore)
	appointmentRepo := repository.NewFirestoreAppointmentRepository(clients.Firestore)
	contractRepo := repository.NewFirestoreContractRepository(clients.Firestore)
	favoriteRepo := repository.NewFirestoreFavoriteRepository(clients.Firestore)
	tenantRecordRepo := repository.NewFirestoreTenantRecordRepository(clients.Firestore)
	chatRepo := repository.NewFirestoreChatRepository(clients.Firestore)

	authUseCase := usecase.NewAuthUseCase(userRepo)
	userUseCase := usecase.NewUserUseCase(userRepo)
	rentalUseCase := usecase.NewRentalUseCase(rentalRepo, favoriteRepo, storageClient, geocoder)
	appointmentUseCase := usecase.NewAppointmentUseCase(appointmentRepo)
	contractUseCase := usecase.NewContractUseCase(contractRepo, userRepo, storageClient, leaseRenderer)
	favoriteUseCase := usecase.NewFavoriteUseCase(favoriteRepo, rentalRepo)
	tenantRecordUseCase := usecase.NewTenantRecordUseCase(tenantRecordRepo, userRepo)
	chatUseCase := usecase.NewChatUseCase(chatRepo)

	handler.Setup(
		authUseCase,
		userUseCase,
		rentalUseCase,
		appointmentUseCase,
		contractUseCase,
		favoriteUseCase,
		tenantRecordUseCase,
		chatUseCase,
	)

	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()
	rateLimitMiddleware := apimiddleware.NewRateLimitMiddleware(rateLimiter)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit(cfg.BodyLimit))

	e.Validator = api.NewValidator()

	router.Setup(e, rateLimitMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
