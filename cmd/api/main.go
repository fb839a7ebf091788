package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"portafolio/internal/adapter/api"
	"portafolio/internal/adapter/api/handler"
	apimiddleware "portafolio/internal/adapter/api/middleware"
	"portafolio/internal/adapter/api/router"
	"portafolio/internal/adapter/repository"
	"portafolio/internal/domain/service"
	"portafolio/internal/infrastructure/firebase"
	"portafolio/internal/infrastructure/storage"
	"portafolio/internal/usecase"
	"portafolio/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	cartRepo := repository.NewFirestoreCartRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	contentRepo := repository.NewFirestoreContentRepository(firestoreClient)
	messageRepo := repository.NewFirestoreMessageRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	paymentService := service.NewPaypalPaymentService(
		cfg.PaypalClientID,
		cfg.PaypalSecret,
		cfg.PaymentCurrency,
		cfg.PaymentIntent,
		cfg.PaypalEnvironment == "production",
	)

	authUseCase := usecase.NewAuthUseCase(firebaseAuthClient)
	cartUseCase := usecase.NewCartUseCase(cartRepo)
	checkoutUseCase := usecase.NewCheckoutUseCase(cartUseCase, orderRepo, paymentService, cfg.SuccessURL, cfg.CancelURL)
	contentUseCase := usecase.NewContentUseCase(contentRepo, storageClient)
	reviewUseCase := usecase.NewReviewUseCase(contentRepo)
	messageUseCase := usecase.NewMessageUseCase(messageRepo)

	handler.Setup(authUseCase, cartUseCase, checkoutUseCase, contentUseCase, reviewUseCase, messageUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)

	router.Setup(e, authMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
