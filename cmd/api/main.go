package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"artisanmarket/internal/adapter/api"
	"artisanmarket/internal/adapter/api/handler"
	apimiddleware "artisanmarket/internal/adapter/api/middleware"
	"artisanmarket/internal/adapter/api/router"
	"artisanmarket/internal/adapter/repository"
	"artisanmarket/internal/infrastructure/firebase"
	"artisanmarket/internal/infrastructure/storage"
	"artisanmarket/internal/usecase"
	"artisanmarket/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// Credentials are injected once here; nothing downstream constructs its
	// own client or sees a key.
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

	var uploader usecase.FileUploader
	if cfg.StorageBucket != "" {
		storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, opts...)
		if err != nil {
			log.Fatalf("Failed to initialize Cloud Storage: %v", err)
		}
		defer storageClient.Close()
		uploader = storageClient
	}

	customerRepo := repository.NewFirestoreCustomerRepository(firestoreClient)
	sellerRepo := repository.NewFirestoreSellerRepository(firestoreClient)
	conversationRepo := repository.NewFirestoreConversationRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)

	identityUseCase := usecase.NewIdentityUseCase(customerRepo, sellerRepo)
	conversationUseCase := usecase.NewConversationUseCase(conversationRepo, productRepo, identityUseCase)
	statsUseCase := usecase.NewStatsUseCase(customerRepo, sellerRepo, orderRepo, productRepo, cfg.ActiveSellerRequiresListing)
	productUseCase := usecase.NewProductUseCase(productRepo, uploader)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Data-access boundary timeout; expiry classifies as transient.
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqCtx, cancel := context.WithTimeout(c.Request().Context(), cfg.ReadTimeout)
			defer cancel()
			c.SetRequest(c.Request().WithContext(reqCtx))
			return next(c)
		}
	})

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)

	conversationHandler := handler.NewConversationHandler(conversationUseCase)
	statsHandler := handler.NewStatsHandler(statsUseCase)
	productHandler := handler.NewProductHandler(productUseCase)
	healthHandler := handler.NewHealthHandler(firebase.NewFirebaseAuthClient(authClient))

	router.Setup(e, authMiddleware, conversationHandler, statsHandler, productHandler, healthHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
