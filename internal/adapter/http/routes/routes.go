package routes

import (
	"context"
	"log"
	"strconv"
	"strings"

	_ "window_quotation/docs" // This will be auto-generated
	"window_quotation/internal/adapter/http/handlers"
	repository2 "window_quotation/internal/adapter/persistence/repository"
	"window_quotation/internal/adapter/render"
	"window_quotation/internal/infrastructure/config"
	"window_quotation/internal/infrastructure/database"
	"window_quotation/internal/usecase"
	"window_quotation/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.Load()
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	store := getRoutes(cfg)
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("[quotation][store] close failed: %v", err)
		}
	}()

	err := router.Run(":" + strconv.Itoa(cfg.HTTPPort))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) interfaces.IQuotationStore {
	store := newLocalStore(cfg)
	remote := newRemoteService(cfg)
	renderer := render.NewPDFRenderer("")

	quotationUseCase := usecase.NewQuotationUseCase(store, remote, renderer, usecase.Options{
		MaxQuantity:  cfg.MaxQuantity,
		ValidityDays: cfg.ValidityDays,
		NumberPrefix: cfg.NumberPrefix,
	})

	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)
	catalogHandler := handlers.NewCatalogHandler()

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, catalogHandler)
	addQuotationRoutes(v1, quotationHandler)
	return store
}

// newLocalStore opens the SQLite cache, falling back to memory when the path
// is "memory" or the file cannot be opened.
func newLocalStore(cfg config.Config) interfaces.IQuotationStore {
	if strings.EqualFold(cfg.LocalCachePath, "memory") {
		return repository2.NewQuotationMemoryStore()
	}
	store, err := repository2.NewQuotationSQLiteStore(cfg.LocalCachePath)
	if err != nil {
		log.Printf("[quotation][store] sqlite cache unavailable path=%s err=%v, using memory", cfg.LocalCachePath, err)
		return repository2.NewQuotationMemoryStore()
	}
	return store
}

// newRemoteService returns nil when remote sync is disabled or unreachable;
// quotations are then kept locally only.
func newRemoteService(cfg config.Config) interfaces.IRemoteQuoteService {
	ctx := context.Background()
	switch cfg.RemoteDriver {
	case config.RemoteDriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			log.Printf("[quotation][remote] dynamodb not configured: %v", err)
			return nil
		}
		if err := database.EnsureQuotationsTable(ctx, ddb, cfg.TableName); err != nil {
			log.Printf("[quotation][remote] ensure table=%s failed: %v", cfg.TableName, err)
		}
		return repository2.NewQuotationDynamoRepository(ddb, cfg.TableName)
	case config.RemoteDriverPostgres:
		if cfg.DatabaseURL == "" {
			log.Printf("[quotation][remote] DATABASE_URL not set, remote sync disabled")
			return nil
		}
		pool, err := database.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Printf("[quotation][remote] postgres not reachable: %v", err)
			return nil
		}
		repo := repository2.NewQuotationPostgresRepository(pool, cfg.TableName)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Printf("[quotation][remote] ensure schema failed: %v", err)
		}
		return repo
	default:
		log.Printf("[quotation][remote] remote sync disabled")
		return nil
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
