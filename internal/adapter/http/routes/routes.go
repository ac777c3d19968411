package routes

import (
	"context"
	"log"
	"strconv"

	_ "mwonto_studio/docs" // This will be auto-generated
	"mwonto_studio/internal/adapter/http/handlers"
	repository2 "mwonto_studio/internal/adapter/persistence/repository"
	"mwonto_studio/internal/infrastructure/config"
	"mwonto_studio/internal/infrastructure/database"
	"mwonto_studio/internal/infrastructure/identity"
	"mwonto_studio/internal/infrastructure/mail"
	"mwonto_studio/internal/render"
	"mwonto_studio/internal/usecase"

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

	getRoutes(cfg)

	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ddb, err := database.NewDynamoDBClient(context.Background(), cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DynamoDB: %v", err)
	}

	documentRepo := repository2.NewDocumentDynamoRepository(ddb, cfg.Database.DocumentsTable)

	verifier, err := identity.NewJWTVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	if err != nil {
		log.Fatalf("Failed to configure session verification: %v", err)
	}

	mailer, err := mail.NewMailer(cfg.Mail)
	if err != nil {
		log.Fatalf("Failed to configure outbound mail: %v", err)
	}

	rasterizer, err := render.NewRasterizer(nil, cfg.Render.AssetTimeout, cfg.Render.Scale)
	if err != nil {
		log.Fatalf("Failed to configure the document renderer: %v", err)
	}
	packager := render.NewPackager()

	documentUseCase := usecase.NewDocumentUseCase(documentRepo, verifier)
	exportUseCase := usecase.NewExportUseCase(documentRepo, rasterizer, packager)
	sendUseCase := usecase.NewSendUseCase(documentRepo, exportUseCase, mailer, cfg.AppName)

	documentHandler := handlers.NewDocumentHandler(documentUseCase)
	exportHandler := handlers.NewExportHandler(exportUseCase, sendUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addDocumentRoutes(v1, documentHandler, exportHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
