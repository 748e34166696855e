package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	"convoyage/internal/adapter/http/handlers"
	repository2 "convoyage/internal/adapter/persistence/repository"
	"convoyage/internal/domain/render"
	"convoyage/internal/infrastructure/database"
	"convoyage/internal/infrastructure/payments"
	"convoyage/internal/infrastructure/storage"
	"convoyage/internal/usecase"
	"convoyage/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	missionRepo := repository2.NewMissionDynamoRepository(ddb)
	documentRepo := repository2.NewDocumentDynamoRepository(ddb)
	sequenceRepo := repository2.NewSequenceDynamoRepository(ddb)
	draftRepo := repository2.NewDraftDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)

	var fileStore interfaces.IFileStore
	awsCfg, err := database.NewAWSConfigFromEnv(context.Background())
	if err != nil {
		log.Printf("File store not configured: %v", err)
	} else {
		fileStore = storage.NewS3FileStore(awsCfg)
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	wizardUseCase := usecase.NewWizardUseCase(missionRepo, documentRepo, sequenceRepo, draftRepo)
	documentUseCase := usecase.NewBillingDocumentUseCase(documentRepo, sequenceRepo)
	missionUseCase := usecase.NewMissionUseCase(missionRepo)
	exportUseCase := usecase.NewDocumentExportUseCase(documentUseCase, missionUseCase, fileStore, issuerFromEnv())
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, documentRepo, paymentGateway)

	wizardHandler := handlers.NewWizardHandler(wizardUseCase)
	documentHandler := handlers.NewDocumentHandler(documentUseCase, exportUseCase)
	missionHandler := handlers.NewMissionHandler(missionUseCase, exportUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWizardRoutes(v1, wizardHandler)
	addBillingRoutes(v1, documentHandler, paymentHandler)
	addMissionRoutes(v1, missionHandler)
}

// issuerFromEnv reads the issuing company identity printed on documents.
func issuerFromEnv() render.Issuer {
	return render.Issuer{
		Name:    getenvDefault("ISSUER_NAME", "Convoyage"),
		Address: os.Getenv("ISSUER_ADDRESS"),
		Email:   os.Getenv("ISSUER_EMAIL"),
		Phone:   os.Getenv("ISSUER_PHONE"),
		SIRET:   os.Getenv("ISSUER_SIRET"),
		VATID:   os.Getenv("ISSUER_VAT_ID"),
	}
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
