package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freight-marketplace/internal/config"
	"freight-marketplace/internal/delivery/http/handler"
	domainAccount "freight-marketplace/internal/domain/account"
	"freight-marketplace/internal/infrastructure/database/postgres"
	"freight-marketplace/internal/infrastructure/geo"
	"freight-marketplace/internal/infrastructure/mail"
	"freight-marketplace/internal/infrastructure/sms"
	"freight-marketplace/internal/infrastructure/storage"
	"freight-marketplace/internal/infrastructure/tokenstore"
	"freight-marketplace/internal/infrastructure/workbook"
	"freight-marketplace/internal/logger"
	"freight-marketplace/internal/middleware"
	"freight-marketplace/internal/usecase/account"
	"freight-marketplace/internal/usecase/consignment"
	"freight-marketplace/internal/usecase/driver"
	"freight-marketplace/internal/usecase/inquiry"
	"freight-marketplace/internal/usecase/shipment"
	"freight-marketplace/internal/usecase/vehicle"
	"freight-marketplace/internal/usecase/verification"
)

func SetupRoutes(cfg *config.Config, db *postgres.DB, store *tokenstore.Store) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware in order: recovery, request ID, logging, security headers,
	// CORS, request size limit, general rate limit.
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(10 << 20))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}
		if err := store.Health(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Redis connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	shipperRepository := postgres.NewShipperRepository(db)
	transporterRepository := postgres.NewTransporterRepository(db)
	vehicleRepository := postgres.NewVehicleRepository(db)
	driverRepository := postgres.NewDriverRepository(db)
	shipmentRepository := postgres.NewShipmentRepository(db)
	consignmentRepository := postgres.NewConsignmentRepository(db)

	directory := &domainAccount.Directory{
		Shippers:     shipperRepository,
		Transporters: transporterRepository,
	}

	smsClient := sms.NewTwoFactorClient(&cfg.SMS)
	mailer := mail.NewMailer(&cfg.SMTP)
	mapboxClient := geo.NewMapboxClient(&cfg.Mapbox)
	inquiryWorkbook := workbook.New(cfg.Inquiry.WorkbookPath)
	uploader := storage.NewPlaceholder(cfg.Server.FrontendURL + "/files")

	accountService := account.NewService(shipperRepository, transporterRepository, &cfg.JWT)
	verificationService := verification.NewService(directory, store, smsClient, mailer, cfg)
	vehicleService := vehicle.NewService(vehicleRepository, transporterRepository, uploader)
	driverService := driver.NewService(driverRepository, transporterRepository, uploader)
	shipmentService := shipment.NewService(shipmentRepository, uploader)
	consignmentService := consignment.NewService(consignmentRepository, shipmentRepository)
	inquiryService := inquiry.NewService(mapboxClient, inquiryWorkbook, mailer, cfg.Inquiry.NotifyEmail)

	accountHandler := handler.NewAccountHandler(accountService)
	verificationHandler := handler.NewVerificationHandler(verificationService)
	vehicleHandler := handler.NewVehicleHandler(vehicleService)
	driverHandler := handler.NewDriverHandler(driverService)
	shipmentHandler := handler.NewShipmentHandler(shipmentService)
	consignmentHandler := handler.NewConsignmentHandler(consignmentService)
	inquiryHandler := handler.NewInquiryHandler(inquiryService)

	api := router.Group("/api")
	{
		verificationHandler.RegisterRoutes(api)
		inquiryHandler.RegisterRoutes(api)

		shipper := api.Group("/shipper")
		{
			accountHandler.RegisterPublicRoutes(shipper, domainAccount.RoleShipper)
		}

		transporters := api.Group("/transporters")
		{
			accountHandler.RegisterPublicRoutes(transporters, domainAccount.RoleTransporter)
		}

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			shipperProtected := protected.Group("/shipper")
			shipperProtected.Use(middleware.ShipperOnly())
			{
				accountHandler.RegisterProtectedRoutes(shipperProtected, domainAccount.RoleShipper)
			}

			transporterProtected := protected.Group("/transporters")
			transporterProtected.Use(middleware.TransporterOnly())
			{
				accountHandler.RegisterProtectedRoutes(transporterProtected, domainAccount.RoleTransporter)
				transporterProtected.POST("/register-vehicle", vehicleHandler.Register)
			}

			transporterOnly := protected.Group("")
			transporterOnly.Use(middleware.TransporterOnly())
			{
				vehicleHandler.RegisterRoutes(transporterOnly)
				driverHandler.RegisterRoutes(transporterOnly)
				consignmentHandler.RegisterTransporterRoutes(transporterOnly)
			}

			shipperOnly := protected.Group("")
			shipperOnly.Use(middleware.ShipperOnly())
			{
				shipmentHandler.RegisterRoutes(shipperOnly)
			}

			// Any authenticated role can browse the carrier directory.
			protected.GET("/transporters/all", accountHandler.AllTransporters)

			consignmentHandler.RegisterSessionRoutes(protected)
		}
	}

	logger.Info("All routes initialized")
	return router
}
