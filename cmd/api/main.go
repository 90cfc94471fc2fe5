package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotelbooking/internal/config"
	"hotelbooking/internal/database"
	"hotelbooking/internal/middleware"
	"hotelbooking/internal/modules/catalog"
	"hotelbooking/internal/modules/feed"
	"hotelbooking/internal/modules/payment"
	"hotelbooking/internal/modules/policy"
	"hotelbooking/internal/modules/pricing"
	"hotelbooking/internal/modules/quota"
	"hotelbooking/internal/modules/reservation"
	jwtsvc "hotelbooking/internal/pkg/jwt"
	"hotelbooking/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	hotelRepo := repository.NewHotelRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	quotaRepo := repository.NewQuotaRepository(db)
	policyRepo := repository.NewPolicyRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	paymentRepo := repository.NewPaytrPaymentRepository(db)
	userRepo := repository.NewUserRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	catalogService := catalog.NewService(hotelRepo, roomRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	pricingService := pricing.NewService(roomRepo)
	pricingHandler := pricing.NewHandler(pricingService)

	quotaService := quota.NewService(quotaRepo, roomRepo)
	quotaHandler := quota.NewHandler(quotaService)

	policyService := policy.NewService(policyRepo, hotelRepo)
	policyHandler := policy.NewHandler(policyService)

	paymentService := payment.NewService(paymentRepo, reservationRepo, cfg, log.Printf)
	paymentHandler := payment.NewHandler(paymentService, log.Printf)

	hub := feed.NewHub()
	defer hub.Close()
	feedHandler := feed.NewHandler(hub, log.Printf)

	reservationService := reservation.NewService(
		reservationRepo,
		roomRepo,
		hotelRepo,
		userRepo,
		policyRepo,
		pricingService,
		quotaService,
		paymentService,
		hub,
	)
	reservationHandler := reservation.NewHandler(reservationService)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		catalogHandler.RegisterPublicRoutes(v1)
		pricingHandler.RegisterPublicRoutes(v1)
		quotaHandler.RegisterPublicRoutes(v1)
		policyHandler.RegisterPublicRoutes(v1)
		paymentHandler.RegisterPublicRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Principal(j))
		{
			reservationHandler.RegisterProtectedRoutes(protected)

			// admin
			admin := protected.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				catalogHandler.RegisterAdminRoutes(admin)
				pricingHandler.RegisterAdminRoutes(admin)
				quotaHandler.RegisterAdminRoutes(admin)
				policyHandler.RegisterAdminRoutes(admin)
				reservationHandler.RegisterAdminRoutes(admin)
				feedHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	log.Printf("level=info msg=listening addr=%s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
