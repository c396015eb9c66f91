package routes

import (
	"log"
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/vengerka/cakemaster-api/app/configs"
	"github.com/vengerka/cakemaster-api/app/handlers"
	adminhandlers "github.com/vengerka/cakemaster-api/app/handlers/admin"
	"github.com/vengerka/cakemaster-api/app/middlewares"
	"github.com/vengerka/cakemaster-api/app/repositories"
	"github.com/vengerka/cakemaster-api/app/services"
	"github.com/vengerka/cakemaster-api/app/utils/renderer"
	"github.com/vengerka/cakemaster-api/app/utils/sessions"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, env configs.ENV) *mux.Router {
	rnd := renderer.New()

	categoryRepo := repositories.NewCategoryRepository(db)
	galleryRepo := repositories.NewGalleryRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	courseRepo := repositories.NewCourseRepository(db)
	sizeRepo := repositories.NewSizeRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)

	uploadDir := env.UploadDir
	if uploadDir == "" {
		uploadDir = "public/uploads"
	}
	uploadBaseURL := env.UploadBaseURL
	if uploadBaseURL == "" {
		uploadBaseURL = "/uploads"
	}
	uploader := services.NewDiskUploader(uploadDir, uploadBaseURL)

	var notifier services.Notifier
	if env.EmailHost != "" && env.AdminEmail != "" {
		mailer := services.NewMailer(services.MailConfig{
			Host:     env.EmailHost,
			Port:     env.EmailPort,
			Username: env.EmailUsername,
			Password: env.EmailPassword,
			From:     env.EmailFrom,
		})
		notifier = services.NewEmailNotifier(mailer, env.AdminEmail)
	} else {
		log.Println("Warning: email not configured, order notifications disabled")
	}

	catalogSvc := services.NewCatalogService(categoryRepo, uploader)
	gallerySvc := services.NewGalleryService(galleryRepo, categoryRepo, uploader)
	orderSvc := services.NewOrderService(orderRepo, notifier)

	paymentCfg := services.PaymentConfig{
		IBAN:    env.PaymentIBAN,
		Message: env.PaymentMessage,
	}

	catalogHandler := handlers.NewCatalogHandler(rnd, catalogSvc, sizeRepo, settingsRepo, courseRepo)
	galleryHandler := handlers.NewGalleryHandler(rnd, gallerySvc)
	orderHandler := handlers.NewOrderHandler(rnd, orderSvc, paymentCfg)
	contactHandler := handlers.NewContactHandler(rnd, contactRepo, notifier)

	sessionKeys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatalf("Failed to load session keys: %v (run `cakemaster-api generate-keys`)", err)
	}
	sessionStore := sessions.NewCookieSessionStore(sessionKeys.AuthKey, sessionKeys.EncKey)

	adminHandler := adminhandlers.NewAdminHandler(
		rnd, catalogSvc, gallerySvc, orderSvc, uploader,
		courseRepo, settingsRepo, contactRepo,
		sessionStore, env.AdminPasswordHash,
	)

	router := mux.NewRouter()
	router.Use(middlewares.RequestLogMiddleware)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/categories", catalogHandler.GetCategories).Methods("GET")
	api.HandleFunc("/gallery", galleryHandler.GetGallery).Methods("GET")
	api.HandleFunc("/sizes", catalogHandler.GetSizes).Methods("GET")
	api.HandleFunc("/price-quote", catalogHandler.GetPriceQuote).Methods("GET")
	api.HandleFunc("/settings/banners", catalogHandler.GetBannerSettings).Methods("GET")
	api.HandleFunc("/courses", catalogHandler.GetCourses).Methods("GET")
	api.HandleFunc("/contact", contactHandler.PostContact).Methods("POST")

	api.HandleFunc("/orders", orderHandler.CreateOrder).Methods("POST")
	api.HandleFunc("/orders/{orderId}", orderHandler.GetOrder).Methods("GET")
	api.HandleFunc("/orders/{orderId}/contact", orderHandler.AttachContact).Methods("PATCH")
	api.HandleFunc("/orders/{orderId}/payment", orderHandler.GetPayment).Methods("GET")
	api.HandleFunc("/orders/{orderId}/payment/qr.png", orderHandler.GetPaymentQR).Methods("GET")

	// Admin endpoints ride on the cookie session, so mutations need the CSRF
	// token from GET /admin/api/csrf.
	adminAPI := router.PathPrefix("/admin/api").Subrouter()
	adminAPI.Use(mux.MiddlewareFunc(csrf.Protect(
		sessionKeys.AuthKey,
		csrf.Secure(env.APP_ENV == "production"),
		csrf.Path("/"),
	)))

	adminAPI.HandleFunc("/csrf", adminHandler.GetCSRFToken).Methods("GET")
	adminAPI.HandleFunc("/login", adminHandler.Login).Methods("POST")
	adminAPI.HandleFunc("/logout", adminHandler.Logout).Methods("POST")

	adminProtected := adminAPI.NewRoute().Subrouter()
	adminProtected.Use(middlewares.AdminAuthMiddleware(sessionStore))

	adminProtected.HandleFunc("/categories", adminHandler.AddCategory).Methods("POST")
	adminProtected.HandleFunc("/categories/reorder", adminHandler.ReorderCategories).Methods("PUT")
	adminProtected.HandleFunc("/categories/{id}", adminHandler.UpdateCategory).Methods("PUT")
	adminProtected.HandleFunc("/categories/{id}", adminHandler.DeleteCategory).Methods("DELETE")

	adminProtected.HandleFunc("/gallery", adminHandler.GetGallery).Methods("GET")
	adminProtected.HandleFunc("/gallery", adminHandler.AddGalleryImage).Methods("POST")
	adminProtected.HandleFunc("/gallery/{id}", adminHandler.UpdateGalleryImage).Methods("PUT")
	adminProtected.HandleFunc("/gallery/{id}", adminHandler.DeleteGalleryImage).Methods("DELETE")
	adminProtected.HandleFunc("/uploads", adminHandler.UploadImage).Methods("POST")

	adminProtected.HandleFunc("/orders", adminHandler.GetOrders).Methods("GET")
	adminProtected.HandleFunc("/orders/{id}", adminHandler.GetOrderDetail).Methods("GET")
	adminProtected.HandleFunc("/orders/{id}/status", adminHandler.UpdateOrderStatus).Methods("PUT")

	adminProtected.HandleFunc("/courses", adminHandler.AddCourse).Methods("POST")
	adminProtected.HandleFunc("/courses/{id}", adminHandler.UpdateCourse).Methods("PUT")
	adminProtected.HandleFunc("/courses/{id}", adminHandler.DeleteCourse).Methods("DELETE")
	adminProtected.HandleFunc("/settings/banners", adminHandler.UpdateBannerSettings).Methods("PUT")
	adminProtected.HandleFunc("/contact-messages", adminHandler.GetContactMessages).Methods("GET")

	router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))),
	)

	return router
}
