package admin

import (
	"github.com/unrolled/render"
	"github.com/vengerka/cakemaster-api/app/repositories"
	"github.com/vengerka/cakemaster-api/app/services"
	"github.com/vengerka/cakemaster-api/app/utils/sessions"
)

// AdminHandler groups the back-office endpoints behind the session
// middleware: content management plus order processing.
type AdminHandler struct {
	rnd *render.Render

	catalogSvc *services.CatalogService
	gallerySvc *services.GalleryService
	orderSvc   *services.OrderService
	uploader   services.Uploader

	courseRepo   repositories.CourseRepositoryImpl
	settingsRepo repositories.SettingsRepositoryImpl
	contactRepo  repositories.ContactRepositoryImpl

	sessionStore      sessions.SessionStore
	adminPasswordHash string
}

func NewAdminHandler(
	rnd *render.Render,
	catalogSvc *services.CatalogService,
	gallerySvc *services.GalleryService,
	orderSvc *services.OrderService,
	uploader services.Uploader,
	courseRepo repositories.CourseRepositoryImpl,
	settingsRepo repositories.SettingsRepositoryImpl,
	contactRepo repositories.ContactRepositoryImpl,
	sessionStore sessions.SessionStore,
	adminPasswordHash string,
) *AdminHandler {
	return &AdminHandler{
		rnd:               rnd,
		catalogSvc:        catalogSvc,
		gallerySvc:        gallerySvc,
		orderSvc:          orderSvc,
		uploader:          uploader,
		courseRepo:        courseRepo,
		settingsRepo:      settingsRepo,
		contactRepo:       contactRepo,
		sessionStore:      sessionStore,
		adminPasswordHash: adminPasswordHash,
	}
}
