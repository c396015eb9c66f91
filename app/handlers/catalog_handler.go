package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/unrolled/render"
	"github.com/vengerka/cakemaster-api/app/repositories"
	"github.com/vengerka/cakemaster-api/app/services"
	"github.com/vengerka/cakemaster-api/app/utils/calc"
)

// CatalogHandler serves the public read-only surfaces: categories, size
// options, price quotes, seasonal banners and courses.
type CatalogHandler struct {
	rnd          *render.Render
	catalogSvc   *services.CatalogService
	sizeRepo     repositories.SizeRepositoryImpl
	settingsRepo repositories.SettingsRepositoryImpl
	courseRepo   repositories.CourseRepositoryImpl
}

func NewCatalogHandler(
	rnd *render.Render,
	catalogSvc *services.CatalogService,
	sizeRepo repositories.SizeRepositoryImpl,
	settingsRepo repositories.SettingsRepositoryImpl,
	courseRepo repositories.CourseRepositoryImpl,
) *CatalogHandler {
	return &CatalogHandler{
		rnd:          rnd,
		catalogSvc:   catalogSvc,
		sizeRepo:     sizeRepo,
		settingsRepo: settingsRepo,
		courseRepo:   courseRepo,
	}
}

func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogSvc.List(r.Context())
	if err != nil {
		log.Printf("GetCategories: failed to list categories: %v", err)
		RespondError(h.rnd, w, err)
		return
	}
	h.rnd.JSON(w, http.StatusOK, categories)
}

func (h *CatalogHandler) GetSizes(w http.ResponseWriter, r *http.Request) {
	sizes, err := h.sizeRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("GetSizes: failed to list size options: %v", err)
		RespondError(h.rnd, w, err)
		return
	}
	h.rnd.JSON(w, http.StatusOK, sizes)
}

// GetPriceQuote prices a bento configuration from the fixed table. The
// storefront calls this before creating the order; the order itself carries
// the amount as opaque input.
func (h *CatalogHandler) GetPriceQuote(w http.ResponseWriter, r *http.Request) {
	sizeKey := r.URL.Query().Get("size")
	withPlaque, _ := strconv.ParseBool(r.URL.Query().Get("plaque"))

	amount, err := calc.Quote(sizeKey, withPlaque)
	if err != nil {
		h.rnd.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	h.rnd.JSON(w, http.StatusOK, map[string]interface{}{
		"amount":   amount.IntPart(),
		"currency": "CZK",
	})
}

func (h *CatalogHandler) GetBannerSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsRepo.GetBanners(r.Context())
	if err != nil {
		log.Printf("GetBannerSettings: failed to load banner settings: %v", err)
		RespondError(h.rnd, w, err)
		return
	}
	h.rnd.JSON(w, http.StatusOK, settings)
}

func (h *CatalogHandler) GetCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courseRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("GetCourses: failed to list courses: %v", err)
		RespondError(h.rnd, w, err)
		return
	}
	h.rnd.JSON(w, http.StatusOK, courses)
}
