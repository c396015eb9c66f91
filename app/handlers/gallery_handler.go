package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/unrolled/render"
	"github.com/vengerka/cakemaster-api/app/services"
)

type GalleryHandler struct {
	rnd        *render.Render
	gallerySvc *services.GalleryService
}

func NewGalleryHandler(rnd *render.Render, gallerySvc *services.GalleryService) *GalleryHandler {
	return &GalleryHandler{rnd: rnd, gallerySvc: gallerySvc}
}

// GetGallery is the public infinite-scroll endpoint: one category, newest
// first, resumable via the opaque cursor from the previous page.
func (h *GalleryHandler) GetGallery(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	categoryID := query.Get("category")
	pageSize, _ := strconv.Atoi(query.Get("pageSize"))
	cursor := query.Get("cursor")

	page, err := h.gallerySvc.Public(r.Context(), categoryID, pageSize, cursor)
	if err != nil {
		log.Printf("GetGallery: failed to load gallery page: %v", err)
		RespondError(h.rnd, w, err)
		return
	}
	h.rnd.JSON(w, http.StatusOK, page)
}
