package admin

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/vengerka/cakemaster-api/app/handlers"
	"github.com/vengerka/cakemaster-api/app/services"
)

// GetGallery is the admin grid: any-of category filter and a numbered pager
// backed by an exact total count.
func (h *AdminHandler) GetGallery(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var categoryIDs []string
	if raw := query.Get("categories"); raw != "" {
		categoryIDs = strings.Split(raw, ",")
	}
	page, _ := strconv.Atoi(query.Get("page"))
	pageSize, _ := strconv.Atoi(query.Get("pageSize"))

	result, err := h.gallerySvc.Admin(r.Context(), categoryIDs, page, pageSize)
	if err != nil {
		log.Printf("GetGallery: failed to load admin gallery page: %v", err)
		handlers.RespondError(h.rnd, w, err)
		return
	}
	h.rnd.JSON(w, http.StatusOK, result)
}

func (h *AdminHandler) AddGalleryImage(w http.ResponseWriter, r *http.Request) {
	var input services.ImageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.rnd.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	image, err := h.gallerySvc.Create(r.Context(), input)
	if err != nil {
		log.Printf("AddGalleryImage: failed to create gallery item: %v", err)
		handlers.RespondError(h.rnd, w, err)
		return
	}
	h.rnd.JSON(w, http.StatusCreated, image)
}

func (h *AdminHandler) UpdateGalleryImage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var input services.ImageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.rnd.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	image, err := h.gallerySvc.Update(r.Context(), id, input)
	if err != nil {
		log.Printf("UpdateGalleryImage: failed to update gallery item %s: %v", id, err)
		handlers.RespondError(h.rnd, w, err)
		return
	}
	h.rnd.JSON(w, http.StatusOK, image)
}

// DeleteGalleryImage reports the page the grid should show next, so the
// client never re-queries a page it just emptied.
func (h *AdminHandler) DeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	itemsOnPage, _ := strconv.Atoi(query.Get("count"))

	nextPage, err := h.gallerySvc.Delete(r.Context(), id, page, itemsOnPage)
	if err != nil {
		log.Printf("DeleteGalleryImage: failed to delete gallery item %s: %v", id, err)
		handlers.RespondError(h.rnd, w, err)
		return
	}
	h.rnd.JSON(w, http.StatusOK, map[string]int{"page": nextPage})
}

// UploadImage receives the binary ahead of the metadata write. If the
// follow-up create never arrives the blob stays orphaned; that is a known
// limitation, not detected after the fact.
func (h *AdminHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		h.rnd.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form"})
		return
	}

	dir := r.FormValue("dir")
	switch dir {
	case "gallery", "category_images", "course_images":
	default:
		h.rnd.JSON(w, http.StatusBadRequest, map[string]string{"error": "unknown upload dir"})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		h.rnd.JSON(w, http.StatusBadRequest, map[string]string{"error": "image file is required"})
		return
	}
	defer file.Close()

	url, err := h.uploader.Upload(r.Context(), dir, header.Filename, file)
	if err != nil {
		log.Printf("UploadImage: upload to %s failed: %v", dir, err)
		handlers.RespondError(h.rnd, w, err)
		return
	}
	h.rnd.JSON(w, http.StatusCreated, map[string]string{"url": url})
}
