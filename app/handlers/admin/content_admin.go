package admin

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/vengerka/cakemaster-api/app/handlers"
	"github.com/vengerka/cakemaster-api/app/helpers"
	"github.com/vengerka/cakemaster-api/app/models"
	"github.com/shopspring/decimal"
)

// Courses and site settings: plain CRUD with the same image-cascade rules
// as categories.

type courseForm struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
}

func (h *AdminHandler) AddCourse(w http.ResponseWriter, r *http.Request) {
	var form courseForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.rnd.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if form.Title == "" {
		handlers.RespondError(h.rnd, w, helpers.NewValidationError("title", "title is required"))
		return
	}

	course := &models.Course{
		Title:       form.Title,
		Description: form.Description,
		Price:       form.Price,
		ImageURL:    form.ImageURL,
	}
	if err := h.courseRepo.Create(r.Context(), course); err != nil {
		log.Printf("AddCourse: failed to create course: %v", err)
		handlers.RespondError(h.rnd, w, err)
		return
	}
	h.rnd.JSON(w, http.StatusCreated, course)
}

func (h *AdminHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var form courseForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.rnd.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	course, err := h.courseRepo.GetByID(r.Context(), id)
	if err != nil {
		handlers.RespondError(h.rnd, w, err)
		return
	}
	if course == nil {
		h.rnd.JSON(w, http.StatusNotFound, map[string]string{"error": "course not found"})
		return
	}

	oldImageURL := course.ImageURL
	course.Title = form.Title
	course.Description = form.Description
	course.Price = form.Price
	if form.ImageURL != "" {
		course.ImageURL = form.ImageURL
	}

	if err := h.courseRepo.Update(r.Context(), course); err != nil {
		log.Printf("UpdateCourse: failed to update course %s: %v", id, err)
		handlers.RespondError(h.rnd, w, err)
		return
	}

	if oldImageURL != "" && course.ImageURL != oldImageURL {
		if err := h.uploader.Delete(r.Context(), oldImageURL); err != nil {
			log.Printf("UpdateCourse: failed to delete old course image: %v", err)
		}
	}
	h.rnd.JSON(w, http.StatusOK, course)
}

func (h *AdminHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	course, err := h.courseRepo.GetByID(r.Context(), id)
	if err != nil {
		handlers.RespondError(h.rnd, w, err)
		return
	}
	if course == nil {
		h.rnd.JSON(w, http.StatusNotFound, map[string]string{"error": "course not found"})
		return
	}

	if course.ImageURL != "" {
		if err := h.uploader.Delete(r.Context(), course.ImageURL); err != nil {
			log.Printf("DeleteCourse: failed to delete course image: %v", err)
		}
	}

	if err := h.courseRepo.Delete(r.Context(), id); err != nil {
		log.Printf("DeleteCourse: failed to delete course %s: %v", id, err)
		handlers.RespondError(h.rnd, w, err)
		return
	}
	h.rnd.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *AdminHandler) UpdateBannerSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.BannerSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		h.rnd.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := h.settingsRepo.UpdateBanners(r.Context(), &settings); err != nil {
		log.Printf("UpdateBannerSettings: failed to save banner settings: %v", err)
		handlers.RespondError(h.rnd, w, err)
		return
	}
	h.rnd.JSON(w, http.StatusOK, settings)
}

func (h *AdminHandler) GetContactMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contactRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("GetContactMessages: failed to list messages: %v", err)
		handlers.RespondError(h.rnd, w, err)
		return
	}
	h.rnd.JSON(w, http.StatusOK, messages)
}
