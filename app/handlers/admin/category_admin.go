package admin

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/vengerka/cakemaster-api/app/handlers"
	"github.com/vengerka/cakemaster-api/app/services"
)

func (h *AdminHandler) AddCategory(w http.ResponseWriter, r *http.Request) {
	var input services.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.rnd.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	category, err := h.catalogSvc.Create(r.Context(), input)
	if err != nil {
		log.Printf("AddCategory: failed to create category: %v", err)
		handlers.RespondError(h.rnd, w, err)
		return
	}
	h.rnd.JSON(w, http.StatusCreated, category)
}

func (h *AdminHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var input services.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.rnd.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	category, err := h.catalogSvc.Update(r.Context(), id, input)
	if err != nil {
		log.Printf("UpdateCategory: failed to update category %s: %v", id, err)
		handlers.RespondError(h.rnd, w, err)
		return
	}
	h.rnd.JSON(w, http.StatusOK, category)
}

func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.catalogSvc.Delete(r.Context(), id); err != nil {
		log.Printf("DeleteCategory: failed to delete category %s: %v", id, err)
		handlers.RespondError(h.rnd, w, err)
		return
	}
	h.rnd.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}

type reorderForm struct {
	IDs []string `json:"ids"`
}

// ReorderCategories takes the full id sequence from the drag-and-drop and
// applies it atomically.
func (h *AdminHandler) ReorderCategories(w http.ResponseWriter, r *http.Request) {
	var form reorderForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.rnd.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := h.catalogSvc.Reorder(r.Context(), form.IDs); err != nil {
		log.Printf("ReorderCategories: reorder failed: %v", err)
		handlers.RespondError(h.rnd, w, err)
		return
	}

	categories, err := h.catalogSvc.List(r.Context())
	if err != nil {
		handlers.RespondError(h.rnd, w, err)
		return
	}
	h.rnd.JSON(w, http.StatusOK, categories)
}
