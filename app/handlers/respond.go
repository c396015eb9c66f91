package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/unrolled/render"
	"github.com/vengerka/cakemaster-api/app/helpers"
	"github.com/vengerka/cakemaster-api/app/services"
)

// RespondError maps the service error taxonomy onto HTTP statuses:
// validation failures to 400 with a field map, NotFound to 404, everything
// else (store outages included) to a generic 500.
func RespondError(rnd *render.Render, w http.ResponseWriter, err error) {
	var validationErr *helpers.ValidationError
	if errors.As(err, &validationErr) {
		rnd.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": validationErr.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrImageNotFound):
		rnd.JSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, services.ErrUnknownStatus):
		rnd.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		log.Printf("internal error: %v", err)
		rnd.JSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
