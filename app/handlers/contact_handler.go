package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
	"github.com/vengerka/cakemaster-api/app/helpers"
	"github.com/vengerka/cakemaster-api/app/models"
	"github.com/vengerka/cakemaster-api/app/repositories"
	"github.com/vengerka/cakemaster-api/app/services"
)

type ContactForm struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type ContactHandler struct {
	rnd         *render.Render
	contactRepo repositories.ContactRepositoryImpl
	notifier    services.Notifier
	validate    *validator.Validate
}

func NewContactHandler(rnd *render.Render, contactRepo repositories.ContactRepositoryImpl, notifier services.Notifier) *ContactHandler {
	return &ContactHandler{
		rnd:         rnd,
		contactRepo: contactRepo,
		notifier:    notifier,
		validate:    validator.New(),
	}
}

// PostContact stores the message and notifies by email. Delivery failures
// are logged only; the sender always gets ok once the message is persisted.
func (h *ContactHandler) PostContact(w http.ResponseWriter, r *http.Request) {
	var form ContactForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.rnd.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(&form); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			RespondError(h.rnd, w, helpers.FormatValidationErrors(validationErrors))
			return
		}
		RespondError(h.rnd, w, err)
		return
	}

	message := &models.ContactMessage{
		Name:    form.Name,
		Email:   form.Email,
		Subject: form.Subject,
		Message: form.Message,
	}
	if err := h.contactRepo.Create(r.Context(), message); err != nil {
		log.Printf("PostContact: failed to store contact message: %v", err)
		RespondError(h.rnd, w, err)
		return
	}

	if h.notifier != nil {
		go func(message models.ContactMessage) {
			if err := h.notifier.NotifyContactMessage(&message); err != nil {
				log.Printf("PostContact: contact notification failed: %v", err)
			}
		}(*message)
	}

	h.rnd.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}
