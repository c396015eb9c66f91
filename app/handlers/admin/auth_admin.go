package admin

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/vengerka/cakemaster-api/app/helpers"
)

type loginForm struct {
	Password string `json:"password"`
}

// GetCSRFToken hands the SPA its token for subsequent mutating requests.
func (h *AdminHandler) GetCSRFToken(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-CSRF-Token", csrf.Token(r))
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var form loginForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.rnd.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if h.adminPasswordHash == "" || !helpers.PasswordCompare(h.adminPasswordHash, []byte(form.Password)) {
		log.Println("Login: rejected admin login attempt")
		h.rnd.JSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		return
	}

	if err := h.sessionStore.SetAdmin(w, r); err != nil {
		log.Printf("Login: failed to persist session: %v", err)
		h.rnd.JSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	h.rnd.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionStore.ClearSession(w, r); err != nil {
		log.Printf("Logout: failed to clear session: %v", err)
	}
	h.rnd.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}
