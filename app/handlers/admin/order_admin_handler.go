package admin

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/vengerka/cakemaster-api/app/handlers"
	"github.com/vengerka/cakemaster-api/app/models"
)

func (h *AdminHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderSvc.List(r.Context())
	if err != nil {
		log.Printf("GetOrders: failed to list orders: %v", err)
		handlers.RespondError(h.rnd, w, err)
		return
	}
	h.rnd.JSON(w, http.StatusOK, orders)
}

func (h *AdminHandler) GetOrderDetail(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	order, err := h.orderSvc.Get(r.Context(), orderID)
	if err != nil {
		handlers.RespondError(h.rnd, w, err)
		return
	}
	h.rnd.JSON(w, http.StatusOK, order)
}

type statusForm struct {
	Status models.OrderStatus `json:"status"`
}

// UpdateOrderStatus is the unconditional admin override; any of the four
// statuses may be set at any time.
func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var form statusForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.rnd.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := h.orderSvc.SetStatus(r.Context(), orderID, form.Status); err != nil {
		log.Printf("UpdateOrderStatus: failed for order %s: %v", orderID, err)
		handlers.RespondError(h.rnd, w, err)
		return
	}
	h.rnd.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}
