package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"github.com/vengerka/cakemaster-api/app/services"
)

type OrderHandler struct {
	rnd        *render.Render
	orderSvc   *services.OrderService
	paymentCfg services.PaymentConfig
}

func NewOrderHandler(rnd *render.Render, orderSvc *services.OrderService, paymentCfg services.PaymentConfig) *OrderHandler {
	return &OrderHandler{rnd: rnd, orderSvc: orderSvc, paymentCfg: paymentCfg}
}

// CreateOrder starts the lifecycle at status "new". The returned id feeds
// the payment page URL.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var input services.OrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.rnd.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	order, err := h.orderSvc.Create(r.Context(), input)
	if err != nil {
		log.Printf("CreateOrder: failed to create order: %v", err)
		RespondError(h.rnd, w, err)
		return
	}
	h.rnd.JSON(w, http.StatusCreated, map[string]string{"orderId": order.ID})
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	order, err := h.orderSvc.Get(r.Context(), orderID)
	if err != nil {
		RespondError(h.rnd, w, err)
		return
	}
	h.rnd.JSON(w, http.StatusOK, order)
}

// AttachContact saves the buyer contact from the payment page and advances
// the order to awaiting_payment.
func (h *OrderHandler) AttachContact(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	var input services.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.rnd.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	order, err := h.orderSvc.AttachContact(r.Context(), orderID, input)
	if err != nil {
		log.Printf("AttachContact: failed for order %s: %v", orderID, err)
		RespondError(h.rnd, w, err)
		return
	}
	h.rnd.JSON(w, http.StatusOK, order)
}

// GetPayment returns the variable symbol and the SPD payload the storefront
// renders into a payment QR code.
func (h *OrderHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	order, err := h.orderSvc.Get(r.Context(), orderID)
	if err != nil {
		RespondError(h.rnd, w, err)
		return
	}

	reference := services.VariableSymbol(order.ID)
	h.rnd.JSON(w, http.StatusOK, map[string]interface{}{
		"amount":         order.Amount,
		"currency":       "CZK",
		"variableSymbol": reference,
		"payload":        services.BuildPaymentPayload(order, reference, h.paymentCfg),
	})
}

// GetPaymentQR serves the payload as a PNG for clients without a JS QR
// renderer.
func (h *OrderHandler) GetPaymentQR(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	order, err := h.orderSvc.Get(r.Context(), orderID)
	if err != nil {
		RespondError(h.rnd, w, err)
		return
	}

	size, _ := strconv.Atoi(r.URL.Query().Get("size"))
	if size <= 0 || size > 1024 {
		size = 256
	}

	reference := services.VariableSymbol(order.ID)
	payload := services.BuildPaymentPayload(order, reference, h.paymentCfg)
	png, err := services.PaymentQRPNG(payload, size)
	if err != nil {
		log.Printf("GetPaymentQR: failed to encode QR for order %s: %v", orderID, err)
		RespondError(h.rnd, w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
