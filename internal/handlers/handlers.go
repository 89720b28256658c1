package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/avoronova/servicedesk/internal/db"
	"github.com/avoronova/servicedesk/internal/payment"
	"github.com/avoronova/servicedesk/internal/types"
	"github.com/avoronova/servicedesk/internal/validate"
)

type HandlerSet struct {
	database Store
	notifier Notifier
	payments ChargeClient
}

func NewHandlerSet(database Store, notifier Notifier, payments ChargeClient) *HandlerSet {
	return &HandlerSet{
		database: database,
		notifier: notifier,
		payments: payments,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *HandlerSet) writeJSON(w http.ResponseWriter, status int, payload any) {

	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Could not serialize result",
			http.StatusInternalServerError)
		return
	}
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(response)
	if err != nil {
		logger.Error(err)
	}
}

func (h *HandlerSet) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, errorResponse{Error: message})
}

func (h *HandlerSet) HandleIndex(w http.ResponseWriter, req *http.Request) {

	w.Header().Set("content-type", "text/plain")

	_, err := w.Write([]byte("Server is running!"))
	if err != nil {
		logger.Error(err)
	}
}

func (h *HandlerSet) HandleCreateOrder(w http.ResponseWriter, req *http.Request) {

	body, err := io.ReadAll(req.Body)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	var data struct {
		CustomerName string `json:"customer_name"`
		ServiceType  string `json:"service_type"`
		Address      string `json:"address"`
	}

	err = json.Unmarshal(body, &data)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Could not parse body")
		return
	}

	var missing []string
	if data.CustomerName == "" {
		missing = append(missing, "customer_name")
	}
	if data.ServiceType == "" {
		missing = append(missing, "service_type")
	}
	if data.Address == "" {
		missing = append(missing, "address")
	}
	if len(missing) > 0 {
		h.writeError(w, http.StatusBadRequest,
			fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")))
		return
	}

	order, err := h.database.CreateOrder(req.Context(), data.CustomerName, data.ServiceType, data.Address)
	if err != nil {
		logger.Error(err)
		h.writeError(w, http.StatusInternalServerError, "Unexpected error")
		return
	}

	h.writeJSON(w, http.StatusOK, struct {
		Message string `json:"message"`
		OrderID int    `json:"order_id"`
	}{
		Message: "Order placed successfully!",
		OrderID: order.ID,
	})
}

func (h *HandlerSet) HandleUpdateOrder(w http.ResponseWriter, req *http.Request) {

	orderID, err := orderIDFromURL(req)
	if err != nil {
		h.writeError(w, http.StatusNotFound, "Order not found")
		return
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	var data struct {
		Status        string `json:"status"`
		CustomerPhone string `json:"customer_phone"`
		CustomerEmail string `json:"customer_email"`
	}

	err = json.Unmarshal(body, &data)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Could not parse body")
		return
	}

	if data.Status == "" {
		h.writeError(w, http.StatusBadRequest, "Missing required fields: status")
		return
	}
	if data.CustomerPhone != "" && !validate.ValidatePhone(data.CustomerPhone) {
		h.writeError(w, http.StatusBadRequest, "Invalid customer_phone")
		return
	}
	if data.CustomerEmail != "" && !validate.ValidateEmail(data.CustomerEmail) {
		h.writeError(w, http.StatusBadRequest, "Invalid customer_email")
		return
	}

	newStatus := types.Status(data.Status)

	err = h.database.UpdateOrderStatus(req.Context(), orderID, newStatus)
	if err != nil {
		var notFound *db.OrderNotFoundError
		if errors.As(err, &notFound) {
			h.writeError(w, http.StatusNotFound, "Order not found")
			return
		}
		logger.Error(err)
		h.writeError(w, http.StatusInternalServerError, "Unexpected error")
		return
	}

	// Notifications are best effort and never fail the response
	for _, err := range h.notifier.NotifyStatusUpdate(data.CustomerPhone, data.CustomerEmail, newStatus) {
		logger.Errorf("Notification failed for order %d: %s", orderID, err.Error())
	}

	h.writeJSON(w, http.StatusOK, struct {
		Message string `json:"message"`
	}{
		Message: "Order status updated successfully!",
	})
}

func (h *HandlerSet) HandlePay(w http.ResponseWriter, req *http.Request) {

	contentType := req.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		h.writeError(w, http.StatusBadRequest, "Content type must be application/json")
		return
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	var data struct {
		Amount  *float64 `json:"amount"`
		Token   *string  `json:"token"`
		OrderID *int     `json:"order_id"`
	}

	err = json.Unmarshal(body, &data)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Could not parse body")
		return
	}

	var missing []string
	if data.Amount == nil {
		missing = append(missing, "amount")
	}
	if data.Token == nil {
		missing = append(missing, "token")
	}
	if data.OrderID == nil {
		missing = append(missing, "order_id")
	}
	if len(missing) > 0 {
		h.writeError(w, http.StatusBadRequest,
			fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")))
		return
	}

	amountCents := payment.DollarsToCents(*data.Amount)
	if amountCents <= 0 {
		h.writeError(w, http.StatusBadRequest, "Amount must be positive")
		return
	}

	order, err := h.database.GetOrder(req.Context(), *data.OrderID)
	if err != nil {
		var notFound *db.OrderNotFoundError
		if errors.As(err, &notFound) {
			h.writeError(w, http.StatusNotFound, "Order not found")
			return
		}
		logger.Error(err)
		h.writeError(w, http.StatusInternalServerError, "Unexpected error")
		return
	}

	if order.PaymentStatus == types.PaymentPaid {
		h.writeError(w, http.StatusConflict, "Order already paid")
		return
	}

	charge, err := h.payments.CreateCharge(amountCents, *data.Token,
		fmt.Sprintf("Payment for Order ID %d", order.ID))
	if err != nil {
		var chargeErr *payment.ChargeError
		if errors.As(err, &chargeErr) {
			h.writeError(w, http.StatusBadGateway, chargeErr.Message)
			return
		}
		logger.Error(err)
		h.writeError(w, http.StatusBadGateway, "Payment gateway unavailable")
		return
	}

	err = h.database.MarkOrderPaid(req.Context(), order.ID, amountCents, charge.ID)
	if err != nil {
		var alreadyPaid *db.OrderAlreadyPaidError
		if errors.As(err, &alreadyPaid) {
			h.writeError(w, http.StatusConflict, "Order already paid")
			return
		}
		logger.Error(err)
		h.writeError(w, http.StatusInternalServerError, "Unexpected error")
		return
	}

	h.writeJSON(w, http.StatusOK, struct {
		Message string `json:"message"`
	}{
		Message: "Payment successful!",
	})
}

func (h *HandlerSet) HandleOrderStatus(w http.ResponseWriter, req *http.Request) {

	orderID, err := orderIDFromURL(req)
	if err != nil {
		h.writeError(w, http.StatusNotFound, "Order not found")
		return
	}

	order, err := h.database.GetOrder(req.Context(), orderID)
	if err != nil {
		var notFound *db.OrderNotFoundError
		if errors.As(err, &notFound) {
			h.writeError(w, http.StatusNotFound, "Order not found")
			return
		}
		logger.Error(err)
		h.writeError(w, http.StatusInternalServerError, "Unexpected error")
		return
	}

	h.writeJSON(w, http.StatusOK, struct {
		OrderID       int                 `json:"order_id"`
		Status        types.Status        `json:"status"`
		PaymentStatus types.PaymentStatus `json:"payment_status"`
	}{
		OrderID:       order.ID,
		Status:        order.Status,
		PaymentStatus: order.PaymentStatus,
	})
}

func orderIDFromURL(req *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(req, "orderID"))
}
