package controllers

import (
	"net/http"

	"github.com/taazafoods/chatbot-backend/api/responses"
	"github.com/taazafoods/chatbot-backend/api/validators"
	"github.com/taazafoods/chatbot-backend/internal/order"
	sessionsvc "github.com/taazafoods/chatbot-backend/internal/session"
	pkgerrors "github.com/taazafoods/chatbot-backend/pkg/errors"
	"github.com/taazafoods/chatbot-backend/pkg/logger"
)

type checkoutRequest struct {
	SessionID     string `json:"session_id" validate:"required"`
	PaymentMethod string `json:"paymentMethod" validate:"required"`
}

type checkoutResponse struct {
	Message       string        `json:"message"`
	BillingStatus int           `json:"billing_status"`
	PayloadSent   order.Payload `json:"payload_sent"`
}

// Checkout finalizes the order and forwards it to the billing upstream. An
// empty cart fails locally; an upstream rejection carries the billing status
// and body back to the caller.
func Checkout(svc sessionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session service unavailable"))
			return
		}

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Checkout(r.Context(), payload.SessionID, payload.PaymentMethod)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, checkoutResponse{
			Message:       "Order placed",
			BillingStatus: result.Status,
			PayloadSent:   result.Payload,
		})
	}
}
