package controllers

import (
	"net/http"

	"github.com/taazafoods/chatbot-backend/api/responses"
	"github.com/taazafoods/chatbot-backend/api/validators"
	"github.com/taazafoods/chatbot-backend/internal/cart"
	sessionsvc "github.com/taazafoods/chatbot-backend/internal/session"
	pkgerrors "github.com/taazafoods/chatbot-backend/pkg/errors"
	"github.com/taazafoods/chatbot-backend/pkg/logger"
)

type cartAddRequest struct {
	SessionID string  `json:"session_id" validate:"required"`
	ItemName  string  `json:"itemName" validate:"required"`
	Price     float64 `json:"price" validate:"gte=0"`
	Qty       *int    `json:"qty" validate:"omitempty,gte=1"`
}

type cartRemoveRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	ItemName  string `json:"itemName" validate:"required"`
	Qty       *int   `json:"qty" validate:"omitempty,gte=1"`
}

type cartResponse struct {
	Cart    cart.Cart    `json:"cart"`
	Summary cart.Summary `json:"summary"`
}

type cartRemoveResponse struct {
	Outcome string       `json:"outcome"`
	Cart    cart.Cart    `json:"cart"`
	Summary cart.Summary `json:"summary"`
}

type cartViewResponse struct {
	User    sessionsvc.User `json:"user"`
	Cart    cart.Cart       `json:"cart"`
	Summary cart.Summary    `json:"summary"`
}

// CartAdd merges an item into the session's cart.
func CartAdd(svc sessionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session service unavailable"))
			return
		}

		var payload cartAddRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		qty := 1
		if payload.Qty != nil {
			qty = *payload.Qty
		}

		snap, err := svc.AddItem(r.Context(), payload.SessionID, payload.ItemName, payload.Price, qty)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, cartResponse{Cart: snap.Cart, Summary: snap.Cart.Summarize()})
	}
}

// CartRemove removes or reduces an item; the outcome names which happened.
// An item miss is a normal outcome, not an HTTP error.
func CartRemove(svc sessionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session service unavailable"))
			return
		}

		var payload cartRemoveRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		qty := 1
		if payload.Qty != nil {
			qty = *payload.Qty
		}

		snap, outcome, err := svc.RemoveItem(r.Context(), payload.SessionID, payload.ItemName, qty)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, cartRemoveResponse{
			Outcome: outcome.String(),
			Cart:    snap.Cart,
			Summary: snap.Cart.Summarize(),
		})
	}
}

// CartView returns the session's profile, cart, and summary.
func CartView(svc sessionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session service unavailable"))
			return
		}

		sessionID, err := validators.RequireQuery(r, "session_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		snap, err := svc.View(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, cartViewResponse{
			User:    snap.User,
			Cart:    snap.Cart,
			Summary: snap.Cart.Summarize(),
		})
	}
}
