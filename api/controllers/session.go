package controllers

import (
	"net/http"

	"github.com/taazafoods/chatbot-backend/api/responses"
	"github.com/taazafoods/chatbot-backend/api/validators"
	sessionsvc "github.com/taazafoods/chatbot-backend/internal/session"
	pkgerrors "github.com/taazafoods/chatbot-backend/pkg/errors"
	"github.com/taazafoods/chatbot-backend/pkg/logger"
)

type sessionCreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Mobile      string `json:"mobile" validate:"required,pkmobile"`
	Address     string `json:"address" validate:"required,min=3"`
	CountryCode string `json:"country_code"`
}

type sessionCreateResponse struct {
	SessionID string         `json:"session_id"`
	User      sessionsvc.User `json:"user"`
}

type sessionResetRequest struct {
	SessionID string `json:"session_id"`
}

// SessionCreate validates the profile and opens a new shopping session.
func SessionCreate(svc sessionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session service unavailable"))
			return
		}

		var payload sessionCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		snap, err := svc.Create(r.Context(), sessionsvc.CreateInput{
			Name:        payload.Name,
			Mobile:      payload.Mobile,
			Address:     payload.Address,
			CountryCode: payload.CountryCode,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, sessionCreateResponse{
			SessionID: snap.ID,
			User:      snap.User,
		})
	}
}

// SessionReset ends the session. A missing or unknown id is not an error;
// the response just reports that nothing was removed.
func SessionReset(svc sessionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session service unavailable"))
			return
		}

		var payload sessionResetRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		removed := false
		if payload.SessionID != "" {
			removed = svc.Reset(r.Context(), payload.SessionID)
		}
		responses.WriteSuccess(w, map[string]bool{"reset": removed})
	}
}
