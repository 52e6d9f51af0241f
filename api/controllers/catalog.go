package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taazafoods/chatbot-backend/api/responses"
	sessionsvc "github.com/taazafoods/chatbot-backend/internal/session"
	pkgerrors "github.com/taazafoods/chatbot-backend/pkg/errors"
	"github.com/taazafoods/chatbot-backend/pkg/logger"
)

// CatalogFetcher is the slice of the catalog client the handlers consume.
type CatalogFetcher interface {
	Categories(ctx context.Context) (json.RawMessage, error)
	Items(ctx context.Context, category string) (json.RawMessage, error)
}

// Categories proxies the upstream category list. When the caller supplies a
// session id the list is also cached on that session.
func Categories(catalog CatalogFetcher, svc sessionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if catalog == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog client unavailable"))
			return
		}

		raw, err := catalog.Categories(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if svc != nil {
			if sid := strings.TrimSpace(r.URL.Query().Get("session_id")); sid != "" {
				svc.CacheCategories(sid, raw)
			}
		}

		responses.WriteSuccess(w, raw)
	}
}

// Items proxies the item list for a category, forwarding the upstream status
// on failure. The selection is recorded on the session when one is supplied.
func Items(catalog CatalogFetcher, svc sessionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if catalog == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog client unavailable"))
			return
		}

		category := chi.URLParam(r, "category")
		raw, err := catalog.Items(r.Context(), category)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if svc != nil {
			if sid := strings.TrimSpace(r.URL.Query().Get("session_id")); sid != "" {
				svc.SelectCategory(sid, category)
			}
		}

		responses.WriteSuccess(w, raw)
	}
}
