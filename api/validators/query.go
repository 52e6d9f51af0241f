package validators

import (
	"net/http"
	"strings"

	pkgerrors "github.com/taazafoods/chatbot-backend/pkg/errors"
)

// RequireQuery returns the named query parameter or a validation error when
// it is absent or blank.
func RequireQuery(r *http.Request, key string) (string, error) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "query parameter is required").WithDetails(map[string]any{"field": key})
	}
	return value, nil
}
