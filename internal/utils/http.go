package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractIDFromParams reads a route parameter set by httprouter and strips a
// trailing ".json" extension from it.
func ExtractIDFromParams(r *http.Request, paramName string) string {
	rawID := httprouter.ParamsFromContext(r.Context()).ByName(paramName)
	return strings.TrimSuffix(rawID, ".json")
}

// ExtractValidatedID extracts the parameter and validates it. The second
// return value holds field errors when the id is unusable.
func ExtractValidatedID(r *http.Request, paramName string) (string, map[string][]string) {
	id := ExtractIDFromParams(r, paramName)
	return id, ValidateIDParam(paramName, id)
}
