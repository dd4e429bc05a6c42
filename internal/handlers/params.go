package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// uintParam parses a numeric chi URL parameter.
func uintParam(r *http.Request, name string) (uint, error) {
	v, err := strconv.ParseUint(chi.URLParam(r, name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}
