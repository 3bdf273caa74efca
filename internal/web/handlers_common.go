package web

import (
	"net/http"
	"strconv"
)

// maxOrderHistory caps the limit query parameter of the order log API.
const maxOrderHistory = 500

// parseIntParam parses a positive integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil || i < 1 {
		return defaultVal
	}
	return i
}
