package http

import (
	"net/http"
	"strconv"

	"github.com/jacklucas/notes-api/models"
)

// pageRequestFromQuery reads the page, size, sort, and order query
// parameters. Unparseable numbers fall back to the zero value, which
// [models.PageRequest.Normalize] later resolves to the defaults.
func pageRequestFromQuery(r *http.Request) models.PageRequest {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	size, _ := strconv.Atoi(query.Get("size"))

	return models.PageRequest{
		Page:  page,
		Size:  size,
		Sort:  query.Get("sort"),
		Order: query.Get("order"),
	}
}
