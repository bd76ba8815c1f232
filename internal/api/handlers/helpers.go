package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/belajarhosting/platform/internal/pkg/errors"
	"github.com/belajarhosting/platform/internal/pkg/utils"
)

// idParam parses the {id} URL parameter
func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.BadRequest("Invalid id")
	}
	return id, nil
}

// parseInt64Query parses a numeric query value, returning 0 when malformed
func parseInt64Query(value string) int64 {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// writePage writes a paginated success response
func writePage(w http.ResponseWriter, data interface{}, p utils.PaginationParams, total int64) {
	utils.WriteSuccess(w, http.StatusOK, utils.NewPaginatedResponse(data, p.Page, p.PageSize, total))
}
