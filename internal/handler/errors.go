package handler

import (
	"errors"
	"net/http"

	"ponyexpress/backend/internal/model"
	"ponyexpress/backend/internal/pkg/httputils"
)

// respondError maps domain errors to their structured bodies. Anything not in
// the taxonomy is a 500; the store error is logged by gorm, not echoed.
func respondError(w http.ResponseWriter, err error) {
	var notFound *model.EntityNotFoundError
	if errors.As(err, &notFound) {
		httputils.ResponseDetail(w, http.StatusNotFound, httputils.ErrorDetail{
			Type:       "entity_not_found",
			EntityName: notFound.EntityName,
			EntityID:   notFound.EntityID,
		})
		return
	}

	var duplicate *model.DuplicateEntityError
	if errors.As(err, &duplicate) {
		httputils.ResponseDetail(w, http.StatusConflict, httputils.ErrorDetail{
			Type:       "duplicate_entity",
			EntityName: duplicate.EntityName,
			EntityID:   duplicate.EntityID,
		})
		return
	}

	httputils.ResponseError(w, http.StatusInternalServerError, "internal server error")
}
