package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "research-nest.backend/internal/domain/errors"
	"research-nest.backend/internal/domain/repositories"
	"research-nest.backend/internal/interfaces/http/response"
)

// CreateInput is a validated create payload that can mint a new record.
// Binding tags on the concrete type carry the required-field and type checks.
type CreateInput[M any] interface {
	NewRecord() *M
}

// PatchInput is a partial-update payload; Changes returns the column changes
// for only the fields the client supplied.
type PatchInput interface {
	Changes() map[string]interface{}
}

// ContentHandler serves the four uniform CRUD operations for one content
// collection. All six collections share this one implementation; only the
// store, the payload types, and the resource label differ.
type ContentHandler[M any, C CreateInput[M], P PatchInput] struct {
	store repositories.ContentStore[M]
	label string
}

// RegisterContentRoutes wires a collection's CRUD endpoints onto the router:
// public list, and session-gated create/patch/delete. The auth middleware
// runs before payload binding, so an anonymous request is rejected before
// any validation or store access happens.
func RegisterContentRoutes[M any, C CreateInput[M], P PatchInput](
	rg *gin.RouterGroup,
	path string,
	label string,
	store repositories.ContentStore[M],
	requireAuth gin.HandlerFunc,
) {
	h := &ContentHandler[M, C, P]{store: store, label: label}

	rg.GET(path, h.List)
	rg.POST(path, requireAuth, h.Create)
	rg.PATCH(path+"/:id", requireAuth, h.Patch)
	rg.DELETE(path+"/:id", requireAuth, h.Delete)
}

// List returns all records in the collection's canonical order.
func (h *ContentHandler[M, C, P]) List(c *gin.Context) {
	items, err := h.store.List(c.Request.Context())
	if err != nil {
		response.Error(c, domainerrors.NewAppError(http.StatusInternalServerError, "Failed to fetch "+h.label, err))
		return
	}
	response.Success(c, http.StatusOK, items)
}

// Create validates the payload and persists a new record.
func (h *ContentHandler[M, C, P]) Create(c *gin.Context) {
	var input C
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid data"))
		return
	}

	record := input.NewRecord()
	if err := h.store.Create(c.Request.Context(), record); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, record)
}

// Patch applies a partial update to an existing record.
func (h *ContentHandler[M, C, P]) Patch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.NotFound(h.label+" not found"))
		return
	}

	var patch P
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid data"))
		return
	}

	record, err := h.store.Update(c.Request.Context(), id, patch.Changes())
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound(h.label+" not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, record)
}

// Delete removes a record. Deleting an absent id is a 404, not a failure.
func (h *ContentHandler[M, C, P]) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.NotFound(h.label+" not found"))
		return
	}

	deleted, err := h.store.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !deleted {
		response.Error(c, domainerrors.NotFound(h.label+" not found"))
		return
	}

	response.Success(c, http.StatusOK, gin.H{"success": true})
}
