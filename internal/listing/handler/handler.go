package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/listings/listings-api/internal/listing/service"
	"github.com/listings/listings-api/pkg/logger"
)

// Handler serves the listing endpoints.
type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterListingRoutes registers the create, list and per-document routes.
// GET / (documentation) is registered separately.
func RegisterListingRoutes(r *gin.Engine, svc *service.Service) {
	h := New(svc)
	r.POST("/", h.Create)
	r.GET("/api/", h.List)
	r.POST("/api/", h.Create)
	r.GET("/api/listings/:id", h.Get)
	r.POST("/api/listings/:id", h.Update)
	r.DELETE("/api/listings/:id", h.Delete)
}

// Create validates the body and inserts a new listing.
func (h *Handler) Create(c *gin.Context) {
	f, err := bindFields(c)
	if err != nil {
		respondError(c, opCreate, err)
		return
	}
	id, err := h.svc.Create(c.Request.Context(), f)
	if err != nil {
		respondError(c, opCreate, err)
		return
	}
	logger.Infow("created listing", "id", id.String())
	respondMessage(c, opCreate, fmt.Sprintf("Successfully added document %s", id), gin.H{"id": id.String()})
}

// List returns one page of listings, skipping docs*page_no documents.
func (h *Handler) List(c *gin.Context) {
	p, err := parsePage(c)
	if err != nil {
		respondError(c, opList, err)
		return
	}
	logger.Infow("paginator request",
		"remote_addr", c.ClientIP(),
		"page_no", p.PageNo,
		"docs", p.Docs,
		"offset", p.Offset(),
	)
	docs, err := h.svc.List(c.Request.Context(), p)
	if err != nil {
		respondError(c, opList, err)
		return
	}
	respondJSON(c, opList, docs)
}

// Get returns a single listing by string or ObjectID id.
func (h *Handler) Get(c *gin.Context) {
	_, doc, err := h.svc.Resolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, opGet, err)
		return
	}
	respondJSON(c, opGet, doc)
}

// Update replaces name, description and listing_url and returns the stored document.
func (h *Handler) Update(c *gin.Context) {
	id, _, err := h.svc.Resolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, opUpdate, err)
		return
	}
	f, err := bindFields(c)
	if err != nil {
		respondError(c, opUpdate, err)
		return
	}
	doc, err := h.svc.Update(c.Request.Context(), id, f)
	if err != nil {
		respondError(c, opUpdate, err)
		return
	}
	logger.Infow("updated listing", "id", id.String())
	respondJSON(c, opUpdate, doc)
}

// Delete removes a listing.
func (h *Handler) Delete(c *gin.Context) {
	id, _, err := h.svc.Resolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, opDelete, err)
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, opDelete, err)
		return
	}
	logger.Warnw("deleted listing", "remote_addr", c.ClientIP(), "id", id.String())
	respondMessage(c, opDelete, fmt.Sprintf("Deleted document %s", id), nil)
}
