package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskflow-dev/taskflow/internal/auth"
	"github.com/taskflow-dev/taskflow/internal/store"
)

// Handler holds the collaborators every endpoint needs. It is constructed
// once at startup and shared across requests.
type Handler struct {
	store  *store.Store
	auth   *auth.Manager
	hub    *Hub
	domain string
}

func New(s *store.Store, manager *auth.Manager, hub *Hub, domain string) *Handler {
	return &Handler{
		store:  s,
		auth:   manager,
		hub:    hub,
		domain: domain,
	}
}

// respondStoreError maps domain errors to the API's status codes. The
// not-found message is per-entity, everything else is fixed.
func respondStoreError(ctx *gin.Context, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"message": notFoundMessage})
	case errors.Is(err, store.ErrInvalidColumn):
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid column ID"})
	default:
		log.Printf("store error on %s %s: %v", ctx.Request.Method, ctx.FullPath(), err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}
