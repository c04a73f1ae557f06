package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskflow-dev/taskflow/internal/store"
	"github.com/taskflow-dev/taskflow/internal/types"
	"github.com/taskflow-dev/taskflow/internal/utils"
)

type CreateEpicRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type UpdateEpicRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

func (h *Handler) ListEpics(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	boardID, err := utils.GetIDParam(ctx, "board_id")

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Board not found"})
		return
	}

	epics, err := h.store.ListEpics(userID, boardID)

	if err != nil {
		respondStoreError(ctx, err, "Board not found")
		return
	}

	response := make([]types.EpicResponse, 0, len(epics))

	for _, epic := range epics {
		response = append(response, types.NewEpicResponse(epic))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *Handler) CreateEpic(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	boardID, err := utils.GetIDParam(ctx, "board_id")

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Board not found"})
		return
	}

	var req CreateEpicRequest

	if err := ctx.ShouldBindJSON(&req); err != nil || req.Title == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Missing epic title"})
		return
	}

	epic, err := h.store.CreateEpic(userID, boardID, req.Title, req.Description, req.Status)

	if err != nil {
		respondStoreError(ctx, err, "Board not found")
		return
	}

	h.hub.BroadcastRefresh(epic.BoardID)
	ctx.JSON(http.StatusCreated, types.NewEpicResponse(*epic))
}

func (h *Handler) GetEpic(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	epicID, err := utils.GetIDParam(ctx, "epic_id")

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Epic not found"})
		return
	}

	epic, err := h.store.GetEpic(userID, epicID)

	if err != nil {
		respondStoreError(ctx, err, "Epic not found")
		return
	}

	ctx.JSON(http.StatusOK, types.NewEpicResponse(*epic))
}

func (h *Handler) UpdateEpic(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	epicID, err := utils.GetIDParam(ctx, "epic_id")

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Epic not found"})
		return
	}

	var req UpdateEpicRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	epic, err := h.store.UpdateEpic(userID, epicID, store.EpicPatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})

	if err != nil {
		respondStoreError(ctx, err, "Epic not found")
		return
	}

	h.hub.BroadcastRefresh(epic.BoardID)
	ctx.JSON(http.StatusOK, types.NewEpicResponse(*epic))
}

func (h *Handler) DeleteEpic(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	epicID, err := utils.GetIDParam(ctx, "epic_id")

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Epic not found"})
		return
	}

	epic, err := h.store.GetEpic(userID, epicID)

	if err != nil {
		respondStoreError(ctx, err, "Epic not found")
		return
	}

	if err := h.store.DeleteEpic(userID, epicID); err != nil {
		respondStoreError(ctx, err, "Epic not found")
		return
	}

	h.hub.BroadcastRefresh(epic.BoardID)
	ctx.JSON(http.StatusOK, gin.H{"message": "Epic deleted successfully"})
}
