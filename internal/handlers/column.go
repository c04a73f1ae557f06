package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskflow-dev/taskflow/internal/store"
	"github.com/taskflow-dev/taskflow/internal/types"
	"github.com/taskflow-dev/taskflow/internal/utils"
)

type CreateColumnRequest struct {
	Title string `json:"title"`
}

type UpdateColumnRequest struct {
	Title    *string `json:"title"`
	Position *int    `json:"position"`
}

func (h *Handler) CreateColumn(ctx *gin.Context) {
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

	var req CreateColumnRequest

	if err := ctx.ShouldBindJSON(&req); err != nil || req.Title == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Missing column title"})
		return
	}

	column, err := h.store.CreateColumn(userID, boardID, req.Title)

	if err != nil {
		respondStoreError(ctx, err, "Board not found")
		return
	}

	h.hub.BroadcastRefresh(column.BoardID)
	ctx.JSON(http.StatusCreated, types.NewColumnResponse(*column))
}

func (h *Handler) UpdateColumn(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	columnID, err := utils.GetIDParam(ctx, "column_id")

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "BoardColumn not found"})
		return
	}

	var req UpdateColumnRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	column, err := h.store.UpdateColumn(userID, columnID, store.ColumnPatch{
		Title:    req.Title,
		Position: req.Position,
	})

	if err != nil {
		respondStoreError(ctx, err, "BoardColumn not found")
		return
	}

	h.hub.BroadcastRefresh(column.BoardID)
	ctx.JSON(http.StatusOK, types.NewColumnResponse(*column))
}

func (h *Handler) DeleteColumn(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	columnID, err := utils.GetIDParam(ctx, "column_id")

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "BoardColumn not found"})
		return
	}

	column, err := h.store.GetColumn(userID, columnID)

	if err != nil {
		respondStoreError(ctx, err, "BoardColumn not found")
		return
	}

	if err := h.store.DeleteColumn(userID, columnID); err != nil {
		respondStoreError(ctx, err, "BoardColumn not found")
		return
	}

	h.hub.BroadcastRefresh(column.BoardID)
	ctx.JSON(http.StatusOK, gin.H{"message": "BoardColumn deleted successfully"})
}
