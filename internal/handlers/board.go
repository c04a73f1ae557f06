package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskflow-dev/taskflow/internal/store"
	"github.com/taskflow-dev/taskflow/internal/types"
	"github.com/taskflow-dev/taskflow/internal/utils"
)

type CreateBoardRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type UpdateBoardRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (h *Handler) ListBoards(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	boards, err := h.store.ListBoards(userID)

	if err != nil {
		respondStoreError(ctx, err, "Board not found")
		return
	}

	response := make([]types.BoardSummary, 0, len(boards))

	for _, board := range boards {
		response = append(response, types.NewBoardSummary(board))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *Handler) CreateBoard(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	var req CreateBoardRequest

	if err := ctx.ShouldBindJSON(&req); err != nil || req.Title == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Missing board title"})
		return
	}

	board, err := h.store.CreateBoard(userID, req.Title, req.Description)

	if err != nil {
		respondStoreError(ctx, err, "Board not found")
		return
	}

	ctx.JSON(http.StatusCreated, types.NewBoardResponse(*board))
}

func (h *Handler) GetBoard(ctx *gin.Context) {
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

	board, err := h.store.GetBoard(userID, boardID)

	if err != nil {
		respondStoreError(ctx, err, "Board not found")
		return
	}

	ctx.JSON(http.StatusOK, types.NewBoardResponse(*board))
}

func (h *Handler) UpdateBoard(ctx *gin.Context) {
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

	var req UpdateBoardRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	board, err := h.store.UpdateBoard(userID, boardID, store.BoardPatch{
		Title:       req.Title,
		Description: req.Description,
	})

	if err != nil {
		respondStoreError(ctx, err, "Board not found")
		return
	}

	h.hub.BroadcastRefresh(board.ID)
	ctx.JSON(http.StatusOK, types.NewBoardResponse(*board))
}

func (h *Handler) DeleteBoard(ctx *gin.Context) {
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

	if err := h.store.DeleteBoard(userID, boardID); err != nil {
		respondStoreError(ctx, err, "Board not found")
		return
	}

	h.hub.BroadcastRefresh(boardID)
	ctx.JSON(http.StatusOK, gin.H{"message": "Board deleted successfully"})
}
