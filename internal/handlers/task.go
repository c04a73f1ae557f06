package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taskflow-dev/taskflow/internal/store"
	"github.com/taskflow-dev/taskflow/internal/types"
	"github.com/taskflow-dev/taskflow/internal/utils"
)

// dueDateLayout is the timestamp format clients send on task creation
// (millisecond-precision ISO, e.g. "2026-08-29T10:30:00.000Z").
const dueDateLayout = "2006-01-02T15:04:05.000Z07:00"

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	AssigneeID  *uint  `json:"assignee_id"`
	Priority    string `json:"priority"`
	Type        string `json:"type"`
	DueDate     string `json:"due_date"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ColumnID    *uint   `json:"column_id"`
	Position    *int    `json:"position"`
	AssigneeID  *uint   `json:"assignee_id"`
	Priority    *string `json:"priority"`
	Type        *string `json:"type"`
	DueDate     *string `json:"due_date"`
}

func (h *Handler) CreateTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	columnID, err := utils.GetIDParam(ctx, "column_id")

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Column not found"})
		return
	}

	var req CreateTaskRequest

	if err := ctx.ShouldBindJSON(&req); err != nil || req.Title == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Missing task title"})
		return
	}

	draft := store.TaskDraft{
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		Priority:    req.Priority,
		Type:        req.Type,
	}

	if req.DueDate != "" {
		parsed, err := time.Parse(dueDateLayout, req.DueDate)

		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid due date"})
			return
		}

		due := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
		draft.DueDate = &due
	}

	task, err := h.store.CreateTask(userID, columnID, draft)

	if err != nil {
		respondStoreError(ctx, err, "Column not found")
		return
	}

	h.hub.BroadcastRefresh(task.BoardID)
	ctx.JSON(http.StatusCreated, types.NewTaskResponse(*task))
}

func (h *Handler) GetTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	taskID, err := utils.GetIDParam(ctx, "task_id")

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		return
	}

	task, err := h.store.GetTask(userID, taskID)

	if err != nil {
		respondStoreError(ctx, err, "Task not found")
		return
	}

	ctx.JSON(http.StatusOK, types.NewTaskResponse(*task))
}

func (h *Handler) UpdateTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	taskID, err := utils.GetIDParam(ctx, "task_id")

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		return
	}

	var req UpdateTaskRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	patch := store.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		ColumnID:    req.ColumnID,
		Position:    req.Position,
		AssigneeID:  req.AssigneeID,
		Priority:    req.Priority,
		Type:        req.Type,
	}

	if req.DueDate != nil {
		patch.DueDateSet = true

		if *req.DueDate != "" {
			due, err := parseDueDate(*req.DueDate)

			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid due date"})
				return
			}

			patch.DueDate = &due
		}
	}

	task, err := h.store.UpdateTask(userID, taskID, patch)

	if err != nil {
		respondStoreError(ctx, err, "Task not found")
		return
	}

	h.hub.BroadcastRefresh(task.BoardID)
	ctx.JSON(http.StatusOK, types.NewTaskResponse(*task))
}

func (h *Handler) DeleteTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	taskID, err := utils.GetIDParam(ctx, "task_id")

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		return
	}

	task, err := h.store.GetTask(userID, taskID)

	if err != nil {
		respondStoreError(ctx, err, "Task not found")
		return
	}

	if err := h.store.DeleteTask(userID, taskID); err != nil {
		respondStoreError(ctx, err, "Task not found")
		return
	}

	h.hub.BroadcastRefresh(task.BoardID)
	ctx.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// parseDueDate accepts the create layout, RFC 3339, or a bare date.
func parseDueDate(value string) (time.Time, error) {
	var parsed time.Time
	var err error

	for _, layout := range []string{dueDateLayout, time.RFC3339, time.DateOnly} {
		parsed, err = time.Parse(layout, value)
		if err == nil {
			return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, err
}
