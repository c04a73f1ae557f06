package types

import (
	"time"

	"github.com/taskflow-dev/taskflow/internal/models"
)

type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// BoardSummary is the list view: no columns.
type BoardSummary struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OwnerID     uint      `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// BoardResponse is the detail view: columns ordered by position, each with
// its tasks.
type BoardResponse struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	OwnerID     uint             `json:"owner_id"`
	CreatedAt   time.Time        `json:"created_at"`
	Columns     []ColumnResponse `json:"columns"`
}

type ColumnResponse struct {
	ID       uint           `json:"id"`
	Title    string         `json:"title"`
	BoardID  uint           `json:"board_id"`
	Position int            `json:"position"`
	Tasks    []TaskResponse `json:"tasks"`
}

type TaskResponse struct {
	ID          uint          `json:"id"`
	BoardID     uint          `json:"board_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	ColumnID    uint          `json:"column_id"`
	Position    int           `json:"position"`
	Assignee    *UserResponse `json:"assignee"`
	Priority    string        `json:"priority"`
	Type        string        `json:"type"`
	DueDate     *string       `json:"due_date"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type EpicResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	BoardID     uint      `json:"board_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func NewBoardSummary(board models.Board) BoardSummary {
	return BoardSummary{
		ID:          board.ID,
		Title:       board.Title,
		Description: board.Description,
		OwnerID:     board.OwnerID,
		CreatedAt:   board.CreatedAt,
	}
}

func NewBoardResponse(board models.Board) BoardResponse {
	columns := make([]ColumnResponse, 0, len(board.Columns))

	for _, column := range board.Columns {
		columns = append(columns, NewColumnResponse(column))
	}

	return BoardResponse{
		ID:          board.ID,
		Title:       board.Title,
		Description: board.Description,
		OwnerID:     board.OwnerID,
		CreatedAt:   board.CreatedAt,
		Columns:     columns,
	}
}

func NewColumnResponse(column models.BoardColumn) ColumnResponse {
	tasks := make([]TaskResponse, 0, len(column.Tasks))

	for _, task := range column.Tasks {
		tasks = append(tasks, NewTaskResponse(task))
	}

	return ColumnResponse{
		ID:       column.ID,
		Title:    column.Title,
		BoardID:  column.BoardID,
		Position: column.Position,
		Tasks:    tasks,
	}
}

func NewTaskResponse(task models.Task) TaskResponse {
	response := TaskResponse{
		ID:          task.ID,
		BoardID:     task.BoardID,
		Title:       task.Title,
		Description: task.Description,
		ColumnID:    task.ColumnID,
		Position:    task.Position,
		Priority:    task.Priority,
		Type:        task.Type,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}

	if task.Assignee != nil {
		assignee := NewUserResponse(*task.Assignee)
		response.Assignee = &assignee
	}

	if task.DueDate != nil {
		due := task.DueDate.Format(time.DateOnly)
		response.DueDate = &due
	}

	return response
}

func NewEpicResponse(epic models.Epic) EpicResponse {
	return EpicResponse{
		ID:          epic.ID,
		Title:       epic.Title,
		Description: epic.Description,
		BoardID:     epic.BoardID,
		Status:      epic.Status,
		CreatedAt:   epic.CreatedAt,
		UpdatedAt:   epic.UpdatedAt,
	}
}
