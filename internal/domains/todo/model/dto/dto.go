package dto

import (
	"todoapp/internal/domains/todo/model"
	"todoapp/shared/constant"
	"todoapp/shared/timezone"
)

type CreateTodoRequest struct {
	Title       string         `json:"title" validate:"required,min=1,max=200"`
	Description string         `json:"description" validate:"omitempty,max=1000"`
	Completed   bool           `json:"completed"`
	Done        bool           `json:"done"`
	Priority    model.Priority `json:"priority" validate:"omitempty,oneof=low medium high"`
}

func (c *CreateTodoRequest) ToFields() model.Fields {
	priority := c.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	return model.Fields{
		Title:       c.Title,
		Description: c.Description,
		Completed:   c.Completed,
		Done:        c.Done,
		Priority:    priority,
	}
}

// UpdateTodoRequest carries a sparse field set: nil pointers are fields the
// caller did not send and must not change.
type UpdateTodoRequest struct {
	Title       *string         `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string         `json:"description" validate:"omitempty,max=1000"`
	Completed   *bool           `json:"completed"`
	Done        *bool           `json:"done"`
	Priority    *model.Priority `json:"priority" validate:"omitempty,oneof=low medium high"`
}

func (u *UpdateTodoRequest) ToPatch() model.Patch {
	return model.Patch{
		Title:       u.Title,
		Description: u.Description,
		Completed:   u.Completed,
		Done:        u.Done,
		Priority:    u.Priority,
	}
}

type TodoResponse struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Completed   bool           `json:"completed"`
	Done        bool           `json:"done"`
	Priority    model.Priority `json:"priority"`
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
}

func (r *TodoResponse) FromModel(model model.Todo) {
	r.ID = model.ID
	r.Title = model.Title
	r.Description = model.Description
	r.Completed = model.Completed
	r.Done = model.Done
	r.Priority = model.Priority
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	r.UpdatedAt = timezone.Format(model.UpdatedAt, constant.DateFormat)
}

type GetTodosResponse struct {
	Todos []TodoResponse `json:"todos"`
	Total int            `json:"total"`
}

func (r *GetTodosResponse) FromModels(models []model.Todo) {
	r.Total = len(models)

	r.Todos = make([]TodoResponse, len(models))
	for i, mod := range models {
		r.Todos[i].FromModel(mod)
	}
}
