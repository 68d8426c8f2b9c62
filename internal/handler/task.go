package handler

import (
	"context"

	"wedding-planner/internal/apperr"
	"wedding-planner/internal/models"
)

// CreateTask stores a new, open task for an existing wedding
func (p *Planner) CreateTask(ctx context.Context, input models.CreateTaskInput) (*models.Task, error) {
	if err := p.validate(input); err != nil {
		return nil, p.fail("createTask", err)
	}
	if _, err := p.GetWedding(ctx, input.WeddingID); err != nil {
		return nil, p.fail("createTask", err)
	}

	priority := input.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	task := models.Task{
		WeddingID:   input.WeddingID,
		Title:       input.Title,
		Description: input.Description,
		Completed:   false,
		Priority:    priority,
		Category:    input.Category,
	}
	if input.DueDate != nil {
		due := input.DueDate.Time
		task.DueDate = &due
	}
	if err := p.repo.InsertTask(ctx, &task); err != nil {
		return nil, p.fail("createTask", apperr.Store("insert task", err))
	}
	return &task, nil
}

// GetWeddingTasks lists a wedding's tasks narrowed by the optional criteria
func (p *Planner) GetWeddingTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	if err := p.validate(filter); err != nil {
		return nil, p.fail("getWeddingTasks", err)
	}
	tasks, err := p.repo.SelectTasks(ctx, filter)
	if err != nil {
		return nil, p.fail("getWeddingTasks", apperr.Store("fetch tasks", err))
	}
	return tasks, nil
}

// UpdateTask applies a partial update to one task
func (p *Planner) UpdateTask(ctx context.Context, input models.UpdateTaskInput) (*models.Task, error) {
	if err := p.validate(input); err != nil {
		return nil, p.fail("updateTask", err)
	}
	task, err := p.repo.UpdateTask(ctx, input.ID, input.Apply)
	if err != nil {
		return nil, p.fail("updateTask", updateError("Task", input.ID, err))
	}
	return task, nil
}
