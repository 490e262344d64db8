package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"taskboard/internal/domain"
	"taskboard/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

type updateTaskRequest struct {
	TaskID      string  `json:"taskId"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// ListTasks handles GET /api/tasks with optional completed, search, limit
// and offset query parameters. Results are the caller's tasks only, newest
// first. No total count is returned.
func (h *Handler) ListTasks(c *gin.Context) {
	ownerID, ok := h.currentUserID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var filter domain.TaskFilter
	if v, present := c.GetQuery("completed"); present {
		completed := v == "true"
		filter.Completed = &completed
	}
	filter.Search = c.Query("search")
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	tasks, err := h.Tasks.List(c.Request.Context(), ownerID, filter)
	if err != nil {
		failFromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "tasks": tasks})
}

// CreateTask handles POST /api/tasks.
func (h *Handler) CreateTask(c *gin.Context) {
	ownerID, ok := h.currentUserID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req createTaskRequest
	if err := c.BindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := validation.ValidateTask(req.Title); len(errs) > 0 {
		failValidation(c, errs)
		return
	}

	task := &domain.Task{
		UserID:      ownerID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Completed:   req.Completed,
	}

	if err := h.Tasks.Create(c.Request.Context(), task); err != nil {
		failFromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Task created successfully",
		"task":    task,
	})
}

// UpdateTask handles PUT /api/tasks. Despite the verb this is a partial
// update: only fields present in the body change.
func (h *Handler) UpdateTask(c *gin.Context) {
	ownerID, ok := h.currentUserID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req updateTaskRequest
	if err := c.BindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !validTaskID(req.TaskID) {
		failFromError(c, domain.ErrBadID)
		return
	}

	patch := domain.TaskPatch{
		Description: req.Description,
		Completed:   req.Completed,
	}
	if req.Title != nil {
		if errs := validation.ValidateTask(*req.Title); len(errs) > 0 {
			failValidation(c, errs)
			return
		}
		trimmed := strings.TrimSpace(*req.Title)
		patch.Title = &trimmed
	}
	if req.Description != nil {
		trimmed := strings.TrimSpace(*req.Description)
		patch.Description = &trimmed
	}

	task, err := h.Tasks.Update(c.Request.Context(), ownerID, req.TaskID, patch)
	if err != nil {
		failFromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task updated successfully",
		"task":    task,
	})
}

// DeleteTask handles DELETE /api/tasks?taskId=... Hard delete; deleting an
// already-deleted id is a 404, same as an id owned by someone else.
func (h *Handler) DeleteTask(c *gin.Context) {
	ownerID, ok := h.currentUserID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	taskID := c.Query("taskId")
	if !validTaskID(taskID) {
		failFromError(c, domain.ErrBadID)
		return
	}

	if err := h.Tasks.Delete(c.Request.Context(), ownerID, taskID); err != nil {
		failFromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task deleted successfully",
	})
}

// validTaskID rejects malformed ids before they reach the store.
func validTaskID(id string) bool {
	if id == "" {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
