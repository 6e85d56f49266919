package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/lifedash/internal/core/ports/services"
	"github.com/SscSPs/lifedash/internal/dto"
	"github.com/gin-gonic/gin"
)

type taskHandler struct {
	taskService portssvc.TaskSvcFacade
}

func registerTaskRoutes(rg *gin.RouterGroup, taskService portssvc.TaskSvcFacade) {
	h := &taskHandler{taskService: taskService}

	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.listTasks)
		tasks.POST("", h.createTask)
		tasks.PUT("/:id", h.updateTask)
		tasks.DELETE("/:id", h.deleteTask)
	}
}

func (h *taskHandler) listTasks(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	tasks, err := h.taskService.ListTasks(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list tasks")
		return
	}
	respondData(c, http.StatusOK, tasks)
}

func (h *taskHandler) createTask(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.TaskRequest
	if !bindJSON(c, &req) {
		return
	}
	task, err := h.taskService.CreateTask(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create task")
		return
	}
	respondData(c, http.StatusCreated, task)
}

func (h *taskHandler) updateTask(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.TaskRequest
	if !bindJSON(c, &req) {
		return
	}
	task, err := h.taskService.UpdateTask(c.Request.Context(), userID, id, req)
	if err != nil {
		respondServiceError(c, err, "Failed to update task")
		return
	}
	respondData(c, http.StatusOK, task)
}

func (h *taskHandler) deleteTask(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.taskService.DeleteTask(c.Request.Context(), userID, id); err != nil {
		respondServiceError(c, err, "Failed to delete task")
		return
	}
	respondData(c, http.StatusOK, nil)
}
