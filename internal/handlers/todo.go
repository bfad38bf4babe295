package handlers

import (
	"net/http"

	"todo_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// Request DTOs. Field presence is validated by the todo service so that
// missing and malformed fields produce the same messages on every route.
type createTodoRequest struct {
	Content string `json:"content"`
}

type updateTodoRequest struct {
	TodoID  string  `json:"todoId"`
	IsDone  *bool   `json:"isDone"`
	Content *string `json:"content"`
}

type deleteTodoRequest struct {
	TodoID string `json:"todoId"`
}

// CreateTodoRequest is an exported model for Swagger docs of the create payload.
type CreateTodoRequest struct {
	Content string `json:"content" example:"buy milk"`
}

// UpdateTodoRequest is an exported model for Swagger docs of the update payload.
type UpdateTodoRequest struct {
	// Id of a todo owned by the caller
	TodoID string `json:"todoId" example:"8f14e45f-ceea-467f-a9d6-0b1f6b6f1a2c"`
	// Required completion flag
	IsDone bool `json:"isDone" example:"true"`
	// Optional new content
	Content string `json:"content,omitempty" example:"buy oat milk"`
}

// DeleteTodoRequest is an exported model for Swagger docs of the delete payload.
type DeleteTodoRequest struct {
	TodoID string `json:"todoId" example:"8f14e45f-ceea-467f-a9d6-0b1f6b6f1a2c"`
}

// @Summary      List todos
// @Tags         todo
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, results, data.todos"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/todo [get]
// @Security     BearerAuth
func (h *Handler) getTodos(c *gin.Context) {
	userID := currentUserID(c)
	todos, err := h.services.Todo.List(c.Request.Context(), userID)
	if err != nil {
		h.writeServiceError(c, err, "todo_list_failed", "user_id", userID)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  statusSuccess,
		"results": len(todos),
		"data":    gin.H{"todos": todos},
	})
}

// @Summary      Create todo
// @Tags         todo
// @Accept       json
// @Produce      json
// @Param        body  body      CreateTodoRequest  true  "Todo payload"
// @Success      200   {object}  map[string]interface{}  "status, data.todo"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/todo [post]
// @Security     BearerAuth
func (h *Handler) createTodo(c *gin.Context) {
	var req createTodoRequest
	if ok := h.bindJSONOrBadRequest(c, &req, "todo_bad_request_body"); !ok {
		return
	}

	userID := currentUserID(c)
	todo, err := h.services.Create(c.Request.Context(), userID, req.Content)
	if err != nil {
		h.writeServiceError(c, err, "todo_create_failed", "user_id", userID)
		return
	}
	respondData(c, gin.H{"todo": todo})
}

// @Summary      Update todo
// @Description  isDone is required; content is optional and must not be blank
// @Tags         todo
// @Accept       json
// @Produce      json
// @Param        body  body      UpdateTodoRequest  true  "Update payload"
// @Success      200   {object}  map[string]interface{}  "status, data.todo"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/todo [patch]
// @Security     BearerAuth
func (h *Handler) updateTodo(c *gin.Context) {
	var req updateTodoRequest
	if ok := h.bindJSONOrBadRequest(c, &req, "todo_bad_request_body"); !ok {
		return
	}

	userID := currentUserID(c)
	todo, err := h.services.Update(c.Request.Context(), userID, service.UpdateTodoInput{
		TodoID:  req.TodoID,
		IsDone:  req.IsDone,
		Content: req.Content,
	})
	if err != nil {
		h.writeServiceError(c, err, "todo_update_failed", "user_id", userID, "todo_id", req.TodoID)
		return
	}
	respondData(c, gin.H{"todo": todo})
}

// @Summary      Delete todo
// @Tags         todo
// @Accept       json
// @Produce      json
// @Param        body  body      DeleteTodoRequest  true  "Delete payload"
// @Success      200   {object}  map[string]interface{}  "status, data=null"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/todo [delete]
// @Security     BearerAuth
func (h *Handler) deleteTodo(c *gin.Context) {
	var req deleteTodoRequest
	if ok := h.bindJSONOrBadRequest(c, &req, "todo_bad_request_body"); !ok {
		return
	}

	userID := currentUserID(c)
	if err := h.services.Delete(c.Request.Context(), userID, req.TodoID); err != nil {
		h.writeServiceError(c, err, "todo_delete_failed", "user_id", userID, "todo_id", req.TodoID)
		return
	}
	respondData(c, nil)
}

// @Summary      Todo stats
// @Tags         todo
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, data.stats"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/todo/stats [get]
// @Security     BearerAuth
func (h *Handler) getStats(c *gin.Context) {
	userID := currentUserID(c)
	stats, err := h.services.GetStats(c.Request.Context(), userID)
	if err != nil {
		h.writeServiceError(c, err, "todo_stats_failed", "user_id", userID)
		return
	}
	respondData(c, gin.H{"stats": stats})
}
