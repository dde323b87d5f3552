package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskflow/backend/api/transport"
	"github.com/taskflow/backend/domain"
	"github.com/taskflow/backend/pkg/httpcontext"
	taskUC "github.com/taskflow/backend/usecase/task"
)

type TaskHandler struct {
	baseHandler
	uc *taskUC.UseCase
}

func NewTaskHandler(uc *taskUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger, debug bool) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(adapter, logger, debug),
		uc:          uc,
	}
}

// @Summary List tasks
// @Tags tasks
// @Router /api/tasks [get]
func (h *TaskHandler) List(ctx *fasthttp.RequestCtx) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}

	query := transport.TaskListQuery{
		Status:     string(ctx.QueryArgs().Peek("status")),
		Priority:   string(ctx.QueryArgs().Peek("priority")),
		CategoryID: string(ctx.QueryArgs().Peek("categoryId")),
		DueDate:    string(ctx.QueryArgs().Peek("dueDate")),
		SortBy:     string(ctx.QueryArgs().Peek("sortBy")),
		Order:      string(ctx.QueryArgs().Peek("order")),
	}
	if errs := query.Validate(); errs != nil {
		h.respondValidation(ctx, errs)
		return
	}

	filter := taskUC.ListFilter{
		Status:     domain.TaskStatus(query.Status),
		Priority:   domain.TaskPriority(query.Priority),
		CategoryID: query.CategoryID,
		SortBy:     query.SortBy,
		Order:      query.Order,
	}
	if query.DueDate != "" {
		due, _ := transport.ParseDate(query.DueDate)
		filter.DueDate = &due
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.uc.List(stdCtx, identity.UserID, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	if tasks == nil {
		tasks = []domain.TaskWithCategory{}
	}
	h.respondSuccess(ctx, http.StatusOK, "Tasks retrieved successfully", transport.Fields{"tasks": tasks})
}

// @Summary Get one task with category and comments
// @Tags tasks
// @Router /api/tasks/{id} [get]
func (h *TaskHandler) Get(ctx *fasthttp.RequestCtx) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}
	id, ok := h.pathID(ctx, "id", domain.ErrTaskNotFound)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	detail, err := h.uc.GetByID(stdCtx, id, identity.UserID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, "Task retrieved successfully", transport.Fields{"task": detail})
}

// @Summary Create task
// @Tags tasks
// @Router /api/tasks [post]
func (h *TaskHandler) Create(ctx *fasthttp.RequestCtx) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}

	var req transport.CreateTaskRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondBadPayload(ctx)
		return
	}
	if errs := req.Validate(); errs != nil {
		h.respondValidation(ctx, errs)
		return
	}

	input := taskUC.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
		Priority:    domain.TaskPriority(req.Priority),
		AssigneeID:  req.AssigneeID,
		CategoryID:  req.CategoryID,
	}
	if req.DueDate != "" {
		due, _ := transport.ParseDate(req.DueDate)
		input.DueDate = &due
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Create(stdCtx, identity.UserID, input)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, "Task created successfully", transport.Fields{"task": created})
}

// @Summary Update task
// @Tags tasks
// @Router /api/tasks/{id} [put]
func (h *TaskHandler) Update(ctx *fasthttp.RequestCtx) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}
	id, ok := h.pathID(ctx, "id", domain.ErrTaskNotFound)
	if !ok {
		return
	}

	var req transport.UpdateTaskRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondBadPayload(ctx)
		return
	}
	if errs := req.Validate(); errs != nil {
		h.respondValidation(ctx, errs)
		return
	}

	input := taskUC.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		CategoryID:  req.CategoryID,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		input.Status = &status
	}
	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		input.Priority = &priority
	}
	if req.DueDate != nil {
		due, _ := transport.ParseDate(*req.DueDate)
		input.DueDate = &due
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.Update(stdCtx, id, identity.UserID, input)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, "Task updated successfully", transport.Fields{"task": updated})
}

// @Summary Delete task
// @Tags tasks
// @Router /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(ctx *fasthttp.RequestCtx) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}
	id, ok := h.pathID(ctx, "id", domain.ErrTaskNotFound)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Delete(stdCtx, id, identity.UserID); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, "Task deleted successfully", nil)
}
