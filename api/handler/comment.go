package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskflow/backend/api/transport"
	"github.com/taskflow/backend/domain"
	"github.com/taskflow/backend/pkg/httpcontext"
	commentUC "github.com/taskflow/backend/usecase/comment"
)

type CommentHandler struct {
	baseHandler
	uc *commentUC.UseCase
}

func NewCommentHandler(uc *commentUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger, debug bool) *CommentHandler {
	return &CommentHandler{
		baseHandler: newBaseHandler(adapter, logger, debug),
		uc:          uc,
	}
}

// @Summary List a task's comments
// @Tags comments
// @Router /api/comments/task/{taskId} [get]
func (h *CommentHandler) ListForTask(ctx *fasthttp.RequestCtx) {
	if _, ok := h.identity(ctx); !ok {
		return
	}
	taskID, ok := h.pathID(ctx, "taskId", domain.ErrTaskNotFound)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	comments, err := h.uc.ListForTask(stdCtx, taskID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	if comments == nil {
		comments = []domain.CommentWithAuthor{}
	}
	h.respondSuccess(ctx, http.StatusOK, "Comments retrieved successfully", transport.Fields{"comments": comments})
}

// @Summary Add a comment to a task
// @Tags comments
// @Router /api/comments/task/{taskId} [post]
func (h *CommentHandler) Create(ctx *fasthttp.RequestCtx) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}
	taskID, ok := h.pathID(ctx, "taskId", domain.ErrTaskNotFound)
	if !ok {
		return
	}

	var req transport.CommentRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondBadPayload(ctx)
		return
	}
	if errs := req.Validate(); errs != nil {
		h.respondValidation(ctx, errs)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Create(stdCtx, taskID, req.Content, identity)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, "Comment created successfully", transport.Fields{"comment": created})
}

// @Summary Update a comment
// @Tags comments
// @Router /api/comments/{id} [put]
func (h *CommentHandler) Update(ctx *fasthttp.RequestCtx) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}
	id, ok := h.pathID(ctx, "id", domain.ErrCommentNotFound)
	if !ok {
		return
	}

	var req transport.CommentRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondBadPayload(ctx)
		return
	}
	if errs := req.Validate(); errs != nil {
		h.respondValidation(ctx, errs)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.Update(stdCtx, id, req.Content, identity)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, "Comment updated successfully", transport.Fields{"comment": updated})
}

// @Summary Delete a comment
// @Tags comments
// @Router /api/comments/{id} [delete]
func (h *CommentHandler) Delete(ctx *fasthttp.RequestCtx) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}
	id, ok := h.pathID(ctx, "id", domain.ErrCommentNotFound)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Delete(stdCtx, id, identity); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, "Comment deleted successfully", nil)
}
