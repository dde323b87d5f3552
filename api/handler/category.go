package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskflow/backend/api/transport"
	"github.com/taskflow/backend/domain"
	"github.com/taskflow/backend/pkg/httpcontext"
	categoryUC "github.com/taskflow/backend/usecase/category"
)

type CategoryHandler struct {
	baseHandler
	uc *categoryUC.UseCase
}

func NewCategoryHandler(uc *categoryUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger, debug bool) *CategoryHandler {
	return &CategoryHandler{
		baseHandler: newBaseHandler(adapter, logger, debug),
		uc:          uc,
	}
}

// @Summary List the caller's categories
// @Tags categories
// @Router /api/categories [get]
func (h *CategoryHandler) List(ctx *fasthttp.RequestCtx) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	categories, err := h.uc.List(stdCtx, identity.UserID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	h.respondSuccess(ctx, http.StatusOK, "Categories retrieved successfully", transport.Fields{"categories": categories})
}

// @Summary Get one category
// @Tags categories
// @Router /api/categories/{id} [get]
func (h *CategoryHandler) Get(ctx *fasthttp.RequestCtx) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}
	id, ok := h.pathID(ctx, "id", domain.ErrCategoryNotFound)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	category, err := h.uc.GetByID(stdCtx, id, identity.UserID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, "Category retrieved successfully", transport.Fields{"category": category})
}

// @Summary Create category
// @Tags categories
// @Router /api/categories [post]
func (h *CategoryHandler) Create(ctx *fasthttp.RequestCtx) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}

	var req transport.CreateCategoryRequest
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

	created, err := h.uc.Create(stdCtx, identity.UserID, categoryUC.CreateInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, "Category created successfully", transport.Fields{"category": created})
}

// @Summary Update category
// @Tags categories
// @Router /api/categories/{id} [put]
func (h *CategoryHandler) Update(ctx *fasthttp.RequestCtx) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}
	id, ok := h.pathID(ctx, "id", domain.ErrCategoryNotFound)
	if !ok {
		return
	}

	var req transport.UpdateCategoryRequest
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

	updated, err := h.uc.Update(stdCtx, id, identity.UserID, categoryUC.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, "Category updated successfully", transport.Fields{"category": updated})
}

// @Summary Delete category
// @Tags categories
// @Router /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(ctx *fasthttp.RequestCtx) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}
	id, ok := h.pathID(ctx, "id", domain.ErrCategoryNotFound)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Delete(stdCtx, id, identity.UserID); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, "Category deleted successfully", nil)
}
