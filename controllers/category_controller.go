package controllers

import (
	"littlelemon/pkg/resp"
	"littlelemon/services"

	"github.com/gin-gonic/gin"
)

type CategoryController struct{ Svc *services.CategoryService }

func NewCategoryController(s *services.CategoryService) *CategoryController {
	return &CategoryController{Svc: s}
}

// GET /categories
func (h *CategoryController) List(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /categories
func (h *CategoryController) Create(c *gin.Context) {
	var req services.CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := h.Svc.Create(c.Request.Context(), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, cat)
}

// PUT /categories/:id
func (h *CategoryController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req services.CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := h.Svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /categories/:id
func (h *CategoryController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}
