package controllers

import (
	"littlelemon/pkg/resp"
	"littlelemon/repository"
	"littlelemon/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// GET /menu-items?search=&category=&ordering=&page=&perpage=
func (h *MenuController) List(c *gin.Context) {
	page, err := h.Svc.List(c.Request.Context(), repository.MenuFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Ordering: c.Query("ordering"),
		Page:     queryInt(c, "page"),
		PerPage:  queryInt(c, "perpage"),
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, page)
}

// GET /menu-items/:id
func (h *MenuController) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	m, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, m)
}

// POST /menu-items
func (h *MenuController) Create(c *gin.Context) {
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := h.Svc.Create(c.Request.Context(), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, m)
}

// PUT /menu-items/:id
func (h *MenuController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := h.Svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, m)
}

// PATCH /menu-items/:id สลับ featured
func (h *MenuController) ToggleFeatured(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	m, err := h.Svc.ToggleFeatured(c.Request.Context(), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"id": m.ID, "title": m.Title, "featured": m.Featured})
}

// DELETE /menu-items/:id
func (h *MenuController) Delete(c *gin.Context) {
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
