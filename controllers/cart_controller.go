package controllers

import (
	"errors"
	"io"
	"strconv"

	"littlelemon/pkg/resp"
	"littlelemon/services"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart/menu-items
func (h *CartController) List(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		return
	}
	cart, err := h.Svc.List(c.Request.Context(), act.UserID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cart)
}

// POST /cart/menu-items {"menuitem": 1, "quantity": 2}
func (h *CartController) Add(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		return
	}
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	line, err := h.Svc.Add(c.Request.Context(), act.UserID, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, line)
}

// DELETE /cart/menu-items
// มี menuitem (body หรือ ?menuitem=) = ลบบรรทัดเดียว, ไม่มี = ล้างตะกร้า
func (h *CartController) Delete(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		return
	}

	var body struct {
		MenuItem *uint `json:"menuitem"`
	}
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
			resp.BadRequest(c, err.Error())
			return
		}
	}
	if body.MenuItem == nil {
		if v := c.Query("menuitem"); v != "" {
			id, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				resp.Error(c, errInvalidID)
				return
			}
			u := uint(id)
			body.MenuItem = &u
		}
	}

	if body.MenuItem == nil {
		if err := h.Svc.Clear(c.Request.Context(), act.UserID); err != nil {
			resp.Error(c, err)
			return
		}
		resp.OK(c, gin.H{"cleared": true})
		return
	}

	if err := h.Svc.RemoveItem(c.Request.Context(), act.UserID, *body.MenuItem); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"menuitem": *body.MenuItem})
}
