package controllers

import (
	"littlelemon/pkg/resp"
	"littlelemon/services"

	"github.com/gin-gonic/gin"
)

// StaffController หนึ่งตัวต่อหนึ่งกลุ่ม (Manager / Delivery Crew)
type StaffController struct {
	Svc   *services.StaffService
	Group string
}

func NewStaffController(s *services.StaffService, group string) *StaffController {
	return &StaffController{Svc: s, Group: group}
}

// GET /groups/<group>/users
func (h *StaffController) List(c *gin.Context) {
	users, err := h.Svc.Members(c.Request.Context(), h.Group)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": users})
}

// POST /groups/<group>/users {"username": "..."}
func (h *StaffController) Add(c *gin.Context) {
	var req services.AddMemberIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	u, err := h.Svc.Add(c.Request.Context(), h.Group, req.Username)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"group": h.Group, "user": u})
}

// DELETE /groups/<group>/users/:id
func (h *StaffController) Remove(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Remove(c.Request.Context(), h.Group, id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"group": h.Group, "userId": id})
}
