package controllers

import (
	"littlelemon/pkg/resp"
	"littlelemon/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// GET /orders?status=&page=&perpage=
func (oc *OrderController) List(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		return
	}
	status, ok := queryBool(c, "status")
	if !ok {
		return
	}
	page, err := oc.Svc.List(c.Request.Context(), act, services.OrderFilter{
		Status:  status,
		Page:    queryInt(c, "page"),
		PerPage: queryInt(c, "perpage"),
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, page)
}

// POST /orders สร้างจากตะกร้าของผู้เรียก
func (oc *OrderController) Create(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		return
	}
	o, err := oc.Svc.Create(c.Request.Context(), act)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, o)
}

// GET /order/:id
func (oc *OrderController) Detail(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	o, err := oc.Svc.Detail(c.Request.Context(), act, id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, o)
}

// PATCH /order/:id สลับ status
func (oc *OrderController) ToggleStatus(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	o, err := oc.Svc.ToggleStatus(c.Request.Context(), act, id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, o)
}

// PUT /order/:id {"deliveryCrew": 5}
func (oc *OrderController) AssignCrew(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req services.AssignCrewIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	o, err := oc.Svc.AssignCrew(c.Request.Context(), id, req.DeliveryCrew)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, o)
}

// DELETE /order/:id
func (oc *OrderController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := oc.Svc.Delete(c.Request.Context(), id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}
