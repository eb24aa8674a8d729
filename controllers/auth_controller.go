package controllers

import (
	"littlelemon/pkg/resp"
	"littlelemon/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /auth/users
func (a *AuthController) Register(c *gin.Context) {
	var req services.RegisterIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := a.Svc.Register(c.Request.Context(), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{
		"id": user.ID, "username": user.Username, "email": user.Email,
		"firstName": user.FirstName, "lastName": user.LastName,
	})
}

// POST /auth/token/login
func (a *AuthController) Login(c *gin.Context) {
	var req services.LoginIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, err := a.Svc.Login(c.Request.Context(), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token})
}

// GET /auth/users/me
func (a *AuthController) Me(c *gin.Context) {
	act, ok := actor(c)
	if !ok {
		return
	}
	p, err := a.Svc.Me(c.Request.Context(), act)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, p)
}
