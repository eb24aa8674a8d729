package controllers

import (
	"strconv"

	"littlelemon/pkg/apperr"
	"littlelemon/pkg/resp"
	"littlelemon/roles"
	"littlelemon/utils"

	"github.com/gin-gonic/gin"
)

var errInvalidID = apperr.Validation("INVALID_ID", "id must be a positive integer")

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		resp.Error(c, errInvalidID)
		return 0, false
	}
	return uint(id), true
}

func queryInt(c *gin.Context, name string) int {
	n, _ := strconv.Atoi(c.Query(name))
	return n
}

// queryBool "true"/"1" -> true, ไม่มีค่า -> nil
func queryBool(c *gin.Context, name string) (*bool, bool) {
	v, ok := c.GetQuery(name)
	if !ok || v == "" {
		return nil, true
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		resp.BadRequest(c, name+" must be true or false")
		return nil, false
	}
	return &b, true
}

// actor ต้องผ่าน Guard มาแล้ว แต่กันไว้เผื่อ route ลืมใส่
func actor(c *gin.Context) (*roles.Actor, bool) {
	a := utils.CurrentActor(c)
	if a == nil {
		resp.Error(c, apperr.ErrUnauthenticated)
		return nil, false
	}
	return a, true
}
