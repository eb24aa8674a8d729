package utils

import (
	"littlelemon/roles"

	"github.com/gin-gonic/gin"
)

const (
	actorKey     = "actor"
	requestIDKey = "requestId"
)

func SetActor(c *gin.Context, a *roles.Actor) { c.Set(actorKey, a) }

// CurrentActor คืน nil ถ้า request นี้ไม่ได้ login
func CurrentActor(c *gin.Context) *roles.Actor {
	if v, ok := c.Get(actorKey); ok {
		if a, ok := v.(*roles.Actor); ok {
			return a
		}
	}
	return nil
}

func SetRequestID(c *gin.Context, id string) { c.Set(requestIDKey, id) }

func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
