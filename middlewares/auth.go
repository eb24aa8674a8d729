package middlewares

import (
	"strings"

	"littlelemon/pkg/apperr"
	"littlelemon/pkg/resp"
	"littlelemon/roles"
	"littlelemon/services"
	"littlelemon/utils"

	"github.com/gin-gonic/gin"
)

// Authenticate ตรวจ token ถ้ามี แล้ว resolve actor (user + capability) ครั้งเดียวต่อ request
// ไม่มี token = anonymous (Guard จะตัดสินเองว่า route นั้นต้อง login ไหม)
// token ผิด = 401 ทันที
func Authenticate(auth *services.AuthService) gin.HandlerFunc {
	return authenticate(auth, false)
}

// WSAuthenticate เหมือน Authenticate แต่รับ ?token= ได้ด้วย (browser ใส่ header ตอน upgrade ไม่ได้)
func WSAuthenticate(auth *services.AuthService) gin.HandlerFunc {
	return authenticate(auth, true)
}

func authenticate(auth *services.AuthService, allowQuery bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, present := bearerToken(c, allowQuery)
		if !present {
			c.Next()
			return
		}
		if tokenStr == "" {
			resp.Unauthorized(c, "missing or invalid token")
			return
		}

		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			resp.Unauthorized(c, "invalid token")
			return
		}
		actor, err := auth.ResolveActor(c.Request.Context(), claims.UserID)
		if err != nil {
			if apperr.KindOf(err) == apperr.KindNotFound {
				resp.Unauthorized(c, "invalid token")
				return
			}
			resp.Error(c, err)
			return
		}

		utils.SetActor(c, actor)
		c.Next()
	}
}

func bearerToken(c *gin.Context, allowQuery bool) (string, bool) {
	if allowQuery {
		if t := c.Query("token"); t != "" {
			return t, true
		}
	}
	h := c.GetHeader("Authorization")
	if h == "" {
		return "", false
	}
	if !strings.HasPrefix(h, "Bearer ") {
		return "", true
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer ")), true
}

// Guard ตรวจสิทธิ์ตามตาราง method -> rule; method ที่ไม่อยู่ในตารางโดนปฏิเสธ
func Guard(p roles.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch p.Check(c.Request.Method, utils.CurrentActor(c)) {
		case roles.Allow:
			c.Next()
		case roles.DenyUnauthenticated:
			resp.Error(c, apperr.ErrUnauthenticated)
		case roles.DenyForbidden:
			resp.Error(c, apperr.ErrForbidden)
		default:
			resp.MethodNotAllowed(c)
		}
	}
}
