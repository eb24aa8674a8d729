package resp

import (
	"net/http"

	"littlelemon/pkg/apperr"

	"github.com/gin-gonic/gin"
)

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	abort(c, http.StatusBadRequest, "VALIDATION_ERROR", msg)
}
func Unauthorized(c *gin.Context, msg string) {
	abort(c, http.StatusUnauthorized, "UNAUTHENTICATED", msg)
}
func MethodNotAllowed(c *gin.Context) {
	abort(c, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
}

// Error แปลง error ของ service เป็น status + body ตามชนิด
// error ที่ไม่ได้จัดกลุ่มจะถูกซ่อนข้อความจริงไว้ (ดูใน log แทน)
func Error(c *gin.Context, err error) {
	e := apperr.As(err)
	_ = c.Error(err)
	msg := e.Message
	if e.Kind == apperr.KindInternal {
		msg = apperr.ErrInternal.Message
	}
	abort(c, StatusOf(e.Kind), e.Code, msg)
}

func StatusOf(k apperr.Kind) int {
	switch k {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindUnauthenticated:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func abort(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"ok": false, "error": ErrorBody{Code: code, Message: msg}})
}
