package resp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"littlelemon/pkg/apperr"

	"github.com/gin-gonic/gin"
)

func TestErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	notFound := apperr.NotFound("ORDER_NOT_FOUND", "order not found")

	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"classified", notFound, http.StatusNotFound, "ORDER_NOT_FOUND", "order not found"},
		{"wrapped sentinel", fmt.Errorf("load: %w", notFound), http.StatusNotFound, "ORDER_NOT_FOUND", "order not found"},
		{"conflict", apperr.Conflict("CART_ITEM_EXISTS", "item already in cart"), http.StatusConflict, "CART_ITEM_EXISTS", "item already in cart"},
		{"validation", apperr.Validation("EMPTY_CART", "cart is empty"), http.StatusBadRequest, "EMPTY_CART", "cart is empty"},
		{"forbidden", apperr.ErrForbidden, http.StatusForbidden, "FORBIDDEN", apperr.ErrForbidden.Message},
		{"unclassified hides detail", errors.New("pq: connection refused"), http.StatusInternalServerError, "INTERNAL", "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			Error(c, tt.err)

			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}
			var body struct {
				OK    bool      `json:"ok"`
				Error ErrorBody `json:"error"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.OK || body.Error.Code != tt.code || body.Error.Message != tt.message {
				t.Fatalf("body = %+v", body)
			}
			if !c.IsAborted() {
				t.Fatal("context should be aborted")
			}
		})
	}
}

func TestOKEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Created(c, gin.H{"id": 1})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Body.String(); got != `{"data":{"id":1},"ok":true}` {
		t.Fatalf("body = %s", got)
	}
}
