package httputil_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/thucthuc0607-code/SmartFin-2/internal/httputil"
)

func TestOptions(t *testing.T) {
	tests := []struct {
		name    string
		handler gin.HandlerFunc
		allow   string
	}{
		{"Get", httputil.OptionsGet, "OPTIONS, GET"},
		{"Post", httputil.OptionsPost, "OPTIONS, POST"},
		{"GetPost", httputil.OptionsGetPost, "OPTIONS, GET, POST"},
		{"GetPatch", httputil.OptionsGetPatch, "OPTIONS, GET, PATCH"},
		{"GetPatchDelete", httputil.OptionsGetPatchDelete, "OPTIONS, GET, PATCH, DELETE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			_, r := gin.CreateTestContext(w)
			r.OPTIONS("/", tt.handler)

			req, _ := http.NewRequest(http.MethodOptions, "http://example.com/", nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, tt.allow, w.Header().Get("allow"))
		})
	}
}
