package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func ipContext(remoteAddr string, headers map[string]string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = remoteAddr
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestGetClientIP(t *testing.T) {
	cases := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			"forwarded chain picks the original client",
			"10.0.0.1:443",
			map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2, 10.0.0.1"},
			"203.0.113.7",
		},
		{
			"real ip header",
			"10.0.0.1:443",
			map[string]string{"X-Real-IP": " 203.0.113.9 "},
			"203.0.113.9",
		},
		{
			"forwarded wins over real ip",
			"10.0.0.1:443",
			map[string]string{"X-Forwarded-For": "203.0.113.7", "X-Real-IP": "203.0.113.9"},
			"203.0.113.7",
		},
		{
			"socket peer without headers",
			"198.51.100.4:52100",
			nil,
			"198.51.100.4",
		},
		{
			"socket peer without port",
			"198.51.100.4",
			nil,
			"198.51.100.4",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := ipContext(tc.remoteAddr, tc.headers)
			assert.Equal(t, tc.want, getClientIP(c))
		})
	}
}
