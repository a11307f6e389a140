package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestGetClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{"forwarded chain uses first hop", "10.0.0.1:4567", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2"}, "203.0.113.7"},
		{"real ip when no forwarded header", "10.0.0.1:4567", map[string]string{"X-Real-IP": "198.51.100.4"}, "198.51.100.4"},
		{"socket address stripped of port", "192.0.2.9:31337", nil, "192.0.2.9"},
		{"socket address without port", "192.0.2.9", nil, "192.0.2.9"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/", nil)
			c.Request.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				c.Request.Header.Set(k, v)
			}

			if got := getClientIP(c); got != tc.want {
				t.Fatalf("getClientIP() = %q, want %q", got, tc.want)
			}
		})
	}
}
