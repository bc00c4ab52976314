package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/furnishfusion/storefront/internal/domain/entity"
	"github.com/furnishfusion/storefront/internal/infrastructure/storage"
)

func TestSessionMiddlewareIssuesCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions := storage.NewSessionStore()

	r := gin.New()
	r.Use(SessionMiddleware(sessions))
	r.GET("/ping", func(c *gin.Context) {
		sess := sessionFrom(c)
		if sess == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": sess.Token})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var issued *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookie {
			issued = c
		}
	}
	if issued == nil {
		t.Fatal("no session cookie issued")
	}

	// A second request with the cookie reuses the session.
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.AddCookie(issued)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	for _, c := range w2.Result().Cookies() {
		if c.Name == sessionCookie && c.Value != issued.Value {
			t.Error("existing session replaced instead of reused")
		}
	}
}

func TestRequireUserAndAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions := storage.NewSessionStore()

	r := gin.New()
	r.Use(SessionMiddleware(sessions))
	r.GET("/user", RequireUser(), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/admin", RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/user", "/admin"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s anonymous status = %d, want 401", path, w.Code)
		}
	}

	// A logged-in user passes RequireUser but not RequireAdmin.
	sess := sessions.Create()
	sessions.Update(sess.Token, func(s *entity.Session) { s.UserID = 7 })

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.Header.Set("Authorization", "Bearer "+sess.Token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("user route status = %d, want 200", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+sess.Token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("admin route for user status = %d, want 401", w.Code)
	}
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(3, time.Minute)

	r := gin.New()
	r.GET("/limited", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, w.Code)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/limited", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	r.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("over-limit status = %d, want 429", w.Code)
	}

	// A different IP is unaffected.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/limited", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("other IP status = %d, want 200", w.Code)
	}
}
