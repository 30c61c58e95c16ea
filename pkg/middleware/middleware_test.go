package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"skillswap/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(issuer *utils.TokenIssuer) *gin.Engine {
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/me", JWTAuthMiddleware(issuer), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.GetString(UserIDKey), "role": c.GetString(RoleKey)})
	})
	r.GET("/admin", JWTAuthMiddleware(issuer), RoleMiddleware("admin"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func do(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware(t *testing.T) {
	issuer := utils.NewTokenIssuer("secret", time.Hour)
	r := protectedRouter(issuer)

	if w := do(r, "/me", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: expected 401, got %d", w.Code)
	}
	if w := do(r, "/me", "garbage"); w.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: expected 401, got %d", w.Code)
	}

	token, _ := issuer.CreateToken(utils.TokenSubject{UserID: "u-1", Role: "user"})
	w := do(r, "/me", token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["id"] != "u-1" || body["role"] != "user" {
		t.Fatalf("unexpected context values %v", body)
	}
	if w.Header().Get(TraceHeader) == "" {
		t.Fatal("expected a trace id header")
	}
}

func TestCurrentClaims(t *testing.T) {
	issuer := utils.NewTokenIssuer("secret", time.Hour)
	r := gin.New()
	r.GET("/claims", JWTAuthMiddleware(issuer), func(c *gin.Context) {
		claims, ok := CurrentClaims(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": claims.UserID, "email": claims.Email})
	})
	r.GET("/open", func(c *gin.Context) {
		if _, ok := CurrentClaims(c); ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusNoContent)
	})

	token, _ := issuer.CreateToken(utils.TokenSubject{UserID: "u-1", Email: "ann@x.com", Role: "user"})
	w := do(r, "/claims", token)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"email":"ann@x.com"`) {
		t.Fatalf("expected claims on the context, got %d %s", w.Code, w.Body.String())
	}
	if w := do(r, "/open", ""); w.Code != http.StatusNoContent {
		t.Fatalf("unauthenticated route should carry no claims, got %d", w.Code)
	}
}

func TestRoleMiddlewareDisclosesRole(t *testing.T) {
	issuer := utils.NewTokenIssuer("secret", time.Hour)
	r := protectedRouter(issuer)

	userToken, _ := issuer.CreateToken(utils.TokenSubject{UserID: "u-1", Role: "user"})
	w := do(r, "/admin", userToken)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	var resp struct {
		Message string            `json:"message"`
		Data    map[string]string `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "You are not supposed to be there user" || resp.Data["role"] != "user" {
		t.Fatalf("unexpected body %s", w.Body.String())
	}

	adminToken, _ := issuer.CreateToken(utils.TokenSubject{UserID: "a-1", Role: "admin"})
	if w := do(r, "/admin", adminToken); w.Code != http.StatusNoContent {
		t.Fatalf("admin: expected 204, got %d", w.Code)
	}
}

func TestTraceIDReusesIncomingHeader(t *testing.T) {
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(utils.TraceIDKey)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Body.String() != "abc-123" || w.Header().Get(TraceHeader) != "abc-123" {
		t.Fatalf("trace id not propagated: %q", w.Body.String())
	}
}

func TestRateLimiter(t *testing.T) {
	r := gin.New()
	r.Use(RateLimiter(1, 2))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, do(r, "/", "").Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("unexpected status sequence %v", codes)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := gin.New()
	r.Use(PrometheusMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", MetricsHandler())

	do(r, "/ping", "")
	w := do(r, "/metrics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "skillswap_http_requests_total") {
		t.Fatal("request counter missing from exposition")
	}
}
