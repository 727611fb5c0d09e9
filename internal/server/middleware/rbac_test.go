package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ashishshah/live-attendance/internal/authctx"
	"github.com/ashishshah/live-attendance/internal/user"
)

// roleEngine mounts a role-gated route, optionally injecting a principal as
// Authenticate would.
func roleEngine(gate gin.HandlerFunc, principal *authctx.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	inject := func(c *gin.Context) {
		if principal != nil {
			c.Request = c.Request.WithContext(authctx.Set(c.Request.Context(), *principal))
		}
		c.Next()
	}
	engine.GET("/gated", inject, gate, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func doGated(engine *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	engine.ServeHTTP(w, req)
	return w
}

func TestRequireRoleMatch(t *testing.T) {
	p := &authctx.Principal{UserID: "t-1", Role: user.RoleTeacher}
	w := doGated(roleEngine(RequireTeacher(), p))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestRequireRoleMismatch(t *testing.T) {
	tests := []struct {
		name string
		gate gin.HandlerFunc
		role user.Role
		want string
	}{
		{"student hits teacher route", RequireTeacher(), user.RoleStudent, "Forbidden, teacher access required"},
		{"teacher hits student route", RequireStudent(), user.RoleTeacher, "Forbidden, student access required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &authctx.Principal{UserID: "u-1", Role: tt.role}
			w := doGated(roleEngine(tt.gate, p))

			if w.Code != http.StatusForbidden {
				t.Fatalf("status = %d, want 403", w.Code)
			}
			var resp struct {
				Error struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if resp.Error.Code != "FORBIDDEN" {
				t.Errorf("code = %q, want FORBIDDEN", resp.Error.Code)
			}
			if resp.Error.Message != tt.want {
				t.Errorf("message = %q, want %q", resp.Error.Message, tt.want)
			}
		})
	}
}

func TestRequireRoleNoPrincipal(t *testing.T) {
	// A role gate reached without authentication answers 401, not 403.
	w := doGated(roleEngine(RequireTeacher(), nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
