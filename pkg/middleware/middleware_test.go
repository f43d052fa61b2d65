package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"familybudget/internal/models/db_models"
	"familybudget/internal/repositories"
	mem "familybudget/pkg/memcache"
	"familybudget/pkg/utils"
)

func TestTraceIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("trace_id")) })

	tests := []struct {
		name     string
		incoming string
		reuse    bool
	}{
		{"reuses a valid uuid", "6ba7b810-9dad-11d1-80b4-00c04fd430c8", true},
		{"replaces junk", "<script>", false},
		{"mints when absent", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(TraceIDHeader, tt.incoming)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get(TraceIDHeader)
			if got == "" || got != w.Body.String() {
				t.Fatalf("header %q, context %q", got, w.Body.String())
			}
			if (got == tt.incoming) != tt.reuse {
				t.Errorf("trace id = %q, incoming %q", got, tt.incoming)
			}
		})
	}
}

func TestJWTAuthAndParentOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := repositories.NewStore()
	users := repositories.NewUserRepository(store)
	parent := users.CreateUser(db_models.User{Username: "mama", Role: db_models.RoleParent, FamilyID: 1})
	child := users.CreateUser(db_models.User{Username: "kid", Role: db_models.RoleUser, FamilyID: 1})

	issuer := utils.NewTokenIssuer("mw-secret", "family-budget", time.Hour)
	revoked := mem.NewRevokedTokens()

	r := gin.New()
	r.Use(JWTAuthMiddleware(issuer, revoked, users))
	r.GET("/me", func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.String(http.StatusOK, user.Username)
	})
	r.GET("/parents", ParentOnly(), func(c *gin.Context) { c.Status(http.StatusOK) })

	token := func(id int64, role db_models.UserRole) string {
		s, _, err := issuer.CreateToken(id, string(role))
		if err != nil {
			t.Fatalf("CreateToken: %v", err)
		}
		return s
	}
	parentToken := token(parent.ID, parent.Role)
	childToken := token(child.ID, child.Role)
	ghostToken := token(99, db_models.RoleParent)

	revokedToken, claims, _ := issuer.CreateToken(parent.ID, string(parent.Role))
	revoked.Revoke(claims.ID, claims.ExpiresAt.Time)

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"parent reads self", "/me", "Bearer " + parentToken, http.StatusOK},
		{"no header", "/me", "", http.StatusUnauthorized},
		{"wrong scheme", "/me", "Basic " + parentToken, http.StatusUnauthorized},
		{"revoked", "/me", "Bearer " + revokedToken, http.StatusUnauthorized},
		{"deleted account", "/me", "Bearer " + ghostToken, http.StatusUnauthorized},
		{"parent route as parent", "/parents", "Bearer " + parentToken, http.StatusOK},
		{"parent route as child", "/parents", "Bearer " + childToken, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("status = %d, want %d (%s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}
