package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"familybudget/internal/models/db_models"
	"familybudget/internal/repositories"
	mem "familybudget/pkg/memcache"
	"familybudget/pkg/utils"
)

const (
	CurrentUserKey = "current_user"
	ClaimsKey      = "claims"
)

// JWTAuthMiddleware validates the bearer token and loads the caller from the store,
// so role changes apply to tokens issued before them.
func JWTAuthMiddleware(issuer *utils.TokenIssuer, revoked mem.RevokedTokenStore, users repositories.UserRepository) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := issuer.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		if revoked.IsRevoked(claims.ID) {
			utils.RespondError(c, http.StatusUnauthorized, "Token is logged out")
			c.Abort()
			return
		}

		user := users.FindByID(claims.UserID)
		if user == nil {
			utils.RespondError(c, http.StatusUnauthorized, "Account no longer exists")
			c.Abort()
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(CurrentUserKey, *user)
		c.Next()
	}
}

// ParentOnly must run after JWTAuthMiddleware.
func ParentOnly() gin.HandlerFunc {

	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		if user.Role != db_models.RoleParent {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: parent role required")
			c.Abort()
			return
		}

		c.Next()
	}
}

func CurrentUser(c *gin.Context) (db_models.User, bool) {
	v, ok := c.Get(CurrentUserKey)
	if !ok {
		return db_models.User{}, false
	}
	user, ok := v.(db_models.User)
	return user, ok
}

func CurrentClaims(c *gin.Context) (*utils.Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.Claims)
	return claims, ok
}
