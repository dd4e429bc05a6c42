package middlewares

import (
	"context"
	"net/http"

	"talenthub/interview/internal/repositories"
	"talenthub/interview/internal/utils"
)

// Identity is the resolved caller: who they are and which role they hold.
// The role comes from the user record, not the token, so role changes take
// effect without waiting for tokens to expire.
type Identity struct {
	UserID uint
	Role   string
}

type contextKey struct{}

// IdentityFrom returns the identity the guard stored on the request context.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(contextKey{}).(Identity)
	return identity, ok
}

// WithIdentity stores an identity on the context the way the guard does.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, identity)
}

// Guard authenticates bearer tokens and checks the caller's role against a
// required role set before the operation logic runs. Unauthenticated
// callers get 401 and learn nothing about the target resource; callers
// lacking a required role get 403.
type Guard struct {
	Users     *repositories.UserRepository
	JWTSecret string
}

// RequireRoles returns middleware admitting only callers holding one of
// the given roles. With no roles listed, any authenticated user passes.
func (g *Guard) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := utils.VerifyToken(r, g.JWTSecret)
			if err != nil {
				utils.JSONError(w, http.StatusUnauthorized, "missing or invalid token")
				return
			}
			userID, err := utils.GetUserIDFromClaims(claims)
			if err != nil {
				utils.JSONError(w, http.StatusUnauthorized, "missing or invalid token")
				return
			}

			user, err := g.Users.GetUserByID(userID)
			if err != nil {
				// A token for a user that no longer exists is as good as no token.
				utils.JSONError(w, http.StatusUnauthorized, "missing or invalid token")
				return
			}

			if len(roles) > 0 && !contains(roles, user.Role) {
				utils.JSONError(w, http.StatusForbidden, "forbidden")
				return
			}

			identity := Identity{UserID: user.ID, Role: user.Role}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextKey{}, identity)))
		})
	}
}

func contains(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
