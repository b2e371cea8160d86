package middleware

import (
	"context"
	"net/http"
	"os"
	"strings"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/gorilla/mux"

	"noteshop/pkg/claims"
	"noteshop/pkg/session"
)

const objectIDPattern string = "[a-fA-F0-9]{24}"

// Routes that an anonymous visitor may hit. View reporting stays public:
// deduplication is the caller's job, not an auth concern.
var (
	noSessUrls = map[string]string{
		"/api/register": http.MethodPost,
		"/api/login":    http.MethodPost,
		"/api/songs/":   http.MethodGet,
		"/api/song/{song_id:" + objectIDPattern + "}":      http.MethodGet,
		"/api/song/{song_id:" + objectIDPattern + "}/view": http.MethodPost,
	}
)

func CheckJWT(sessionStore session.Repository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := mux.CurrentRoute(r)
			template, err := route.GetPathTemplate()

			if err != nil {
				http.Error(w, "Route not found", http.StatusNotFound)
				return
			}

			if method, ok := noSessUrls[template]; ok && method == r.Method {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
				return
			}

			token := strings.TrimPrefix(auth, "Bearer ")

			hashSecretGetter := func(token *jwt.Token) (interface{}, error) {
				method, ok := token.Method.(*jwt.SigningMethodHMAC)
				if !ok || method.Alg() != "HS256" {
					http.Error(w, "bad sign method", http.StatusUnauthorized)
					return nil, nil
				}
				return []byte(os.Getenv("JWT_SECRET")), nil
			}

			parsedClaims := &claims.Claims{}

			parsedToken, err := jwt.ParseWithClaims(token, parsedClaims, hashSecretGetter)
			if err != nil || !parsedToken.Valid || parsedClaims.User.ID == "" || parsedClaims.User.Email == "" {
				http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
				return
			}

			ok, err := sessionStore.IsValid(parsedClaims.User.ID)
			if err != nil || !ok {
				http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), claims.TokenContextKey, parsedClaims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates back-office routes. Must run after CheckJWT.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, ok := r.Context().Value(claims.TokenContextKey).(*claims.Claims)
		if !ok || c == nil || !c.IsAdmin() {
			http.Error(w, `{"message":"forbidden"}`, http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
