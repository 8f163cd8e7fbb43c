package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/api/handlers"
)

// RoleAdmin роль, которой открыты админские маршруты
const RoleAdmin = "admin"

const (
	msgMissingToken = "authorization token is required"
	msgInvalidToken = "invalid or expired token"
	msgForbidden    = "admin access required"
)

// Claims полезная нагрузка access токена
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type claimsKey struct{}

// GetClaims возвращает claims, положенные AdminAuth
func GetClaims(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*Claims)
	return claims, ok
}

// AdminAuth пропускает только запросы с валидным HS256 токеном и ролью admin
func AdminAuth(secret, issuer string, log Logger) func(http.Handler) http.Handler {
	key := []byte(secret)
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r)
			if !ok {
				log.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			claims := &Claims{}
			_, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
				return key, nil
			})
			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					log.Info("%s %s - Token expired for sub=%s", r.Method, r.URL.Path, claims.Subject)
				} else {
					log.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
				}
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			if claims.Role != RoleAdmin {
				log.Warn("%s %s - Forbidden for sub=%s role=%s", r.Method, r.URL.Path, claims.Subject, claims.Role)
				handlers.RespondForbidden(w, msgForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}
