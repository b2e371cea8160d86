package claims

import jwt "github.com/dgrijalva/jwt-go"

type contextKey string

const (
	TokenContextKey contextKey = "token"
)

const (
	RoleRegular    = "regular"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superAdmin"
)

type Claims struct {
	User struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
	jwt.StandardClaims
}

func (c *Claims) IsAdmin() bool {
	return c.User.Role == RoleAdmin || c.User.Role == RoleSuperAdmin
}
