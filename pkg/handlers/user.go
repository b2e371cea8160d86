package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"time"

	jwt "github.com/dgrijalva/jwt-go"

	"noteshop/pkg/claims"
	"noteshop/pkg/user"
)

const tokenTTL = 24 * time.Hour

type LoginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserHandler struct {
	Service user.ServiceInterface
	Logger  *slog.Logger
}

type FieldError struct {
	Location string `json:"location"`
	Param    string `json:"param"`
	Value    string `json:"value"`
	Msg      string `json:"msg"`
}

func NewUserHandler(service user.ServiceInterface, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		Service: service,
		Logger:  logger,
	}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req user.RegisterForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	newUser, err := h.Service.Register(req)
	if err != nil {
		switch err.Error() {
		case "user already exists":
			writeFieldError(w, h.Logger, "username", req.Username, "already exists")
		case "email already taken":
			writeFieldError(w, h.Logger, "email", req.Email, "already taken")
		case "missing required fields":
			writeError(w, http.StatusBadRequest, typeError, err.Error())
		default:
			h.Logger.Error("register", "error", err.Error())
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	GenerateToken(newUser, w, h.Logger, "register")
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	u, err := h.Service.Login(req.Username, req.Password)
	if err != nil {
		var msg string
		if err.Error() == "user not found" {
			msg = "user not found"
		} else {
			msg = "invalid password"
		}
		if ok := WriteResp(w, h.Logger, map[string]any{"message": msg}, http.StatusUnauthorized); ok {
			h.Logger.Error("login", "error", "unauthorized", "user", req.Username)
		}
		return
	}

	GenerateToken(u, w, h.Logger, "login")
}

func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var c claims.Claims
	if ok := getClaimsFromContext(w, r, &c); !ok {
		return
	}

	if err := h.Service.Logout(c.User.ID); err != nil {
		h.Logger.Error("logout", "error", err.Error())
		writeError(w, http.StatusInternalServerError, typeError, "failed to log out")
		return
	}

	if ok := WriteResp(w, h.Logger, map[string]any{"message": "success"}, http.StatusOK); ok {
		h.Logger.Info("logout", "user", c.User.ID)
	}
}

func DecodeJSONBody(w http.ResponseWriter, r *http.Request, req any) bool {
	if r.Header.Get("Content-Type") != "application/json" {
		writeError(w, http.StatusBadRequest, typeError, "invalid Content-Type")
		return false
	}

	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeError(w, http.StatusBadRequest, typeError, "bad json")
		return false
	}

	return true
}

func GenerateToken(u *user.User, w http.ResponseWriter, logger *slog.Logger, action string) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user": map[string]string{
			"id":    u.ID,
			"name":  u.Name,
			"email": u.Email,
			"role":  u.Role,
		},
		"iat": time.Now().UTC().Unix(),
		"exp": time.Now().Add(tokenTTL).UTC().Unix(),
	})
	tokenString, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		logger.Error("token signing", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if ok := WriteResp(w, logger, map[string]any{"token": tokenString}, http.StatusOK); ok {
		logger.Info(action, "user", u.ID)
	}
}

func WriteResp(w http.ResponseWriter, logger *slog.Logger, body map[string]any, status int) bool {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to write JSON response", slog.Any("err", err))
		return false
	}
	return true
}

func writeFieldError(w http.ResponseWriter, logger *slog.Logger, param, value, msg string) {
	WriteResp(w, logger, map[string]any{
		"errors": []FieldError{
			{
				Location: "body",
				Param:    param,
				Value:    value,
				Msg:      msg,
			},
		},
	}, http.StatusUnprocessableEntity)
}
