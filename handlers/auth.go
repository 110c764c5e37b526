package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/CODINGDONG1211/Lifestyleapp/middleware"
	"github.com/CODINGDONG1211/Lifestyleapp/models"
	"github.com/CODINGDONG1211/Lifestyleapp/repository"
	"github.com/CODINGDONG1211/Lifestyleapp/store"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	userRepo *repository.UserRepository
	sessions *store.Manager
	logger   *slog.Logger
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(userRepo *repository.UserRepository, sessions *store.Manager, logger *slog.Logger, secret []byte, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		userRepo: userRepo,
		sessions: sessions,
		logger:   logger,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Username == "" || req.Password == "" {
		http.Error(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	existing, err := h.userRepo.GetUserByUsername(req.Username)
	if err != nil {
		h.logger.Error("failed to check existing user", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if existing != nil {
		http.Error(w, "Username already exists", http.StatusConflict)
		return
	}

	user, err := h.userRepo.CreateUser(req.Username, req.Password)
	if err != nil {
		h.logger.Error("failed to create user", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("user registered", "username", user.Username)

	writeJSON(w, http.StatusCreated, map[string]string{
		"message":  "User created successfully",
		"username": user.Username,
	})
}

// Login handles POST /api/auth/login and returns a JWT token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Username == "" || req.Password == "" {
		http.Error(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.userRepo.GetUserByUsername(req.Username)
	if err != nil {
		h.logger.Error("failed to get user", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if user == nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	if !h.userRepo.ValidatePassword(user, req.Password) {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	expirationTime := time.Now().Add(h.tokenTTL)
	claims := &middleware.Claims{
		Username: user.Username,
		UserID:   user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(h.secret)
	if err != nil {
		h.logger.Error("failed to sign token", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("user logged in", "username", user.Username)

	writeJSON(w, http.StatusOK, models.LoginResponse{
		Token:    tokenString,
		Username: user.Username,
	})
}

// Logout handles POST /api/auth/logout: it tears down the caller's state
// session, flushing pending changes and stopping the live-update feed.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	h.sessions.End(strconv.Itoa(uid))
	w.WriteHeader(http.StatusNoContent)
}
