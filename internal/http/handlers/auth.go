package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/crimetrack/crimetrack-be/internal/auth"
	"github.com/crimetrack/crimetrack-be/internal/http/respond"
	"github.com/crimetrack/crimetrack-be/internal/models"
	"github.com/crimetrack/crimetrack-be/internal/models/dto"
	"github.com/crimetrack/crimetrack-be/internal/storage"
)

const (
	minUsernameLength = 4
	minPasswordLength = 6
)

// AuthHandler owns the register and login endpoints.
type AuthHandler struct {
	store  storage.UserStore
	tokens *auth.TokenManager
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(store storage.UserStore, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens}
}

// Register attaches auth routes to the mux.
func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/auth/register", h.handleRegister)
	mux.HandleFunc("POST /api/auth/login", h.handleLogin)
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := validateRegistration(req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user := models.User{
		Username:     strings.TrimSpace(req.Username),
		FullName:     strings.TrimSpace(req.FullName),
		Role:         models.RoleOfficer,
		PasswordHash: passwordHash,
	}
	created, err := h.store.CreateUser(r.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyExists):
			respond.Error(w, http.StatusBadRequest, "Username already exists")
		default:
			log.Printf("create user error: %v", err)
			respond.Error(w, http.StatusInternalServerError, "failed to create user")
		}
		return
	}

	h.respondWithToken(w, http.StatusCreated, created)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	// Unknown username and wrong password produce identical responses so
	// the failure mode does not leak which one it was.
	user, err := h.store.FindByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Printf("login lookup error for %q: %v", username, err)
		respond.Error(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		respond.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	h.respondWithToken(w, http.StatusOK, user)
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, status int, user models.User) {
	token, err := h.tokens.Generate(user)
	if err != nil {
		log.Printf("generate token error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	respond.Data(w, status, dto.AuthData{
		Token: token,
		User: dto.UserInfo{
			ID:       user.ID,
			Username: user.Username,
			FullName: user.FullName,
			Role:     user.Role,
		},
	})
}

func validateRegistration(req dto.RegisterRequest) error {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" || strings.TrimSpace(req.FullName) == "" {
		return errors.New("Username, password, and full name are required")
	}
	if utf8.RuneCountInString(username) < minUsernameLength {
		return errors.New("Username must be at least 4 characters")
	}
	if utf8.RuneCountInString(req.Password) < minPasswordLength {
		return errors.New("Password must be at least 6 characters")
	}
	return nil
}
