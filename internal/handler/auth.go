package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"ponyexpress/backend/internal/model"
	"ponyexpress/backend/internal/pkg/auth"
	"ponyexpress/backend/internal/pkg/httputils"
	"ponyexpress/backend/internal/schema"
	"ponyexpress/backend/internal/service"
)

// AuthHandler supplies the authentication collaborator: account registration
// and bearer token issuance.
type AuthHandler struct {
	userService service.UserService
	tokens      *auth.TokenManager
}

func NewAuthHandler(userService service.UserService, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{userService: userService, tokens: tokens}
}

func (h *AuthHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/auth/registration", h.register).Methods("POST", "OPTIONS")
	router.HandleFunc("/auth/token", h.token).Methods("POST", "OPTIONS")
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// @Summary Register
// @Description Create an account
// @ID register
// @Accept json
// @Produce json
// @Success 201 {object} schema.UserResponse
// @Failure 400 {object} httputils.ErrorResponse
// @Failure 409 {object} httputils.DetailResponse
// @Param registration body RegisterRequest true "Registration data"
// @Router /auth/registration [post]
func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "invalid request format")
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		httputils.ResponseError(w, http.StatusBadRequest, "username, email and password are required")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		httputils.ResponseError(w, http.StatusInternalServerError, "failed to generate password hash")
		return
	}

	user := &model.User{
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hash,
	}
	if err := h.userService.CreateUser(r.Context(), user); err != nil {
		respondError(w, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusCreated, schema.UserResponse{User: schema.NewUser(*user)})
}

// @Summary Get token
// @Description Exchange credentials for a bearer token
// @ID get-token
// @Accept json
// @Produce json
// @Success 200 {object} TokenResponse
// @Failure 401 {object} httputils.ErrorResponse
// @Param credentials body TokenRequest true "Credentials"
// @Router /auth/token [post]
func (h *AuthHandler) token(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "invalid request format")
		return
	}

	if req.Username == "" || req.Password == "" {
		httputils.ResponseError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := h.userService.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		httputils.ResponseError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}

	if !auth.CheckPasswordHash(req.Password, user.HashedPassword) {
		httputils.ResponseError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}

	token, err := h.tokens.GenerateToken(user.ID)
	if err != nil {
		httputils.ResponseError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, TokenResponse{Token: token})
}
