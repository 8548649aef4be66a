package handler

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"

	"github.com/gorilla/mux"

	"ponyexpress/backend/internal/model"
	"ponyexpress/backend/internal/pkg/httputils"
	"ponyexpress/backend/internal/schema"
	"ponyexpress/backend/internal/service"
)

type UserHandler struct {
	userService service.UserService
	middleware  *Middleware
}

func NewUserHandler(userService service.UserService, middleware *Middleware) *UserHandler {
	return &UserHandler{userService: userService, middleware: middleware}
}

func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/users", h.listUsers).Methods("GET", "OPTIONS")
	router.HandleFunc("/users/me", h.middleware.RequireUser(h.getMe)).Methods("GET", "OPTIONS")
	router.HandleFunc("/users/me", h.middleware.RequireUser(h.updateMe)).Methods("PUT", "OPTIONS")
	router.HandleFunc("/users/{id:[0-9]+}", h.getUser).Methods("GET", "OPTIONS")
	router.HandleFunc("/users/{id:[0-9]+}", h.middleware.RequireUser(h.updateUser)).Methods("PUT", "OPTIONS")
	router.HandleFunc("/users/{id:[0-9]+}/chats", h.getUserChats).Methods("GET", "OPTIONS")
}

// UpdateUserRequest is a partial update; omitted fields are left unchanged.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

// @Summary List users
// @Description Get all users sorted by id
// @ID list-users
// @Produce json
// @Success 200 {object} schema.UserCollection
// @Router /users [get]
func (h *UserHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	httputils.ResponseJSON(w, http.StatusOK, schema.UserCollection{
		Meta:  schema.Metadata{Count: len(users)},
		Users: schema.NewUsers(users),
	})
}

// @Summary Get user
// @Description Get a user by id
// @ID get-user
// @Produce json
// @Success 200 {object} schema.UserResponse
// @Failure 404 {object} httputils.DetailResponse
// @Param id path int true "User ID"
// @Router /users/{id} [get]
func (h *UserHandler) getUser(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)

	user, err := h.userService.GetUserByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, schema.UserResponse{User: schema.NewUser(*user)})
}

// @Summary Get current user
// @Description Get the authenticated caller
// @ID get-me
// @Produce json
// @Success 200 {object} schema.UserResponse
// @Failure 401 {object} httputils.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) getMe(w http.ResponseWriter, r *http.Request) {
	callerID, ok := UserID(r.Context())
	if !ok {
		httputils.ResponseError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	user, err := h.userService.GetUserByID(r.Context(), callerID)
	if err != nil {
		respondError(w, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, schema.UserResponse{User: schema.NewUser(*user)})
}

// @Summary Update current user
// @Description Partially update the caller's username or email
// @ID update-me
// @Accept json
// @Produce json
// @Success 200 {object} schema.UserResponse
// @Failure 401 {object} httputils.ErrorResponse
// @Failure 409 {object} httputils.DetailResponse
// @Param update body UpdateUserRequest true "Fields to change"
// @Router /users/me [put]
func (h *UserHandler) updateMe(w http.ResponseWriter, r *http.Request) {
	callerID, ok := UserID(r.Context())
	if !ok {
		httputils.ResponseError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	h.applyUpdate(w, r, callerID)
}

// @Summary Update user
// @Description Partially update a user; the id must be the authenticated caller
// @ID update-user
// @Accept json
// @Produce json
// @Success 200 {object} schema.UserResponse
// @Failure 403 {object} httputils.ErrorResponse
// @Failure 404 {object} httputils.DetailResponse
// @Failure 409 {object} httputils.DetailResponse
// @Param id path int true "User ID"
// @Param update body UpdateUserRequest true "Fields to change"
// @Router /users/{id} [put]
func (h *UserHandler) updateUser(w http.ResponseWriter, r *http.Request) {
	callerID, ok := UserID(r.Context())
	if !ok {
		httputils.ResponseError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	id := pathID(r)
	if id != callerID {
		httputils.ResponseError(w, http.StatusForbidden, "cannot update another user")
		return
	}

	h.applyUpdate(w, r, id)
}

func (h *UserHandler) applyUpdate(w http.ResponseWriter, r *http.Request, id uint) {
	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "invalid request format")
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), id, model.UserUpdate{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, schema.UserResponse{User: schema.NewUser(*user)})
}

// @Summary Get user chats
// @Description Get the chats a user is a member of, sorted by name
// @ID get-user-chats
// @Produce json
// @Success 200 {object} schema.ChatCollection
// @Failure 404 {object} httputils.DetailResponse
// @Param id path int true "User ID"
// @Router /users/{id}/chats [get]
func (h *UserHandler) getUserChats(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)

	chats, err := h.userService.GetUserChats(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	sort.Slice(chats, func(i, j int) bool { return chats[i].Name < chats[j].Name })

	httputils.ResponseJSON(w, http.StatusOK, schema.ChatCollection{
		Meta:  schema.Metadata{Count: len(chats)},
		Chats: schema.NewChats(chats),
	})
}

// pathID reads the numeric {id} path variable. Routes constrain it to digits,
// and ids fit in 32 bits on every platform, so a value that does not parse
// cannot name an existing row and resolves to a not-found.
func pathID(r *http.Request) uint {
	id, _ := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	return uint(id)
}
