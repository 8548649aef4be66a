package handler

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	"github.com/gorilla/mux"

	"ponyexpress/backend/internal/pkg/httputils"
	"ponyexpress/backend/internal/schema"
	"ponyexpress/backend/internal/service"
)

type ChatHandler struct {
	chatService service.ChatService
	userService service.UserService
	middleware  *Middleware
}

func NewChatHandler(chatService service.ChatService, userService service.UserService, middleware *Middleware) *ChatHandler {
	return &ChatHandler{chatService: chatService, userService: userService, middleware: middleware}
}

func (h *ChatHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/chats", h.listChats).Methods("GET", "OPTIONS")
	router.HandleFunc("/chats/{id:[0-9]+}", h.getChat).Methods("GET", "OPTIONS")
	router.HandleFunc("/chats/{id:[0-9]+}", h.updateChat).Methods("PUT", "OPTIONS")
	router.HandleFunc("/chats/{id:[0-9]+}", h.deleteChat).Methods("DELETE", "OPTIONS")
	router.HandleFunc("/chats/{id:[0-9]+}/messages", h.getChatMessages).Methods("GET", "OPTIONS")
	router.HandleFunc("/chats/{id:[0-9]+}/messages", h.middleware.RequireUser(h.createMessage)).Methods("POST", "OPTIONS")
	router.HandleFunc("/chats/{id:[0-9]+}/users", h.getChatMembers).Methods("GET", "OPTIONS")
}

type UpdateChatRequest struct {
	Name string `json:"name"`
}

type CreateMessageRequest struct {
	Text string `json:"text"`
}

// @Summary List chats
// @Description Get all chats sorted by name
// @ID list-chats
// @Produce json
// @Success 200 {object} schema.ChatCollection
// @Router /chats [get]
func (h *ChatHandler) listChats(w http.ResponseWriter, r *http.Request) {
	chats, err := h.chatService.ListChats(r.Context())
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

// @Summary Get chat
// @Description Get a chat with metadata counts and optional include expansion
// @ID get-chat
// @Produce json
// @Success 200 {object} schema.ChatDetailResponse
// @Failure 404 {object} httputils.DetailResponse
// @Param id path int true "Chat ID"
// @Param include query string false "Expansions: messages, users (comma separated or repeated)"
// @Router /chats/{id} [get]
func (h *ChatHandler) getChat(w http.ResponseWriter, r *http.Request) {
	chat, err := h.chatService.GetChatByID(r.Context(), pathID(r))
	if err != nil {
		respondError(w, err)
		return
	}

	resp := schema.ChatDetailResponse{
		Meta: schema.ChatMetadata{
			MessageCount: len(chat.Messages),
			UserCount:    len(chat.Users),
		},
		Chat: schema.NewChat(*chat),
	}

	include := includeSet(r)
	if include["messages"] {
		messages := schema.NewMessages(chat.Messages)
		resp.Messages = &messages
	}
	if include["users"] {
		users := schema.NewUsers(chat.Users)
		resp.Users = &users
	}

	httputils.ResponseJSON(w, http.StatusOK, resp)
}

// @Summary Update chat
// @Description Rename a chat
// @ID update-chat
// @Accept json
// @Produce json
// @Success 200 {object} schema.ChatResponse
// @Failure 404 {object} httputils.DetailResponse
// @Param id path int true "Chat ID"
// @Param update body UpdateChatRequest true "New name"
// @Router /chats/{id} [put]
func (h *ChatHandler) updateChat(w http.ResponseWriter, r *http.Request) {
	var req UpdateChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "invalid request format")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		httputils.ResponseError(w, http.StatusBadRequest, "name is required")
		return
	}

	chat, err := h.chatService.UpdateChat(r.Context(), pathID(r), req.Name)
	if err != nil {
		respondError(w, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, schema.ChatResponse{Chat: schema.NewChat(*chat)})
}

// @Summary Delete chat
// @Description Delete a chat by id
// @ID delete-chat
// @Success 204
// @Failure 404 {object} httputils.DetailResponse
// @Param id path int true "Chat ID"
// @Router /chats/{id} [delete]
func (h *ChatHandler) deleteChat(w http.ResponseWriter, r *http.Request) {
	if err := h.chatService.DeleteChat(r.Context(), pathID(r)); err != nil {
		respondError(w, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusNoContent, nil)
}

// @Summary Get chat messages
// @Description Get a chat's messages sorted by creation time
// @ID get-chat-messages
// @Produce json
// @Success 200 {object} schema.MessageCollection
// @Failure 404 {object} httputils.DetailResponse
// @Param id path int true "Chat ID"
// @Router /chats/{id}/messages [get]
func (h *ChatHandler) getChatMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.chatService.GetChatMessages(r.Context(), pathID(r))
	if err != nil {
		respondError(w, err)
		return
	}

	sort.Slice(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})

	httputils.ResponseJSON(w, http.StatusOK, schema.MessageCollection{
		Meta:     schema.Metadata{Count: len(messages)},
		Messages: schema.NewMessages(messages),
	})
}

// @Summary Get chat members
// @Description Get a chat's member users sorted by id
// @ID get-chat-members
// @Produce json
// @Success 200 {object} schema.UserCollection
// @Failure 404 {object} httputils.DetailResponse
// @Param id path int true "Chat ID"
// @Router /chats/{id}/users [get]
func (h *ChatHandler) getChatMembers(w http.ResponseWriter, r *http.Request) {
	users, err := h.chatService.GetChatMembers(r.Context(), pathID(r))
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

// @Summary Post message
// @Description Create a message in a chat authored by the authenticated caller
// @ID create-message
// @Accept json
// @Produce json
// @Success 201 {object} schema.MessageResponse
// @Failure 401 {object} httputils.ErrorResponse
// @Failure 404 {object} httputils.DetailResponse
// @Param id path int true "Chat ID"
// @Param message body CreateMessageRequest true "Message text"
// @Router /chats/{id}/messages [post]
func (h *ChatHandler) createMessage(w http.ResponseWriter, r *http.Request) {
	callerID, ok := UserID(r.Context())
	if !ok {
		httputils.ResponseError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputils.ResponseError(w, http.StatusBadRequest, "invalid request format")
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		httputils.ResponseError(w, http.StatusBadRequest, "text is required")
		return
	}

	author, err := h.userService.GetUserByID(r.Context(), callerID)
	if err != nil {
		respondError(w, err)
		return
	}

	message, err := h.chatService.CreateMessage(r.Context(), pathID(r), author, req.Text)
	if err != nil {
		respondError(w, err)
		return
	}

	httputils.ResponseJSON(w, http.StatusCreated, schema.MessageResponse{Message: schema.NewMessage(*message)})
}

// includeSet parses the include query parameter; both repeated parameters and
// comma-separated lists are accepted.
func includeSet(r *http.Request) map[string]bool {
	set := make(map[string]bool)
	for _, raw := range r.URL.Query()["include"] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				set[part] = true
			}
		}
	}
	return set
}
