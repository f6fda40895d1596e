package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/prakashgyan/mafiamanagerirl/internal/model"
	"github.com/prakashgyan/mafiamanagerirl/internal/service"
	"github.com/prakashgyan/mafiamanagerirl/internal/transport/rest/middleware"
)

// FriendHandler handles roster endpoints
type FriendHandler struct {
	friendSvc *service.FriendService
}

// NewFriendHandler creates a new friend handler
func NewFriendHandler(friendSvc *service.FriendService) *FriendHandler {
	return &FriendHandler{friendSvc: friendSvc}
}

// List handles GET /v1/friends
func (h *FriendHandler) List(w http.ResponseWriter, r *http.Request) {
	friends, err := h.friendSvc.List(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if friends == nil {
		friends = []*model.Friend{}
	}

	writeJSON(w, http.StatusOK, friends)
}

// CreateFriendRequest is the request body for adding a roster entry
type CreateFriendRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// Create handles POST /v1/friends
func (h *FriendHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateFriendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	friend, err := h.friendSvc.Create(r.Context(), middleware.GetUserID(r.Context()), req.Name, req.Description, req.Image)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, friend)
}

// Delete handles DELETE /v1/friends/{id}
func (h *FriendHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.friendSvc.Delete(r.Context(), mux.Vars(r)["id"], middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "friend not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
