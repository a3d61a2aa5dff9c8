package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/reversigame/internal/api/request"
	"github.com/mcoot/reversigame/internal/api/response"
	"github.com/mcoot/reversigame/internal/services/moderation"
)

// PlayerHandler handles registration, reports and administrative bans
type PlayerHandler struct {
	moderation *moderation.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(moderation *moderation.Service) *PlayerHandler {
	return &PlayerHandler{moderation: moderation}
}

// Register handles POST /api/v1/players/register
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := decode(w, r, &req); err != nil {
		WriteError(w, err)
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	rec, err := h.moderation.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.Registered{Username: rec.Username, IsAdmin: rec.IsAdmin})
}

// Report handles POST /api/v1/players/report
func (h *PlayerHandler) Report(w http.ResponseWriter, r *http.Request) {
	var req request.ReportRequest
	if err := decode(w, r, &req); err != nil {
		WriteError(w, err)
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}

	result, err := h.moderation.Report(r.Context(), req.Username, req.Reason)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ReportFromModel(result))
}

// Get handles GET /api/v1/players/{username}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	rec, err := h.moderation.GetPlayer(r.Context(), username)
	if err != nil {
		WriteError(w, err)
		return
	}
	banned, err := h.moderation.IsBanned(r.Context(), username)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(rec, banned))
}

// Ban handles POST /api/v1/admin/ban
func (h *PlayerHandler) Ban(w http.ResponseWriter, r *http.Request) {
	var req request.BanRequest
	if err := decode(w, r, &req); err != nil {
		WriteError(w, err)
		return
	}

	if req.Target == "" {
		WriteError(w, NewInvalidRequestError("target is required"))
		return
	}

	if err := h.moderation.Ban(r.Context(), req.AdminPassword, req.Target); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Banned{Target: req.Target, Banned: true})
}
