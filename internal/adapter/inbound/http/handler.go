package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/azkarapp/azkar-backend/internal/port/inbound/command"
	"github.com/azkarapp/azkar-backend/internal/port/inbound/query"
)

// Handler serves the REST API.
type Handler struct {
	// Command handlers
	loginWithFacebookHandler       command.LoginWithFacebookHandler
	connectFacebookHandler         command.ConnectFacebookHandler
	createGroupHandler             command.CreateGroupHandler
	createPersonalChallengeHandler command.CreatePersonalChallengeHandler

	// Query handlers
	getUserHandler                query.GetUserHandler
	getUserByUsernameHandler      query.GetUserByUsernameHandler
	getUserByFacebookIDHandler    query.GetUserByFacebookIDHandler
	listPersonalChallengesHandler query.ListPersonalChallengesHandler
}

// HandlerConfig holds all the handlers needed by the HTTP handler.
type HandlerConfig struct {
	LoginWithFacebookHandler       command.LoginWithFacebookHandler
	ConnectFacebookHandler         command.ConnectFacebookHandler
	CreateGroupHandler             command.CreateGroupHandler
	CreatePersonalChallengeHandler command.CreatePersonalChallengeHandler
	GetUserHandler                 query.GetUserHandler
	GetUserByUsernameHandler       query.GetUserByUsernameHandler
	GetUserByFacebookIDHandler     query.GetUserByFacebookIDHandler
	ListPersonalChallengesHandler  query.ListPersonalChallengesHandler
}

// NewHandler creates a new HTTP handler.
func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		loginWithFacebookHandler:       cfg.LoginWithFacebookHandler,
		connectFacebookHandler:         cfg.ConnectFacebookHandler,
		createGroupHandler:             cfg.CreateGroupHandler,
		createPersonalChallengeHandler: cfg.CreatePersonalChallengeHandler,
		getUserHandler:                 cfg.GetUserHandler,
		getUserByUsernameHandler:       cfg.GetUserByUsernameHandler,
		getUserByFacebookIDHandler:     cfg.GetUserByFacebookIDHandler,
		listPersonalChallengesHandler:  cfg.ListPersonalChallengesHandler,
	}
}

// Authentication

type facebookAuthRequest struct {
	FacebookUserID string `json:"facebook_user_id"`
	AccessToken    string `json:"token"`
}

func (h *Handler) LoginWithFacebook(w http.ResponseWriter, r *http.Request) {
	var req facebookAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := command.LoginWithFacebook{
		FacebookUserID: req.FacebookUserID,
		AccessToken:    req.AccessToken,
		Session:        SessionFromContext(r.Context()),
	}

	result, err := h.loginWithFacebookHandler.Handle(r.Context(), cmd)
	if err != nil {
		writeAuthEndpointError(w, err)
		return
	}

	w.Header().Set("Authorization", bearerScheme+result.AccessToken)
	writeJSON(w, http.StatusOK, authResponse{
		User:      toUserResponse(result.User),
		IsNewUser: result.IsNewUser,
		ExpiresAt: result.ExpiresAt.Time().Unix(),
	})
}

func (h *Handler) ConnectFacebook(w http.ResponseWriter, r *http.Request) {
	var req facebookAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := command.ConnectFacebook{
		FacebookUserID: req.FacebookUserID,
		AccessToken:    req.AccessToken,
		Session:        SessionFromContext(r.Context()),
	}

	result, err := h.connectFacebookHandler.Handle(r.Context(), cmd)
	if err != nil {
		writeAuthEndpointError(w, err)
		return
	}

	w.Header().Set("Authorization", bearerScheme+result.AccessToken)
	writeJSON(w, http.StatusOK, authResponse{
		User:      toUserResponse(result.User),
		ExpiresAt: result.ExpiresAt.Time().Unix(),
	})
}

// Users

func (h *Handler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	session := SessionFromContext(r.Context())

	result, err := h.getUserHandler.Handle(r.Context(), query.GetUser{UserID: session.UserID()})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(result.User))
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := types.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	result, err := h.getUserHandler.Handle(r.Context(), query.GetUser{UserID: userID})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(result.User))
}

func (h *Handler) GetUserByUsername(w http.ResponseWriter, r *http.Request) {
	qry := query.GetUserByUsername{Username: chi.URLParam(r, "username")}

	result, err := h.getUserByUsernameHandler.Handle(r.Context(), qry)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(result.User))
}

func (h *Handler) GetUserByFacebookID(w http.ResponseWriter, r *http.Request) {
	qry := query.GetUserByFacebookID{FacebookUserID: chi.URLParam(r, "facebookUserID")}

	result, err := h.getUserByFacebookIDHandler.Handle(r.Context(), qry)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(result.User))
}

// Groups

type createGroupRequest struct {
	Name   string `json:"name"`
	Binary bool   `json:"binary"`
}

func (h *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := command.CreateGroup{
		AdminID: SessionFromContext(r.Context()).UserID(),
		Name:    req.Name,
		Binary:  req.Binary,
	}

	result, err := h.createGroupHandler.Handle(r.Context(), cmd)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toGroupResponse(result.Group))
}

// Challenges

type subChallengeRequest struct {
	Zekr        string `json:"zekr"`
	Repetitions int    `json:"repetitions"`
}

type createChallengeRequest struct {
	Name          string                `json:"name"`
	Motivation    string                `json:"motivation"`
	ExpiresAt     int64                 `json:"expires_at"`
	SubChallenges []subChallengeRequest `json:"sub_challenges"`
}

func (h *Handler) CreatePersonalChallenge(w http.ResponseWriter, r *http.Request) {
	var req createChallengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	subs := make([]command.SubChallengeInput, 0, len(req.SubChallenges))
	for _, sub := range req.SubChallenges {
		subs = append(subs, command.SubChallengeInput{
			Zekr:        sub.Zekr,
			Repetitions: sub.Repetitions,
		})
	}

	cmd := command.CreatePersonalChallenge{
		CreatingUserID: SessionFromContext(r.Context()).UserID(),
		Name:           req.Name,
		Motivation:     req.Motivation,
		ExpiresAt:      types.FromTime(time.Unix(req.ExpiresAt, 0)),
		SubChallenges:  subs,
	}

	result, err := h.createPersonalChallengeHandler.Handle(r.Context(), cmd)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toChallengeResponse(result.Challenge))
}

func (h *Handler) ListPersonalChallenges(w http.ResponseWriter, r *http.Request) {
	qry := query.ListPersonalChallenges{UserID: SessionFromContext(r.Context()).UserID()}

	result, err := h.listPersonalChallengesHandler.Handle(r.Context(), qry)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toChallengeResponses(result.Challenges))
}
