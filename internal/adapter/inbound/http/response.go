package http

import (
	"encoding/json"
	"net/http"

	"github.com/azkarapp/azkar-backend/internal/domain/model"
)

// User responses

type userResponse struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Email     *string `json:"email,omitempty"`
	Name      *string `json:"name,omitempty"`
	CreatedAt int64   `json:"created_at"`
	UpdatedAt int64   `json:"updated_at"`
}

func toUserResponse(user *model.User) userResponse {
	resp := userResponse{
		ID:        user.ID().String(),
		Username:  user.Username(),
		CreatedAt: user.CreatedAt().Time().Unix(),
		UpdatedAt: user.UpdatedAt().Time().Unix(),
	}

	if user.Email().IsPresent() {
		email := user.Email().MustGet().String()
		resp.Email = &email
	}

	if user.Name().IsPresent() {
		name := user.Name().MustGet()
		resp.Name = &name
	}

	return resp
}

type authResponse struct {
	User      userResponse `json:"user"`
	IsNewUser bool         `json:"is_new_user,omitempty"`
	ExpiresAt int64        `json:"expires_at"`
}

// Group responses

type groupResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	AdminID   string   `json:"admin_id"`
	MemberIDs []string `json:"member_ids"`
	IsBinary  bool     `json:"is_binary"`
	CreatedAt int64    `json:"created_at"`
}

func toGroupResponse(group *model.Group) groupResponse {
	memberIDs := make([]string, 0, len(group.MemberIDs()))
	for _, id := range group.MemberIDs() {
		memberIDs = append(memberIDs, id.String())
	}

	return groupResponse{
		ID:        group.ID().String(),
		Name:      group.Name(),
		AdminID:   group.AdminID().String(),
		MemberIDs: memberIDs,
		IsBinary:  group.IsBinary(),
		CreatedAt: group.CreatedAt().Time().Unix(),
	}
}

// Challenge responses

type subChallengeResponse struct {
	Zekr                string `json:"zekr"`
	OriginalRepetitions int    `json:"original_repetitions"`
	LeftRepetitions     int    `json:"left_repetitions"`
}

type challengeResponse struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Motivation     string                 `json:"motivation"`
	CreatingUserID string                 `json:"creating_user_id"`
	UsersAccepted  []string               `json:"users_accepted"`
	SubChallenges  []subChallengeResponse `json:"sub_challenges"`
	IsOngoing      bool                   `json:"is_ongoing"`
	ExpiresAt      int64                  `json:"expires_at"`
	CreatedAt      int64                  `json:"created_at"`
}

func toChallengeResponse(challenge *model.Challenge) challengeResponse {
	accepted := make([]string, 0, len(challenge.UsersAccepted()))
	for _, id := range challenge.UsersAccepted() {
		accepted = append(accepted, id.String())
	}

	subs := make([]subChallengeResponse, 0, len(challenge.SubChallenges()))
	for _, sub := range challenge.SubChallenges() {
		subs = append(subs, subChallengeResponse{
			Zekr:                sub.Zekr(),
			OriginalRepetitions: sub.OriginalRepetitions(),
			LeftRepetitions:     sub.LeftRepetitions(),
		})
	}

	return challengeResponse{
		ID:             challenge.ID().String(),
		Name:           challenge.Name(),
		Motivation:     challenge.Motivation(),
		CreatingUserID: challenge.CreatingUserID().String(),
		UsersAccepted:  accepted,
		SubChallenges:  subs,
		IsOngoing:      challenge.IsOngoing(),
		ExpiresAt:      challenge.ExpiresAt().Time().Unix(),
		CreatedAt:      challenge.CreatedAt().Time().Unix(),
	}
}

func toChallengeResponses(challenges []*model.Challenge) []challengeResponse {
	result := make([]challengeResponse, 0, len(challenges))
	for _, c := range challenges {
		result = append(result, toChallengeResponse(c))
	}
	return result
}

// Write helpers

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
