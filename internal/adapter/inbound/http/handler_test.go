package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/0xsj/overwatch-pkg/types"

	domainerror "github.com/azkarapp/azkar-backend/internal/domain/error"
	"github.com/azkarapp/azkar-backend/internal/domain/model"
	"github.com/azkarapp/azkar-backend/internal/port/inbound/command"
	"github.com/azkarapp/azkar-backend/internal/port/inbound/query"
	"github.com/azkarapp/azkar-backend/tests/testutil"
)

// --- Login Tests ---

func TestHandler_LoginWithFacebook(t *testing.T) {
	t.Run("success sets bearer credential", func(t *testing.T) {
		user := testutil.Fixtures.User()
		mockHandler := &mockLoginWithFacebookHandler{
			result: command.LoginWithFacebookResult{
				User:        user,
				AccessToken: "issued-token",
				ExpiresAt:   types.FromTime(time.Now().Add(24 * time.Hour)),
				IsNewUser:   true,
			},
		}

		handler := NewHandler(HandlerConfig{LoginWithFacebookHandler: mockHandler})

		req := jsonRequest(t, http.MethodPut, "/login/facebook", `{"facebook_user_id":"fb42","token":"tok"}`)
		rec := httptest.NewRecorder()

		handler.LoginWithFacebook(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		if got := rec.Header().Get("Authorization"); got != "Bearer issued-token" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer issued-token")
		}

		var resp authResponse
		decodeBody(t, rec, &resp)
		if !resp.IsNewUser {
			t.Error("IsNewUser should be true")
		}
		if resp.User.Username != user.Username() {
			t.Errorf("Username = %q, want %q", resp.User.Username, user.Username())
		}

		if mockHandler.lastCmd.FacebookUserID != "fb42" {
			t.Errorf("FacebookUserID = %q, want fb42", mockHandler.lastCmd.FacebookUserID)
		}
		if mockHandler.lastCmd.Session.IsAuthenticated() {
			t.Error("session should be anonymous")
		}
	})

	t.Run("verification failure returns generic 422", func(t *testing.T) {
		mockHandler := &mockLoginWithFacebookHandler{err: domainerror.ErrFacebookVerificationFailed}
		handler := NewHandler(HandlerConfig{LoginWithFacebookHandler: mockHandler})

		req := jsonRequest(t, http.MethodPut, "/login/facebook", `{"facebook_user_id":"fb42","token":"bad"}`)
		rec := httptest.NewRecorder()

		handler.LoginWithFacebook(rec, req)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
		}
		assertErrorMessage(t, rec, msgAuthenticationFailed)
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		handler := NewHandler(HandlerConfig{LoginWithFacebookHandler: &mockLoginWithFacebookHandler{}})

		req := jsonRequest(t, http.MethodPut, "/login/facebook", `{not json`)
		rec := httptest.NewRecorder()

		handler.LoginWithFacebook(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})
}

// --- Connect Tests ---

func TestHandler_ConnectFacebook(t *testing.T) {
	t.Run("success rotates credential", func(t *testing.T) {
		user := testutil.Fixtures.UserBuilder().
			WithFacebook("fb42", "fresh-token").
			Build()
		mockHandler := &mockConnectFacebookHandler{
			result: command.ConnectFacebookResult{
				User:        user,
				AccessToken: "rotated-token",
				ExpiresAt:   types.FromTime(time.Now().Add(24 * time.Hour)),
			},
		}

		handler := NewHandler(HandlerConfig{ConnectFacebookHandler: mockHandler})

		req := jsonRequest(t, http.MethodPut, "/connect/facebook", `{"facebook_user_id":"fb42","token":"tok"}`)
		req = req.WithContext(WithSession(req.Context(), model.AuthenticatedSession(user.ID())))
		rec := httptest.NewRecorder()

		handler.ConnectFacebook(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		if got := rec.Header().Get("Authorization"); got != "Bearer rotated-token" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer rotated-token")
		}
		if !mockHandler.lastCmd.Session.IsAuthenticated() {
			t.Error("session should be authenticated")
		}
	})

	t.Run("conflict returns distinct 422", func(t *testing.T) {
		mockHandler := &mockConnectFacebookHandler{err: domainerror.ErrFacebookAccountAlreadyLinked}
		handler := NewHandler(HandlerConfig{ConnectFacebookHandler: mockHandler})

		req := jsonRequest(t, http.MethodPut, "/connect/facebook", `{"facebook_user_id":"fb42","token":"tok"}`)
		rec := httptest.NewRecorder()

		handler.ConnectFacebook(rec, req)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
		}
		assertErrorMessage(t, rec, msgSomeoneElseConnected)
	})

	t.Run("precondition violation returns 500", func(t *testing.T) {
		mockHandler := &mockConnectFacebookHandler{err: domainerror.ErrConnectRequiresAuthenticatedSession}
		handler := NewHandler(HandlerConfig{ConnectFacebookHandler: mockHandler})

		req := jsonRequest(t, http.MethodPut, "/connect/facebook", `{"facebook_user_id":"fb42","token":"tok"}`)
		rec := httptest.NewRecorder()

		handler.ConnectFacebook(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
		}
	})
}

// --- User Tests ---

func TestHandler_GetUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		user := testutil.Fixtures.User()
		mockHandler := &mockGetUserHandler{result: query.GetUserResult{User: user}}
		handler := NewHandler(HandlerConfig{GetUserHandler: mockHandler})

		req := requestWithURLParam(t, "/users/"+user.ID().String(), "id", user.ID().String())
		rec := httptest.NewRecorder()

		handler.GetUser(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}

		var resp userResponse
		decodeBody(t, rec, &resp)
		if resp.ID != user.ID().String() {
			t.Errorf("ID = %q, want %q", resp.ID, user.ID().String())
		}
	})

	t.Run("unknown user returns 404", func(t *testing.T) {
		mockHandler := &mockGetUserHandler{err: domainerror.ErrUserNotFound}
		handler := NewHandler(HandlerConfig{GetUserHandler: mockHandler})

		id := types.NewID().String()
		req := requestWithURLParam(t, "/users/"+id, "id", id)
		rec := httptest.NewRecorder()

		handler.GetUser(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})

	t.Run("invalid id returns 400", func(t *testing.T) {
		handler := NewHandler(HandlerConfig{GetUserHandler: &mockGetUserHandler{}})

		req := requestWithURLParam(t, "/users/not-an-id", "id", "not-an-id")
		rec := httptest.NewRecorder()

		handler.GetUser(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})
}

func TestHandler_GetCurrentUser(t *testing.T) {
	user := testutil.Fixtures.User()
	mockHandler := &mockGetUserHandler{result: query.GetUserResult{User: user}}
	handler := NewHandler(HandlerConfig{GetUserHandler: mockHandler})

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req = req.WithContext(WithSession(req.Context(), model.AuthenticatedSession(user.ID())))
	rec := httptest.NewRecorder()

	handler.GetCurrentUser(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if mockHandler.lastQry.UserID != user.ID() {
		t.Errorf("queried UserID = %v, want %v", mockHandler.lastQry.UserID, user.ID())
	}
}

func TestHandler_GetUserByUsername(t *testing.T) {
	user := testutil.Fixtures.User()
	mockHandler := &mockGetUserByUsernameHandler{result: query.GetUserByUsernameResult{User: user}}
	handler := NewHandler(HandlerConfig{GetUserByUsernameHandler: mockHandler})

	req := requestWithURLParam(t, "/users/username/"+user.Username(), "username", user.Username())
	rec := httptest.NewRecorder()

	handler.GetUserByUsername(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if mockHandler.lastQry.Username != user.Username() {
		t.Errorf("queried Username = %q, want %q", mockHandler.lastQry.Username, user.Username())
	}
}

func TestHandler_GetUserByFacebookID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		user := testutil.Fixtures.UserBuilder().WithFacebook("fb-900", "tok").Build()
		mockHandler := &mockGetUserByFacebookIDHandler{result: query.GetUserByFacebookIDResult{User: user}}
		handler := NewHandler(HandlerConfig{GetUserByFacebookIDHandler: mockHandler})

		req := requestWithURLParam(t, "/users/facebook/fb-900", "facebookUserID", "fb-900")
		rec := httptest.NewRecorder()

		handler.GetUserByFacebookID(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		if mockHandler.lastQry.FacebookUserID != "fb-900" {
			t.Errorf("queried FacebookUserID = %q, want fb-900", mockHandler.lastQry.FacebookUserID)
		}
	})

	t.Run("unlinked facebook id returns not found", func(t *testing.T) {
		mockHandler := &mockGetUserByFacebookIDHandler{err: domainerror.ErrUserNotFound}
		handler := NewHandler(HandlerConfig{GetUserByFacebookIDHandler: mockHandler})

		req := requestWithURLParam(t, "/users/facebook/fb-none", "facebookUserID", "fb-none")
		rec := httptest.NewRecorder()

		handler.GetUserByFacebookID(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})
}

// --- Group Tests ---

func TestHandler_CreateGroup(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		adminID := types.NewID()
		group := testutil.Fixtures.GroupBuilder(adminID).WithName("readers").Build()
		mockHandler := &mockCreateGroupHandler{result: command.CreateGroupResult{Group: group}}
		handler := NewHandler(HandlerConfig{CreateGroupHandler: mockHandler})

		req := jsonRequest(t, http.MethodPost, "/groups", `{"name":"readers","binary":false}`)
		req = req.WithContext(WithSession(req.Context(), model.AuthenticatedSession(adminID)))
		rec := httptest.NewRecorder()

		handler.CreateGroup(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
		}
		if mockHandler.lastCmd.AdminID != adminID {
			t.Errorf("AdminID = %v, want %v", mockHandler.lastCmd.AdminID, adminID)
		}

		var resp groupResponse
		decodeBody(t, rec, &resp)
		if resp.Name != "readers" {
			t.Errorf("Name = %q, want readers", resp.Name)
		}
	})

	t.Run("empty name returns 400", func(t *testing.T) {
		mockHandler := &mockCreateGroupHandler{err: domainerror.ErrGroupNameRequired}
		handler := NewHandler(HandlerConfig{CreateGroupHandler: mockHandler})

		req := jsonRequest(t, http.MethodPost, "/groups", `{"name":""}`)
		rec := httptest.NewRecorder()

		handler.CreateGroup(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})
}

// --- Challenge Tests ---

func TestHandler_CreatePersonalChallenge(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		creatorID := types.NewID()
		challenge := testutil.Fixtures.Challenge(creatorID)
		mockHandler := &mockCreatePersonalChallengeHandler{
			result: command.CreatePersonalChallengeResult{Challenge: challenge},
		}
		handler := NewHandler(HandlerConfig{CreatePersonalChallengeHandler: mockHandler})

		expiresAt := time.Now().Add(7 * 24 * time.Hour).Unix()
		body := `{"name":"week of dhikr","motivation":"consistency","expires_at":` +
			jsonInt(expiresAt) + `,"sub_challenges":[{"zekr":"Subhan Allah","repetitions":33}]}`

		req := jsonRequest(t, http.MethodPost, "/challenges/personal", body)
		req = req.WithContext(WithSession(req.Context(), model.AuthenticatedSession(creatorID)))
		rec := httptest.NewRecorder()

		handler.CreatePersonalChallenge(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
		}
		if mockHandler.lastCmd.CreatingUserID != creatorID {
			t.Errorf("CreatingUserID = %v, want %v", mockHandler.lastCmd.CreatingUserID, creatorID)
		}
		if len(mockHandler.lastCmd.SubChallenges) != 1 {
			t.Fatalf("SubChallenges = %d, want 1", len(mockHandler.lastCmd.SubChallenges))
		}
		if mockHandler.lastCmd.SubChallenges[0].Repetitions != 33 {
			t.Errorf("Repetitions = %d, want 33", mockHandler.lastCmd.SubChallenges[0].Repetitions)
		}
	})

	t.Run("past expiry returns 400", func(t *testing.T) {
		mockHandler := &mockCreatePersonalChallengeHandler{err: domainerror.ErrChallengeExpiryInPast}
		handler := NewHandler(HandlerConfig{CreatePersonalChallengeHandler: mockHandler})

		req := jsonRequest(t, http.MethodPost, "/challenges/personal", `{"name":"x","expires_at":1}`)
		rec := httptest.NewRecorder()

		handler.CreatePersonalChallenge(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})
}

func TestHandler_ListPersonalChallenges(t *testing.T) {
	creatorID := types.NewID()
	challenges := []*model.Challenge{
		testutil.Fixtures.Challenge(creatorID),
		testutil.Fixtures.Challenge(creatorID),
	}
	mockHandler := &mockListPersonalChallengesHandler{
		result: query.ListPersonalChallengesResult{Challenges: challenges},
	}
	handler := NewHandler(HandlerConfig{ListPersonalChallengesHandler: mockHandler})

	req := httptest.NewRequest(http.MethodGet, "/challenges/personal", nil)
	req = req.WithContext(WithSession(req.Context(), model.AuthenticatedSession(creatorID)))
	rec := httptest.NewRecorder()

	handler.ListPersonalChallenges(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp []challengeResponse
	decodeBody(t, rec, &resp)
	if len(resp) != 2 {
		t.Errorf("challenges = %d, want 2", len(resp))
	}
	if mockHandler.lastQry.UserID != creatorID {
		t.Errorf("queried UserID = %v, want %v", mockHandler.lastQry.UserID, creatorID)
	}
}

// --- Helpers ---

func jsonRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func requestWithURLParam(t *testing.T, target, key, value string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}

func assertErrorMessage(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	var resp errorResponse
	decodeBody(t, rec, &resp)
	if resp.Error != want {
		t.Errorf("error = %q, want %q", resp.Error, want)
	}
}

func jsonInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

// --- Mocks ---

type mockLoginWithFacebookHandler struct {
	result  command.LoginWithFacebookResult
	err     error
	lastCmd command.LoginWithFacebook
}

func (m *mockLoginWithFacebookHandler) Handle(ctx context.Context, cmd command.LoginWithFacebook) (command.LoginWithFacebookResult, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockConnectFacebookHandler struct {
	result  command.ConnectFacebookResult
	err     error
	lastCmd command.ConnectFacebook
}

func (m *mockConnectFacebookHandler) Handle(ctx context.Context, cmd command.ConnectFacebook) (command.ConnectFacebookResult, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockCreateGroupHandler struct {
	result  command.CreateGroupResult
	err     error
	lastCmd command.CreateGroup
}

func (m *mockCreateGroupHandler) Handle(ctx context.Context, cmd command.CreateGroup) (command.CreateGroupResult, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockCreatePersonalChallengeHandler struct {
	result  command.CreatePersonalChallengeResult
	err     error
	lastCmd command.CreatePersonalChallenge
}

func (m *mockCreatePersonalChallengeHandler) Handle(ctx context.Context, cmd command.CreatePersonalChallenge) (command.CreatePersonalChallengeResult, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockGetUserHandler struct {
	result  query.GetUserResult
	err     error
	lastQry query.GetUser
}

func (m *mockGetUserHandler) Handle(ctx context.Context, qry query.GetUser) (query.GetUserResult, error) {
	m.lastQry = qry
	if m.err != nil {
		return query.GetUserResult{}, m.err
	}
	return m.result, nil
}

type mockGetUserByUsernameHandler struct {
	result  query.GetUserByUsernameResult
	err     error
	lastQry query.GetUserByUsername
}

func (m *mockGetUserByUsernameHandler) Handle(ctx context.Context, qry query.GetUserByUsername) (query.GetUserByUsernameResult, error) {
	m.lastQry = qry
	return m.result, m.err
}

type mockGetUserByFacebookIDHandler struct {
	result  query.GetUserByFacebookIDResult
	err     error
	lastQry query.GetUserByFacebookID
}

func (m *mockGetUserByFacebookIDHandler) Handle(ctx context.Context, qry query.GetUserByFacebookID) (query.GetUserByFacebookIDResult, error) {
	m.lastQry = qry
	return m.result, m.err
}

type mockListPersonalChallengesHandler struct {
	result  query.ListPersonalChallengesResult
	err     error
	lastQry query.ListPersonalChallenges
}

func (m *mockListPersonalChallengesHandler) Handle(ctx context.Context, qry query.ListPersonalChallenges) (query.ListPersonalChallengesResult, error) {
	m.lastQry = qry
	return m.result, m.err
}
