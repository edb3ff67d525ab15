package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benhsieh-dev/Youtube/internal/client/models"
	"github.com/benhsieh-dev/Youtube/internal/logging"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newIdentity(t *testing.T, r chi.Router) *IdentityHTTPClient {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	c, err := NewIdentityHTTPClient(srv.URL+"/", srv.Client(), logging.Nop())
	require.NoError(t, err)
	return c
}

func TestNewIdentityHTTPClient_RejectsBadBaseURL(t *testing.T) {
	for _, raw := range []string{"ftp://example.com", "localhost:3000", "http://", "::bad"} {
		_, err := NewIdentityHTTPClient(raw, http.DefaultClient, logging.Nop())
		assert.Error(t, err, raw)
	}
}

func TestLogin_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get(RequestIDHeaderName))
		assert.Empty(t, r.Header.Get("Authorization"))

		var req models.LoginRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.LoginRequest{Username: "demo", Password: "demo123"}, req)

		writeJSON(w, http.StatusOK, map[string]any{"id": 1, "username": "demo", "email": "demo@x.com"})
	})

	u, token, err := newIdentity(t, r).Login(context.Background(), models.LoginRequest{Username: "demo", Password: "demo123"})
	require.NoError(t, err)
	require.Equal(t, &models.User{ID: 1, Username: "demo", Email: "demo@x.com"}, u)
	require.Empty(t, token)
}

func TestLogin_UserIDShapeWithToken(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"message":  "Login successful",
			"userId":   9,
			"username": "neo",
			"token":    "jwt-abc",
		})
	})

	u, token, err := newIdentity(t, r).Login(context.Background(), models.LoginRequest{Username: "neo", Password: "x"})
	require.NoError(t, err)
	require.Equal(t, int64(9), u.ID)
	require.Equal(t, "neo", u.Username)
	require.Equal(t, "jwt-abc", token)
}

func TestLogin_AccessTokenField(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"id": 2, "username": "x", "accessToken": "at-1"})
	})

	_, token, err := newIdentity(t, r).Login(context.Background(), models.LoginRequest{Username: "x", Password: "y"})
	require.NoError(t, err)
	require.Equal(t, "at-1", token)
}

func TestLogin_RejectedCredentialsAreUnauthorized(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden} {
		r := chi.NewRouter()
		r.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, status, map[string]string{"error": "Invalid credentials"})
		})

		_, _, err := newIdentity(t, r).Login(context.Background(), models.LoginRequest{Username: "bad", Password: "bad"})
		require.ErrorIs(t, err, ErrUnauthorized, "status %d", status)

		var be *BackendError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, status, be.Status)
		assert.Equal(t, "Invalid credentials", be.Message)
		assert.Equal(t, "login", be.Op)
		assert.Equal(t, "identity", be.Origin)
	}
}

func TestLogin_ServerErrorIsGeneric(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	})

	_, _, err := newIdentity(t, r).Login(context.Background(), models.LoginRequest{Username: "a", Password: "b"})
	var be *BackendError
	require.ErrorAs(t, err, &be)
	require.Equal(t, KindGeneric, be.Kind)
	require.Equal(t, "upstream exploded", be.Message)
	require.NotErrorIs(t, err, ErrUnauthorized)
}

func TestLogin_MissingIDIsAnError(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"username": "ghost"})
	})

	_, _, err := newIdentity(t, r).Login(context.Background(), models.LoginRequest{Username: "ghost", Password: "x"})
	var be *BackendError
	require.ErrorAs(t, err, &be)
	require.Equal(t, http.StatusOK, be.Status)
}

func TestLogin_TransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c, err := NewIdentityHTTPClient(base, http.DefaultClient, logging.Nop())
	require.NoError(t, err)

	_, _, err = c.Login(context.Background(), models.LoginRequest{Username: "a", Password: "b"})
	require.ErrorIs(t, err, ErrUnavailable)
	require.NotErrorIs(t, err, ErrUnauthorized)
}

func TestRegister(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Username == "taken" {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "Username already exists"})
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"message": "User registered successfully", "userId": 3, "username": req.Username})
	})
	c := newIdentity(t, r)
	ctx := context.Background()

	reg, err := c.Register(ctx, models.RegisterRequest{Username: "newbie", Email: "n@x.com", Password: "secret1"})
	require.NoError(t, err)
	require.Equal(t, &models.Registration{UserID: 3, Username: "newbie", Message: "User registered successfully"}, reg)

	_, err = c.Register(ctx, models.RegisterRequest{Username: "taken", Email: "t@x.com", Password: "secret1"})
	var be *BackendError
	require.ErrorAs(t, err, &be)
	require.Equal(t, http.StatusConflict, be.Status)
	require.Equal(t, KindGeneric, be.Kind)
}

func TestCheckUsername_SendsQuery(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/auth/check", func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("username")
		writeJSON(w, http.StatusOK, map[string]bool{"exists": name == "demo", "available": name != "demo"})
	})
	c := newIdentity(t, r)

	got, err := c.CheckUsername(context.Background(), "demo")
	require.NoError(t, err)
	require.Equal(t, &models.UsernameAvailability{Exists: true}, got)

	got, err = c.CheckUsername(context.Background(), "a b&c")
	require.NoError(t, err)
	require.True(t, got.Available)
}

func TestGetCurrentProfile_SendsBearer(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/users/profile", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing token"})
			return
		}
		assert.Equal(t, "1", r.URL.Query().Get("userId"))
		writeJSON(w, http.StatusOK, models.Profile{ID: 1, Username: "demo", Email: "demo@x.com", DisplayName: "Demo"})
	})
	c := newIdentity(t, r)

	p, err := c.GetCurrentProfile(context.Background(), 1, "tok-1")
	require.NoError(t, err)
	require.Equal(t, "Demo", p.DisplayName)

	_, err = c.GetCurrentProfile(context.Background(), 1, "")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetProfile_EscapesUsername(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/users/{username}", func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "username")
		if name != "demo" {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "User not found"})
			return
		}
		writeJSON(w, http.StatusOK, models.Profile{ID: 1, Username: name})
	})
	c := newIdentity(t, r)

	p, err := c.GetProfile(context.Background(), "demo")
	require.NoError(t, err)
	require.Equal(t, "demo", p.Username)

	_, err = c.GetProfile(context.Background(), "no/such")
	var be *BackendError
	require.ErrorAs(t, err, &be)
	require.Equal(t, http.StatusNotFound, be.Status)
}

func TestUpdateProfile_SendsOnlySetFields(t *testing.T) {
	r := chi.NewRouter()
	r.Put("/users/profile", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "4", r.URL.Query().Get("userId"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"displayName": "New Name"}, body)

		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Profile updated successfully",
			"user":    models.Profile{ID: 4, Username: "u4", DisplayName: "New Name"},
		})
	})

	name := "New Name"
	p, err := newIdentity(t, r).UpdateProfile(context.Background(), 4, models.ProfileUpdate{DisplayName: &name}, "tok")
	require.NoError(t, err)
	require.Equal(t, "New Name", p.DisplayName)
	require.Equal(t, int64(4), p.ID)
}

func TestNewGateway(t *testing.T) {
	g, err := NewGateway(GatewayConfig{
		IdentityBaseURL: "http://localhost:3000",
		LegacyBaseURL:   "http://localhost:8080/api",
	}, logging.Nop())
	require.NoError(t, err)
	require.NotNil(t, g.Identity)
	require.NotNil(t, g.Videos)

	_, err = NewGateway(GatewayConfig{IdentityBaseURL: "http://localhost:3000", LegacyBaseURL: "nope"}, logging.Nop())
	require.Error(t, err)
}

func TestRequestIDIsSentAndLogged(t *testing.T) {
	var seen string
	r := chi.NewRouter()
	r.Get("/auth/check", func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get(RequestIDHeaderName)
		writeJSON(w, http.StatusOK, models.UsernameAvailability{Available: true})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	var buf bytes.Buffer
	logger, err := logging.New(logging.FormatJSON, "debug", &buf)
	require.NoError(t, err)

	c, err := NewIdentityHTTPClient(srv.URL, srv.Client(), logger)
	require.NoError(t, err)
	_, err = c.CheckUsername(context.Background(), "x")
	require.NoError(t, err)

	require.NotEmpty(t, seen)
	assert.Contains(t, buf.String(), `"request_id":"`+seen+`"`)
	assert.Contains(t, buf.String(), `"op":"check username"`)
	assert.Contains(t, buf.String(), `"origin":"identity"`)
}
