package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/benhsieh-dev/Youtube/internal/client/models"
	"github.com/benhsieh-dev/Youtube/internal/logging"
)

// IdentityClient talks to the identity origin: sign-up, sign-in and profiles.
type IdentityClient interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.Registration, error)
	// Login returns the signed-in user and the bearer credential issued with
	// it. The credential is empty when the backend does not issue one.
	Login(ctx context.Context, req models.LoginRequest) (*models.User, string, error)
	CheckUsername(ctx context.Context, username string) (*models.UsernameAvailability, error)
	GetCurrentProfile(ctx context.Context, userID int64, token string) (*models.Profile, error)
	GetProfile(ctx context.Context, username string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate, token string) (*models.Profile, error)
}

type IdentityHTTPClient struct {
	origin *origin
}

var _ IdentityClient = (*IdentityHTTPClient)(nil)

func NewIdentityHTTPClient(baseURL string, httpClient *http.Client, logger logging.Logger) (*IdentityHTTPClient, error) {
	o, err := newOrigin("identity", baseURL, httpClient, logger)
	if err != nil {
		return nil, err
	}
	return &IdentityHTTPClient{origin: o}, nil
}

func (c *IdentityHTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.Registration, error) {
	body, err := jsonBody(req)
	if err != nil {
		return nil, fmt.Errorf("encode register request: %w", err)
	}

	var out models.Registration
	err = c.origin.do(ctx, request{
		op:          "register",
		method:      http.MethodPost,
		path:        "/auth/register",
		body:        body,
		contentType: "application/json",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// loginResponse accepts both user shapes the identity backends produce:
// {"id": ...} and {"userId": ...}.
type loginResponse struct {
	ID          *int64 `json:"id"`
	UserID      *int64 `json:"userId"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Token       string `json:"token"`
	AccessToken string `json:"accessToken"`
}

func (c *IdentityHTTPClient) Login(ctx context.Context, req models.LoginRequest) (*models.User, string, error) {
	body, err := jsonBody(req)
	if err != nil {
		return nil, "", fmt.Errorf("encode login request: %w", err)
	}

	var out loginResponse
	err = c.origin.do(ctx, request{
		op:          "login",
		method:      http.MethodPost,
		path:        "/auth/login",
		body:        body,
		contentType: "application/json",
	}, &out)
	if err != nil {
		// The identity backend answers wrong credentials with 400.
		var be *BackendError
		if errors.As(err, &be) && be.Status == http.StatusBadRequest {
			be.Kind = KindUnauthorized
		}
		return nil, "", err
	}

	user := &models.User{Username: out.Username, Email: out.Email}
	switch {
	case out.ID != nil:
		user.ID = *out.ID
	case out.UserID != nil:
		user.ID = *out.UserID
	default:
		return nil, "", &BackendError{Op: "login", Origin: c.origin.name, Status: http.StatusOK,
			Err: errors.New("response carries no user id")}
	}
	if user.Username == "" {
		return nil, "", &BackendError{Op: "login", Origin: c.origin.name, Status: http.StatusOK,
			Err: errors.New("response carries no username")}
	}

	token := out.Token
	if token == "" {
		token = out.AccessToken
	}
	return user, token, nil
}

func (c *IdentityHTTPClient) CheckUsername(ctx context.Context, username string) (*models.UsernameAvailability, error) {
	var out models.UsernameAvailability
	err := c.origin.do(ctx, request{
		op:     "check username",
		method: http.MethodGet,
		path:   "/auth/check",
		query:  url.Values{"username": {username}},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *IdentityHTTPClient) GetCurrentProfile(ctx context.Context, userID int64, token string) (*models.Profile, error) {
	var out models.Profile
	err := c.origin.do(ctx, request{
		op:     "get current profile",
		method: http.MethodGet,
		path:   "/users/profile",
		query:  url.Values{"userId": {strconv.FormatInt(userID, 10)}},
		token:  token,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *IdentityHTTPClient) GetProfile(ctx context.Context, username string) (*models.Profile, error) {
	var out models.Profile
	err := c.origin.do(ctx, request{
		op:     "get profile",
		method: http.MethodGet,
		path:   "/users/" + url.PathEscape(username),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *IdentityHTTPClient) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate, token string) (*models.Profile, error) {
	body, err := jsonBody(update)
	if err != nil {
		return nil, fmt.Errorf("encode profile update: %w", err)
	}

	var out struct {
		Message string         `json:"message"`
		User    models.Profile `json:"user"`
	}
	err = c.origin.do(ctx, request{
		op:          "update profile",
		method:      http.MethodPut,
		path:        "/users/profile",
		query:       url.Values{"userId": {strconv.FormatInt(userID, 10)}},
		body:        body,
		contentType: "application/json",
		token:       token,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out.User, nil
}
