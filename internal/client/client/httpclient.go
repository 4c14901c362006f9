package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gophprofile/internal/client/models"
	"github.com/dmitrijs2005/gophprofile/internal/common"
	"github.com/dmitrijs2005/gophprofile/internal/netx"
	"github.com/google/uuid"
)

type HTTPClient struct {
	authURL       string
	profileURL    string
	expiresInMins int
	http          *http.Client
}

// Option customises an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// WithTokenTTL asks the auth endpoint for a token valid for the given number
// of minutes. Zero keeps the server default.
func WithTokenTTL(minutes int) Option {
	return func(c *HTTPClient) { c.expiresInMins = minutes }
}

// NewHTTPClient builds a client for the given endpoints. timeout bounds each
// request; zero means no client-side timeout.
func NewHTTPClient(authURL, profileURL string, timeout time.Duration, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		authURL:    authURL,
		profileURL: profileURL,
		http:       &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type loginRequest struct {
	models.Credentials
	ExpiresInMins int `json:"expiresInMins,omitempty"`
}

type loginResponse struct {
	Token       string `json:"token"`
	AccessToken string `json:"accessToken"`
}

// Login posts the credentials and returns the issued token.
func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (string, error) {
	req, err := netx.NewJSONRequest(ctx, http.MethodPost, c.authURL, loginRequest{
		Credentials:   creds,
		ExpiresInMins: c.expiresInMins,
	})
	if err != nil {
		return "", err
	}

	resp, err := c.do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if !netx.IsSuccess(resp.StatusCode) {
		return "", &APIError{Status: resp.StatusCode, Message: netx.ErrorMessage(resp.Body)}
	}

	var body loginResponse
	if err := netx.DecodeJSON(resp.Body, &body); err != nil {
		return "", err
	}

	token := body.Token
	if token == "" {
		token = body.AccessToken
	}
	if token == "" {
		return "", ErrEmptyToken
	}
	return token, nil
}

// Me fetches the user record for token.
func (c *HTTPClient) Me(ctx context.Context, token string) (models.User, error) {
	var user models.User

	req, err := netx.NewJSONRequest(ctx, http.MethodGet, c.profileURL, nil)
	if err != nil {
		return user, err
	}
	req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)

	resp, err := c.do(req)
	if err != nil {
		return user, err
	}
	defer resp.Body.Close()

	if !netx.IsSuccess(resp.StatusCode) {
		netx.Drain(resp.Body)
		return user, &APIError{Status: resp.StatusCode}
	}

	if err := netx.DecodeJSON(resp.Body, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (c *HTTPClient) do(req *http.Request) (*http.Response, error) {
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %s %s: %v", ErrUnavailable, req.Method, req.URL.Redacted(), err)
	}
	return resp, nil
}
