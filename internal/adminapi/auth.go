package adminapi

import (
	"context"
	"net/http"

	"github.com/SeloLim/naturia/internal/models"
)

type TokenPair struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         models.User `json:"user"`
}

// RefreshResponse may carry a rotated refresh token; when absent the
// existing one stays valid.
type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	var resp TokenPair
	err := c.do(ctx, http.MethodPost, "/api/auth/login", "", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Register(ctx context.Context, email, password, fullName string) (*TokenPair, error) {
	var resp TokenPair
	err := c.do(ctx, http.MethodPost, "/api/auth/register", "", registerRequest{
		Email:    email,
		Password: password,
		FullName: fullName,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*RefreshResponse, error) {
	var resp RefreshResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/refresh-token", "", refreshRequest{RefreshToken: refreshToken}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Profile fetches the user owning the access token. No retry here: a 401
// must reach the session layer untouched so its single-refresh policy stays
// the only retry path.
func (c *Client) Profile(ctx context.Context, accessToken string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/profile", accessToken, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
