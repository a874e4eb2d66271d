package client

import (
	"context"
	"time"

	authdomain "github.com/SAI-CHANDHAN/My-portfolio/internal/auth/domain"
)

type LoginResult struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	User      authdomain.User `json:"user"`
}

// Login exchanges a password for a token. The caller decides where the token
// goes; pass it back through WithCredentials.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var out LoginResult
	req := c.http.POST("/api/auth/login").
		Body().AsJSON(map[string]string{"email": email, "password": password})
	if err := c.send(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Me(ctx context.Context) (*authdomain.Identity, error) {
	var out struct {
		User authdomain.Identity `json:"user"`
	}
	if err := c.send(ctx, c.http.GET("/api/auth/me"), &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}
