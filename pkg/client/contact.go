package client

import (
	"context"
	"net/url"
	"strconv"

	contactdomain "github.com/SAI-CHANDHAN/My-portfolio/internal/contact/domain"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/pagination"
)

type SubmitResult struct {
	Message string                `json:"message"`
	Contact contactdomain.Message `json:"contact"`
}

func (c *Client) SubmitMessage(ctx context.Context, sub contactdomain.Submission) (*SubmitResult, error) {
	var out SubmitResult
	if err := c.send(ctx, c.http.POST("/api/contact").Body().AsJSON(sub), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type MessagePage struct {
	Messages   []contactdomain.Message `json:"messages"`
	Pagination pagination.Meta         `json:"pagination"`
}

// Messages lists contact messages newest first. Requires an admin token.
func (c *Client) Messages(ctx context.Context, status string, page, limit int) (*MessagePage, error) {
	req := c.http.GET("/api/contact")
	if status != "" {
		req = req.Query().AddParam("status", status)
	}
	if page > 0 {
		req = req.Query().AddParam("page", strconv.Itoa(page))
	}
	if limit > 0 {
		req = req.Query().AddParam("limit", strconv.Itoa(limit))
	}

	var out MessagePage
	if err := c.send(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SetMessageStatus(ctx context.Context, id, status string) (*contactdomain.Message, error) {
	var out contactdomain.Message
	req := c.http.PATCH("/api/contact/" + url.PathEscape(id)).
		Body().AsJSON(map[string]string{"status": status})
	if err := c.send(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
