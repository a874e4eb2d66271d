package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	skilldomain "github.com/SAI-CHANDHAN/My-portfolio/internal/skills/domain"
	skillservice "github.com/SAI-CHANDHAN/My-portfolio/internal/skills/service"
)

// Skills lists visible skills. sort takes a field name, "-" prefixed for
// descending order; empty values are omitted.
func (c *Client) Skills(ctx context.Context, category, sort string) ([]skilldomain.Skill, error) {
	req := c.http.GET("/api/skills")
	if category != "" {
		req = req.Query().AddParam("category", category)
	}
	if sort != "" {
		req = req.Query().AddParam("sort", sort)
	}

	var out []skilldomain.Skill
	if err := c.send(ctx, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SkillCategories(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.send(ctx, c.http.GET("/api/skills/categories"), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Skill(ctx context.Context, id string) (*skilldomain.Skill, error) {
	var out skilldomain.Skill
	if err := c.send(ctx, c.http.GET("/api/skills/"+url.PathEscape(id)), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AllSkills(ctx context.Context) ([]skilldomain.Skill, error) {
	var out []skilldomain.Skill
	if err := c.send(ctx, c.http.GET("/api/skills/admin/all"), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateSkill(ctx context.Context, in skilldomain.Input) (*skilldomain.Skill, error) {
	var out skilldomain.Skill
	if err := c.send(ctx, c.http.POST("/api/skills").Body().AsJSON(in), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSkill(ctx context.Context, id string, in skilldomain.Input) (*skilldomain.Skill, error) {
	var out skilldomain.Skill
	req := c.http.PUT("/api/skills/" + url.PathEscape(id)).Body().AsJSON(in)
	if err := c.send(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSkill(ctx context.Context, id string) error {
	return c.send(ctx, c.http.DELETE("/api/skills/"+url.PathEscape(id)), nil)
}

type BulkResult struct {
	Message string                     `json:"message"`
	Created []skilldomain.Skill        `json:"created"`
	Failed  []skillservice.BulkFailure `json:"failed"`
}

// BulkCreateSkills inserts skills in one request. When none could be created
// the server answers 409; the per-item failures are still returned next to
// the *APIError.
func (c *Client) BulkCreateSkills(ctx context.Context, in []skilldomain.Input) (*BulkResult, error) {
	token, err := c.creds.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("credentials: %w", err)
	}
	req := c.http.POST("/api/skills/bulk").Context().Set(ctx).Body().AsJSON(in)
	if token != "" {
		req = req.Header().Add("Authorization", "Bearer "+token)
	}

	resp, err := req.Send()
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body().Close()

	code := resp.Status().Code()
	if code != http.StatusCreated && code != http.StatusConflict {
		return nil, decodeError(resp)
	}

	var out BulkResult
	if err := resp.Body().AsJSON(&out); err != nil {
		return nil, fmt.Errorf("decode bulk result: %w", err)
	}
	if code == http.StatusConflict {
		return &out, &APIError{Status: code, Message: out.Message}
	}
	return &out, nil
}
