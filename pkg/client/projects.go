package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/pagination"
	projectdomain "github.com/SAI-CHANDHAN/My-portfolio/internal/projects/domain"
)

// ProjectQuery filters the public project listing. Zero values are omitted.
type ProjectQuery struct {
	Page     int
	Limit    int
	Category string
	Featured bool
	Search   string
	Exclude  string
}

type ProjectPage struct {
	Projects   []projectdomain.Project `json:"projects"`
	Pagination pagination.Meta         `json:"pagination"`
}

func (c *Client) ListProjects(ctx context.Context, q ProjectQuery) (*ProjectPage, error) {
	req := c.http.GET("/api/projects")
	if q.Page > 0 {
		req = req.Query().AddParam("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		req = req.Query().AddParam("limit", strconv.Itoa(q.Limit))
	}
	if q.Category != "" {
		req = req.Query().AddParam("category", q.Category)
	}
	if q.Featured {
		req = req.Query().AddParam("featured", "true")
	}
	if q.Search != "" {
		req = req.Query().AddParam("search", q.Search)
	}
	if q.Exclude != "" {
		req = req.Query().AddParam("exclude", q.Exclude)
	}

	var out ProjectPage
	if err := c.send(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) FeaturedProjects(ctx context.Context) ([]projectdomain.Project, error) {
	var out []projectdomain.Project
	if err := c.send(ctx, c.http.GET("/api/projects/featured"), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Project fetches a published project by id or slug.
func (c *Client) Project(ctx context.Context, identifier string) (*projectdomain.Project, error) {
	var out projectdomain.Project
	if err := c.send(ctx, c.http.GET("/api/projects/"+url.PathEscape(identifier)), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AllProjects lists every project including drafts. Requires an admin token.
func (c *Client) AllProjects(ctx context.Context) ([]projectdomain.Project, error) {
	var out []projectdomain.Project
	if err := c.send(ctx, c.http.GET("/api/projects/admin/all"), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProject(ctx context.Context, in projectdomain.Input) (*projectdomain.Project, error) {
	var out projectdomain.Project
	if err := c.send(ctx, c.http.POST("/api/projects").Body().AsJSON(in), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProject(ctx context.Context, id string, in projectdomain.Input) (*projectdomain.Project, error) {
	var out projectdomain.Project
	req := c.http.PUT("/api/projects/" + url.PathEscape(id)).Body().AsJSON(in)
	if err := c.send(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.send(ctx, c.http.DELETE("/api/projects/"+url.PathEscape(id)), nil)
}
