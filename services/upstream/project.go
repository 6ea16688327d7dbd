package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"shilpgroup-io/backoffice/internal/assembler"
	"shilpgroup-io/backoffice/models"
)

// ListProjects fetches projects, optionally filtered by type. The
// backend returns the project array and pagination side by side in the
// envelope; they are folded into one ProjectList here.
func (c *Client) ListProjects(ctx context.Context, projectType string) (*models.ProjectList, error) {
	query := url.Values{}
	if projectType != "" {
		query.Set("type", projectType)
	}
	env, err := c.get(ctx, "/api/projects", query)
	if err != nil {
		return nil, err
	}

	list := &models.ProjectList{
		Pagination: models.ProjectPagination{Current: 1, Pages: 1},
	}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &list.Projects); err != nil {
			return nil, err
		}
	}
	if len(env.Pagination) > 0 {
		if err := json.Unmarshal(env.Pagination, &list.Pagination); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (c *Client) GetProject(ctx context.Context, id string) (*models.Project, error) {
	env, err := c.get(ctx, "/api/projects/"+id, nil)
	if err != nil {
		return nil, err
	}
	var project models.Project
	if err := decodeData(env, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateProject posts an assembled draft. The outcome is always a
// SubmitResult value: success carries the generated id and title,
// failure carries the backend message and any field-level validation
// errors. Nothing is thrown past this boundary and nothing is retried.
func (c *Client) CreateProject(ctx context.Context, payload *assembler.Payload) *models.SubmitResult {
	return c.submit(ctx, http.MethodPost, "/api/projects", payload)
}

// UpdateProject is CreateProject against an existing project id.
func (c *Client) UpdateProject(ctx context.Context, id string, payload *assembler.Payload) *models.SubmitResult {
	return c.submit(ctx, http.MethodPut, "/api/projects/"+id, payload)
}

func (c *Client) submit(ctx context.Context, method, path string, payload *assembler.Payload) *models.SubmitResult {
	env, _, err := c.do(ctx, method, path, nil, payload.Body, payload.ContentType)
	if err != nil {
		msg := "Network error occurred"
		if apiErr, ok := err.(*ApiError); ok && apiErr.Message != "" {
			msg = apiErr.Message
		}
		return &models.SubmitResult{Success: false, Message: msg}
	}

	if !env.Success {
		return &models.SubmitResult{
			Success:     false,
			Message:     env.errorMessage("Request failed"),
			FieldErrors: env.fieldErrors(),
		}
	}

	result := &models.SubmitResult{Success: true, Message: env.Message}
	var data struct {
		ProjectID    string `json:"projectId"`
		ProjectTitle string `json:"projectTitle"`
		Slug         string `json:"slug"`
	}
	if len(env.Data) > 0 && json.Unmarshal(env.Data, &data) == nil {
		result.ProjectID = data.ProjectID
		result.ProjectTitle = data.ProjectTitle
		result.Slug = data.Slug
	}
	return result
}

func (c *Client) DeleteProject(ctx context.Context, id string) (string, error) {
	env, err := c.delete(ctx, "/api/projects/"+id)
	if err != nil {
		return "", err
	}
	if env.Message != "" {
		return env.Message, nil
	}
	return "Project deleted successfully", nil
}

func (c *Client) ToggleProjectStatus(ctx context.Context, id string, isActive bool) (*models.Project, error) {
	env, err := c.patchJSON(ctx, "/api/projects/"+id+"/toggle-status", map[string]bool{"isActive": isActive})
	if err != nil {
		return nil, err
	}
	var project models.Project
	if err := decodeData(env, &project); err != nil {
		return nil, err
	}
	return &project, nil
}
