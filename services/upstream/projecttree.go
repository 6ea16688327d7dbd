package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"shilpgroup-io/backoffice/models"

	pkgerrors "github.com/pkg/errors"
)

func (c *Client) ListProjectTree(ctx context.Context, filters models.ProjectTreeFilters) ([]models.ProjectTree, error) {
	query := url.Values{}
	if filters.Year > 0 {
		query.Set("year", strconv.Itoa(filters.Year))
	}
	if filters.TypeOfProject != "" {
		query.Set("typeofproject", filters.TypeOfProject)
	}
	if filters.Search != "" {
		query.Set("search", filters.Search)
	}

	env, err := c.get(ctx, "/api/projecttree", query)
	if err != nil {
		return nil, err
	}
	var entries []models.ProjectTree
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &entries); err != nil {
			return nil, pkgerrors.Wrap(err, "decoding upstream data")
		}
	}
	return entries, nil
}

func (c *Client) GetProjectTree(ctx context.Context, id string) (*models.ProjectTree, error) {
	env, err := c.get(ctx, "/api/projecttree/"+id, nil)
	if err != nil {
		return nil, err
	}
	var entry models.ProjectTree
	if err := decodeData(env, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *Client) CreateProjectTree(ctx context.Context, input models.ProjectTreeInput, image *Upload) (*models.ProjectTree, error) {
	return c.sendProjectTree(ctx, http.MethodPost, "/api/projecttree", input, image)
}

func (c *Client) UpdateProjectTree(ctx context.Context, id string, input models.ProjectTreeInput, image *Upload) (*models.ProjectTree, error) {
	return c.sendProjectTree(ctx, http.MethodPut, "/api/projecttree/"+id, input, image)
}

func (c *Client) sendProjectTree(ctx context.Context, method, path string, input models.ProjectTreeInput, image *Upload) (*models.ProjectTree, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	fields := []struct {
		name  string
		value string
	}{
		{"no", strconv.Itoa(input.No)},
		{"year", strconv.Itoa(input.Year)},
		{"title", input.Title},
		{"location", input.Location},
		{"typeofproject", string(input.TypeOfProject)},
	}
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, pkgerrors.Wrapf(err, "writing field %s", f.name)
		}
	}
	if err := writeUpload(w, "image", image); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, pkgerrors.Wrap(err, "closing multipart writer")
	}

	env, err := c.call(ctx, method, path, nil, body, w.FormDataContentType())
	if err != nil {
		return nil, err
	}
	var entry models.ProjectTree
	if err := decodeData(env, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *Client) DeleteProjectTree(ctx context.Context, id string) (string, error) {
	env, err := c.delete(ctx, "/api/projecttree/"+id)
	if err != nil {
		return "", err
	}
	if env.Message != "" {
		return env.Message, nil
	}
	return "Project tree entry deleted successfully", nil
}

func (c *Client) ProjectTreeStatistics(ctx context.Context) (*models.ProjectTreeStats, error) {
	env, err := c.get(ctx, "/api/projecttree/statistics", nil)
	if err != nil {
		return nil, err
	}
	var stats models.ProjectTreeStats
	if err := decodeData(env, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
