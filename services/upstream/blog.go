package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"

	"shilpgroup-io/backoffice/models"

	pkgerrors "github.com/pkg/errors"
)

func (c *Client) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	env, err := c.get(ctx, "/api/blogs", nil)
	if err != nil {
		return nil, err
	}
	var blogs []models.Blog
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &blogs); err != nil {
			return nil, pkgerrors.Wrap(err, "decoding upstream data")
		}
	}
	return blogs, nil
}

func (c *Client) GetBlog(ctx context.Context, id string) (*models.Blog, error) {
	env, err := c.get(ctx, "/api/blogs/"+id, nil)
	if err != nil {
		return nil, err
	}
	var blog models.Blog
	if err := decodeData(env, &blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

// CreateBlog posts the blog as multipart: scalar fields plus the points
// array as a JSON string, the cover image under "image" and per-point
// images under "point_N_image" keyed by point index.
func (c *Client) CreateBlog(ctx context.Context, input models.BlogInput, image *Upload, pointImages map[int]*Upload) (*models.Blog, error) {
	return c.sendBlog(ctx, http.MethodPost, "/api/blogs", input, image, pointImages)
}

func (c *Client) UpdateBlog(ctx context.Context, id string, input models.BlogInput, image *Upload, pointImages map[int]*Upload) (*models.Blog, error) {
	return c.sendBlog(ctx, http.MethodPut, "/api/blogs/"+id, input, image, pointImages)
}

func (c *Client) sendBlog(ctx context.Context, method, path string, input models.BlogInput, image *Upload, pointImages map[int]*Upload) (*models.Blog, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	publish := input.Publish
	if publish == "" {
		publish = "By Shilp Group"
	}
	status := input.Status
	if status == "" {
		status = models.BlogStatusDraft
	}

	fields := []struct {
		name  string
		value string
	}{
		{"title", input.Title},
		{"description", input.Description},
		{"publish", publish},
		{"date", input.Date},
		{"url", input.URL},
		{"alt", input.Alt},
		{"status", string(status)},
	}
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, pkgerrors.Wrapf(err, "writing field %s", f.name)
		}
	}

	points, err := json.Marshal(input.Points)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "encoding points")
	}
	if err := w.WriteField("points", string(points)); err != nil {
		return nil, pkgerrors.Wrap(err, "writing field points")
	}

	if err := writeUpload(w, "image", image); err != nil {
		return nil, err
	}
	for idx, u := range pointImages {
		if err := writeUpload(w, fmt.Sprintf("point_%d_image", idx), u); err != nil {
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, pkgerrors.Wrap(err, "closing multipart writer")
	}

	env, err := c.call(ctx, method, path, nil, body, w.FormDataContentType())
	if err != nil {
		return nil, err
	}
	var blog models.Blog
	if err := decodeData(env, &blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

func (c *Client) DeleteBlog(ctx context.Context, id string) (string, error) {
	env, err := c.delete(ctx, "/api/blogs/"+id)
	if err != nil {
		return "", err
	}
	if env.Message != "" {
		return env.Message, nil
	}
	return "Blog deleted successfully", nil
}
