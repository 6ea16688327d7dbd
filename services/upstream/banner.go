package upstream

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"shilpgroup-io/backoffice/models"

	pkgerrors "github.com/pkg/errors"
)

// Upload pairs a form-file name with its content for the simple CRUD
// surfaces that take direct uploads rather than staged wizard files.
type Upload struct {
	Name   string
	Reader io.Reader
}

func (c *Client) GetBanners(ctx context.Context) (*models.Banners, error) {
	env, err := c.get(ctx, "/api/banners", nil)
	if err != nil {
		return nil, err
	}
	var banners models.Banners
	if err := decodeData(env, &banners); err != nil {
		return nil, err
	}
	return &banners, nil
}

// UpdateBannerImage replaces one banner image. field is "banner" or
// "mobilebanner"; the backend routes on /:section/:field.
func (c *Client) UpdateBannerImage(ctx context.Context, section, field, alt string, image *Upload) (*models.Banners, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	if err := writeUpload(w, "image", image); err != nil {
		return nil, err
	}
	if alt != "" {
		if err := w.WriteField("alt", alt); err != nil {
			return nil, pkgerrors.Wrap(err, "writing field alt")
		}
	}
	if err := w.Close(); err != nil {
		return nil, pkgerrors.Wrap(err, "closing multipart writer")
	}

	env, err := c.call(ctx, http.MethodPost, "/api/banners/"+section+"/"+field, nil, body, w.FormDataContentType())
	if err != nil {
		return nil, err
	}
	var banners models.Banners
	if err := decodeData(env, &banners); err != nil {
		return nil, err
	}
	return &banners, nil
}

func (c *Client) UpdateBannerAlt(ctx context.Context, section, alt string) (*models.Banners, error) {
	env, err := c.putJSON(ctx, "/api/banners/"+section+"/alt", map[string]string{"alt": alt})
	if err != nil {
		return nil, err
	}
	var banners models.Banners
	if err := decodeData(env, &banners); err != nil {
		return nil, err
	}
	return &banners, nil
}

func writeUpload(w *multipart.Writer, field string, u *Upload) error {
	if u == nil {
		return nil
	}
	part, err := w.CreateFormFile(field, u.Name)
	if err != nil {
		return pkgerrors.Wrapf(err, "creating file part %s", field)
	}
	if _, err := io.Copy(part, u.Reader); err != nil {
		return pkgerrors.Wrapf(err, "copying upload into %s", field)
	}
	return nil
}
