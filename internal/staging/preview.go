package staging

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"shilpgroup-io/backoffice/models"

	"github.com/cloudinary/cloudinary-go"
	"github.com/cloudinary/cloudinary-go/api/uploader"
)

// LocalPreview serves previews straight from the staging directory
// through the service's /staging route.
type LocalPreview struct {
	BaseURL string
	Dir     string
}

func (p *LocalPreview) Publish(f *models.StagedFile) (string, string, error) {
	rel, err := filepath.Rel(p.Dir, f.Path)
	if err != nil {
		return "", "", err
	}
	rel = filepath.ToSlash(rel)
	return strings.TrimSuffix(p.BaseURL, "/") + "/staging/" + rel, rel, nil
}

// Release is a no-op: deleting the staged bytes retires the URL.
func (p *LocalPreview) Release(string) error {
	return nil
}

// CloudinaryPreview hosts previews on Cloudinary for deployments where
// the dashboard runs on a different origin than this service. Uploaded
// on file-select, destroyed on replace/clear.
type CloudinaryPreview struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

func (p *CloudinaryPreview) Publish(f *models.StagedFile) (string, string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Second)
	defer cancel()

	cld, err := cloudinary.NewFromParams(p.CloudName, p.APIKey, p.APISecret)
	if err != nil {
		return "", "", err
	}

	src, err := os.Open(f.Path)
	if err != nil {
		return "", "", err
	}
	defer src.Close()

	uploadRes, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: p.Folder})
	if err != nil {
		return "", "", err
	}
	return uploadRes.SecureURL, uploadRes.PublicID, nil
}

func (p *CloudinaryPreview) Release(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Second)
	defer cancel()

	cld, err := cloudinary.NewFromParams(p.CloudName, p.APIKey, p.APISecret)
	if err != nil {
		return err
	}

	_, err = cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: id})
	return err
}
