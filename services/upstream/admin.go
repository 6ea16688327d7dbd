package upstream

import (
	"context"

	"shilpgroup-io/backoffice/models"
)

// Login exchanges admin credentials for the upstream bearer token and
// profile blob.
func (c *Client) Login(ctx context.Context, creds models.AdminLoginRequest) (*models.AdminLoginResult, error) {
	env, err := c.postJSON(ctx, "/api/admin/login", creds)
	if err != nil {
		return nil, err
	}
	var result models.AdminLoginResult
	if err := decodeData(env, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// VerifyToken asks the backend whether a stored token is still good. A
// failure here means the session is dead; the caller must force logout,
// never retry silently.
func (c *Client) VerifyToken(ctx context.Context, token string) (*models.AdminVerifyResult, error) {
	env, err := c.postJSON(ctx, "/api/admin/verify-token", map[string]string{"token": token})
	if err != nil {
		return nil, err
	}
	var result models.AdminVerifyResult
	if err := decodeData(env, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Profile(ctx context.Context) (*models.Admin, error) {
	env, err := c.get(ctx, "/api/admin/profile", nil)
	if err != nil {
		return nil, err
	}
	var admin models.Admin
	if err := decodeData(env, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	env, err := c.postJSON(ctx, "/api/admin/forgot-password", map[string]string{"email": email})
	if err != nil {
		return "", err
	}
	var data struct {
		Message string `json:"message"`
	}
	if err := decodeData(env, &data); err != nil {
		return "", err
	}
	return data.Message, nil
}
