package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
)

// UploadAvatar stores an avatar image in the object bucket and returns
// its public URL. Existing objects at the same path are replaced.
func (c *Client) UploadAvatar(ctx context.Context, token, userID, filename, contentType string, body io.Reader) (string, error) {
	objectPath := path.Join(c.avatarBucket, userID, filename)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/storage/v1/object/"+objectPath, body)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload avatar: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return "", c.decodeError(resp)
	}
	return c.baseURL + "/storage/v1/object/public/" + objectPath, nil
}
