package supabase

import (
	"context"
	"encoding/json"
	"fmt"
)

// Object describes a stored blob as reported by the storage listing API.
type Object struct {
	Name           string         `json:"name"`
	ID             string         `json:"id,omitempty"`
	UpdatedAt      string         `json:"updated_at,omitempty"`
	CreatedAt      string         `json:"created_at,omitempty"`
	LastAccessedAt string         `json:"last_accessed_at,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// UploadBlob stores data under bucket/name and returns the stored object key.
func (c *Client) UploadBlob(ctx context.Context, bucket, name string, data []byte, contentType string) (string, error) {
	resp, err := c.rest.R().SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader("cache-control", "3600").
		SetBody(data).
		Post("/storage/v1/object/" + bucket + "/" + name)
	if err != nil {
		return "", transportError(err)
	}
	if resp.IsError() {
		return "", remoteErrorFrom(resp)
	}

	var created struct {
		Key string `json:"Key"`
	}
	if err := json.Unmarshal(resp.Body(), &created); err == nil && created.Key != "" {
		return created.Key, nil
	}
	return bucket + "/" + name, nil
}

// PublicURL derives the public URL for a stored object. No network call.
func (c *Client) PublicURL(bucket, name string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, bucket, name)
}

// ListBlobs returns up to limit object descriptors from bucket.
func (c *Client) ListBlobs(ctx context.Context, bucket string, limit int) ([]Object, error) {
	resp, err := c.rest.R().SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"prefix": "",
			"limit":  limit,
			"offset": 0,
			"sortBy": map[string]string{"column": "name", "order": "asc"},
		}).
		Post("/storage/v1/object/list/" + bucket)
	if err != nil {
		return nil, transportError(err)
	}
	if resp.IsError() {
		return nil, remoteErrorFrom(resp)
	}

	var objects []Object
	if err := json.Unmarshal(resp.Body(), &objects); err != nil {
		return nil, &RemoteError{Status: resp.StatusCode(), Message: "malformed listing", Details: err.Error()}
	}
	return objects, nil
}

// RemoveBlob deletes bucket/name.
func (c *Client) RemoveBlob(ctx context.Context, bucket, name string) error {
	resp, err := c.rest.R().SetContext(ctx).
		Delete("/storage/v1/object/" + bucket + "/" + name)
	if err != nil {
		return transportError(err)
	}
	if resp.IsError() {
		return remoteErrorFrom(resp)
	}
	return nil
}
