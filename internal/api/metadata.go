package api

import (
	"context"
	"fmt"
)

// FileMetadata returns the embedded audio tags for one attached file.
func (c *Client) FileMetadata(ctx context.Context, postID int64, fileID int64) (*TrackMetadata, error) {
	u := fmt.Sprintf("%s/posts/%d/files/%d/metadata", c.baseURL, postID, fileID)
	var meta TrackMetadata
	if err := c.doJSON(ctx, "GET", u, "get file metadata", "", nil, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// PostMetadata returns audio tags via the legacy single-file endpoint,
// for posts whose FileRef carries no id.
func (c *Client) PostMetadata(ctx context.Context, postID int64) (*TrackMetadata, error) {
	u := fmt.Sprintf("%s/posts/%d/metadata", c.baseURL, postID)
	var meta TrackMetadata
	if err := c.doJSON(ctx, "GET", u, "get post metadata", "", nil, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}
