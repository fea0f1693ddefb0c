package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

type commentRQ struct {
	Text string `json:"text"`
}

// ListComments returns all comments on a post, including soft-deleted
// ones when the backend chooses to send them.
func (c *Client) ListComments(ctx context.Context, postID int64) ([]Comment, error) {
	u := fmt.Sprintf("%s/posts/%d/comments", c.baseURL, postID)
	var comments []Comment
	if err := c.doJSON(ctx, "GET", u, "list comments", "", nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// CreateComment posts a reply and returns the stored comment.
func (c *Client) CreateComment(ctx context.Context, postID int64, text string) (*Comment, error) {
	payload, err := json.Marshal(commentRQ{Text: text})
	if err != nil {
		return nil, fmt.Errorf("create comment: marshal request: %w", err)
	}

	u := fmt.Sprintf("%s/posts/%d/comments", c.baseURL, postID)
	var comment Comment
	if err := c.doJSON(ctx, "POST", u, "create comment", "application/json", bytes.NewReader(payload), &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment removes a comment. The backend enforces ownership.
func (c *Client) DeleteComment(ctx context.Context, postID, commentID int64) error {
	u := fmt.Sprintf("%s/posts/%d/comments/%d", c.baseURL, postID, commentID)
	return c.doJSON(ctx, "DELETE", u, "delete comment", "", nil, nil)
}
