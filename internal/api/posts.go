package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"strconv"
)

// ListPosts returns one page of posts. skip/limit map directly onto
// the backend's pagination parameters; includeDeleted is surfaced for
// moderation tooling and is normally false.
func (c *Client) ListPosts(ctx context.Context, skip, limit int, includeDeleted bool) ([]Post, error) {
	params := url.Values{}
	params.Set("skip", strconv.Itoa(skip))
	params.Set("limit", strconv.Itoa(limit))
	params.Set("include_deleted", strconv.FormatBool(includeDeleted))

	u := fmt.Sprintf("%s/posts?%s", c.baseURL, params.Encode())
	var posts []Post
	if err := c.doJSON(ctx, "GET", u, "list posts", "", nil, &posts); err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].normalize()
	}
	return posts, nil
}

// GetPost returns a single post by id.
func (c *Client) GetPost(ctx context.Context, id int64) (*Post, error) {
	u := fmt.Sprintf("%s/posts/%d", c.baseURL, id)
	var post Post
	if err := c.doJSON(ctx, "GET", u, "get post", "", nil, &post); err != nil {
		return nil, err
	}
	post.normalize()
	return &post, nil
}

// Attachment is one file to upload with a new post.
type Attachment struct {
	FileName    string
	ContentType string
	Data        io.Reader
}

// CreatePost submits a new post as multipart form data: a "text" field
// plus one "files" part per attachment.
func (c *Client) CreatePost(ctx context.Context, text string, attachments []Attachment) (*Post, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("text", text); err != nil {
		return nil, fmt.Errorf("create post: write text field: %w", err)
	}
	for _, a := range attachments {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="files"; filename=%q`, a.FileName))
		contentType := a.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)

		part, err := w.CreatePart(header)
		if err != nil {
			return nil, fmt.Errorf("create post: create file part: %w", err)
		}
		if _, err := io.Copy(part, a.Data); err != nil {
			return nil, fmt.Errorf("create post: copy %s: %w", a.FileName, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("create post: finalize form: %w", err)
	}

	u := c.baseURL + "/posts"
	var post Post
	if err := c.doJSON(ctx, "POST", u, "create post", w.FormDataContentType(), &buf, &post); err != nil {
		return nil, err
	}
	post.normalize()
	return &post, nil
}

// DeletePost removes a post. The backend enforces ownership; a
// foreign post yields a Forbidden error.
func (c *Client) DeletePost(ctx context.Context, id int64) error {
	u := fmt.Sprintf("%s/posts/%d", c.baseURL, id)
	return c.doJSON(ctx, "DELETE", u, "delete post", "", nil, nil)
}

// Upvote increments a post's score and returns the updated post.
func (c *Client) Upvote(ctx context.Context, id int64) (*Post, error) {
	return c.vote(ctx, id, "upvote")
}

// Downvote decrements a post's score and returns the updated post.
func (c *Client) Downvote(ctx context.Context, id int64) (*Post, error) {
	return c.vote(ctx, id, "downvote")
}

func (c *Client) vote(ctx context.Context, id int64, direction string) (*Post, error) {
	u := fmt.Sprintf("%s/posts/%d/%s", c.baseURL, id, direction)
	var post Post
	if err := c.doJSON(ctx, "POST", u, direction, "", nil, &post); err != nil {
		return nil, err
	}
	post.normalize()
	return &post, nil
}
