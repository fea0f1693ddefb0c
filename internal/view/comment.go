package view

import (
	"imgboard/internal/api"
	"imgboard/internal/session"
)

// Comment is the render descriptor for one comment.
type Comment struct {
	Raw   api.Comment
	IsOwn bool
}

// NewComment projects a raw comment for the given session.
func NewComment(c api.Comment, sess session.Session) Comment {
	return Comment{Raw: c, IsOwn: isOwn(c.AuthorID, sess)}
}

// VisibleComments projects a fetched batch, dropping soft-deleted
// comments so they are never rendered.
func VisibleComments(comments []api.Comment, sess session.Session) []Comment {
	visible := make([]Comment, 0, len(comments))
	for _, c := range comments {
		if c.IsDeleted {
			continue
		}
		visible = append(visible, NewComment(c, sess))
	}
	return visible
}
