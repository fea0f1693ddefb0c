// Package view derives render descriptors from raw posts and comments.
// Everything here is a pure projection: the same post + session input
// always yields the same descriptor. The one exception with real I/O,
// audio metadata resolution, lives in metadata.go.
package view

import (
	"strings"

	"imgboard/internal/api"
	"imgboard/internal/session"
)

// Limits holds the display thresholds a view is built against.
type Limits struct {
	MaxTextLength     int
	MaxVisibleTracks  int
	DefaultTrackTitle string
	DefaultArtist     string
}

// DefaultLimits mirrors the service's stock frontend configuration.
func DefaultLimits() Limits {
	return Limits{
		MaxTextLength:     500,
		MaxVisibleTracks:  4,
		DefaultTrackTitle: "Untitled",
		DefaultArtist:     "Unknown artist",
	}
}

// FileGroups partitions a post's files by media kind, preserving the
// original order within each group.
type FileGroups struct {
	Audio  []api.FileRef
	Images []api.FileRef
	Video  []api.FileRef
	Other  []api.FileRef
}

// GroupFiles splits files by mime-type prefix.
func GroupFiles(files []api.FileRef) FileGroups {
	var g FileGroups
	for _, f := range files {
		switch {
		case strings.HasPrefix(f.MimeType, "audio/"):
			g.Audio = append(g.Audio, f)
		case strings.HasPrefix(f.MimeType, "image/"):
			g.Images = append(g.Images, f)
		case strings.HasPrefix(f.MimeType, "video/"):
			g.Video = append(g.Video, f)
		default:
			g.Other = append(g.Other, f)
		}
	}
	return g
}

// Post is the render descriptor for one post.
type Post struct {
	Raw    api.Post
	Groups FileGroups

	// IsOwn is true iff both the session identity and the post author
	// id are present and denote the same integer.
	IsOwn bool

	// Text truncation state. Truncated equals FullText when the text
	// fits within the limit.
	FullText  string
	Truncated string
	Expanded  bool

	// Album is non-nil when the post has at least one audio file.
	Album *Album
}

// NewPost projects a raw post for the given session.
func NewPost(p api.Post, sess session.Session, limits Limits) *Post {
	groups := GroupFiles(p.Files)

	v := &Post{
		Raw:      p,
		Groups:   groups,
		IsOwn:    isOwn(p.AuthorID, sess),
		FullText: p.Text,
	}

	v.Truncated = p.Text
	if limits.MaxTextLength > 0 && len([]rune(p.Text)) > limits.MaxTextLength {
		v.Truncated = string([]rune(p.Text)[:limits.MaxTextLength])
	}

	if len(groups.Audio) > 0 {
		v.Album = newAlbum(groups.Audio, limits)
	}
	return v
}

// Text returns the text to display given the current expansion state.
func (v *Post) Text() string {
	if v.Expanded {
		return v.FullText
	}
	return v.Truncated
}

// NeedsTruncation reports whether the full text exceeds the limit.
func (v *Post) NeedsTruncation() bool { return v.Truncated != v.FullText }

// ToggleText flips between the truncated and the full text.
func (v *Post) ToggleText() { v.Expanded = !v.Expanded }

func isOwn(author api.FlexID, sess session.Session) bool {
	uid, ok := sess.Identity()
	return ok && author.Equal(api.ID(uid))
}
