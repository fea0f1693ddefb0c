package feed

import (
	"fmt"
	"strings"

	"imgboard/internal/api"
)

// Category is the coarse content-type filter applied to posts.
type Category string

const (
	CategoryAll   Category = "all"
	CategoryImage Category = "image"
	CategoryVideo Category = "video"
	CategoryAudio Category = "audio"
	CategoryText  Category = "text"
	CategoryOther Category = "other"
)

// ParseCategory validates a user-supplied category name.
func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(s)); c {
	case CategoryAll, CategoryImage, CategoryVideo, CategoryAudio, CategoryText, CategoryOther:
		return c, nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Classify assigns a post to exactly one category, so that iterating
// the non-all categories partitions any post set. A post with no files
// is text; otherwise the media groups are checked in album precedence
// order (audio first, matching how a mixed audio+cover post is
// treated as an album), then other.
func Classify(p api.Post) Category {
	if len(p.Files) == 0 {
		return CategoryText
	}
	for _, group := range []Category{CategoryAudio, CategoryImage, CategoryVideo} {
		if hasGroup(p, group) {
			return group
		}
	}
	return CategoryOther
}

// Matches reports whether a post belongs to the given filter category.
func Matches(p api.Post, c Category) bool {
	if c == CategoryAll {
		return true
	}
	return Classify(p) == c
}

func hasGroup(p api.Post, group Category) bool {
	prefix := string(group) + "/"
	for _, f := range p.Files {
		if strings.HasPrefix(f.MimeType, prefix) {
			return true
		}
	}
	return false
}
