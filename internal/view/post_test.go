package view

import (
	"encoding/json"
	"strings"
	"testing"

	"imgboard/internal/api"
	"imgboard/internal/session"
)

func TestGroupFiles(t *testing.T) {
	files := []api.FileRef{
		{Name: "a.mp3", MimeType: "audio/mpeg"},
		{Name: "b.jpg", MimeType: "image/jpeg"},
		{Name: "c.mp4", MimeType: "video/mp4"},
		{Name: "d.ogg", MimeType: "audio/ogg"},
		{Name: "e.pdf", MimeType: "application/pdf"},
	}
	g := GroupFiles(files)
	if len(g.Audio) != 2 || g.Audio[0].Name != "a.mp3" || g.Audio[1].Name != "d.ogg" {
		t.Errorf("audio group: %+v", g.Audio)
	}
	if len(g.Images) != 1 || len(g.Video) != 1 || len(g.Other) != 1 {
		t.Errorf("groups: images=%d video=%d other=%d", len(g.Images), len(g.Video), len(g.Other))
	}
}

func TestNewPost_Truncation(t *testing.T) {
	limits := DefaultLimits()
	limits.MaxTextLength = 10

	long := "абвгдежзийклмн" // 14 runes; byte length would over-count
	v := NewPost(api.Post{ID: 1, Text: long}, session.Session{}, limits)

	if !v.NeedsTruncation() {
		t.Fatal("expected truncation")
	}
	if v.Truncated != "абвгдежзий" {
		t.Errorf("truncated = %q", v.Truncated)
	}
	if v.Text() != v.Truncated {
		t.Error("collapsed view must show truncated text")
	}
	v.ToggleText()
	if v.Text() != long {
		t.Error("expanded view must show full text")
	}
	v.ToggleText()
	if v.Text() != v.Truncated {
		t.Error("toggle must collapse again")
	}
}

func TestNewPost_ShortTextNotTruncated(t *testing.T) {
	v := NewPost(api.Post{Text: "short"}, session.Session{}, DefaultLimits())
	if v.NeedsTruncation() {
		t.Error("short text must not be truncated")
	}
	if v.Text() != "short" {
		t.Errorf("text = %q", v.Text())
	}
}

func TestNewPost_ExactLimitNotTruncated(t *testing.T) {
	limits := DefaultLimits()
	limits.MaxTextLength = 5
	v := NewPost(api.Post{Text: strings.Repeat("x", 5)}, session.Session{}, limits)
	if v.NeedsTruncation() {
		t.Error("text at exactly the limit must not be truncated")
	}
}

func TestNewPost_AlbumOnlyForAudio(t *testing.T) {
	withAudio := api.Post{Files: []api.FileRef{{Name: "a.mp3", MimeType: "audio/mpeg"}}}
	if v := NewPost(withAudio, session.Session{}, DefaultLimits()); v.Album == nil {
		t.Error("expected album for audio post")
	}

	noAudio := api.Post{Files: []api.FileRef{{Name: "b.jpg", MimeType: "image/jpeg"}}}
	if v := NewPost(noAudio, session.Session{}, DefaultLimits()); v.Album != nil {
		t.Error("unexpected album for image post")
	}
}

func TestIsOwn(t *testing.T) {
	sess := session.Session{Token: "tok", UserID: 7, Nickname: "alice"}

	cases := []struct {
		name   string
		author api.FlexID
		sess   session.Session
		want   bool
	}{
		{"matching id", api.ID(7), sess, true},
		{"different id", api.ID(8), sess, false},
		{"anonymous author", api.FlexID{}, sess, false},
		{"logged out", api.ID(7), session.Session{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := NewPost(api.Post{AuthorID: tc.author}, tc.sess, DefaultLimits())
			if v.IsOwn != tc.want {
				t.Errorf("IsOwn = %v, want %v", v.IsOwn, tc.want)
			}
		})
	}
}

// Ownership must hold even when the backend serializes the author id as
// a numeric string.
func TestIsOwn_StringAuthorID(t *testing.T) {
	var p api.Post
	if err := json.Unmarshal([]byte(`{"id":1,"author_id":"7"}`), &p); err != nil {
		t.Fatal(err)
	}
	sess := session.Session{Token: "tok", UserID: 7, Nickname: "alice"}
	if v := NewPost(p, sess, DefaultLimits()); !v.IsOwn {
		t.Error("string-encoded author id must still match the session")
	}
}

func TestVisibleComments(t *testing.T) {
	sess := session.Session{Token: "tok", UserID: 7, Nickname: "alice"}
	comments := []api.Comment{
		{ID: 1, AuthorID: api.ID(7), Text: "mine"},
		{ID: 2, AuthorID: api.ID(8), Text: "theirs"},
		{ID: 3, AuthorID: api.ID(7), Text: "gone", IsDeleted: true},
	}
	visible := VisibleComments(comments, sess)
	if len(visible) != 2 {
		t.Fatalf("expected 2 visible comments, got %d", len(visible))
	}
	if !visible[0].IsOwn || visible[1].IsOwn {
		t.Errorf("ownership: %v %v", visible[0].IsOwn, visible[1].IsOwn)
	}
	for _, c := range visible {
		if c.Raw.IsDeleted {
			t.Error("deleted comment leaked into the visible set")
		}
	}
}
