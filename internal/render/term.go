package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"imgboard/internal/feed"
	"imgboard/internal/view"
)

// previewLength is how much post text the feed table shows per row.
const previewLength = 80

// Term renders to a terminal: a table for the feed, block layouts for
// the single-post view and comments.
type Term struct {
	w        io.Writer
	registry *Registry
}

// NewTerm returns a terminal renderer writing to w.
func NewTerm(w io.Writer) *Term {
	return &Term{w: w, registry: NewRegistry()}
}

// Registry exposes the renderer's target registry.
func (t *Term) Registry() *Registry { return t.registry }

// Feed renders the visible posts as a table.
func (t *Term) Feed(posts []*view.Post, meta FeedMeta) error {
	w := table.NewWriter()
	w.SetStyle(table.StyleLight)
	w.AppendHeader(table.Row{"#", "Date", "Author", "Kind", "Votes", "Text"})
	w.SetColumnConfigs([]table.ColumnConfig{
		{Number: 5, Align: text.AlignRight},
		{Number: 6, WidthMax: previewLength},
	})

	for _, p := range posts {
		author := p.Raw.AuthorNick
		if author == "" {
			author = "anonymous"
		}
		marker := ""
		if p.IsOwn {
			marker = " *"
		}
		w.AppendRow(table.Row{
			p.Raw.ID,
			FormatDate(p.Raw.Date.Time()),
			author + marker,
			CategoryName(feed.Classify(p.Raw)),
			p.Raw.Upvotes,
			preview(p.Text()),
		})
		t.registry.Put(Target{PostID: p.Raw.ID, Surface: FeedSurface}, "")
	}

	header := fmt.Sprintf("%s · sorted by %s · %d post(s)",
		CategoryName(meta.Category), SortName(meta.SortKey, meta.SortDir), meta.Total)
	if meta.Exhausted {
		header += " · end of feed"
	}
	if _, err := fmt.Fprintln(t.w, header); err != nil {
		return err
	}
	_, err := fmt.Fprintln(t.w, w.Render())
	return err
}

// Post renders the single-post view: header, text, attachments and
// the album block when the post has audio.
func (t *Term) Post(p *view.Post) error {
	var b strings.Builder

	author := p.Raw.AuthorNick
	if author == "" {
		author = "anonymous"
	}
	fmt.Fprintf(&b, "№%d · %s · %s · ▲ %d\n",
		p.Raw.ID, FormatDate(p.Raw.Date.Time()), author, p.Raw.Upvotes)
	if p.IsOwn {
		b.WriteString("(your post)\n")
	}

	if text := p.Text(); text != "" {
		b.WriteString("\n" + text + "\n")
		if p.NeedsTruncation() && !p.Expanded {
			fmt.Fprintf(&b, "… (%d more characters)\n", len([]rune(p.FullText))-len([]rune(p.Truncated)))
		}
	}

	if p.Album != nil {
		writeAlbum(&b, p.Album)
	}
	for _, f := range p.Groups.Images {
		fmt.Fprintf(&b, "[image] %s  %s\n", f.Name, f.URL)
	}
	for _, f := range p.Groups.Video {
		fmt.Fprintf(&b, "[video] %s  %s\n", f.Name, f.URL)
	}
	for _, f := range p.Groups.Other {
		size := ""
		if f.SizeBytes > 0 {
			size = " (" + FormatSize(f.SizeBytes) + ")"
		}
		fmt.Fprintf(&b, "[file] %s%s  %s\n", f.Name, size, f.URL)
	}

	t.registry.Put(Target{PostID: p.Raw.ID, Surface: ViewSurface}, b.String())
	_, err := fmt.Fprint(t.w, b.String())
	return err
}

func writeAlbum(b *strings.Builder, a *view.Album) {
	active := a.Active()
	fmt.Fprintf(b, "\n♪ %s — %s\n", active.Artist, active.Title)
	if cover := active.CoverURL; cover != "" {
		fmt.Fprintf(b, "  cover: %s\n", cover)
	} else if active.Cover != "" {
		b.WriteString("  cover: (embedded)\n")
	}

	if len(a.Tracks) > 1 {
		b.WriteString("  tracks:\n")
		for i, track := range a.VisibleTracks() {
			marker := "  "
			if i == a.ActiveTrack {
				marker = "▶ "
			}
			fmt.Fprintf(b, "  %s%d. %s\n", marker, i+1, track.Title)
		}
		if hidden := a.HiddenCount(); hidden > 0 {
			fmt.Fprintf(b, "    … %d more track(s)\n", hidden)
		}
	}
}

// Comments renders a comment thread.
func (t *Term) Comments(comments []view.Comment) error {
	var b strings.Builder
	if len(comments) == 0 {
		b.WriteString("no comments yet\n")
	}
	for _, c := range comments {
		author := c.Raw.AuthorNick
		if author == "" {
			author = "anonymous"
		}
		marker := ""
		if c.IsOwn {
			marker = " *"
		}
		fmt.Fprintf(&b, "[%d] %s%s · %s\n    %s\n",
			c.Raw.ID, author, marker, FormatDate(c.Raw.Date.Time()), c.Raw.Text)
	}
	_, err := fmt.Fprint(t.w, b.String())
	return err
}

// Notice prints an informational line.
func (t *Term) Notice(msg string) error {
	_, err := fmt.Fprintln(t.w, msg)
	return err
}

// Failure prints an error line.
func (t *Term) Failure(failure error) error {
	_, err := fmt.Fprintf(t.w, "error: %v\n", failure)
	return err
}

func preview(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) > previewLength {
		return string(runes[:previewLength-1]) + "…"
	}
	return s
}
