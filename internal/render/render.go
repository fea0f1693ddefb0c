// Package render is the presentation boundary. The core hands it view
// descriptors; how they become pixels or characters is this package's
// business alone. State lives in the feed and view packages, never
// here.
package render

import (
	"imgboard/internal/feed"
	"imgboard/internal/view"
)

// Surface distinguishes the two places a post can be rendered.
type Surface int

const (
	// FeedSurface is the post's row/card in the feed listing.
	FeedSurface Surface = iota
	// ViewSurface is the dedicated single-post page.
	ViewSurface
)

// Target identifies one rendered block: which post, on which surface.
// It replaces the string-concatenated element ids the original client
// used to find its blocks.
type Target struct {
	PostID  int64
	Surface Surface
}

// FeedMeta describes the feed state a listing was produced from.
type FeedMeta struct {
	Category  feed.Category
	SortKey   feed.SortKey
	SortDir   feed.SortDirection
	Total     int
	Exhausted bool
}

// Renderer consumes view descriptors and produces output. The core
// never renders on its own; every display mutation flows through this
// contract.
type Renderer interface {
	Feed(posts []*view.Post, meta FeedMeta) error
	Post(p *view.Post) error
	Comments(comments []view.Comment) error
	Notice(msg string) error
	Failure(err error) error
}

// Registry tracks what has been rendered where. Re-rendering a target
// replaces its block in place; the insertion order of first renders is
// preserved.
type Registry struct {
	blocks map[Target]string
	order  []Target
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{blocks: make(map[Target]string)}
}

// Put stores the rendered block for a target.
func (r *Registry) Put(t Target, block string) {
	if _, ok := r.blocks[t]; !ok {
		r.order = append(r.order, t)
	}
	r.blocks[t] = block
}

// Get returns the current block for a target.
func (r *Registry) Get(t Target) (string, bool) {
	block, ok := r.blocks[t]
	return block, ok
}

// Remove drops a target, e.g. after its post is deleted.
func (r *Registry) Remove(t Target) {
	if _, ok := r.blocks[t]; !ok {
		return
	}
	delete(r.blocks, t)
	for i, o := range r.order {
		if o == t {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Targets returns all registered targets in first-render order.
func (r *Registry) Targets() []Target {
	out := make([]Target, len(r.order))
	copy(out, r.order)
	return out
}
