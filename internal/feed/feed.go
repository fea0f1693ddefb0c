// Package feed owns the authoritative client-side post collection:
// pagination cursor, category filter and sort order. All mutation goes
// through State's methods (single writer); the visible subset is
// always recomputed from state via VisiblePosts, never hand-edited.
package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"imgboard/internal/api"
)

// DefaultPageSize matches the backend's default listing window.
const DefaultPageSize = 50

// ErrNotLoggedIn is returned when an operation needs a session token
// and the gateway has none. Callers surface it as a login prompt.
var ErrNotLoggedIn = errors.New("feed: not logged in")

// ErrLoadInProgress rejects overlapping page loads; pagination is
// strictly sequential so the cursor only advances after a page has
// been incorporated.
var ErrLoadInProgress = errors.New("feed: page load already in progress")

// SortKey selects the post attribute the feed is ordered by.
type SortKey string

const (
	SortByDate    SortKey = "date"
	SortByUpvotes SortKey = "upvotes"
)

// SortDirection flips the comparator sign.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// ParseSort validates user-supplied sort parameters.
func ParseSort(key, direction string) (SortKey, SortDirection, error) {
	k := SortKey(strings.ToLower(key))
	if k != SortByDate && k != SortByUpvotes {
		return "", "", fmt.Errorf("unknown sort key %q", key)
	}
	d := SortDirection(strings.ToLower(direction))
	if d != Ascending && d != Descending {
		return "", "", fmt.Errorf("unknown sort direction %q", direction)
	}
	return k, d, nil
}

// Gateway is the slice of the API client the state machine drives.
type Gateway interface {
	HasToken() bool
	ListPosts(ctx context.Context, skip, limit int, includeDeleted bool) ([]api.Post, error)
	Upvote(ctx context.Context, id int64) (*api.Post, error)
	Downvote(ctx context.Context, id int64) (*api.Post, error)
	DeletePost(ctx context.Context, id int64) error
}

// State is the feed state machine.
type State struct {
	gw       Gateway
	logger   *slog.Logger
	pageSize int

	// Vote intents are refused locally without a session when set;
	// otherwise the server is left to decide (deployments disagree on
	// whether voting needs auth).
	voteAuthRequired bool

	posts     []api.Post
	seen      map[int64]struct{}
	cursor    int
	loading   bool
	exhausted bool

	category Category
	sortKey  SortKey
	sortDir  SortDirection
}

// StateOption configures a State during construction.
type StateOption func(*State)

// WithPageSize overrides the pagination window.
func WithPageSize(n int) StateOption {
	return func(s *State) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// WithLogger configures structured logging.
func WithLogger(l *slog.Logger) StateOption {
	return func(s *State) { s.logger = l }
}

// WithVoteAuthRequired makes vote intents fail fast without a session.
func WithVoteAuthRequired(required bool) StateOption {
	return func(s *State) { s.voteAuthRequired = required }
}

// New returns an empty feed over the given gateway: cursor at zero,
// category all, newest first.
func New(gw Gateway, opts ...StateOption) *State {
	s := &State{
		gw:       gw,
		pageSize: DefaultPageSize,
		seen:     make(map[int64]struct{}),
		category: CategoryAll,
		sortKey:  SortByDate,
		sortDir:  Descending,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// Reset clears the post cache and zeroes the cursor. No network call.
func (s *State) Reset() {
	s.posts = nil
	s.seen = make(map[int64]struct{})
	s.cursor = 0
	s.exhausted = false
}

// LoadNextPage fetches the next page and appends it, deduplicating by
// id (a post already present keeps its first position). The cursor
// advances only after the page is incorporated. short reports that the
// returned page was smaller than the page size, i.e. the caller should
// stop paginating. On error the state is left unchanged and safe to
// retry.
func (s *State) LoadNextPage(ctx context.Context) (short bool, err error) {
	if !s.gw.HasToken() {
		return false, ErrNotLoggedIn
	}
	if s.loading {
		return false, ErrLoadInProgress
	}
	s.loading = true
	defer func() { s.loading = false }()

	page, err := s.gw.ListPosts(ctx, s.cursor*s.pageSize, s.pageSize, false)
	if err != nil {
		return false, err
	}

	appended := 0
	for _, p := range page {
		if _, dup := s.seen[p.ID]; dup {
			continue
		}
		s.seen[p.ID] = struct{}{}
		s.posts = append(s.posts, p)
		appended++
	}
	s.cursor++

	short = len(page) < s.pageSize
	if short {
		s.exhausted = true
	}
	s.logger.Debug("page loaded",
		"page", s.cursor, "received", len(page), "appended", appended, "short", short)
	return short, nil
}

// Exhausted reports whether a previous load returned a short page.
// Reset clears it.
func (s *State) Exhausted() bool { return s.exhausted }

// Cursor returns the number of pages consumed since the last reset.
func (s *State) Cursor() int { return s.cursor }

// Len returns the number of cached posts across all categories.
func (s *State) Len() int { return len(s.posts) }

// SetCategory changes the active filter. No network call.
func (s *State) SetCategory(c Category) { s.category = c }

// Category returns the active filter.
func (s *State) Category() Category { return s.category }

// SetSort changes the active ordering. No network call.
func (s *State) SetSort(key SortKey, dir SortDirection) {
	s.sortKey = key
	s.sortDir = dir
}

// Sort returns the active sort key and direction.
func (s *State) Sort() (SortKey, SortDirection) { return s.sortKey, s.sortDir }

// ApplyVoteResult updates a post's confirmed upvote count in place.
// A missing post is a no-op: it may have been removed while the vote
// was in flight.
func (s *State) ApplyVoteResult(postID int64, upvotes int64) {
	for i := range s.posts {
		if s.posts[i].ID == postID {
			s.posts[i].Upvotes = upvotes
			return
		}
	}
}

// RemovePost deletes a post from the cache. Unknown ids are ignored.
func (s *State) RemovePost(postID int64) {
	for i := range s.posts {
		if s.posts[i].ID == postID {
			s.posts = slices.Delete(s.posts, i, i+1)
			delete(s.seen, postID)
			return
		}
	}
}

// Post returns the cached post with the given id, if present.
func (s *State) Post(postID int64) (api.Post, bool) {
	for _, p := range s.posts {
		if p.ID == postID {
			return p, true
		}
	}
	return api.Post{}, false
}

// VisiblePosts projects the cache through the active category filter
// and sort order. It is a pure function of the current state: the sort
// is stable, so equal keys preserve fetch order, and repeated calls
// with unchanged state yield identical output.
func (s *State) VisiblePosts() []api.Post {
	visible := make([]api.Post, 0, len(s.posts))
	for _, p := range s.posts {
		if Matches(p, s.category) {
			visible = append(visible, p)
		}
	}

	sign := 1
	if s.sortDir == Descending {
		sign = -1
	}
	slices.SortStableFunc(visible, func(a, b api.Post) int {
		var cmp int
		switch s.sortKey {
		case SortByUpvotes:
			cmp = compareInt64(a.Upvotes, b.Upvotes)
		default:
			cmp = a.Date.Time().Compare(b.Date.Time())
		}
		return sign * cmp
	})
	return visible
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
