package feed

import (
	"context"
	"fmt"
)

// Intent is a UI event translated into a command for the state
// machine. Hosts (CLI, tests) produce intents instead of calling
// mutation methods directly, which keeps event wiring out of the core.
type Intent interface{ isIntent() }

// RequestNextPage asks for one more page of posts.
type RequestNextPage struct{}

// ResetFeed clears the cache and cursor.
type ResetFeed struct{}

// SelectCategory switches the active filter.
type SelectCategory struct{ Category Category }

// SelectSort switches the active ordering.
type SelectSort struct {
	Key       SortKey
	Direction SortDirection
}

// CastVote votes on a post. Up false means downvote.
type CastVote struct {
	PostID int64
	Up     bool
}

// DeletePost removes an owned post.
type DeletePost struct{ PostID int64 }

func (RequestNextPage) isIntent() {}
func (ResetFeed) isIntent()       {}
func (SelectCategory) isIntent()  {}
func (SelectSort) isIntent()      {}
func (CastVote) isIntent()        {}
func (DeletePost) isIntent()      {}

// Dispatch executes one intent. Network-backed intents (paging,
// voting, deletion) apply their state change only after the server
// confirms; pure intents mutate immediately. Failures leave the state
// unchanged.
func (s *State) Dispatch(ctx context.Context, intent Intent) error {
	switch in := intent.(type) {
	case RequestNextPage:
		_, err := s.LoadNextPage(ctx)
		return err

	case ResetFeed:
		s.Reset()
		return nil

	case SelectCategory:
		s.SetCategory(in.Category)
		return nil

	case SelectSort:
		s.SetSort(in.Key, in.Direction)
		return nil

	case CastVote:
		if s.voteAuthRequired && !s.gw.HasToken() {
			return ErrNotLoggedIn
		}
		vote := s.gw.Downvote
		if in.Up {
			vote = s.gw.Upvote
		}
		updated, err := vote(ctx, in.PostID)
		if err != nil {
			return err
		}
		s.ApplyVoteResult(updated.ID, updated.Upvotes)
		return nil

	case DeletePost:
		if !s.gw.HasToken() {
			return ErrNotLoggedIn
		}
		if err := s.gw.DeletePost(ctx, in.PostID); err != nil {
			return err
		}
		s.RemovePost(in.PostID)
		return nil
	}
	return fmt.Errorf("feed: unknown intent %T", intent)
}
