package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"imgboard/internal/feed"
	"imgboard/internal/render"
	"imgboard/internal/view"
)

var (
	feedPages     int
	feedCategory  string
	feedSort      string
	feedDirection string
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Browse the post feed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		if err := a.requireSession(); err != nil {
			return err
		}

		category, err := feed.ParseCategory(feedCategory)
		if err != nil {
			return err
		}
		sortKey, sortDir, err := feed.ParseSort(feedSort, feedDirection)
		if err != nil {
			return err
		}

		state := feed.New(a.client,
			feed.WithPageSize(a.cfg.PageSize),
			feed.WithVoteAuthRequired(a.cfg.VotesRequireAuth),
		)
		ctx := cmd.Context()
		if err := state.Dispatch(ctx, feed.SelectCategory{Category: category}); err != nil {
			return err
		}
		if err := state.Dispatch(ctx, feed.SelectSort{Key: sortKey, Direction: sortDir}); err != nil {
			return err
		}

		for page := 0; page < feedPages && !state.Exhausted(); page++ {
			if err := state.Dispatch(ctx, feed.RequestNextPage{}); err != nil {
				if errors.Is(err, feed.ErrNotLoggedIn) {
					return err
				}
				return friendly(err)
			}
		}

		visible := state.VisiblePosts()
		views := make([]*view.Post, len(visible))
		for i, p := range visible {
			views[i] = view.NewPost(p, a.sess, a.limits)
		}

		term := render.NewTerm(os.Stdout)
		return term.Feed(views, render.FeedMeta{
			Category:  state.Category(),
			SortKey:   sortKey,
			SortDir:   sortDir,
			Total:     len(visible),
			Exhausted: state.Exhausted(),
		})
	},
}

func init() {
	feedCmd.Flags().IntVar(&feedPages, "pages", 1, "number of pages to fetch")
	feedCmd.Flags().StringVar(&feedCategory, "category", "all", "filter: all, image, video, audio, text, other")
	feedCmd.Flags().StringVar(&feedSort, "sort", "date", "sort key: date or upvotes")
	feedCmd.Flags().StringVar(&feedDirection, "direction", "desc", "sort direction: asc or desc")
}
