package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"imgboard/internal/api"
)

var voteCmd = &cobra.Command{
	Use:   "vote",
	Short: "Vote on a post",
}

var voteUpCmd = &cobra.Command{
	Use:   "up <id>",
	Short: "Upvote a post",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return castVote(cmd, args[0], true) },
}

var voteDownCmd = &cobra.Command{
	Use:   "down <id>",
	Short: "Downvote a post",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return castVote(cmd, args[0], false) },
}

func init() {
	voteCmd.AddCommand(voteUpCmd)
	voteCmd.AddCommand(voteDownCmd)
}

// castVote sends the vote and prints the confirmed count. Nothing is
// shown optimistically: a failed request changes nothing.
func castVote(cmd *cobra.Command, rawID string, up bool) error {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid post id %q", rawID)
	}
	a, err := loadApp()
	if err != nil {
		return err
	}
	if a.cfg.VotesRequireAuth {
		if err := a.requireSession(); err != nil {
			return err
		}
	}

	vote := a.client.Downvote
	if up {
		vote = a.client.Upvote
	}
	var post *api.Post
	if post, err = vote(cmd.Context(), id); err != nil {
		return friendly(err)
	}
	fmt.Printf("post №%d now at %d vote(s)\n", post.ID, post.Upvotes)
	return nil
}
