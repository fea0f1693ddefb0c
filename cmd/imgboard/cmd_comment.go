package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Add and delete comments",
}

var commentAddCmd = &cobra.Command{
	Use:   "add <postID> <text>...",
	Short: "Comment on a post",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		postID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid post id %q", args[0])
		}
		text := strings.TrimSpace(strings.Join(args[1:], " "))
		if text == "" {
			return fmt.Errorf("empty comment text")
		}
		a, err := loadApp()
		if err != nil {
			return err
		}
		if err := a.requireSession(); err != nil {
			return err
		}

		comment, err := a.client.CreateComment(cmd.Context(), postID, text)
		if err != nil {
			return friendly(err)
		}
		fmt.Printf("comment %d added to post №%d\n", comment.ID, postID)
		return nil
	},
}

var commentDeleteCmd = &cobra.Command{
	Use:   "delete <postID> <commentID>",
	Short: "Delete an owned comment",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		postID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid post id %q", args[0])
		}
		commentID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid comment id %q", args[1])
		}
		a, err := loadApp()
		if err != nil {
			return err
		}
		if err := a.requireSession(); err != nil {
			return err
		}

		if err := a.client.DeleteComment(cmd.Context(), postID, commentID); err != nil {
			return friendly(err)
		}
		fmt.Printf("comment %d deleted\n", commentID)
		return nil
	},
}

func init() {
	commentCmd.AddCommand(commentAddCmd)
	commentCmd.AddCommand(commentDeleteCmd)
}
