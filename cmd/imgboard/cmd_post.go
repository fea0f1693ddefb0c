package main

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"imgboard/internal/api"
	"imgboard/internal/render"
	"imgboard/internal/view"
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "View, create and delete posts",
}

var postViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show one post with its comments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid post id %q", args[0])
		}
		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		post, err := a.client.GetPost(ctx, id)
		if err != nil {
			return friendly(err)
		}
		v := view.NewPost(*post, a.sess, a.limits)
		v.Expanded = true // the dedicated view never truncates

		if v.Album != nil {
			v.Album.Tracks = view.ResolveTracks(ctx, a.client, post.ID, v.Album.Tracks, a.limits)
		}

		term := render.NewTerm(os.Stdout)
		if err := term.Post(v); err != nil {
			return err
		}

		comments, err := a.client.ListComments(ctx, id)
		if err != nil {
			// The post rendered; a comment failure is inline, not fatal.
			return term.Failure(friendly(err))
		}
		fmt.Println()
		return term.Comments(view.VisibleComments(comments, a.sess))
	},
}

var (
	createText  string
	createFiles []string
)

var postCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a post with optional file attachments",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		if err := a.requireSession(); err != nil {
			return err
		}
		if createText == "" && len(createFiles) == 0 {
			return fmt.Errorf("a post needs text or at least one --file")
		}

		attachments := make([]api.Attachment, 0, len(createFiles))
		handles := make([]*os.File, 0, len(createFiles))
		defer func() {
			for _, h := range handles {
				h.Close()
			}
		}()
		for _, path := range createFiles {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open attachment: %w", err)
			}
			handles = append(handles, f)
			attachments = append(attachments, api.Attachment{
				FileName:    filepath.Base(path),
				ContentType: mime.TypeByExtension(filepath.Ext(path)),
				Data:        f,
			})
		}

		post, err := a.client.CreatePost(cmd.Context(), createText, attachments)
		if err != nil {
			return friendly(err)
		}
		fmt.Printf("created post №%d\n", post.ID)
		return nil
	},
}

var postDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an owned post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid post id %q", args[0])
		}
		a, err := loadApp()
		if err != nil {
			return err
		}
		if err := a.requireSession(); err != nil {
			return err
		}
		if err := a.client.DeletePost(cmd.Context(), id); err != nil {
			return friendly(err)
		}
		fmt.Printf("deleted post №%d\n", id)
		return nil
	},
}

func init() {
	postCreateCmd.Flags().StringVar(&createText, "text", "", "post text")
	postCreateCmd.Flags().StringArrayVar(&createFiles, "file", nil, "attachment path (repeatable)")

	postCmd.AddCommand(postViewCmd)
	postCmd.AddCommand(postCreateCmd)
	postCmd.AddCommand(postDeleteCmd)
}
