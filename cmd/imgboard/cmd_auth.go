package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"imgboard/internal/api"
	"imgboard/internal/session"
)

var loginPassword string

var loginCmd = &cobra.Command{
	Use:   "login <user>",
	Short: "Log in and store the session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		password, err := resolvePassword(cmd)
		if err != nil {
			return err
		}
		return establishSession(cmd, a, args[0], password, "")
	},
}

var (
	registerPassword string
	registerNick     string
)

var registerCmd = &cobra.Command{
	Use:   "register <user>",
	Short: "Create an account and log in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		password, err := resolvePassword(cmd)
		if err != nil {
			return err
		}
		nick := registerNick
		if nick == "" {
			nick = args[0]
		}
		return establishSession(cmd, a, args[0], password, nick)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		if err := a.store.ClearSession(); err != nil {
			return err
		}
		fmt.Println("logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		if err := a.requireSession(); err != nil {
			return err
		}

		profile, err := a.client.Profile(cmd.Context())
		if err != nil {
			// A rejected profile fetch means the token is dead; the
			// stored session goes with it.
			if api.IsUnauthorized(err) {
				_ = a.store.ClearSession()
			}
			return friendly(err)
		}

		fmt.Printf("%s (id %d)\n", profile.Nick, profile.ID.Value)
		return a.store.SaveSession(session.Session{
			Token:    a.sess.Token,
			UserID:   profile.ID.Value,
			Nickname: profile.Nick,
		})
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "password (prompted when omitted)")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "password (prompted when omitted)")
	registerCmd.Flags().StringVar(&registerNick, "nick", "", "display nickname (defaults to the login)")
}

// establishSession logs in (registering first when nick is set),
// resolves the identity behind the token, and persists the session.
func establishSession(cmd *cobra.Command, a *app, login, password, nick string) error {
	ctx := cmd.Context()

	var token *api.TokenResponse
	var err error
	if nick != "" {
		token, err = a.client.Register(ctx, login, password, nick)
	} else {
		token, err = a.client.Login(ctx, login, password)
	}
	if err != nil {
		return friendly(err)
	}

	a.client.SetToken(token.AccessToken)
	profile, err := a.client.Profile(ctx)
	if err != nil {
		return friendly(err)
	}

	sess := session.Session{
		Token:    token.AccessToken,
		UserID:   profile.ID.Value,
		Nickname: profile.Nick,
	}
	if err := a.store.SaveSession(sess); err != nil {
		return err
	}
	if session.TokenExpired(sess.Token, time.Now()) {
		fmt.Println("warning: server issued an already-expired token")
	}
	fmt.Printf("logged in as %s (id %d)\n", profile.Nick, profile.ID.Value)
	return nil
}

// resolvePassword uses the flag value or reads one line from stdin.
func resolvePassword(cmd *cobra.Command) (string, error) {
	flag, _ := cmd.Flags().GetString("password")
	if flag != "" {
		return flag, nil
	}
	fmt.Fprint(os.Stderr, "password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", fmt.Errorf("empty password")
	}
	return password, nil
}
