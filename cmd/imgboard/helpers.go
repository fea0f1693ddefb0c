package main

import (
	"errors"
	"fmt"
	"time"

	"imgboard/internal/api"
	"imgboard/internal/config"
	"imgboard/internal/logging"
	"imgboard/internal/session"
	"imgboard/internal/view"
)

// app bundles everything a command needs: config, the session store,
// and an API client with the stored credential attached.
type app struct {
	cfg    config.Config
	store  session.Store
	sess   session.Session
	client *api.Client
	limits view.Limits
}

// loadApp builds the per-invocation application context.
func loadApp() (*app, error) {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	logging.Init(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	profilePath, err := session.DefaultPath()
	if err != nil {
		return nil, err
	}
	store := session.NewFileStore(profilePath)
	sess, err := store.Current()
	if err != nil {
		return nil, err
	}

	client, err := api.New(cfg.BaseURL,
		api.WithToken(sess.Token),
		api.WithLogger(logging.New("api")),
		api.WithTimeout(30*time.Second),
	)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:    cfg,
		store:  store,
		sess:   sess,
		client: client,
		limits: view.Limits{
			MaxTextLength:     cfg.MaxTextLength,
			MaxVisibleTracks:  cfg.MaxVisibleTracks,
			DefaultTrackTitle: cfg.DefaultTrackTitle,
			DefaultArtist:     cfg.DefaultArtist,
		},
	}, nil
}

// requireSession fails with a login hint when no credential is stored,
// and warns early when the stored token is locally expired.
func (a *app) requireSession() error {
	if !a.sess.LoggedIn() {
		return errors.New("not logged in; run `imgboard login <user>` first")
	}
	if session.TokenExpired(a.sess.Token, time.Now()) {
		return errors.New("session expired; run `imgboard login <user>` again")
	}
	return nil
}

// friendly maps gateway errors onto actionable CLI messages.
func friendly(err error) error {
	switch {
	case errors.Is(err, nil):
		return nil
	case api.IsUnauthorized(err):
		return fmt.Errorf("authentication required; run `imgboard login <user>` (%w)", err)
	case api.IsForbidden(err):
		return fmt.Errorf("not allowed: you can only modify your own posts and comments (%w)", err)
	case api.IsNotFound(err):
		return fmt.Errorf("no such entity (%w)", err)
	case api.IsNetwork(err):
		return fmt.Errorf("cannot reach the server, try again later (%w)", err)
	default:
		return err
	}
}
