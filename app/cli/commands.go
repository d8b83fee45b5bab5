// Package cli implements the command-line client for the board API.
package cli

import (
	"context"
	"io"

	"boardfront/app/apiclient"
	"boardfront/app/models"
	"boardfront/app/viewstate"
)

// App runs CLI commands against one board API server.
type App struct {
	api *apiclient.Client
	out io.Writer
}

func NewApp(api *apiclient.Client, out io.Writer) *App {
	return &App{api: api, out: out}
}

// Posts lists all posts in the requested format.
func (a *App) Posts(ctx context.Context, format string) error {
	st := load(func() ([]*models.Post, error) {
		return a.api.ListPosts(ctx)
	})
	if st.IsFailed() {
		return st.Err()
	}
	return printPosts(a.out, st.Data(), format)
}

// Post shows a single post with its threaded comments.
func (a *App) Post(ctx context.Context, id int, format string) error {
	st := load(func() (*models.Post, error) {
		return a.api.GetPost(ctx, id)
	})
	if st.IsFailed() {
		return st.Err()
	}
	return printPost(a.out, st.Data(), format)
}

// load runs one fetch through the same state machine the web views use.
func load[T any](fetch func() (T, error)) viewstate.State[T] {
	v, err := fetch()
	if err != nil {
		return viewstate.Failed[T](err)
	}
	return viewstate.Loaded(v)
}
