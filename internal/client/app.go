// Package client assembles the services into a small command-line
// application: one subcommand per user-facing operation, with background
// jobs running for the lifetime of the command.
package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aulrahman/storyshare/internal/logger"
	"github.com/aulrahman/storyshare/internal/service"
	"github.com/aulrahman/storyshare/internal/workers"
	"github.com/aulrahman/storyshare/models"
)

type App struct {
	services  *service.Services
	probe     workers.Job
	reconcile workers.Job
	logger    *logger.Logger

	out io.Writer
}

// NewApp wires an App over already-constructed services and background jobs.
func NewApp(services *service.Services, probe, reconcile workers.Job, log *logger.Logger) *App {
	return &App{
		services:  services,
		probe:     probe,
		reconcile: reconcile,
		logger:    log,
		out:       os.Stdout,
	}
}

// Run restores any persisted session, starts the background jobs, and
// dispatches the subcommand in args. It blocks until the command finishes;
// the jobs are stopped before returning.
func (a *App) Run(ctx context.Context, args []string) error {
	if err := a.services.Auth.Restore(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("session restore failed, continuing unauthenticated")
	}

	a.probe.Start(ctx, 0)
	defer a.probe.Stop()
	a.reconcile.Start(ctx, 0)
	defer a.reconcile.Stop()

	if len(args) == 0 {
		return a.usage()
	}

	switch args[0] {
	case "register":
		return a.register(ctx, args[1:])
	case "login":
		return a.login(ctx, args[1:])
	case "logout":
		return a.services.Auth.Logout(ctx)
	case "list":
		return a.list(ctx)
	case "create":
		return a.create(ctx, args[1:])
	case "sync":
		return a.sync(ctx)
	case "favorites":
		return a.favorites(ctx)
	case "favorite":
		return a.favorite(ctx, args[1:])
	case "subscribe":
		return a.subscribe(ctx, args[1:])
	case "unsubscribe":
		return a.unsubscribe(ctx, args[1:])
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (a *App) usage() error {
	fmt.Fprintln(a.out, "commands: register, login, logout, list, create, sync, favorites, favorite, subscribe, unsubscribe")
	return nil
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := a.services.Auth.Register(ctx, models.RegisterRequest{
		Name:     *name,
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, resp.Message)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.services.Auth.Login(ctx, models.LoginRequest{
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", result.Name)
	return nil
}

func (a *App) list(ctx context.Context) error {
	result := a.services.Stories.FetchStories(ctx)

	fmt.Fprintf(a.out, "%d stories (source: %s)\n", len(result.Stories), result.Source)
	for _, story := range result.Stories {
		marker := ""
		if story.IsPending {
			marker = " [pending]"
		}
		fmt.Fprintf(a.out, "%s\t%s\t%s%s\n", story.ID, story.AuthorName, story.Description, marker)
	}
	return nil
}

func (a *App) create(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	description := fs.String("description", "", "story text")
	photoPath := fs.String("photo", "", "path to the photo file")
	lat := fs.Float64("lat", 0, "latitude")
	lon := fs.Float64("lon", 0, "longitude")
	if err := fs.Parse(args); err != nil {
		return err
	}

	input := models.NewStory{Description: *description}
	if *photoPath != "" {
		photo, err := os.ReadFile(*photoPath)
		if err != nil {
			return fmt.Errorf("read photo: %w", err)
		}
		input.Photo = photo
		input.PhotoName = filepath.Base(*photoPath)
	}

	hasLat, hasLon := false, false
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lat":
			hasLat = true
		case "lon":
			hasLon = true
		}
	})
	if hasLat {
		input.Lat = lat
	}
	if hasLon {
		input.Lon = lon
	}

	result, err := a.services.Stories.CreateStory(ctx, input)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, result.Message)
	return nil
}

func (a *App) sync(ctx context.Context) error {
	report, err := a.services.Stories.SyncPending(ctx)
	if err != nil {
		if errors.Is(err, service.ErrOffline) {
			fmt.Fprintln(a.out, "Offline; pending stories will sync when a connection is available.")
			return nil
		}
		return err
	}

	fmt.Fprintln(a.out, report.Message)
	for _, item := range report.Results {
		if item.Success {
			fmt.Fprintf(a.out, "%s\tok\n", item.ID)
			continue
		}
		fmt.Fprintf(a.out, "%s\tfailed: %s\n", item.ID, item.Error)
	}
	return nil
}

func (a *App) favorites(ctx context.Context) error {
	favorites, err := a.services.Favorites.List(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%d favorites\n", len(favorites))
	for _, favorite := range favorites {
		fmt.Fprintf(a.out, "%s\t%s\t%s\n", favorite.ID, favorite.AuthorName, favorite.Description)
	}
	return nil
}

func (a *App) favorite(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("favorite: story id required")
	}
	id := args[0]

	// Toggling stores a full snapshot, so resolve the story first.
	fetched := a.services.Stories.FetchStories(ctx)
	for _, story := range fetched.Stories {
		if story.ID != id {
			continue
		}
		result, err := a.services.Favorites.Toggle(ctx, story)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, result.Message)
		return nil
	}

	return fmt.Errorf("favorite: story %q not found", id)
}

func (a *App) subscribe(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("subscribe", flag.ContinueOnError)
	endpoint := fs.String("endpoint", "", "push service endpoint URL")
	p256dh := fs.String("p256dh", "", "client public key")
	auth := fs.String("auth", "", "auth secret")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.services.Push.Subscribe(ctx, models.PushSubscription{
		Endpoint: *endpoint,
		Keys: models.PushKeys{
			P256dh: *p256dh,
			Auth:   *auth,
		},
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, result.Message)
	return nil
}

func (a *App) unsubscribe(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("unsubscribe", flag.ContinueOnError)
	endpoint := fs.String("endpoint", "", "push service endpoint URL")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.services.Push.Unsubscribe(ctx, *endpoint)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, result.Message)
	return nil
}
