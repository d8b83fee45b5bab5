package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"boardfront/app/apiclient"
	"boardfront/app/cli"
	"boardfront/app/config"
	"boardfront/app/routes"
	"boardfront/app/session"

	"github.com/dgraph-io/badger/v4"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cmd := strings.ToLower(args[0])
	switch cmd {
	case "help":
		printHelp()
		return nil
	case "version":
		fmt.Printf("boardfront version %s\n", cliVersion)
		return nil
	case "serve":
		return serve()
	case "posts":
		return runPosts(args[1:])
	case "post":
		return runPost(args[1:])
	default:
		printHelp()
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func printHelp() {
	helpText := `Usage: boardfront <command> [options]
Commands:
  help                 Display this help message.
  version              Show version information.
  serve                Run the web front-end for the board API.
  posts [--format f]   List posts (table or json).
  post <id> [--format f]
                       Show one post with its comments.
`
	fmt.Println(helpText)
}

// serve runs the web front-end until the listener fails.
func serve() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := badger.Open(badger.DefaultOptions(filepath.Join(cfg.DataDir, "badger")))
	if err != nil {
		return fmt.Errorf("open session db: %w", err)
	}
	defer db.Close()

	sessions := session.NewStore(db, []byte(cfg.SessionSecret))
	router := routes.Setup(cfg, sessions)

	log.Printf("boardfront listening on %s (api %s)", cfg.ListenAddr, cfg.APIBaseURL)
	return http.ListenAndServe(cfg.ListenAddr, router)
}

func runPosts(args []string) error {
	fs := flag.NewFlagSet("posts", flag.ContinueOnError)
	format := fs.String("format", "", "output format: table or json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	app, err := cliApp()
	if err != nil {
		return err
	}
	return app.Posts(context.Background(), *format)
}

func runPost(args []string) error {
	fs := flag.NewFlagSet("post", flag.ContinueOnError)
	format := fs.String("format", "", "output format: table or json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return errors.New("post requires an ID")
	}
	id, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("invalid post ID %q", fs.Arg(0))
	}
	app, err := cliApp()
	if err != nil {
		return err
	}
	return app.Post(context.Background(), id, *format)
}

func cliApp() (*cli.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return cli.NewApp(apiclient.New(cfg.APIBaseURL), os.Stdout), nil
}
