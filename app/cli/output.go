package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"boardfront/app/models"
	"boardfront/app/timefmt"

	"github.com/mattn/go-isatty"
)

// DefaultFormat is table on a terminal and JSON when piped.
func DefaultFormat() string {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		return "table"
	}
	return "json"
}

func printPosts(w io.Writer, posts []*models.Post, format string) error {
	switch normalize(format) {
	case "json":
		return printJSON(w, map[string]any{"posts": posts})
	case "table":
		fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tCREATED")
		now := time.Now()
		for _, p := range posts {
			fmt.Fprintf(w, "%d\t%s\t@%s\t%s\n",
				p.ID, p.Title, p.Name, timefmt.Timestamp(now, p.CreatedAt))
		}
		return nil
	default:
		return errors.New("invalid --format value")
	}
}

func printPost(w io.Writer, post *models.Post, format string) error {
	switch normalize(format) {
	case "json":
		return printJSON(w, map[string]any{"post": post})
	case "table":
		now := time.Now()
		fmt.Fprintf(w, "%s\n%s\n@%s · %s\n",
			post.Title, post.Content, post.Name, timefmt.Timestamp(now, post.CreatedAt))
		for _, c := range post.Comments {
			prefix := ""
			if c.IsReply() {
				name, _ := post.ReplyAuthor(c)
				prefix = fmt.Sprintf("Reply to @%s: ", name)
			}
			fmt.Fprintf(w, "  %s%s\n  @%s · %s\n",
				prefix, c.Content, c.Name, timefmt.Timestamp(now, c.CreatedAt))
		}
		return nil
	default:
		return errors.New("invalid --format value")
	}
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func normalize(format string) string {
	format = strings.TrimSpace(strings.ToLower(format))
	if format == "" {
		return DefaultFormat()
	}
	return format
}
