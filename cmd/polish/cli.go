package main

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/polish/internal/config"
	"github.com/hpungsan/polish/internal/errors"
	"github.com/hpungsan/polish/internal/ops"
	"github.com/hpungsan/polish/internal/store"
	"github.com/hpungsan/polish/internal/web"
)

// maxStdinBytes bounds prompt input read from stdin.
const maxStdinBytes = 1 << 20

// newCLIApp creates the CLI application with all commands.
func newCLIApp(s *store.Store, cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "polish",
		Usage:   "Prompt enhancer with history and favorites",
		Version: Version,
		Commands: []*cli.Command{
			enhanceCmd(s, cfg),
			listCmd("history", "List recent enhancements, newest first", s, ops.History),
			listCmd("favorites", "List favorite enhancements", s, ops.Favorites),
			fetchCmd(s),
			favoriteCmd(s),
			clearCmd(s),
			exportCmd(s, cfg),
			uiCmd(s, cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// enhanceCmd creates the enhance command.
func enhanceCmd(s *store.Store, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "enhance",
		Usage:     "Enhance a prompt (from arguments or stdin) and record it in history",
		ArgsUsage: "[prompt...]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Value: "text", Usage: "Prompt type: text|image|video"},
			&cli.BoolFlag{Name: "dry-run", Usage: "Show the enhancement without recording it"},
			&cli.BoolFlag{Name: "raw", Usage: "Print only the enhanced prompt"},
		},
		Action: func(c *cli.Context) error {
			text := strings.Join(c.Args().Slice(), " ")
			if text == "" {
				if !stdinHasData() {
					return outputError(errors.NewInvalidRequest("prompt must be given as arguments or piped via stdin"))
				}
				var err error
				text, err = readStdin(maxStdinBytes)
				if err != nil {
					return outputError(err)
				}
			}

			if c.Bool("dry-run") {
				output, err := ops.Preview(c.Context, ops.PreviewInput{Text: text, Category: c.String("type")})
				if err != nil {
					return outputError(err)
				}
				if c.Bool("raw") {
					return outputRaw(c, output.EnhancedText)
				}
				return outputJSON(c, output)
			}

			output, err := ops.Enhance(c.Context, s, cfg, ops.EnhanceInput{Text: text, Category: c.String("type")})
			if err != nil {
				return outputError(err)
			}
			if c.Bool("raw") {
				return outputRaw(c, output.EnhancedText)
			}
			return outputJSON(c, output)
		},
	}
}

// listCmd creates the history and favorites commands.
func listCmd(name, usage string, s *store.Store, list func(context.Context, *store.Store, ops.ListInput) (*ops.ListOutput, error)) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Usage: "Filter by prompt type"},
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: ops.DefaultListLimit, Usage: "Maximum items to return"},
			&cli.IntFlag{Name: "offset", Aliases: []string{"o"}, Value: 0, Usage: "Items to skip"},
		},
		Action: func(c *cli.Context) error {
			output, err := list(c.Context, s, ops.ListInput{
				Category: c.String("type"),
				Limit:    c.Int("limit"),
				Offset:   c.Int("offset"),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(c, output)
		},
	}
}

// fetchCmd creates the fetch command.
func fetchCmd(s *store.Store) *cli.Command {
	return &cli.Command{
		Name:      "fetch",
		Usage:     "Fetch a record by ID from history or favorites",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			output, err := ops.Fetch(c.Context, s, ops.FetchInput{ID: c.Args().First()})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(c, output)
		},
	}
}

// favoriteCmd creates the favorite command.
func favoriteCmd(s *store.Store) *cli.Command {
	return &cli.Command{
		Name:      "favorite",
		Usage:     "Toggle the favorite flag of a history record",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			output, err := ops.ToggleFavorite(c.Context, s, ops.ToggleFavoriteInput{ID: c.Args().First()})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(c, output)
		},
	}
}

// clearCmd creates the clear command.
func clearCmd(s *store.Store) *cli.Command {
	return &cli.Command{
		Name:  "clear",
		Usage: "Delete all history (favorites are kept)",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "Confirm clearing history"},
		},
		Action: func(c *cli.Context) error {
			if !c.Bool("yes") {
				return outputError(errors.NewInvalidRequest("clearing history requires --yes"))
			}
			output, err := ops.ClearHistory(c.Context, s)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(c, output)
		},
	}
}

// exportCmd creates the export command.
func exportCmd(s *store.Store, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export history and favorites to a JSONL file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Usage: "Export file path (default: ~/.polish/exports/polish-<timestamp>.jsonl)"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Export(c.Context, s, cfg, ops.ExportInput{Path: c.String("path")})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(c, output)
		},
	}
}

// uiCmd creates the ui command.
func uiCmd(s *store.Store, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "ui",
		Usage: "Serve the web UI",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Aliases: []string{"b"}, Value: "127.0.0.1", Usage: "Address to bind"},
			&cli.IntFlag{Name: "port", Value: 7373, Usage: "Port to listen on"},
		},
		Action: func(c *cli.Context) error {
			port := c.Int("port")
			if port <= 0 || port > 65535 {
				return outputError(errors.NewInvalidRequest(fmt.Sprintf("invalid port %d", port)))
			}
			srv, err := web.NewServer(s, cfg, Version, c.String("bind"), port)
			if err != nil {
				return outputError(errors.NewInternal(err))
			}
			if err := web.Run(srv); err != nil {
				return outputError(errors.NewInternal(err))
			}
			return nil
		},
	}
}

// Helper functions

// outputJSON writes v to the app's writer as indented JSON.
func outputJSON(c *cli.Context, v any) error {
	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// outputRaw writes text followed by a newline.
func outputRaw(c *cli.Context, text string) error {
	_, err := fmt.Fprintln(c.App.Writer, text)
	return err
}

// outputError formats error for CLI.
func outputError(err error) error {
	var pErr *errors.PolishError
	if stderrors.As(err, &pErr) {
		return cli.Exit(fmt.Sprintf("[%s] %s", pErr.Code, pErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readStdin reads at most limit bytes from stdin.
func readStdin(limit int64) (string, error) {
	data, err := io.ReadAll(io.LimitReader(os.Stdin, limit+1))
	if err != nil {
		return "", errors.NewInternal(err)
	}
	if int64(len(data)) > limit {
		return "", errors.NewInvalidRequest(fmt.Sprintf("stdin exceeds %d bytes", limit))
	}
	return strings.TrimSpace(string(data)), nil
}
