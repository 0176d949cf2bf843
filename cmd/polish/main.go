package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/hpungsan/polish/internal/config"
	"github.com/hpungsan/polish/internal/db"
	"github.com/hpungsan/polish/internal/logging"
	"github.com/hpungsan/polish/internal/mcp"
	"github.com/hpungsan/polish/internal/store"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// cliCommands contains known CLI subcommands.
var cliCommands = map[string]bool{
	"enhance": true, "history": true, "favorites": true,
	"fetch": true, "favorite": true, "clear": true,
	"export": true, "ui": true,
	"help": true,
}

// isCLIMode determines if we should run CLI vs MCP server.
func isCLIMode(args []string) bool {
	if len(args) < 2 {
		return false // No args → MCP server
	}
	arg := args[1]
	if cliCommands[arg] {
		return true
	}
	return isHelpOrVersion(args)
}

// isHelpOrVersion returns true if the user is requesting help or version info.
func isHelpOrVersion(args []string) bool {
	if len(args) < 2 {
		return false
	}
	arg := args[1]
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" || arg == "help"
}

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// printBanner displays a friendly banner when run interactively without args.
func printBanner(w io.Writer) {
	color.New(color.FgMagenta, color.Bold).Fprint(w, `
   ___      _ _     _
  | _ \___ | (_)___| |_
  |  _/ _ \| | (_-<| ' \
  |_| \___/|_|_/__/|_||_|
`)
	fmt.Fprintln(w, `
  Prompt enhancer for text, image and video prompts

  Usage: polish <command> [options]
         polish --help

  MCP server mode requires piped input.`)
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s %s: %v\n", color.RedString("error:"), msg, err)
	os.Exit(1)
}

func main() {
	// No args + interactive terminal → show banner and exit
	if len(os.Args) < 2 && isTerminal() {
		printBanner(os.Stdout)
		return
	}

	// Handle --help/--version before DB init (no DB needed)
	if isHelpOrVersion(os.Args) {
		if err := newCLIApp(nil, nil).Run(os.Args); err != nil {
			fatal("cli", err)
		}
		return
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		fatal("could not determine home directory", err)
	}
	baseDir := filepath.Join(homeDir, config.DirName)

	database, err := db.Init(baseDir)
	if err != nil {
		fatal("failed to initialize database", err)
	}
	defer database.Close()

	wd, err := os.Getwd()
	if err != nil {
		wd = homeDir
	}
	cfg, err := config.LoadWithRepo(baseDir, wd)
	if err != nil {
		fatal("failed to load config", err)
	}
	db.ConfigurePool(database, cfg)

	// stdout carries MCP frames and CLI JSON; logs always go to stderr
	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fatal("invalid logging config", err)
	}
	logging.SetDefault(logger)

	if unknown := mcp.ValidateDisabledTools(cfg.DisabledTools); len(unknown) > 0 {
		logger.Warn("ignoring unknown disabled_tools entries", "tools", unknown)
	}

	s := store.New(db.NewKV(database),
		store.WithLogger(logger),
		store.WithHistoryLimit(cfg.HistoryLimit),
	)

	if isCLIMode(os.Args) {
		if err := newCLIApp(s, cfg).Run(os.Args); err != nil {
			// cli.Exit errors already carry the formatted message
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	// Unknown argument + terminal → show error (don't start MCP server)
	if len(os.Args) >= 2 && isTerminal() {
		fmt.Fprintf(os.Stderr, "%s unknown command %q\n", color.RedString("error:"), os.Args[1])
		fmt.Fprintf(os.Stderr, "Run 'polish --help' for usage.\n")
		os.Exit(1)
	}

	// MCP server mode (default)
	if err := mcp.Run(s, cfg, Version); err != nil {
		fatal("mcp server", err)
	}
}
