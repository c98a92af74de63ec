// Copyright © 2025 Jsonpane contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/jsonpane/main.go
// Summary: Entry point: wires config, history, engine, session, screen.
// Usage: Interactive two-pane UI on a terminal; pipe filter otherwise.

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/framegrace/jsonpane/config"
	"github.com/framegrace/jsonpane/highlight"
	"github.com/framegrace/jsonpane/history"
	"github.com/framegrace/jsonpane/jsonfmt"
	"github.com/framegrace/jsonpane/ui"
)

func main() {
	minify := flag.Bool("m", false, "minify instead of pretty-printing (pipe mode)")
	styleFlag := flag.String("style", "", "chroma style name (overrides config)")
	flag.Parse()

	cfg := config.System()
	styleName := *styleFlag
	if styleName == "" {
		styleName = cfg.GetString("", "style", highlight.DefaultStyleName)
	}

	engine := jsonfmt.NewEngine(highlight.New(), cfg.GetInt("", "indent", 2))

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		os.Exit(runPipe(engine, *minify, styleName))
	}

	if err := runScreen(engine, cfg, styleName); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runScreen runs the interactive shell. All collaborators are wired here
// explicitly; nothing hangs off package globals.
func runScreen(engine *jsonfmt.Engine, cfg config.Config, styleName string) error {
	// Route logging to a file before tcell takes over the terminal.
	if path, err := config.LogPath(); err == nil {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			defer f.Close()
			log.SetOutput(f)
		}
	}
	log.Println("jsonpane starting")
	if err := config.Err(); err != nil {
		log.Printf("Main: config load: %v", err)
	}

	tscreen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	driver := ui.NewTcellScreenDriver(tscreen)

	theme := highlight.NewTheme(styleName)
	notifDur := time.Duration(cfg.GetInt("notify", "duration_ms", 2000)) * time.Millisecond
	screen := ui.NewScreen(driver, theme, notifDur)

	session := jsonfmt.NewSession(
		engine,
		screen,
		ui.NewClipboard(driver),
		time.Duration(cfg.GetInt("debounce", "input_ms", 300))*time.Millisecond,
		time.Duration(cfg.GetInt("debounce", "paste_ms", 10))*time.Millisecond,
	)
	screen.SetSession(session)
	screen.ConfigureStyles(styleName, func(name string) {
		next := config.Clone(config.System())
		next["style"] = name
		config.Set(next)
		if err := config.Save(); err != nil {
			log.Printf("Main: persist style failed: %v", err)
		}
	})

	if cfg.GetBool("history", "enabled", true) {
		if path, err := config.HistoryPath(); err == nil {
			store, err := history.Open(path)
			if err != nil {
				log.Printf("Main: history disabled: %v", err)
			} else {
				defer func() {
					if err := store.Prune(cfg.GetInt("history", "keep", 100)); err != nil {
						log.Printf("Main: history prune failed: %v", err)
					}
					store.Close()
				}()
				session.SetRecorder(store)
				if latest, err := store.Latest(); err == nil && latest != nil {
					screen.SetInitialText(latest.Compact)
				}
			}
		}
	}

	err = screen.Run()
	log.Println("jsonpane stopped")
	return err
}

// runPipe formats stdin to stdout, colorized when stdout is a terminal.
func runPipe(engine *jsonfmt.Engine, minify bool, styleName string) int {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read stdin: %v\n", err)
		return 1
	}

	mode := jsonfmt.ModePretty
	if minify {
		mode = jsonfmt.ModeMinify
	}
	res := engine.Format(string(data), mode)
	switch res.Kind {
	case jsonfmt.KindEmpty:
		return 0
	case jsonfmt.KindFailure:
		if res.Err.HasPosition() {
			fmt.Fprintf(os.Stderr, "JSON Parse Error: %s (Line %d, Column %d)\n",
				res.Err.Message, res.Err.Line, res.Err.Column)
		} else {
			fmt.Fprintf(os.Stderr, "JSON Parse Error: %s\n", res.Err.Message)
		}
		return 1
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		if err := colorize(os.Stdout, res.Text, styleName); err == nil {
			fmt.Println()
			return 0
		}
	}
	fmt.Println(res.Text)
	return 0
}

func colorize(w io.Writer, jsonText, styleName string) error {
	lexer := chroma.Coalesce(lexers.Get("json"))
	it, err := lexer.Tokenise(nil, jsonText)
	if err != nil {
		return err
	}
	return formatters.Get("terminal256").Format(w, styles.Get(styleName), it)
}
