package main

import (
	stdErrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/peterh/liner"
	"github.com/supakorn-kn/go-catalog/catalog"
	"github.com/supakorn-kn/go-catalog/env"
)

func main() {

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	config, err := env.GetEnv()
	if err != nil {
		slog.Error("Load config failed", "error", err)
		os.Exit(1)
	}

	c, err := catalog.Default()
	if config.Catalog.Path != "" {
		c, err = catalog.LoadFile(config.Catalog.Path)
	}
	if err != nil {
		slog.Error("Load catalog failed", "path", config.Catalog.Path, "error", err)
		os.Exit(1)
	}

	s := newSession(c.Books, c.Directory(), config.Catalog.PageSize, os.Stdout)

	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(complete)

	fmt.Println("Catalog browser, type help for commands")
	if err := s.show(); err != nil {
		slog.Error("Render page failed", "error", err)
		return
	}

	for {

		input, err := line.Prompt("catalog> ")
		if stdErrors.Is(err, liner.ErrPromptAborted) || stdErrors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			slog.Error("Read prompt failed", "error", err)
			return
		}

		line.AppendHistory(input)

		quit, err := s.exec(input)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}

		if quit {
			return
		}
	}
}
