//go:build ebiten

package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"conway-life/internal/app"
	apperrors "conway-life/internal/errors"
	"conway-life/internal/render"
	"conway-life/internal/session"
	"conway-life/internal/sims/life"
	"conway-life/internal/store"
	"conway-life/internal/view"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("life: ")

	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		log.Print(err)
		os.Exit(2)
	}
	cfg.Bind(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <config_file> <data_file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(cfg, flag.Arg(0), flag.Arg(1)); err != nil {
		log.Print(err)
		os.Exit(app.ExitCode(err))
	}
}

func run(cfg *app.Config, configPath, dataPath string) error {
	loaded, err := store.Load(configPath, dataPath)
	if err != nil {
		return err
	}
	board := loaded.Board

	stdin := bufio.NewReader(os.Stdin)
	if loaded.Mode == store.NeedsUserInit {
		rows, cols, err := app.ReadDimensions(stdin, os.Stdout, board.Rows(), board.Columns())
		if err != nil {
			return err
		}
		if rows != board.Rows() || cols != board.Columns() {
			resized := life.New(rows, cols)
			resized.SetDelay(board.Delay())
			board = resized
		}
	}

	pre := cfg.Pre
	if pre < 0 {
		if pre, err = app.ReadPre(stdin, os.Stdout); err != nil {
			return err
		}
	} else if err := app.CheckPre(pre); err != nil {
		return err
	}

	cellSize := loaded.Config.CellSize
	if cellSize == 0 {
		cellSize = view.FitCellSize(board.Rows(), board.Columns(), cfg.WindowSize)
	}
	v := view.New(board.Rows(), board.Columns(), cellSize)

	icons, err := render.LoadIcons()
	if err != nil {
		return err
	}

	s, err := session.New(session.Options{
		Board: board,
		View:  v,
		Pre:   pre,
		Now:   time.Now(),
		Save: func(b *life.Board, cellSize int) error {
			return store.Save(configPath, dataPath, b, cellSize)
		},
	})
	if err != nil {
		return err
	}
	log.Printf("%dx%d board (%s), cell size %d, delay %dms", board.Rows(), board.Columns(), loaded.Mode, cellSize, board.Delay())

	game := app.New(s, icons, cfg.ShowGrid)
	ebiten.SetWindowTitle(s.Title())
	ebiten.SetWindowSize(v.Width, v.Height)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		if apperrors.CodeOf(err) != "" {
			return err
		}
		return apperrors.Wrap(apperrors.CodeBackendInit, "run window", err)
	}
	log.Printf("saved board after %d generations", s.Iteration())
	return nil
}
