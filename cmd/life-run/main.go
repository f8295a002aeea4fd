// Command life-run advances a saved board without opening a window and writes
// the result back.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"conway-life/internal/app"
	"conway-life/internal/core"
	apperrors "conway-life/internal/errors"
	"conway-life/internal/sims/life"
	"conway-life/internal/store"

	"github.com/cheggaaa/pb/v3"
)

type options struct {
	generations int
	living      int
	seed        int64
	quiet       bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("life-run: ")

	var opts options
	flag.IntVar(&opts.generations, "n", 100, "generations to advance")
	flag.IntVar(&opts.living, "random", 0, "seed an empty board with this many live cells")
	flag.Int64Var(&opts.seed, "seed", 1, "seed for -random")
	flag.BoolVar(&opts.quiet, "quiet", false, "hide the progress bar")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <config_file> <data_file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	board, err := run(flag.Arg(0), flag.Arg(1), opts, os.Stderr)
	if err != nil {
		log.Print(err)
		os.Exit(app.ExitCode(err))
	}
	log.Printf("%dx%d board, %d live cells after %d generations", board.Rows(), board.Columns(), board.Population(), opts.generations)
}

func run(configPath, dataPath string, opts options, progress io.Writer) (*life.Board, error) {
	if opts.generations < 0 {
		return nil, apperrors.Newf(apperrors.CodeInvalidArguments, "generation count %d is negative", opts.generations)
	}
	loaded, err := store.Load(configPath, dataPath)
	if err != nil {
		return nil, err
	}
	board := loaded.Board
	if loaded.Mode == store.NeedsUserInit {
		if opts.living <= 0 {
			return nil, apperrors.New(apperrors.CodeInvalidArguments, "data file is empty; pass -random to seed it")
		}
		board.Randomize(core.NewRNG(opts.seed), opts.living)
	} else if opts.living > 0 {
		return nil, apperrors.New(apperrors.CodeInvalidArguments, "-random only applies to an empty data file")
	}

	bar := pb.New(opts.generations)
	bar.SetWriter(progress)
	if !opts.quiet {
		bar.Start()
	}
	advance(board, opts.generations, bar)
	if !opts.quiet {
		bar.Finish()
	}

	if err := store.Save(configPath, dataPath, board, loaded.Config.CellSize); err != nil {
		return nil, fmt.Errorf("save: %w", err)
	}
	return board, nil
}

func advance(sim core.Sim, n int, bar *pb.ProgressBar) {
	for i := 0; i < n; i++ {
		sim.Step()
		bar.Increment()
	}
}
