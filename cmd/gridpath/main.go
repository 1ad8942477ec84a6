// Command gridpath runs the pathfinding demo in the terminal.
//
//	gridpath [-algo BFS|A*] [-print]
//
// With -print the configured board is solved once and written to stdout
// as text instead of opening the interactive screen.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/board"
	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/tui"
)

func main() {
	algoName := flag.String("algo", string(search.BFS), "search algorithm: BFS or A*")
	printOnly := flag.Bool("print", false, "print the solved board and exit")
	flag.Parse()

	if err := run(*algoName, *printOnly); err != nil {
		fmt.Fprintf(os.Stderr, "gridpath: %v\n", err)
		os.Exit(1)
	}
}

func run(algoName string, printOnly bool) error {
	algo, err := search.ParseAlgorithm(algoName)
	if err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	b, err := board.New(cfg.Grid)
	if err != nil {
		return err
	}

	if printOnly {
		res, err := b.Solve(context.Background(), algo)
		if err != nil {
			return err
		}
		fmt.Print(tui.Render(b.Snapshot(), res.Path))
		if res.Path.Empty() {
			fmt.Printf("%s: no path (%d cells expanded)\n", algo, res.Visited)
		} else {
			fmt.Printf("%s: %d steps, %d cells expanded\n", algo, res.Path.Steps(), res.Visited)
		}
		return nil
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	tui.New(screen, b, algo).Run()
	return nil
}
