// Package tui draws a board in the terminal with tcell and lets the user
// edit walls with the mouse and run a search from the keyboard.
//
// Keys:
//
//	b        select BFS
//	a        select A*
//	Enter    run the selected algorithm (space works too)
//	c        clear all walls
//	q, Esc   quit
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/board"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// cellWidth is the number of terminal columns per grid cell; two columns
// keep cells roughly square.
const cellWidth = 2

var (
	styleOpen   = tcell.StyleDefault
	styleWall   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	stylePath   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue)
	styleStart  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
	styleEnd    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorRed)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// App is the terminal front end for one board.
type App struct {
	screen  tcell.Screen
	board   *board.Board
	algo    search.Algorithm
	path    grid.Path
	status  string
	pressed bool // mouse button 1 held since the last event
}

// New returns an App drawing b on screen. The screen must already be
// initialized; mouse reporting is the caller's choice.
func New(screen tcell.Screen, b *board.Board, algo search.Algorithm) *App {
	return &App{
		screen: screen,
		board:  b,
		algo:   algo,
		status: "click to toggle walls, Enter to search",
	}
}

// Algorithm returns the selected algorithm.
func (a *App) Algorithm() search.Algorithm { return a.algo }

// Path returns the path found by the last search, if it is still current.
func (a *App) Path() grid.Path { return a.path }

// Status returns the text of the status line.
func (a *App) Status() string { return a.status }

// Run draws and handles events until the user quits or the screen is
// finalized.
func (a *App) Run() {
	for {
		a.Draw()
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		if !a.HandleEvent(ev) {
			return
		}
	}
}

// HandleEvent applies one input event and reports whether the app should
// keep running.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		a.solve()
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case 'b':
		a.selectAlgorithm(search.BFS)
	case 'a':
		a.selectAlgorithm(search.AStar)
	case ' ':
		a.solve()
	case 'c':
		a.board.Clear()
		a.path = nil
		a.status = "walls cleared"
	}
	return true
}

// handleMouse toggles the wall under the pointer once per button press.
func (a *App) handleMouse(ev *tcell.EventMouse) {
	down := ev.Buttons()&tcell.Button1 != 0
	defer func() { a.pressed = down }()
	if !down || a.pressed {
		return
	}

	x, y := ev.Position()
	c := grid.Cell{X: x / cellWidth, Y: y}
	s := a.board.Snapshot()
	if !s.Grid.InBounds(c) {
		return
	}

	wall, err := a.board.Toggle(c)
	switch {
	case errors.Is(err, board.ErrEndpointWall):
		a.status = "start and end cannot be walls"
		return
	case err != nil:
		a.status = err.Error()
		return
	}
	a.path = nil
	if wall {
		a.status = fmt.Sprintf("wall at %v", c)
	} else {
		a.status = fmt.Sprintf("cleared %v", c)
	}
}

func (a *App) selectAlgorithm(algo search.Algorithm) {
	a.algo = algo
	a.path = nil
	a.status = fmt.Sprintf("%s selected", algo)
}

// solve runs the selected algorithm and records the outcome.
func (a *App) solve() {
	res, err := a.board.Solve(context.Background(), a.algo)
	if err != nil {
		a.path = nil
		a.status = fmt.Sprintf("%s: %v", a.algo, err)
		return
	}
	a.path = res.Path
	if res.Path.Empty() {
		a.status = fmt.Sprintf("%s: no path (%d cells expanded)", a.algo, res.Visited)
		return
	}
	a.status = fmt.Sprintf("%s: %d steps, %d cells expanded", a.algo, res.Path.Steps(), res.Visited)
}

// Draw renders the board and the status line.
func (a *App) Draw() {
	a.screen.Clear()

	s := a.board.Snapshot()
	onPath := make(map[grid.Cell]bool, len(a.path))
	for _, c := range a.path {
		onPath[c] = true
	}

	for y := 0; y < s.Grid.Height; y++ {
		for x := 0; x < s.Grid.Width; x++ {
			c := grid.Cell{X: x, Y: y}
			r, style := ' ', styleOpen
			switch {
			case c == s.Start:
				r, style = 'S', styleStart
			case c == s.End:
				r, style = 'E', styleEnd
			case s.Grid.IsBlocked(c):
				r, style = '█', styleWall
			case onPath[c]:
				style = stylePath
			}
			a.screen.SetContent(x*cellWidth, y, r, nil, style)
			if r != '█' {
				r = ' '
			}
			a.screen.SetContent(x*cellWidth+1, y, r, nil, style)
		}
	}

	a.drawText(0, s.Grid.Height+1, fmt.Sprintf("[%s] %s", a.algo, a.status))
	a.screen.Show()
}

func (a *App) drawText(x, y int, text string) {
	for _, r := range text {
		a.screen.SetContent(x, y, r, nil, styleStatus)
		x++
	}
}
