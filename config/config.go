// Package config loads gridpath settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrInvalid indicates an environment value that could not be parsed.
var ErrInvalid = errors.New("config: invalid value")

// Store backends.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Grid holds the demo board layout. It belongs to the bootstrap layer,
// not to the search algorithms.
type Grid struct {
	Width  int         // Number of columns
	Height int         // Number of rows
	Start  grid.Cell   // Fixed start cell
	End    grid.Cell   // Fixed end cell
	Walls  []grid.Cell // Walls placed on a fresh board
}

// Config holds the application's configuration values.
type Config struct {
	Grid          Grid
	HTTPAddr      string        // Address for the HTTP server
	BaseURL       string        // Prefix for API routes
	GinMode       string        // Mode for the Gin framework (release, debug, test)
	Store         string        // Board store backend: memory or redis
	RedisAddr     string        // Redis host:port
	RedisPassword string        // Redis password, may be empty
	RedisDB       int           // Redis logical database
	BoardTTL      time.Duration // Expiry for boards kept in Redis
}

// DefaultGrid returns the classic 20×20 demo board: start at the top-left
// corner, end at (cols-10, rows-12) and two walls.
func DefaultGrid() Grid {
	const rows, cols = 20, 20
	return Grid{
		Width:  cols,
		Height: rows,
		Start:  grid.Cell{X: 0, Y: 0},
		End:    grid.Cell{X: cols - 10, Y: rows - 12},
		Walls:  []grid.Cell{{X: 3, Y: 8}, {X: 10, Y: 4}},
	}
}

// Load reads a .env file when present and builds a Config from the
// environment, falling back to defaults for unset keys.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[CONFIG] [INFO] .env file not found or could not be loaded: %v", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	def := DefaultGrid()
	p := &parser{}

	cfg := Config{
		Grid: Grid{
			Width:  p.getInt("GRID_WIDTH", def.Width),
			Height: p.getInt("GRID_HEIGHT", def.Height),
			Start:  p.getCell("GRID_START", def.Start),
			End:    p.getCell("GRID_END", def.End),
			Walls:  p.getCells("GRID_WALLS", def.Walls),
		},
		HTTPAddr:      getEnvWithDefault("HTTP_ADDR", ":8080"),
		BaseURL:       getEnvWithDefault("BASE_URL", "/api"),
		GinMode:       getEnvWithDefault("GIN_MODE", "release"),
		Store:         strings.ToLower(getEnvWithDefault("STORE", StoreMemory)),
		RedisAddr:     getEnvWithDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnvWithDefault("REDIS_PASSWORD", ""),
		RedisDB:       p.getInt("REDIS_DB", 0),
		BoardTTL:      time.Duration(p.getInt("BOARD_TTL_SECONDS", 3600)) * time.Second,
	}
	if p.err != nil {
		return Config{}, p.err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	if err := c.Grid.Validate(); err != nil {
		return err
	}
	switch c.Store {
	case StoreMemory, StoreRedis:
	default:
		return fmt.Errorf("%w: STORE must be %q or %q, got %q", ErrInvalid, StoreMemory, StoreRedis, c.Store)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("%w: GIN_MODE must be debug, release or test, got %q", ErrInvalid, c.GinMode)
	}
	if c.BoardTTL < 0 {
		return fmt.Errorf("%w: BOARD_TTL_SECONDS cannot be negative", ErrInvalid)
	}
	return nil
}

// Validate checks that the board has positive size and that every
// configured cell lies on it.
func (g Grid) Validate() error {
	if g.Width < 1 || g.Height < 1 {
		return fmt.Errorf("%w: grid size %d×%d", ErrInvalid, g.Width, g.Height)
	}
	in := func(c grid.Cell) bool { return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height }
	if !in(g.Start) {
		return fmt.Errorf("%w: start %v outside %d×%d grid", ErrInvalid, g.Start, g.Width, g.Height)
	}
	if !in(g.End) {
		return fmt.Errorf("%w: end %v outside %d×%d grid", ErrInvalid, g.End, g.Width, g.Height)
	}
	for _, w := range g.Walls {
		if !in(w) {
			return fmt.Errorf("%w: wall %v outside %d×%d grid", ErrInvalid, w, g.Width, g.Height)
		}
	}
	return nil
}

// ParseCell parses "x,y".
func ParseCell(s string) (grid.Cell, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return grid.Cell{}, fmt.Errorf("%w: cell %q, want x,y", ErrInvalid, s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return grid.Cell{}, fmt.Errorf("%w: cell %q, want x,y", ErrInvalid, s)
	}
	return grid.Cell{X: x, Y: y}, nil
}

// ParseCells parses a ';'-separated list of "x,y" cells. Empty input yields no cells.
func ParseCells(s string) ([]grid.Cell, error) {
	var out []grid.Cell
	for _, part := range strings.Split(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := ParseCell(part)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// parser collects the first conversion error so FromEnv reads linearly.
type parser struct {
	err error
}

func (p *parser) getInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || p.err != nil {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		p.err = fmt.Errorf("%w: %s must be an integer: %v", ErrInvalid, key, err)
		return def
	}
	return n
}

func (p *parser) getCell(key string, def grid.Cell) grid.Cell {
	v, ok := os.LookupEnv(key)
	if !ok || p.err != nil {
		return def
	}
	c, err := ParseCell(v)
	if err != nil {
		p.err = fmt.Errorf("%s: %w", key, err)
		return def
	}
	return c
}

func (p *parser) getCells(key string, def []grid.Cell) []grid.Cell {
	v, ok := os.LookupEnv(key)
	if !ok || p.err != nil {
		return def
	}
	cs, err := ParseCells(v)
	if err != nil {
		p.err = fmt.Errorf("%s: %w", key, err)
		return def
	}
	return cs
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
