package api

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// WallRequest names the cell whose wall state to change.
type WallRequest struct {
	X *int `json:"x" binding:"required"`
	Y *int `json:"y" binding:"required"`
}

// WallResponse reports a cell's wall state after a toggle.
type WallResponse struct {
	Cell grid.Cell `json:"cell"`
	Wall bool      `json:"wall"`
}

// SearchRequest selects the algorithm to run.
type SearchRequest struct {
	Algorithm string `json:"algorithm" binding:"required"`
}

// SearchResponse is the outcome of a search on a board.
type SearchResponse struct {
	Algorithm search.Algorithm `json:"algorithm"`
	Path      []grid.Cell      `json:"path"`
	Found     bool             `json:"found"`
	Steps     int              `json:"steps"`
	Visited   int              `json:"visited"`
	Enqueued  int              `json:"enqueued"`
}

// ErrorResponse carries a human-readable error.
type ErrorResponse struct {
	Error string `json:"error"`
}
