package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/board"
	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// searchTimeout bounds a single search request.
const searchTimeout = 2 * time.Second

// BoardController exposes board editing and search over HTTP.
type BoardController struct {
	store  board.Store
	layout config.Grid
	logger *log.Logger
}

// NewBoardController initializes a BoardController. New boards use layout.
func NewBoardController(store board.Store, layout config.Grid, logger *log.Logger) *BoardController {
	return &BoardController{store: store, layout: layout, logger: logger}
}

// Register registers board and algorithm routes.
func (bc *BoardController) Register(route *gin.RouterGroup) {
	route.GET("/algorithms", bc.algorithms)

	boards := route.Group("/boards")
	{
		boards.POST("", bc.create)
		boards.GET("/:id", bc.get)
		boards.DELETE("/:id", bc.remove)
		boards.POST("/:id/walls", bc.toggleWall)
		boards.DELETE("/:id/walls", bc.clearWalls)
		boards.POST("/:id/search", bc.search)
	}
}

// algorithms lists the supported algorithm names.
func (bc *BoardController) algorithms(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"algorithms": search.Algorithms()})
}

// create stores a fresh board with the configured layout.
func (bc *BoardController) create(ctx *gin.Context) {
	b, err := board.New(bc.layout)
	if err != nil {
		bc.fail(ctx, err)
		return
	}
	if err := bc.store.Create(ctx, b); err != nil {
		bc.fail(ctx, err)
		return
	}
	bc.logger.Printf("[BOARD] [INFO] created %s", b.ID())
	ctx.JSON(http.StatusCreated, b)
}

func (bc *BoardController) get(ctx *gin.Context) {
	id, ok := bc.boardID(ctx)
	if !ok {
		return
	}
	b, err := bc.store.Get(ctx, id)
	if err != nil {
		bc.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, b)
}

func (bc *BoardController) remove(ctx *gin.Context) {
	id, ok := bc.boardID(ctx)
	if !ok {
		return
	}
	if err := bc.store.Delete(ctx, id); err != nil {
		bc.fail(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// toggleWall flips the wall state of one cell.
func (bc *BoardController) toggleWall(ctx *gin.Context) {
	id, ok := bc.boardID(ctx)
	if !ok {
		return
	}
	var request WallRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c := grid.Cell{X: *request.X, Y: *request.Y}

	var wall bool
	_, err := bc.store.Update(ctx, id, func(b *board.Board) error {
		var err error
		wall, err = b.Toggle(c)
		return err
	})
	if err != nil {
		bc.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, WallResponse{Cell: c, Wall: wall})
}

// clearWalls removes every wall from the board.
func (bc *BoardController) clearWalls(ctx *gin.Context) {
	id, ok := bc.boardID(ctx)
	if !ok {
		return
	}
	b, err := bc.store.Update(ctx, id, func(b *board.Board) error {
		b.Clear()
		return nil
	})
	if err != nil {
		bc.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, b)
}

// search runs the requested algorithm on a snapshot of the board.
func (bc *BoardController) search(ctx *gin.Context) {
	id, ok := bc.boardID(ctx)
	if !ok {
		return
	}
	var request SearchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	algo, err := search.ParseAlgorithm(request.Algorithm)
	if err != nil {
		bc.fail(ctx, err)
		return
	}
	b, err := bc.store.Get(ctx, id)
	if err != nil {
		bc.fail(ctx, err)
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()
	res, err := b.Solve(timeoutCtx, algo)
	if err != nil {
		bc.fail(ctx, err)
		return
	}

	path := res.Path
	if path == nil {
		path = grid.Path{}
	}
	ctx.JSON(http.StatusOK, SearchResponse{
		Algorithm: res.Algorithm,
		Path:      path,
		Found:     !path.Empty(),
		Steps:     path.Steps(),
		Visited:   res.Visited,
		Enqueued:  res.Enqueued,
	})
}

// boardID parses the :id parameter, answering 400 when it is malformed.
func (bc *BoardController) boardID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid board id"})
		return uuid.Nil, false
	}
	return id, true
}

// fail maps domain errors to HTTP status codes.
func (bc *BoardController) fail(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, board.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, search.ErrUnknownAlgorithm),
		errors.Is(err, board.ErrEndpointWall),
		errors.Is(err, grid.ErrOutOfBounds):
		status = http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	}
	if status == http.StatusInternalServerError {
		bc.logger.Printf("[BOARD] [ERROR] %s %s: %v", ctx.Request.Method, ctx.FullPath(), err)
	}
	ctx.JSON(status, ErrorResponse{Error: err.Error()})
}
