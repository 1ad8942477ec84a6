// Command gridpathd serves the pathfinding demo over HTTP: a JSON API for
// editing boards and running searches, and a browser page at "/".
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/katalvlaran/gridpath/api"
	"github.com/katalvlaran/gridpath/board"
	"github.com/katalvlaran/gridpath/config"
)

var (
	cfg         config.Config
	appLogger   *log.Logger
	redisClient *redis.Client
	store       board.Store
	router      *api.Router
)

func initConfig() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		appLogger.Printf("[ERROR] Loading config: %v", err)
		os.Exit(1)
	}
	appLogger.Printf("[INFO] Config loaded: %d×%d board, %s store", cfg.Grid.Width, cfg.Grid.Height, cfg.Store)
}

func initStore(ctx context.Context) {
	switch cfg.Store {
	case config.StoreRedis:
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			appLogger.Printf("[ERROR] Redis ping failed: %v", err)
			os.Exit(1)
		}
		store = board.NewRedisStore(redisClient, cfg.BoardTTL)
		appLogger.Printf("[INFO] Connected to Redis at %s", cfg.RedisAddr)
	default:
		store = board.NewMemoryStore()
		appLogger.Println("[INFO] Using in-memory board store")
	}
}

func initRouter() {
	gin.SetMode(cfg.GinMode)
	boardLogger := log.New(os.Stdout, "[GRIDPATH] ", log.LstdFlags)
	router = api.NewRouter(api.Config{
		Addr:        cfg.HTTPAddr,
		BaseURL:     cfg.BaseURL,
		Controllers: []api.Controller{api.NewBoardController(store, cfg.Grid, boardLogger)},
	})
	appLogger.Println("[INFO] Router initialized")
}

func main() {
	appLogger = log.New(os.Stdout, "[APP] ", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	initConfig()
	initStore(ctx)
	if redisClient != nil {
		defer redisClient.Close()
	}
	initRouter()

	appLogger.Printf("[INFO] Listening on %s", cfg.HTTPAddr)
	if err := router.Run(); err != nil {
		appLogger.Printf("[ERROR] Starting server: %v", err)
		os.Exit(1)
	}
}
