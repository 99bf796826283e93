package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"pokequiz-service/internal/app"
	"pokequiz-service/internal/config"
	"pokequiz-service/internal/infra/memory"
	"pokequiz-service/internal/infra/postgres"
	redcache "pokequiz-service/internal/infra/redis"
	"pokequiz-service/internal/pokeapi"
	"pokequiz-service/internal/seed"
	transport "pokequiz-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the quiz API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "5000"
	}

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	// Schema bootstrap runs lazily on the first request and retries
	// after failures, so a database that comes up late does not wedge
	// the process.
	var bootstrap *app.Bootstrapper
	var source app.QuestionRepository
	var seeder app.QuestionSeeder
	var comments app.CommentRepository
	var pinger transport.Pinger
	if pool != nil {
		bootstrap = app.NewBootstrapper(func(ctx context.Context) error {
			return runMigrationsWithConfig(ctx, cfg)
		})
		store := postgres.NewQuestionStore(pool)
		source = store
		seeder = postgres.NewSeeder(pool)
		comments = postgres.NewCommentStore(pool)
		pinger = store
	} else {
		log.Printf("no postgres configured, serving the built-in dataset from memory")
		static := memory.NewStaticQuestionSource(seed.Questions())
		bootstrap = app.NewBootstrapper(func(context.Context) error { return nil })
		source = static
		seeder = static
		comments = memory.NewCommentStore()
	}

	questionTTL := config.TTLDuration(cfg.Questions.TTL, 10*time.Minute)
	var questions app.QuestionRepository
	var invalidator app.CacheInvalidator
	if redisClient != nil {
		cache := redcache.NewQuestionCache(redisClient, source, questionTTL)
		questions = cache
		invalidator = cache
	} else {
		cache := memory.NewQuestionCache(source, questionTTL)
		questions = cache
		invalidator = cache
	}

	enricher := pokeapi.NewClient(cfg.PokeAPI.BaseURL, config.TTLDuration(cfg.PokeAPI.Timeout, 15*time.Second))

	quizService := app.NewQuizService(questions, enricher)
	commentService := app.NewCommentService(comments)
	seedService := app.NewSeedService(seeder, seed.Questions(), invalidator)

	router := transport.NewRouter(&transport.Container{
		Quiz:        quizService,
		Comments:    commentService,
		Seeds:       seedService,
		Bootstrap:   bootstrap,
		Pinger:      pinger,
		SeedKey:     cfg.Seed.Key,
		CORSOrigins: cfg.Server.CORSOrigins,
	})

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		log.Printf("starting quiz API on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
