package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lexsite-backend/internal/auth"
	"lexsite-backend/internal/blog"
	"lexsite-backend/internal/cache"
	"lexsite-backend/internal/carousel"
	"lexsite-backend/internal/comments"
	"lexsite-backend/internal/config"
	"lexsite-backend/internal/contact"
	"lexsite-backend/internal/db"
	"lexsite-backend/internal/middleware"
	"lexsite-backend/internal/team"
	"lexsite-backend/internal/validation"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if cfg.JWTSecret == "" || cfg.RefreshSecret == "" {
		logger.Error("JWT_SECRET and REFRESH_SECRET must be set")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Error("mongo connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("mongo connected")
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		logger.Error("index creation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var cacheStore cache.Cache = cache.NewNoop()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("redis connected")
		cacheStore = redisCache
	}

	manager := &auth.Manager{
		AccessSecret:  []byte(cfg.JWTSecret),
		RefreshSecret: []byte(cfg.RefreshSecret),
		AccessTTL:     time.Duration(cfg.AccessTTLMinutes) * time.Minute,
		RefreshTTL:    time.Duration(cfg.RefreshTTLMinutes) * time.Minute,
		Issuer:        "lexsite-backend",
	}

	val := validation.New()
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second

	authRepo := auth.NewRepository(cols.Admins)
	authHandler := auth.NewHandler(authRepo, manager, val, cfg.CookieSecure(), cfg.Timezone, logger)

	blogRepo := blog.NewRepository(cols.Blogs)
	blogService := blog.NewService(blogRepo, cfg.Timezone)
	blogHandler := blog.NewHandler(blogService, val, logger)

	commentRepo := comments.NewRepository(cols.Comments)
	commentService := comments.NewService(commentRepo, cfg.Timezone)
	commentHandler := comments.NewHandler(commentService, val, logger)

	teamRepo := team.NewRepository(cols.Teams)
	teamService := team.NewService(teamRepo, cfg.Timezone)
	teamHandler := team.NewHandler(teamService, val, logger)

	carouselRepo := carousel.NewRepository(cols.Carousel)
	carouselService := carousel.NewService(carouselRepo, cfg.Timezone)
	carouselHandler := carousel.NewHandler(carouselService, val, cacheStore, cacheTTL, logger)

	contactRepo := contact.NewRepository(cols.Contacts)
	contactService := contact.NewService(contactRepo, cfg.Timezone)
	contactHandler := contact.NewHandler(contactService, val, logger)

	requireAdmin := middleware.RequireAdmin(manager.VerifyAccess)
	window := time.Duration(cfg.RateLimitWindowSec) * time.Second
	contactLimiter := middleware.NewRateLimiter(cfg.RateLimitContact, window)
	commentLimiter := middleware.NewRateLimiter(cfg.RateLimitComments, window)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.FrontendOrigin))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	r.Route("/api", func(api chi.Router) {
		api.Route("/auth", func(ar chi.Router) {
			ar.Post("/register", authHandler.Register)
			ar.Post("/login", authHandler.Login)
			ar.Post("/refresh-token", authHandler.Refresh)
			ar.Post("/logout", authHandler.Logout)
		})

		api.Route("/blog", func(br chi.Router) {
			br.Get("/", blogHandler.List)
			br.Get("/{slug}", blogHandler.GetBySlug)
			br.Group(func(protected chi.Router) {
				protected.Use(requireAdmin)
				protected.Post("/", blogHandler.Create)
				protected.Put("/{id}", blogHandler.Update)
				protected.Delete("/{id}", blogHandler.Delete)
			})
		})

		api.Route("/comment", func(cr chi.Router) {
			cr.Get("/{blogId}", commentHandler.ListByBlog)
			cr.With(commentLimiter.Middleware).Post("/{blogId}", commentHandler.Create)
			cr.With(requireAdmin).Delete("/delete/{commentId}", commentHandler.Delete)
		})

		api.Route("/team", func(tr chi.Router) {
			tr.Get("/", teamHandler.List)
			tr.Get("/{id}", teamHandler.Get)
			tr.Group(func(protected chi.Router) {
				protected.Use(requireAdmin)
				protected.Post("/", teamHandler.Create)
				protected.Put("/{id}", teamHandler.Update)
				protected.Delete("/{id}", teamHandler.Delete)
			})
		})

		api.Route("/carousel", func(cr chi.Router) {
			cr.Get("/", carouselHandler.PublicList)
			cr.Group(func(protected chi.Router) {
				protected.Use(requireAdmin)
				protected.Post("/", carouselHandler.Create)
				protected.Put("/{id}", carouselHandler.Update)
				protected.Delete("/{id}", carouselHandler.Delete)
			})
		})

		api.Route("/contact", func(cr chi.Router) {
			cr.With(contactLimiter.Middleware).Post("/", contactHandler.Create)
			cr.With(requireAdmin).Get("/", contactHandler.List)
		})
	})

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}
