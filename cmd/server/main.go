package main

import (
	"flag"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/gin-blog/internal/api"
	"github.com/d60-Lab/gin-blog/internal/api/handler"
	"github.com/d60-Lab/gin-blog/internal/api/middleware"
	"github.com/d60-Lab/gin-blog/internal/cache"
	"github.com/d60-Lab/gin-blog/internal/config"
	"github.com/d60-Lab/gin-blog/internal/model"
	"github.com/d60-Lab/gin-blog/internal/repository"
	"github.com/d60-Lab/gin-blog/internal/service"
	"github.com/d60-Lab/gin-blog/pkg/logger"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	if err := logger.Init(cfg.Server.Env); err != nil {
		logger.Fatal("init logger", zap.Error(err))
	}
	defer logger.Sync()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Server.Env,
		}); err != nil {
			logger.Fatal("init sentry", zap.Error(err))
		}
		defer sentry.Flush(2 * time.Second)
	}

	db, err := openDB(cfg)
	if err != nil {
		logger.Fatal("open database", zap.String("env", cfg.Server.Env), zap.Error(err))
	}
	if err := db.AutoMigrate(&model.User{}, &model.Post{}, &model.Contact{}); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	var listingCache service.ListingCache
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		listingCache = cache.NewPostCache(client, cfg.Redis.CacheTTL)
		logger.Info("post cache enabled", zap.String("redis", cfg.Redis.Addr))
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	contactRepo := repository.NewContactRepository(db)

	authSvc := service.NewAuthService(userRepo)
	postSvc := service.NewPostService(postRepo, listingCache, cfg.Blog.NoOfPosts)
	contactSvc := service.NewContactService(contactRepo)
	sessions := service.NewSessionManager(cfg.Server.Secret, cfg.Session.TTL, cfg.Session.Remember)

	h := handler.NewHandler(cfg.Blog, cfg.Admin, postSvc, contactSvc, authSvc, sessions)
	authMW := middleware.NewAuth(sessions, userRepo)

	if cfg.Server.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := api.NewRouter(h, authMW, "web/templates/*.html")

	logger.Info("listening", zap.String("addr", cfg.Server.Addr))
	if err := r.Run(cfg.Server.Addr); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}

func openDB(cfg *config.Config) (*gorm.DB, error) {
	if cfg.Server.Env == "prod" {
		return gorm.Open(postgres.Open(cfg.DB.ProdURI), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(cfg.DB.LocalURI), &gorm.Config{})
}
