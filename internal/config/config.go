package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Server struct {
	Addr   string `validate:"required"`
	Env    string `validate:"oneof=local prod"` // selects the DB URI
	Secret string `validate:"required"`         // session signing key
}

type DB struct {
	LocalURI string // sqlite file path
	ProdURI  string // postgres DSN
}

type Blog struct {
	Name      string
	Tagline   string
	About     string
	NoOfPosts int // page size for the listing
}

type Admin struct {
	User     string
	Password string // consumed by the bootstrap only, stored hashed
}

type Session struct {
	TTL      time.Duration
	Remember time.Duration
}

type Redis struct {
	Addr     string // empty disables the post cache
	CacheTTL time.Duration
}

type Config struct {
	Server  Server
	DB      DB
	Blog    Blog
	Admin   Admin
	Session Session
	Redis   Redis
	Sentry  struct{ DSN string }
}

// DSN returns the connection string selected by the environment.
func (c *Config) DSN() string {
	if c.Server.Env == "prod" {
		return c.DB.ProdURI
	}
	return c.DB.LocalURI
}

// Load reads the YAML config at path into an explicit Config. Every key has a
// default so a missing file only matters when it was requested explicitly.
// Environment variables override file values (BLOG_SERVER_ADDR etc).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("blog")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.env", "local")
	v.SetDefault("server.secret", "dev-secret")
	v.SetDefault("db.local_uri", "blog.db")
	v.SetDefault("db.prod_uri", "")
	v.SetDefault("blog.name", "My Blog")
	v.SetDefault("blog.tagline", "")
	v.SetDefault("blog.about", "")
	v.SetDefault("blog.no_of_posts", 5)
	v.SetDefault("admin.user", "admin")
	v.SetDefault("admin.password", "")
	v.SetDefault("session.ttl_hours", 12)
	v.SetDefault("session.remember_days", 30)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.cache_ttl_seconds", 60)
	v.SetDefault("sentry.dsn", "")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Server: Server{
			Addr:   v.GetString("server.addr"),
			Env:    v.GetString("server.env"),
			Secret: v.GetString("server.secret"),
		},
		DB: DB{
			LocalURI: v.GetString("db.local_uri"),
			ProdURI:  v.GetString("db.prod_uri"),
		},
		Blog: Blog{
			Name:      v.GetString("blog.name"),
			Tagline:   v.GetString("blog.tagline"),
			About:     v.GetString("blog.about"),
			NoOfPosts: v.GetInt("blog.no_of_posts"),
		},
		Admin: Admin{
			User:     v.GetString("admin.user"),
			Password: v.GetString("admin.password"),
		},
		Session: Session{
			TTL:      time.Duration(v.GetInt("session.ttl_hours")) * time.Hour,
			Remember: time.Duration(v.GetInt("session.remember_days")) * 24 * time.Hour,
		},
		Redis: Redis{
			Addr:     v.GetString("redis.addr"),
			CacheTTL: time.Duration(v.GetInt("redis.cache_ttl_seconds")) * time.Second,
		},
	}
	cfg.Sentry.DSN = v.GetString("sentry.dsn")

	if cfg.Blog.NoOfPosts < 1 {
		cfg.Blog.NoOfPosts = 5
	}
	if cfg.Server.Env == "prod" && cfg.DB.ProdURI == "" {
		return nil, fmt.Errorf("config: prod environment requires db.prod_uri")
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
