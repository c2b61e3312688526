package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"
)

type ServerConfig struct {
	AllowOrigins    string
	RateLimitMax    int
	RateLimitWindow time.Duration
	ShutdownTimeout time.Duration
}

var (
	serverConfig *ServerConfig
	serverOnce   sync.Once
)

func LoadServerConfig() *ServerConfig {
	serverOnce.Do(func() {
		serverConfig = &ServerConfig{
			AllowOrigins:    getenv("CORS_ALLOW_ORIGINS", "*"),
			RateLimitMax:    100,
			RateLimitWindow: time.Minute,
			ShutdownTimeout: 10 * time.Second,
		}
		if s := os.Getenv("RATE_LIMIT_MAX"); s != "" {
			v, err := strconv.Atoi(s)
			if err != nil || v < 1 {
				log.Printf("Warning: RATE_LIMIT_MAX must be a positive integer, got %q; using %d", s, serverConfig.RateLimitMax)
			} else {
				serverConfig.RateLimitMax = v
			}
		}
		if s := os.Getenv("RATE_LIMIT_WINDOW"); s != "" {
			d, err := time.ParseDuration(s)
			if err != nil || d <= 0 {
				log.Printf("Warning: RATE_LIMIT_WINDOW must be a positive duration, got %q; using %s", s, serverConfig.RateLimitWindow)
			} else {
				serverConfig.RateLimitWindow = d
			}
		}
	})
	return serverConfig
}
