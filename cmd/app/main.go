package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/joshzacharytan/about-me/internal/app/config"
	"github.com/joshzacharytan/about-me/internal/app/dsn"
	"github.com/joshzacharytan/about-me/internal/app/handler"
	"github.com/joshzacharytan/about-me/internal/app/redis"
	"github.com/joshzacharytan/about-me/internal/app/repository"
	"github.com/joshzacharytan/about-me/internal/app/session"
	"github.com/joshzacharytan/about-me/internal/pkg"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using environment variables")
	}

	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	// Redis is optional: without it, logout cannot revoke outstanding
	// copies of a session token before they expire.
	var redisClient *redis.Client
	if conf.RedisHost != "" {
		redisClient, err = redis.New(conf.RedisHost, conf.RedisPort)
		if err != nil {
			logrus.Fatalf("error connecting to redis: %v", err)
		}
	} else {
		logrus.Warn("REDIS_HOST not set, session revocation disabled")
	}

	rep, err := repository.New(dsn.FromEnv(), redisClient)
	if err != nil {
		logrus.Fatalf("error initializing repository: %v", err)
	}

	sessions := session.NewManager(conf.SessionSecret, conf.SessionTTL)
	hand := handler.NewHandler(rep, sessions)

	router := gin.Default()
	application := pkg.NewApp(conf, router, hand)
	application.RunApp()
}
