package pkg

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/joshzacharytan/about-me/internal/app/config"
	"github.com/joshzacharytan/about-me/internal/app/handler"
)

type App struct {
	Config  *config.Config
	Router  *gin.Engine
	Handler *handler.Handler
}

func NewApp(conf *config.Config, router *gin.Engine, h *handler.Handler) *App {
	return &App{
		Config:  conf,
		Router:  router,
		Handler: h,
	}
}

func (a *App) RunApp() {
	logrus.Info("server start up")

	a.Router.LoadHTMLGlob("templates/*")
	a.Router.Static("/static", "./static")

	a.Handler.RegisterRoutes(a.Router)

	if err := a.Router.Run(a.Config.ServiceAddress()); err != nil {
		logrus.Fatalf("server failed: %v", err)
	}

	logrus.Info("server down")
}
