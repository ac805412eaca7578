package pkg

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/iuriimudrak/javarush-intership/internal/app/config"
	"github.com/iuriimudrak/javarush-intership/internal/app/handler"
)

type App struct {
	Config  *config.Config
	Router  *gin.Engine
	Handler *handler.Handler
}

func NewApp(cfg *config.Config, router *gin.Engine, hand *handler.Handler) *App {
	return &App{
		Config:  cfg,
		Router:  router,
		Handler: hand,
	}
}

func (a *App) RunApp() {
	logrus.Info("Server start up")

	a.Handler.SetupRoutes(a.Router)

	addr := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	if err := a.Router.Run(addr); err != nil {
		logrus.Fatalf("error running server: %v", err)
	}

	logrus.Info("Server down")
}
