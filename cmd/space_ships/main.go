package main

// go run cmd/space_ships/main.go

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/iuriimudrak/javarush-intership/internal/app/config"
	"github.com/iuriimudrak/javarush-intership/internal/app/dsn"
	"github.com/iuriimudrak/javarush-intership/internal/app/handler"
	"github.com/iuriimudrak/javarush-intership/internal/app/metrics"
	"github.com/iuriimudrak/javarush-intership/internal/app/pkg"
	"github.com/iuriimudrak/javarush-intership/internal/app/repository"
	"github.com/iuriimudrak/javarush-intership/internal/app/service"

	_ "github.com/iuriimudrak/javarush-intership/docs" // Swagger docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.Use(func(c *gin.Context) {
		logrus.Infof("Incoming request: %s %s", c.Request.Method, c.Request.URL.Path)
	})
	router.Use(metrics.Middleware())

	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	rep, errRep := repository.New(dsn.FromEnv())
	if errRep != nil {
		logrus.Fatalf("error initializing repository: %v", errRep)
	}

	hand := handler.NewHandler(service.NewShipService(rep))

	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	application := pkg.NewApp(conf, router, hand)
	application.RunApp()
}
