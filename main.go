package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/mazegen-api/api"
	api_i "github.com/beka-birhanu/mazegen-api/api/i"
	mazeapi "github.com/beka-birhanu/mazegen-api/api/maze"
	"github.com/beka-birhanu/mazegen-api/config"
	"github.com/beka-birhanu/mazegen-api/service"
	"github.com/beka-birhanu/mazegen-api/service/i"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Global variables for dependencies
var (
	appLogger      *log.Entry
	mazeService    i.MazeService
	mazeController api_i.Controller
	router         *api.Router
)

func initLogger() {
	level, err := log.ParseLevel(config.Envs.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	appLogger = log.WithField("component", config.ComponentApp)
	appLogger.Info("Logger initialized")
}

func initMazeService() {
	var err error
	generatorLogger := log.WithField("component", config.ComponentGenerator)
	mazeService, err = service.NewGenerationService(generatorLogger, nil)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating generation service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Generation service initialized")
}

func initMazeController() {
	var err error
	apiLogger := log.WithField("component", config.ComponentAPI)
	mazeController, err = mazeapi.NewGenerationController(mazeService, apiLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Info("Router initialized")
}

func main() {
	// Initialize dependencies
	initLogger()
	initMazeService()
	initMazeController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
