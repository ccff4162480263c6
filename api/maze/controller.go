package mazeapi

import (
	"errors"
	"math/rand"
	"net/http"

	"github.com/beka-birhanu/mazegen-api/mazegen"
	"github.com/beka-birhanu/mazegen-api/service"
	"github.com/beka-birhanu/mazegen-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// GenerationController manages maze generation requests and replay streaming.
type GenerationController struct {
	mazeService i.MazeService
	upgrader    *websocket.Upgrader
	logger      *log.Entry
}

// NewGenerationController initializes a GenerationController.
func NewGenerationController(ms i.MazeService, logger *log.Entry) (*GenerationController, error) {
	return &GenerationController{
		mazeService: ms,
		upgrader:    &websocket.Upgrader{},
		logger:      logger,
	}, nil
}

// Register registers the maze routes.
func (gc *GenerationController) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", gc.generate)
		mazes.GET("/:ID", gc.mazeByID)
		mazes.GET("/:ID/steps", gc.stepsByID)
		mazes.GET("/:ID/replay", gc.replay)
	}
}

// generate handles maze generation requests.
func (gc *GenerationController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg := mazegen.Config{
		Width:            request.Width,
		Height:           request.Height,
		Algorithm:        mazegen.Algorithm(request.Algorithm),
		BraidingFactor:   request.BraidingFactor,
		ExtraWallRemoval: request.ExtraWallRemoval,
	}
	if request.Seed != nil {
		cfg.Rand = rand.New(rand.NewSource(*request.Seed))
	}

	run, err := gc.mazeService.Generate(cfg, request.RecordSteps)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, fromRun(run))
}

// mazeByID retrieves a previously generated maze.
func (gc *GenerationController) mazeByID(ctx *gin.Context) {
	run, ok := gc.runFromParam(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, fromRun(run))
}

// stepsByID retrieves the ordered step log of a previously generated maze.
func (gc *GenerationController) stepsByID(ctx *gin.Context) {
	run, ok := gc.runFromParam(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, &StepsResponse{ID: run.ID, Steps: run.Steps})
}

// replay streams the step log of a generated maze over a WebSocket, one step
// per message. The client paces the stream through its reads; the server
// never delays between steps.
func (gc *GenerationController) replay(ctx *gin.Context) {
	run, ok := gc.runFromParam(ctx)
	if !ok {
		return
	}

	conn, err := gc.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		gc.logger.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	for _, step := range run.Steps {
		if err := conn.WriteJSON(step); err != nil {
			gc.logger.WithError(err).Warn("replay stream interrupted")
			return
		}
	}

	// A close message tells the client the log is exhausted.
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "replay complete"))
}

// runFromParam resolves the ID path parameter to a stored run, writing the
// error response itself when resolution fails.
func (gc *GenerationController) runFromParam(ctx *gin.Context) (*i.MazeRun, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return nil, false
	}

	run, err := gc.mazeService.RunByID(id)
	if err != nil {
		if errors.Is(err, service.ErrRunNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return nil, false
	}

	return run, true
}
