// Package transport provides a new server-entity(by ginext) exposing the search over HTTP
package transport

import (
	"context"
	"net/http"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/docker/distribution/uuid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/ginext"
)

type Processor interface {
	ProcessInput(ctx context.Context, task *model.SearchTask) (*model.SearchResult, error)
}

type handler struct {
	proc Processor
	log  zerolog.Logger
}

func NewServer(addr string, proc Processor, log zerolog.Logger) *http.Server {
	h := handler{proc: proc, log: log}

	engine := ginext.New("release")
	engine.GET("/ping", h.HealthCheck)
	engine.POST("/search", h.Search)

	return &http.Server{
		Addr:    addr,
		Handler: engine,
	}
}

func (h handler) HealthCheck(ctx *ginext.Context) {
	h.log.Debug().Msg("received a healthcheck request")
	ctx.Status(http.StatusOK)
}

func (h handler) Search(ctx *ginext.Context) {
	var req model.SearchRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse search request: " + err.Error()})
		return
	}

	task := model.SearchTask{
		TaskID: uuid.Generate().String(),
		Param: model.SearchParam{
			Pattern:    *req.Pattern,
			IgnoreCase: req.IgnoreCase,
			LineNumber: req.LineNumber,
		},
		Text: req.Text,
	}
	h.log.Info().Str("tid", task.TaskID).Int("bytes", len(task.Text)).Bool("ignore_case", task.Param.IgnoreCase).Msg("received search task")

	res, err := h.proc.ProcessInput(ctx.Request.Context(), &task)
	if err != nil {
		h.log.Warn().Str("tid", task.TaskID).Err(err).Msg("search aborted")
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	h.log.Debug().Str("tid", task.TaskID).Int("matches", len(res.Matches)).Uint64("hash", res.HashSumm).Msg("search finished")

	ctx.JSON(http.StatusOK, res)
}
