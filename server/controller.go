package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/mazepath/cache"
	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/mazefile"
	"github.com/katalvlaran/mazepath/solve"
)

// maxBodyBytes bounds request bodies on the solve endpoints.
const maxBodyBytes = 8 << 20

// errBadRequest marks a body that could not be decoded.
var errBadRequest = errors.New("server: malformed request")

// Controller registers a group of routes.
type Controller interface {
	Register(*gin.RouterGroup)
}

// SolveController serves the solver endpoints.
type SolveController struct {
	store    cache.Store
	maxSteps int
	timeout  time.Duration
	log      *slog.Logger
}

// NewSolveController creates a controller. A nil store disables caching.
func NewSolveController(store cache.Store, maxSteps int, timeout time.Duration, log *slog.Logger) *SolveController {
	if log == nil {
		log = slog.Default()
	}
	return &SolveController{store: store, maxSteps: maxSteps, timeout: timeout, log: log}
}

// Register adds the solver routes to route.
func (c *SolveController) Register(route *gin.RouterGroup) {
	route.GET("/healthz", c.healthz)
	route.GET("/solvers", c.solvers)
	route.POST("/solve", c.solveJSON)
	route.POST("/solve/raw", c.solveRaw)
}

func (c *SolveController) healthz(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (c *SolveController) solvers(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, SolversResponse{Solvers: solve.Names(), Default: solve.Default})
}

// solveJSON handles a grid sent as JSON.
func (c *SolveController) solveJSON(ctx *gin.Context) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBodyBytes)

	var request SolveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		var tooLarge *http.MaxBytesError
		if !errors.As(err, &tooLarge) {
			err = fmt.Errorf("%w: %w", errBadRequest, err)
		}
		c.fail(ctx, err)
		return
	}
	cells, err := request.cells()
	if err != nil {
		c.fail(ctx, err)
		return
	}
	g, err := gridgraph.From2D(cells)
	if err != nil {
		c.fail(ctx, err)
		return
	}

	c.respond(ctx, request.Solver, g, request.Start.point(), request.End.point())
}

// solveRaw handles a maze in the text file format; the solver comes from the query.
func (c *SolveController) solveRaw(ctx *gin.Context) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBodyBytes)

	p, err := mazefile.Parse(ctx.Request.Body)
	if err != nil {
		c.fail(ctx, err)
		return
	}

	c.respond(ctx, ctx.Query("solver"), p.Grid, p.Start, p.End)
}

// respond runs the solver through the cache and writes the response.
func (c *SolveController) respond(ctx *gin.Context, name string, g *gridgraph.GridGraph, start, end gridgraph.Point) {
	solver, err := solve.Normalize(name)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	// validate before touching the cache so bad input never costs a round trip
	if err = g.CheckPoint(start); err != nil {
		c.fail(ctx, err)
		return
	}
	if err = g.CheckPoint(end); err != nil {
		c.fail(ctx, err)
		return
	}

	reqCtx := ctx.Request.Context()
	if c.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(reqCtx, c.timeout)
		defer cancel()
	}
	compute := func() (solve.Outcome, error) {
		return solve.Run(reqCtx, solver, g, start, end, c.maxSteps)
	}

	var (
		out    solve.Outcome
		cached bool
	)
	if c.store == nil {
		out, err = compute()
	} else {
		out, cached, err = cache.Resolve(reqCtx, c.store, cache.Key(solver, g, start, end), compute, func(err error) {
			c.log.Warn("cache unavailable", slog.String("error", err.Error()),
				slog.String("request_id", ctx.GetString(ContextRequestID)))
		})
	}
	if err != nil {
		c.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newSolveResponse(solver, out, cached))
}

// fail writes {"error": ...} with a status derived from err.
func (c *SolveController) fail(ctx *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		c.log.Error("solve failed", slog.String("error", err.Error()),
			slog.String("request_id", ctx.GetString(ContextRequestID)))
	}
	ctx.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case solve.IsStepBudget(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, gridgraph.ErrInvalidGrid),
		errors.Is(err, gridgraph.ErrPointOutOfBounds),
		errors.Is(err, solve.ErrUnknownSolver),
		errors.Is(err, mazefile.ErrMissingPoint),
		errors.Is(err, mazefile.ErrMalformedPoint),
		errors.Is(err, mazefile.ErrBadCell),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
