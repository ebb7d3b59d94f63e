package maze

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/vinom-solver/api/identity"
	dmn "github.com/beka-birhanu/vinom-solver/domain"
	mz "github.com/beka-birhanu/vinom-solver/maze"
	"github.com/beka-birhanu/vinom-solver/service/i"
	"github.com/beka-birhanu/vinom-solver/solver"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Controller handles HTTP requests for storing and solving mazes.
type Controller struct {
	mazeService i.MazeService
}

// NewController creates a new maze Controller.
func NewController(s i.MazeService) *Controller {
	return &Controller{
		mazeService: s,
	}
}

// RegisterPublic registers public routes.
func (c *Controller) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("/:ID", c.getMaze)
		mazes.POST("/:ID/solve", c.solve)
	}
}

// RegisterProtected registers privileged routes.
func (c *Controller) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", c.createMaze)
	}
}

func (c *Controller) createMaze(ctx *gin.Context) {
	ownerID, err := identity.UserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var request CreateMazeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var record *dmn.MazeRecord
	if request.generated() {
		record, err = c.mazeService.Generate(ctx.Request.Context(), ownerID, request.Rows, request.Cols, request.Seed)
	} else {
		var m *mz.Maze
		m, err = request.toMaze()
		if err == nil {
			record, err = c.mazeService.Create(ctx.Request.Context(), ownerID, m)
		}
	}
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"id": record.ID.String()})
}

func (c *Controller) getMaze(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze ID"})
		return
	}

	record, err := c.mazeService.ByID(ctx.Request.Context(), id)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(record))
}

func (c *Controller) solve(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze ID"})
		return
	}

	var request SolveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	solution, err := c.mazeService.Solve(ctx.Request.Context(), id, request.toQuery())
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newSolveResponse(solution))
}

// writeError maps service errors to HTTP status codes.
func writeError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, dmn.ErrMazeNotFound):
		status = http.StatusNotFound
	case errors.Is(err, dmn.ErrInvalidMaze),
		errors.Is(err, mz.ErrInvalidDimensions),
		errors.Is(err, mz.ErrNonRectangular),
		errors.Is(err, solver.ErrInvalidCoordinate),
		errors.Is(err, solver.ErrNegativePower):
		status = http.StatusBadRequest
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}
