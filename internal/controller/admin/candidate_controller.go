package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examadmin/internal/controller/httpx"
	"github.com/lshigami/examadmin/internal/dto"
	"github.com/lshigami/examadmin/internal/service"
)

type CandidateController struct {
	candidateService service.CandidateService
	concernService   service.ConcernService
}

func NewCandidateController(candidateService service.CandidateService, concernService service.ConcernService) *CandidateController {
	return &CandidateController{candidateService: candidateService, concernService: concernService}
}

// GetCandidates godoc
// @Summary List candidates
// @Tags Candidates
// @Produce json
// @Success 200 {object} dto.DataResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /candidates [get]
func (c *CandidateController) GetCandidates(ctx *gin.Context) {
	candidates, err := c.candidateService.GetAll(ctx.Request.Context())
	if err != nil {
		httpx.Error(ctx, err, "Error fetching candidates")
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Data: candidates})
}

// DeleteAllCandidates godoc
// @Summary Delete every candidate
// @Description Removes all candidate documents and everything nested under them. An interrupted run is resumed first.
// @Tags Candidates
// @Produce json
// @Success 200 {object} dto.PurgeResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /candidates [delete]
func (c *CandidateController) DeleteAllCandidates(ctx *gin.Context) {
	resp, err := c.candidateService.PurgeAll(ctx.Request.Context())
	if err != nil {
		httpx.Error(ctx, err, "Error deleting candidates")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetConcerns godoc
// @Summary List candidate concerns
// @Tags Concerns
// @Produce json
// @Success 200 {object} dto.DataResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /concerns [get]
func (c *CandidateController) GetConcerns(ctx *gin.Context) {
	concerns, err := c.concernService.GetAll(ctx.Request.Context())
	if err != nil {
		httpx.Error(ctx, err, "Error fetching concerns")
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Data: concerns})
}

// GetConcern godoc
// @Summary Get a candidate concern
// @Tags Concerns
// @Produce json
// @Param id path string true "Concern ID"
// @Success 200 {object} dto.DataResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /concerns/{id} [get]
func (c *CandidateController) GetConcern(ctx *gin.Context) {
	concern, err := c.concernService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		httpx.Error(ctx, err, "Error fetching concern")
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Data: concern})
}

// DeleteConcern godoc
// @Summary Delete a candidate concern
// @Tags Concerns
// @Produce json
// @Param id path string true "Concern ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /concerns/{id} [delete]
func (c *CandidateController) DeleteConcern(ctx *gin.Context) {
	if err := c.concernService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		httpx.Error(ctx, err, "Error deleting concern")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Concern deleted successfully"})
}
