package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examadmin/internal/controller/httpx"
	"github.com/lshigami/examadmin/internal/dto"
	"github.com/lshigami/examadmin/internal/service"
)

// CandidatePortalController takes writes that originate from candidates.
type CandidatePortalController struct {
	candidateService service.CandidateService
	concernService   service.ConcernService
}

func NewCandidatePortalController(candidateService service.CandidateService, concernService service.ConcernService) *CandidatePortalController {
	return &CandidatePortalController{candidateService: candidateService, concernService: concernService}
}

// SubmitAnswer godoc
// @Summary Record a candidate answer
// @Description Stores one answer under the candidate. answer may be omitted when skipped is true.
// @Tags Candidates
// @Accept json
// @Produce json
// @Param id path string true "Registration number"
// @Param answer body dto.AnswerRequest true "Answer"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /candidates/{id}/answers [post]
func (c *CandidatePortalController) SubmitAnswer(ctx *gin.Context) {
	var req dto.AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		httpx.BindError(ctx, err)
		return
	}
	answer, err := c.candidateService.SubmitAnswer(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		httpx.Error(ctx, err, "Error recording answer")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Answer recorded successfully", Data: answer})
}

// RaiseConcern godoc
// @Summary Raise a concern
// @Tags Concerns
// @Accept json
// @Produce json
// @Param concern body dto.ConcernRequest true "Concern"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /concerns [post]
func (c *CandidatePortalController) RaiseConcern(ctx *gin.Context) {
	var req dto.ConcernRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		httpx.BindError(ctx, err)
		return
	}
	concern, err := c.concernService.Create(ctx.Request.Context(), req)
	if err != nil {
		httpx.Error(ctx, err, "Error raising concern")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Concern submitted successfully", Data: concern})
}
