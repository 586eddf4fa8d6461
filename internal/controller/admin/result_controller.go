package admin

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examadmin/internal/controller/httpx"
	"github.com/lshigami/examadmin/internal/dto"
	"github.com/lshigami/examadmin/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ResultController struct {
	resultService service.ResultService
}

func NewResultController(resultService service.ResultService) *ResultController {
	return &ResultController{resultService: resultService}
}

// GetTodayResults godoc
// @Summary Compute today's exam results
// @Description Scores every candidate of the exam scheduled for today and overwrites their stored results.
// @Tags Results
// @Produce json
// @Success 200 {object} dto.TodayResultsResponse
// @Failure 404 {object} dto.ErrorResponse "No exam scheduled today"
// @Failure 500 {object} dto.ErrorResponse
// @Router /today-exam-results [get]
func (c *ResultController) GetTodayResults(ctx *gin.Context) {
	resp, err := c.resultService.ComputeTodayResults(ctx.Request.Context())
	if err != nil {
		httpx.Error(ctx, err, "Error computing exam results")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetAllResults godoc
// @Summary List stored results grouped by exam
// @Tags Results
// @Produce json
// @Success 200 {object} dto.DataResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /all-exam-results [get]
func (c *ResultController) GetAllResults(ctx *gin.Context) {
	groups, err := c.resultService.GetAllResults(ctx.Request.Context())
	if err != nil {
		httpx.Error(ctx, err, "Error fetching exam results")
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Data: groups})
}

// ExportResults godoc
// @Summary Download stored results as a spreadsheet
// @Tags Results
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} dto.ErrorResponse
// @Router /all-exam-results/export [get]
func (c *ResultController) ExportResults(ctx *gin.Context) {
	data, err := c.resultService.ExportResults(ctx.Request.Context())
	if err != nil {
		httpx.Error(ctx, err, "Error exporting exam results")
		return
	}
	name := fmt.Sprintf("exam-results-%s.xlsx", time.Now().Format("20060102"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	ctx.Data(http.StatusOK, xlsxContentType, data)
}
