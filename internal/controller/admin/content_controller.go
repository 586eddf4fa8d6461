package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examadmin/internal/controller/httpx"
	"github.com/lshigami/examadmin/internal/dto"
	"github.com/lshigami/examadmin/internal/service"
)

// ContentController serves notifications, syllabus links and exam Q&A links.
type ContentController struct {
	notifications service.NotificationService
	syllabus      service.SyllabusService
	examQA        service.ExamQAService
}

func NewContentController(notifications service.NotificationService, syllabus service.SyllabusService, examQA service.ExamQAService) *ContentController {
	return &ContentController{notifications: notifications, syllabus: syllabus, examQA: examQA}
}

// CreateNotification godoc
// @Summary Create a notification
// @Tags Notifications
// @Accept json
// @Produce json
// @Param notification body dto.NotificationRequest true "Notification"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notifications [post]
func (c *ContentController) CreateNotification(ctx *gin.Context) {
	var req dto.NotificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		httpx.BindError(ctx, err)
		return
	}
	n, err := c.notifications.Create(ctx.Request.Context(), req)
	if err != nil {
		httpx.Error(ctx, err, "Error creating notification")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Notification created successfully", Data: n})
}

// GetNotifications godoc
// @Summary List notifications
// @Tags Notifications
// @Produce json
// @Success 200 {object} dto.DataResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notifications [get]
func (c *ContentController) GetNotifications(ctx *gin.Context) {
	list, err := c.notifications.GetAll(ctx.Request.Context())
	if err != nil {
		httpx.Error(ctx, err, "Error fetching notifications")
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Data: list})
}

// UpdateNotification godoc
// @Summary Update a notification
// @Description Fields omitted from the body keep their stored value.
// @Tags Notifications
// @Accept json
// @Produce json
// @Param id path string true "Notification ID"
// @Param notification body dto.NotificationPatch true "Fields to change"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notifications/{id} [put]
func (c *ContentController) UpdateNotification(ctx *gin.Context) {
	var patch dto.NotificationPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		httpx.BindError(ctx, err)
		return
	}
	n, err := c.notifications.Update(ctx.Request.Context(), ctx.Param("id"), patch)
	if err != nil {
		httpx.Error(ctx, err, "Error updating notification")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Notification updated successfully", Data: n})
}

// DeleteNotification godoc
// @Summary Delete a notification
// @Tags Notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notifications/{id} [delete]
func (c *ContentController) DeleteNotification(ctx *gin.Context) {
	if err := c.notifications.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		httpx.Error(ctx, err, "Error deleting notification")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Notification deleted successfully"})
}

// CreateSyllabus godoc
// @Summary Create a syllabus link
// @Tags Syllabus
// @Accept json
// @Produce json
// @Param syllabus body dto.SyllabusRequest true "Syllabus"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /syllabus [post]
func (c *ContentController) CreateSyllabus(ctx *gin.Context) {
	var req dto.SyllabusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		httpx.BindError(ctx, err)
		return
	}
	sy, err := c.syllabus.Create(ctx.Request.Context(), req)
	if err != nil {
		httpx.Error(ctx, err, "Error creating syllabus")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Syllabus created successfully", Data: sy})
}

// GetSyllabus godoc
// @Summary List syllabus links
// @Tags Syllabus
// @Produce json
// @Success 200 {object} dto.DataResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /syllabus [get]
func (c *ContentController) GetSyllabus(ctx *gin.Context) {
	list, err := c.syllabus.GetAll(ctx.Request.Context())
	if err != nil {
		httpx.Error(ctx, err, "Error fetching syllabus")
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Data: list})
}

// GetSyllabusByID godoc
// @Summary Get a syllabus link
// @Tags Syllabus
// @Produce json
// @Param id path string true "Syllabus ID"
// @Success 200 {object} dto.DataResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /syllabus/{id} [get]
func (c *ContentController) GetSyllabusByID(ctx *gin.Context) {
	sy, err := c.syllabus.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		httpx.Error(ctx, err, "Error fetching syllabus")
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Data: sy})
}

// UpdateSyllabus godoc
// @Summary Update a syllabus link
// @Tags Syllabus
// @Accept json
// @Produce json
// @Param id path string true "Syllabus ID"
// @Param syllabus body dto.SyllabusPatch true "Fields to change"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /syllabus/{id} [put]
func (c *ContentController) UpdateSyllabus(ctx *gin.Context) {
	var patch dto.SyllabusPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		httpx.BindError(ctx, err)
		return
	}
	sy, err := c.syllabus.Update(ctx.Request.Context(), ctx.Param("id"), patch)
	if err != nil {
		httpx.Error(ctx, err, "Error updating syllabus")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Syllabus updated successfully", Data: sy})
}

// DeleteSyllabus godoc
// @Summary Delete a syllabus link
// @Tags Syllabus
// @Produce json
// @Param id path string true "Syllabus ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /syllabus/{id} [delete]
func (c *ContentController) DeleteSyllabus(ctx *gin.Context) {
	if err := c.syllabus.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		httpx.Error(ctx, err, "Error deleting syllabus")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Syllabus deleted successfully"})
}

// CreateExamQA godoc
// @Summary Create an exam Q&A link
// @Tags Exam Q&A
// @Accept json
// @Produce json
// @Param qa body dto.ExamQARequest true "Exam Q&A"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /exam-qa [post]
func (c *ContentController) CreateExamQA(ctx *gin.Context) {
	var req dto.ExamQARequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		httpx.BindError(ctx, err)
		return
	}
	qa, err := c.examQA.Create(ctx.Request.Context(), req)
	if err != nil {
		httpx.Error(ctx, err, "Error creating exam Q&A")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Exam Q&A created successfully", Data: qa})
}

// GetExamQA godoc
// @Summary List exam Q&A links
// @Tags Exam Q&A
// @Produce json
// @Success 200 {object} dto.DataResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /exam-qa [get]
func (c *ContentController) GetExamQA(ctx *gin.Context) {
	list, err := c.examQA.GetAll(ctx.Request.Context())
	if err != nil {
		httpx.Error(ctx, err, "Error fetching exam Q&A")
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Data: list})
}

// DeleteExamQA godoc
// @Summary Delete an exam Q&A link
// @Tags Exam Q&A
// @Produce json
// @Param id path string true "Exam Q&A ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /exam-qa/{id} [delete]
func (c *ContentController) DeleteExamQA(ctx *gin.Context) {
	if err := c.examQA.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		httpx.Error(ctx, err, "Error deleting exam Q&A")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Exam Q&A deleted successfully"})
}
