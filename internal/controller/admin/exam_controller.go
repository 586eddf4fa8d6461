package admin

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examadmin/internal/controller/httpx"
	"github.com/lshigami/examadmin/internal/dto"
	"github.com/lshigami/examadmin/internal/service"
	"github.com/rs/zerolog/log"
)

// MaxImageBytes caps an uploaded question image.
const MaxImageBytes = 5 << 20

type ExamController struct {
	questionService service.QuestionService
	scheduleService service.ScheduleService
	examService     service.ExamService
}

func NewExamController(questionService service.QuestionService, scheduleService service.ScheduleService, examService service.ExamService) *ExamController {
	return &ExamController{
		questionService: questionService,
		scheduleService: scheduleService,
		examService:     examService,
	}
}

// AddQuestion godoc
// @Summary Add a question to an exam
// @Description Creates the exam if needed and appends the question at the next order.
// @Tags Exams - Questions
// @Accept multipart/form-data
// @Produce json
// @Param title path string true "Exam title"
// @Param question formData string true "Question text"
// @Param options formData string true "JSON array of exactly 4 options"
// @Param correctAnswer formData integer true "Correct answer"
// @Param image formData file false "Optional image, at most 5MB"
// @Success 200 {object} dto.QuestionCreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /exams/{title}/questions [post]
func (c *ExamController) AddQuestion(ctx *gin.Context) {
	form, err := readQuestionForm(ctx)
	if err != nil {
		httpx.Error(ctx, err, "Error adding question")
		return
	}
	resp, err := c.questionService.AddQuestion(ctx.Request.Context(), ctx.Param("title"), form)
	if err != nil {
		httpx.Error(ctx, err, "Error adding question")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateQuestion godoc
// @Summary Replace a question
// @Description Replaces question text, options and answer. Order and creation time are kept, and so is the image when none is uploaded.
// @Tags Exams - Questions
// @Accept multipart/form-data
// @Produce json
// @Param title path string true "Exam title"
// @Param id path string true "Question ID"
// @Param question formData string true "Question text"
// @Param options formData string true "JSON array of exactly 4 options"
// @Param correctAnswer formData integer true "Correct answer"
// @Param image formData file false "Optional replacement image"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /exams/{title}/questions/{id} [put]
func (c *ExamController) UpdateQuestion(ctx *gin.Context) {
	form, err := readQuestionForm(ctx)
	if err != nil {
		httpx.Error(ctx, err, "Error updating question")
		return
	}
	question, err := c.questionService.UpdateQuestion(ctx.Request.Context(), ctx.Param("title"), ctx.Param("id"), form)
	if err != nil {
		httpx.Error(ctx, err, "Error updating question")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Question updated successfully", Data: question})
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Description Remaining questions keep their order values.
// @Tags Exams - Questions
// @Produce json
// @Param title path string true "Exam title"
// @Param id path string true "Question ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /exams/{title}/questions/{id} [delete]
func (c *ExamController) DeleteQuestion(ctx *gin.Context) {
	if err := c.questionService.DeleteQuestion(ctx.Request.Context(), ctx.Param("title"), ctx.Param("id")); err != nil {
		httpx.Error(ctx, err, "Error deleting question")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Question deleted successfully"})
}

// SetSchedule godoc
// @Summary Set the exam schedule
// @Description Writes the schedule to both the exam document and the schedule tree.
// @Tags Exams - Schedule
// @Accept json
// @Produce json
// @Param title path string true "Exam title"
// @Param schedule body dto.ScheduleRequest true "Schedule; times use hh:mm AM/PM"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /exams/{title}/date-time [post]
func (c *ExamController) SetSchedule(ctx *gin.Context) {
	var req dto.ScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		httpx.BindError(ctx, err)
		return
	}
	schedule, err := c.scheduleService.SetSchedule(ctx.Request.Context(), ctx.Param("title"), req)
	if err != nil {
		httpx.Error(ctx, err, "Error setting exam date and time")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Exam date and time set successfully", Data: schedule})
}

// GetSchedule godoc
// @Summary Get the exam schedule
// @Tags Exams - Schedule
// @Produce json
// @Param title path string true "Exam title"
// @Success 200 {object} dto.DataResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /exams/{title}/date-time [get]
func (c *ExamController) GetSchedule(ctx *gin.Context) {
	schedule, err := c.scheduleService.GetSchedule(ctx.Request.Context(), ctx.Param("title"))
	if err != nil {
		httpx.Error(ctx, err, "Error fetching exam date and time")
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Data: schedule})
}

// GetAllExams godoc
// @Summary List exams with their questions
// @Tags Exams
// @Produce json
// @Success 200 {object} dto.DataResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /exams [get]
func (c *ExamController) GetAllExams(ctx *gin.Context) {
	exams, err := c.examService.GetAllExams(ctx.Request.Context())
	if err != nil {
		httpx.Error(ctx, err, "Error fetching exams")
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Data: exams})
}

func readQuestionForm(ctx *gin.Context) (dto.QuestionForm, error) {
	form := dto.QuestionForm{
		Question:      ctx.PostForm("question"),
		Options:       ctx.PostForm("options"),
		CorrectAnswer: ctx.PostForm("correctAnswer"),
	}
	image, err := readImage(ctx)
	if err != nil {
		return form, err
	}
	form.Image = image
	return form, nil
}

// readImage returns nil when the request carries no image part.
func readImage(ctx *gin.Context) (*dto.ImageUpload, error) {
	header, err := ctx.FormFile("image")
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) {
			log.Debug().Err(err).Msg("No multipart image in request")
		}
		return nil, nil
	}
	if header.Size > MaxImageBytes {
		return nil, &service.ValidationError{Message: fmt.Sprintf("image exceeds the %d MB limit", MaxImageBytes>>20)}
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(data) > MaxImageBytes {
		return nil, &service.ValidationError{Message: fmt.Sprintf("image exceeds the %d MB limit", MaxImageBytes>>20)}
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(data)
	}
	return &dto.ImageUpload{MimeType: mimeType, Data: data}, nil
}
