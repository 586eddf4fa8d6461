package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/lshigami/examadmin/internal/controller/admin"
	"github.com/lshigami/examadmin/internal/controller/user"
)

// Controllers groups every handler set mounted under /api.
type Controllers struct {
	Exam      *admin.ExamController
	Content   *admin.ContentController
	Result    *admin.ResultController
	Candidate *admin.CandidateController
	Auth      *admin.AuthController
	Portal    *user.CandidatePortalController
}

func RegisterRoutes(router *gin.Engine, c Controllers) {
	api := router.Group("/api")
	{
		exams := api.Group("/exams")
		exams.GET("", c.Exam.GetAllExams)
		exams.POST("/:title/questions", c.Exam.AddQuestion)
		exams.PUT("/:title/questions/:id", c.Exam.UpdateQuestion)
		exams.DELETE("/:title/questions/:id", c.Exam.DeleteQuestion)
		exams.POST("/:title/date-time", c.Exam.SetSchedule)
		exams.GET("/:title/date-time", c.Exam.GetSchedule)

		api.GET("/today-exam-results", c.Result.GetTodayResults)
		api.GET("/all-exam-results", c.Result.GetAllResults)
		api.GET("/all-exam-results/export", c.Result.ExportResults)

		notifications := api.Group("/notifications")
		notifications.POST("", c.Content.CreateNotification)
		notifications.GET("", c.Content.GetNotifications)
		notifications.PUT("/:id", c.Content.UpdateNotification)
		notifications.DELETE("/:id", c.Content.DeleteNotification)

		syllabus := api.Group("/syllabus")
		syllabus.POST("", c.Content.CreateSyllabus)
		syllabus.GET("", c.Content.GetSyllabus)
		syllabus.GET("/:id", c.Content.GetSyllabusByID)
		syllabus.PUT("/:id", c.Content.UpdateSyllabus)
		syllabus.DELETE("/:id", c.Content.DeleteSyllabus)

		examQA := api.Group("/exam-qa")
		examQA.POST("", c.Content.CreateExamQA)
		examQA.GET("", c.Content.GetExamQA)
		examQA.DELETE("/:id", c.Content.DeleteExamQA)

		concerns := api.Group("/concerns")
		concerns.GET("", c.Candidate.GetConcerns)
		concerns.GET("/:id", c.Candidate.GetConcern)
		concerns.POST("", c.Portal.RaiseConcern)
		concerns.DELETE("/:id", c.Candidate.DeleteConcern)

		candidates := api.Group("/candidates")
		candidates.GET("", c.Candidate.GetCandidates)
		candidates.DELETE("", c.Candidate.DeleteAllCandidates)
		candidates.POST("/:id/answers", c.Portal.SubmitAnswer)

		api.GET("/admin/login", c.Auth.Login)
	}
}
