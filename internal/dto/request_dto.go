package dto

// ImageUpload is an uploaded question image, already read into memory.
type ImageUpload struct {
	MimeType string
	Data     []byte
}

// QuestionForm carries the multipart fields of a question create/replace.
// Options is the raw JSON array text and CorrectAnswer the raw integer text;
// both are validated by the service.
type QuestionForm struct {
	Question      string
	Options       string
	CorrectAnswer string
	Image         *ImageUpload
}

type ScheduleRequest struct {
	Date      string   `json:"date" binding:"required"`
	StartTime string   `json:"startTime" binding:"required"`
	EndTime   string   `json:"endTime" binding:"required"`
	Marks     *float64 `json:"marks" binding:"required"`
	Price     *float64 `json:"price" binding:"required"`
}

type NotificationRequest struct {
	Title   string `json:"title" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// NotificationPatch fields left nil keep their stored value.
type NotificationPatch struct {
	Title   *string `json:"title"`
	Message *string `json:"message"`
}

type SyllabusRequest struct {
	ExamName string `json:"examName" binding:"required"`
	Link     string `json:"link" binding:"required"`
}

type SyllabusPatch struct {
	ExamName *string `json:"examName"`
	Link     *string `json:"link"`
}

type ExamQARequest struct {
	ExamName string `json:"examName" binding:"required"`
	Link     string `json:"link" binding:"required"`
}

type ConcernRequest struct {
	RegistrationNumber string `json:"registrationNumber" binding:"required"`
	Name               string `json:"name" binding:"required"`
	Exam               string `json:"exam"`
	Message            string `json:"message" binding:"required"`
}

// AnswerRequest records one candidate response. Answer may be omitted only
// when Skipped is true.
type AnswerRequest struct {
	Order   int  `json:"order" binding:"required,min=1"`
	Answer  *int `json:"answer"`
	Skipped bool `json:"skipped"`
}

type AdminLoginQuery struct {
	UserID   string `form:"userid"`
	Password string `form:"password"`
}
