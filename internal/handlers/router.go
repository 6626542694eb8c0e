package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rmatch-app/rmatch-backend/internal/auth"
	"github.com/rmatch-app/rmatch-backend/internal/mail"
	"github.com/rmatch-app/rmatch-backend/internal/services"
	"gorm.io/gorm"
)

// RouterConfig carries everything the route tree depends on. Tests build a
// router against an in-memory database and a nil publisher.
type RouterConfig struct {
	DB            *gorm.DB
	Tokens        *auth.Manager
	Mailer        mail.Mailer
	Publisher     services.MessagePublisher
	ClientOrigin  string
	PublicBaseURL string
}

// NewRouter wires services, handlers, and routes into a gin engine.
func NewRouter(cfg RouterConfig) *gin.Engine {
	userService := services.NewUserService(cfg.DB, cfg.Mailer, cfg.PublicBaseURL)
	studentService := services.NewStudentService(cfg.DB)
	jobService := services.NewJobService(cfg.DB)
	facultyService := services.NewFacultyService(cfg.DB)
	messageService := services.NewMessageService(cfg.DB, cfg.Publisher)
	documentService := services.NewDocumentService(cfg.DB)
	workExperienceService := services.NewWorkExperienceService(cfg.DB)
	departmentService := services.NewDepartmentService(cfg.DB)

	userHandler := NewUserHandler(userService, cfg.Tokens)
	studentHandler := NewStudentHandler(studentService)
	jobHandler := NewJobHandler(jobService)
	facultyHandler := NewFacultyHandler(facultyService)
	messageHandler := NewMessageHandler(messageService)
	documentHandler := NewDocumentHandler(documentService)
	workExperienceHandler := NewWorkExperienceHandler(workExperienceService)
	departmentHandler := NewDepartmentHandler(departmentService)

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.ClientOrigin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authenticated := auth.Middleware(cfg.Tokens, cfg.DB)

	api := r.Group("/api")
	{
		api.GET("/health", HealthCheck)

		user := api.Group("/user")
		{
			user.POST("/sign-up", userHandler.SignUp)
			user.POST("/sign-in", userHandler.SignIn)
			user.GET("/verify/:key", userHandler.VerifyEmail)
			user.GET("/sign-out", authenticated, userHandler.SignOut)
			user.GET("/authenticated", authenticated, userHandler.Authenticated)
			user.POST("/update-email", authenticated, userHandler.UpdateEmail)
		}

		student := api.Group("/student", authenticated)
		{
			student.POST("/update-profile", studentHandler.UpdateProfile)
			student.GET("/get-profile/:studentId", studentHandler.GetProfile)
			student.GET("/get-applied-jobs", studentHandler.GetAppliedJobs)
			student.GET("/search", studentHandler.Search)
		}

		job := api.Group("/job", authenticated)
		{
			job.POST("/create", jobHandler.Create)
			job.POST("/update", jobHandler.Update)
			job.DELETE("/delete/:jobId", jobHandler.Delete)
			job.POST("/close/:jobId", jobHandler.Close)
			job.GET("/read", jobHandler.Read)
			job.GET("/get-new-jobs", jobHandler.GetNewJobs)
			job.POST("/apply/:jobId", jobHandler.Apply)
			job.POST("/withdraw/:jobId", jobHandler.Withdraw)
			job.GET("/applicants", jobHandler.Applicants)
		}

		faculty := api.Group("/facultyMemberProfile", authenticated)
		{
			faculty.POST("/update-profile", facultyHandler.UpdateProfile)
			faculty.GET("/get-profile/:facultyMemberId", facultyHandler.GetProfile)
		}

		message := api.Group("/message", authenticated)
		{
			message.POST("/send", messageHandler.Send)
			message.GET("/conversation/:userId", messageHandler.Conversation)
		}

		document := api.Group("/document", authenticated)
		{
			document.POST("/create", documentHandler.Create)
			document.GET("/read", documentHandler.Read)
			document.DELETE("/delete/:id", documentHandler.Delete)
		}

		workExperience := api.Group("/workExperience", authenticated)
		{
			workExperience.POST("/create", workExperienceHandler.Create)
			workExperience.GET("/read/:studentId", workExperienceHandler.Read)
			workExperience.POST("/update", workExperienceHandler.Update)
			workExperience.DELETE("/delete/:id", workExperienceHandler.Delete)
		}

		api.POST("/college/create", authenticated, departmentHandler.CreateCollege)
		api.GET("/college/read", authenticated, departmentHandler.ListColleges)
		api.POST("/department/create", authenticated, departmentHandler.CreateDepartment)
		api.GET("/department/read", authenticated, departmentHandler.ListDepartments)
		api.GET("/course/read", authenticated, departmentHandler.ListCourses)
	}

	return r
}
