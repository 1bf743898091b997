package handlers

import (
	"github.com/dcampus/evaluation-service/internal/services"
	"github.com/dcampus/evaluation-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type HandlerManager struct {
	planHandler       *PlanHandler
	basePlanHandler   *BasePlanHandler
	sectionHandler    *SectionHandler
	submissionHandler *SubmissionHandler
	gradingHandler    *GradingHandler
	reportHandler     *ReportHandler
	sessionHandler    *SessionHandler
}

func NewHandlerManager(sm *services.ServiceManager, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		planHandler:       NewPlanHandler(sm.Plan, logger),
		basePlanHandler:   NewBasePlanHandler(sm.BasePlan, logger),
		sectionHandler:    NewSectionHandler(sm.Section, logger),
		submissionHandler: NewSubmissionHandler(sm.Submission, logger),
		gradingHandler:    NewGradingHandler(sm.Grading, logger),
		reportHandler:     NewReportHandler(sm.Report, logger),
		sessionHandler:    NewSessionHandler(sm.Session, logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "evaluation-service",
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware)
	{
		// Course section routes
		sections := v1.Group("/sections")
		{
			sections.POST("", hm.sectionHandler.CreateSection)
			sections.GET("", hm.sectionHandler.ListSections)
			sections.GET("/:id", hm.sectionHandler.GetSection)
			sections.PUT("/:id", hm.sectionHandler.UpdateSection)
			sections.DELETE("/:id", hm.sectionHandler.DeleteSection)

			// Enrollment management
			sections.POST("/:id/enrollments", hm.sectionHandler.EnrollStudent)
			sections.GET("/:id/enrollments", hm.sectionHandler.ListEnrollments)

			// Section-scoped plan routes
			sections.GET("/:id/plans", hm.planHandler.GetSectionPlans)
			sections.GET("/:id/plans/:period_id", hm.planHandler.GetPlanForPeriod)
			sections.POST("/:id/plans/copy", hm.basePlanHandler.CopyPlan)
		}

		v1.DELETE("/enrollments/:enrollment_id", hm.sectionHandler.DropEnrollment)

		// Evaluation plan routes
		plans := v1.Group("/plans")
		{
			plans.GET("/:id", hm.planHandler.GetPlan)
			plans.GET("/:id/validation", hm.planHandler.GetValidation)
			plans.POST("/:id/items", hm.planHandler.AddItem)
			plans.PUT("/:id/items/:item_id", hm.planHandler.UpdateItem)
			plans.DELETE("/:id/items/:item_id", hm.planHandler.RemoveItem)
		}

		// Base plan template routes
		basePlans := v1.Group("/base-plans")
		{
			basePlans.POST("", hm.basePlanHandler.CreateBasePlan)
			basePlans.GET("", hm.basePlanHandler.ListBasePlans)
			basePlans.GET("/:id", hm.basePlanHandler.GetBasePlan)
			basePlans.PUT("/:id", hm.basePlanHandler.UpdateBasePlan)
			basePlans.DELETE("/:id", hm.basePlanHandler.DeleteBasePlan)
		}

		// Submission routes
		submissions := v1.Group("/submissions")
		{
			submissions.POST("", hm.submissionHandler.CreateSubmission)
			submissions.GET("", hm.submissionHandler.ListSubmissions)
			submissions.GET("/:id", hm.submissionHandler.GetSubmission)
		}

		// Grading routes
		grading := v1.Group("/grading")
		{
			grading.POST("/grades", hm.gradingHandler.RecordGrade)
			grading.POST("/submissions/:submission_id", hm.gradingHandler.GradeSubmission)
			grading.GET("/sections/:section_id/periods/:period_id/gradebook", hm.gradingHandler.GetGradebook)
			grading.GET("/sections/:section_id/periods/:period_id/students/:student_id/average", hm.gradingHandler.GetStudentAverage)
		}

		// Report routes
		reports := v1.Group("/reports")
		{
			reports.GET("/institutions/:institution_id/stats", hm.reportHandler.GetInstitutionStats)
			reports.GET("/sections/:section_id/periods/:period_id/gradebook.xlsx", hm.reportHandler.ExportGradebook)
		}

		// Live session routes
		sessions := v1.Group("/sessions")
		{
			sessions.POST("", hm.sessionHandler.CreateSession)
			sessions.GET("", hm.sessionHandler.ListSessions)
			sessions.GET("/:id", hm.sessionHandler.GetSession)
			sessions.POST("/:id/start", hm.sessionHandler.StartSession)
			sessions.POST("/:id/finish", hm.sessionHandler.FinishSession)
			sessions.POST("/:id/join", hm.sessionHandler.JoinSession)
			sessions.POST("/:id/attendance/confirm", hm.sessionHandler.ConfirmAttendance)
			sessions.GET("/:id/attendance", hm.sessionHandler.GetAttendance)
		}
	}
}
