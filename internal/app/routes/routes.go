package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumnet/api/internal/app/controllers"
	"github.com/alumnet/api/internal/app/models"
	"github.com/alumnet/api/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	alumniController *controllers.AlumniController,
	mentorshipController *controllers.MentorshipController,
	jobController *controllers.JobController,
	eventController *controllers.EventController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// --- Public routes ---
	v1.POST("/signup", authController.Signup)
	v1.POST("/signin", authController.Signin)
	v1.GET("/alumni", alumniController.GetDirectory)
	v1.GET("/alumni/filter-options", alumniController.GetFilterOptions)
	v1.GET("/alumni/year-stats", alumniController.GetYearStats)
	v1.GET("/jobs", jobController.ListJobs)
	v1.GET("/events", eventController.ListEvents)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	// Student-only routes
	student := authenticated.Group("/student")
	student.Use(authMiddleware.RoleRequired(string(models.RoleStudent)))
	{
		student.GET("/profile", studentController.GetProfile)
		student.PUT("/profile/update", studentController.UpdateProfile)

		student.GET("/events", eventController.ListRegistered)
		student.POST("/events/register", eventController.Register)
		student.DELETE("/events/unregister/:eventId", eventController.Unregister)

		student.POST("/jobs/apply", jobController.Apply)
		student.GET("/jobs/applications", jobController.ListApplications)

		student.GET("/mentorship/mentors", mentorshipController.ListAvailableMentors)
		student.GET("/mentorship/mentors/:mentorId", mentorshipController.GetMentorPublicProfile)
		student.POST("/mentorship/request", mentorshipController.RequestMentorship)
		student.GET("/mentorship/requests", mentorshipController.ListStudentRequests)
	}

	// Alumni-only routes
	alumni := authenticated.Group("/alumni")
	alumni.Use(authMiddleware.RoleRequired(string(models.RoleAlumni)))
	{
		alumni.GET("/profile", alumniController.GetProfile)
		alumni.PUT("/profile/update", alumniController.UpdateProfile)

		alumni.POST("/jobs", jobController.CreateJob)
		alumni.GET("/jobs", jobController.ListOwnJobs)
		alumni.PUT("/jobs/:jobId", jobController.UpdateJob)
		alumni.DELETE("/jobs/:jobId", jobController.DeleteJob)
		alumni.GET("/jobs/:jobId/applications", jobController.ListApplicants)
		alumni.PUT("/jobs/:jobId/applications/:applicationId/status", jobController.UpdateApplicationStatus)

		alumni.POST("/events/create", eventController.CreateEvent)
		alumni.GET("/events", eventController.ListOwnEvents)
		alumni.PUT("/events/:eventId/update", eventController.UpdateEvent)
		alumni.DELETE("/events/:eventId/delete", eventController.DeleteEvent)

		alumni.POST("/mentorship/setup", mentorshipController.SetupMentorProfile)
		alumni.GET("/mentorship/profile", mentorshipController.GetOwnProfile)
		alumni.GET("/mentorship/requests", mentorshipController.ListMentorRequests)
		alumni.PUT("/mentorship/request/:requestId/status", mentorshipController.RespondToRequest)
	}
}
