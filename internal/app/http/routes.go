package routes

import (
	adminapi "kalam-platform/internal/api/admin"
	authapi "kalam-platform/internal/api/auth"
	"kalam-platform/internal/api/kalams"
	notificationsapi "kalam-platform/internal/api/notifications"
	publicapi "kalam-platform/internal/api/public"
	studioapi "kalam-platform/internal/api/studio"
	usersapi "kalam-platform/internal/api/users"
	vocalistsapi "kalam-platform/internal/api/vocalists"
	writersapi "kalam-platform/internal/api/writers"
	youtubeapi "kalam-platform/internal/api/youtube"
	"kalam-platform/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public routes get input sanitization
	public := r.Group("/")
	public.Use(middleware.SanitizeInputMiddleware())

	public.POST("/auth/signup", authapi.Signup)
	public.POST("/auth/verify-otp", authapi.VerifyOTP)
	public.POST("/auth/resend-otp", authapi.ResendOTP)
	public.POST("/auth/login", authapi.Login)
	public.POST("/auth/forgot-password", authapi.ForgotPassword)
	public.POST("/auth/reset-password", authapi.ResetPassword)
	public.POST("/auth/refresh-token", authapi.RefreshToken)
	public.POST("/auth/google-auth", authapi.GoogleAuth)

	public.POST("/public", publicapi.CreatePartnershipProposal)
	public.GET("/public", publicapi.ListPostedKalams)
	public.GET("/youtube/videos", youtubeapi.ListVideos)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(), middleware.RequireVerifiedUser())

	auth.GET("/me", usersapi.GetCurrentUser)
	auth.POST("/auth/change-password", authapi.ChangePassword)
	auth.POST("/user/create-blog", usersapi.CreateGuestPost)
	auth.GET("/user/guest-blogs", usersapi.ListGuestPosts)

	auth.POST("/kalams", kalams.CreateKalam)
	auth.GET("/kalams/:id", kalams.GetKalam)
	auth.PUT("/kalams/:id", kalams.UpdateKalam)

	auth.GET("/kalams/:id/submissions/:sub_id", kalams.GetSubmission)
	auth.POST("/kalams/:id/submissions/:sub_id/writer-response", kalams.WriterResponse)
	auth.POST("/kalams/:id/submissions/:sub_id/vocalist-response", kalams.VocalistResponse)

	auth.POST("/writers/submit", writersapi.SubmitProfile)
	auth.GET("/writers/get/:writer_id", writersapi.GetProfile)
	auth.GET("/writers/is-registered", writersapi.IsRegistered)
	auth.GET("/writers/my-kalams", kalams.GetMyKalams)

	auth.POST("/vocalists/submit", vocalistsapi.SubmitProfile)
	auth.GET("/vocalists/is-registered", vocalistsapi.IsRegistered)
	auth.GET("/vocalists/profile/:vocalist_id", vocalistsapi.GetProfile)
	auth.GET("/vocalists/my-kalams", kalams.GetAssignedKalams)

	auth.POST("/requests/studio-visit-request", studioapi.CreateStudioVisit)
	auth.GET("/requests/studio-visit-requests/vocalist", studioapi.ListStudioVisitsByVocalist)
	auth.POST("/requests/remote-recording-request", studioapi.CreateRemoteRecording)
	auth.GET("/requests/remote-recording-requests/vocalist", studioapi.ListRemoteRecordingsByVocalist)
	auth.GET("/requests/check-request-exists/:vocalist_id/:kalam_id", studioapi.CheckRequestExists)

	auth.GET("/notifications/user", notificationsapi.ListForUser)
	auth.POST("/notifications/read/:notification_id", notificationsapi.MarkRead)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin", "sub-admin"))

	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/submissions", adminapi.ListAllSubmissions)
	admin.GET("/writers", adminapi.ListWriters)
	admin.PATCH("/vocalists/:vocalist_id/status", adminapi.UpdateVocalistStatus)

	admin.POST("/kalams/:id/assign-vocalist", kalams.AssignVocalist)
	admin.POST("/kalams/:id/post-publish-link", kalams.PostPublishLink)
	admin.POST("/kalams/:id/submissions/:sub_id/update-status", kalams.UpdateSubmissionStatus)

	admin.GET("/requests/studio-visit-requests", studioapi.ListStudioVisits)
	admin.GET("/requests/remote-recording-requests", studioapi.ListRemoteRecordings)

	admin.POST("/notifications", notificationsapi.Create)
	admin.POST("/youtube/refresh", youtubeapi.RefreshVideos)
}
