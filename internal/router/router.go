// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "lda-portal/swagger" // Import generated swagger docs

	"lda-portal/internal/authz"
	"lda-portal/internal/handler"
	"lda-portal/internal/metrics"
	"lda-portal/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler     *handler.AuthHandler
	AccountHandler  *handler.AccountHandler
	UserHandler     *handler.UserHandler
	LDAHandler      *handler.LDAHandler
	FunderHandler   *handler.FunderHandler
	FundHandler     *handler.FundHandler
	DocumentHandler *handler.DocumentHandler
	MediaHandler    *handler.MediaHandler
	ContactHandler  *handler.ContactHandler

	Authenticator middleware.Authenticator
	// ResetLimiter throttles the unauthenticated password reset endpoints.
	ResetLimiter *middleware.IPRateLimiter
	Logger       zerolog.Logger
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(cfg.Logger))
	r.Use(metrics.Middleware())
	r.Use(middleware.CORS())

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", cfg.AuthHandler.Register)
			authRoutes.POST("/login", cfg.AuthHandler.Login)
			authRoutes.POST("/forgot-password", middleware.RateLimit(cfg.ResetLimiter), cfg.AuthHandler.ForgotPassword)
			authRoutes.POST("/reset-password", middleware.RateLimit(cfg.ResetLimiter), cfg.AuthHandler.ResetPassword)
		}

		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.Authenticator))

		// Own account
		account := protected.Group("/account")
		{
			account.GET("", cfg.AccountHandler.GetAccount)
			account.PUT("", cfg.AccountHandler.UpdateAccount)
			account.PUT("/password", cfg.AccountHandler.ChangePassword)
		}

		// Account management
		users := protected.Group("/users")
		{
			users.GET("", cfg.UserHandler.ListUsers)
			users.POST("", cfg.UserHandler.CreateUser)
			users.GET("/:id", cfg.UserHandler.GetUser)
			users.PUT("/:id", cfg.UserHandler.UpdateUser)
			users.DELETE("/:id", cfg.UserHandler.DeleteUser)
		}

		// LDAs
		ldas := protected.Group("/ldas")
		{
			ldas.GET("", cfg.LDAHandler.ListLDAs)
			ldas.POST("", cfg.LDAHandler.CreateLDA)

			// Routes scoped to one LDA
			ldaWithID := ldas.Group("/:ldaId")
			{
				ldaWithID.GET("", middleware.LDAViewer(), cfg.LDAHandler.GetLDA)
				ldaWithID.PUT("", middleware.LDAAuthz(authz.ActionLDAManage), cfg.LDAHandler.UpdateLDA)
				ldaWithID.DELETE("", cfg.LDAHandler.DeleteLDA)

				ldaWithID.GET("/documents", middleware.LDAViewer(), cfg.DocumentHandler.ListLDADocuments)
				ldaWithID.GET("/media", middleware.LDAViewer(), cfg.MediaHandler.ListLDAMedia)
				ldaWithID.GET("/contacts", middleware.LDAViewer(), cfg.ContactHandler.ListLDAContacts)
			}
		}

		// Funders
		funders := protected.Group("/funders")
		{
			funders.GET("", cfg.FunderHandler.ListFunders)
			funders.POST("", cfg.FunderHandler.CreateFunder)
			funders.GET("/:id", cfg.FunderHandler.GetFunder)
			funders.PUT("/:id", cfg.FunderHandler.UpdateFunder)
			funders.DELETE("/:id", cfg.FunderHandler.DeleteFunder)
			funders.GET("/:id/documents", cfg.DocumentHandler.ListFunderDocuments)
		}

		// Funds
		funds := protected.Group("/funds")
		{
			funds.GET("", cfg.FundHandler.ListFunds)
			funds.POST("", cfg.FundHandler.CreateFund)
			funds.GET("/:id", cfg.FundHandler.GetFund)
			funds.PUT("/:id", cfg.FundHandler.UpdateFund)
			funds.DELETE("/:id", cfg.FundHandler.DeleteFund)
			funds.GET("/:id/documents", cfg.DocumentHandler.ListFundDocuments)
		}

		// Documents
		documents := protected.Group("/documents")
		{
			documents.POST("", cfg.DocumentHandler.CreateDocument)
			documents.GET("/:id", cfg.DocumentHandler.GetDocument)
			documents.PUT("/:id", cfg.DocumentHandler.UpdateDocument)
			documents.DELETE("/:id", cfg.DocumentHandler.DeleteDocument)
		}

		// Media
		media := protected.Group("/media")
		{
			media.POST("", cfg.MediaHandler.CreateMedia)
			media.GET("/:id", cfg.MediaHandler.GetMedia)
			media.PUT("/:id", cfg.MediaHandler.UpdateMedia)
			media.DELETE("/:id", cfg.MediaHandler.DeleteMedia)
		}

		// Contacts
		contacts := protected.Group("/contacts")
		{
			contacts.POST("", cfg.ContactHandler.CreateContact)
			contacts.GET("/:id", cfg.ContactHandler.GetContact)
			contacts.PUT("/:id", cfg.ContactHandler.UpdateContact)
			contacts.DELETE("/:id", cfg.ContactHandler.DeleteContact)
		}
	}

	return r
}
