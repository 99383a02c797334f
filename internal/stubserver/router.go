package stubserver

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/savasana-dev/yogabook/internal/config"
	"github.com/savasana-dev/yogabook/internal/model"
	"github.com/savasana-dev/yogabook/internal/validation"
)

// Seeded admin credentials, kept stable so dev tooling and tests can
// sign in without registering first.
const (
	SeedAdminEmail    = "yoga@studio.com"
	SeedAdminPassword = "test!1234"
)

// Server bundles the stub's HTTP engine with the state it serves from,
// so tests can reach behind the API when needed.
type Server struct {
	Engine *gin.Engine
	Store  *Store
	Tokens *Tokens
}

// New builds a fully wired stub server with seeded reference data.
func New(cfg *config.Config, log zerolog.Logger) (*Server, error) {
	validation.Setup()

	store := NewStore()
	if err := seed(store, cfg.BcryptCost); err != nil {
		return nil, err
	}
	tokens := NewTokens(cfg.JWTSecret, cfg.JWTExpiry)

	gin.SetMode(cfg.GinMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-Id"}
	corsConfig.MaxAge = 12 * time.Hour
	engine.Use(cors.New(corsConfig))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authHandler := NewAuthHandler(store, tokens, cfg.BcryptCost, log)
	sessionHandler := NewSessionHandler(store, log)
	teacherHandler := NewTeacherHandler(store)
	userHandler := NewUserHandler(store, log)

	api := engine.Group("/api")

	// ─── Public ────────────────────────────────────────────────────────
	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/register", authHandler.Register)
	}

	// ─── Authenticated ─────────────────────────────────────────────────
	protected := api.Group("")
	protected.Use(requireAuth(tokens))
	{
		sessions := protected.Group("/session")
		{
			sessions.GET("", sessionHandler.List)
			sessions.GET("/:id", sessionHandler.Detail)
			sessions.POST("/:id/participate/:userId", sessionHandler.Participate)
			sessions.DELETE("/:id/participate/:userId", sessionHandler.UnParticipate)

			admin := sessions.Group("")
			admin.Use(requireAdmin())
			{
				admin.POST("", sessionHandler.Create)
				admin.PUT("/:id", sessionHandler.Update)
				admin.DELETE("/:id", sessionHandler.Delete)
			}
		}

		teachers := protected.Group("/teacher")
		{
			teachers.GET("", teacherHandler.List)
			teachers.GET("/:id", teacherHandler.Detail)
		}

		users := protected.Group("/user")
		{
			users.GET("/:id", userHandler.Detail)
			users.DELETE("/:id", userHandler.Delete)
		}
	}

	return &Server{Engine: engine, Store: store, Tokens: tokens}, nil
}

// seed loads the reference teachers and the default admin account.
func seed(store *Store, bcryptCost int) error {
	store.CreateTeacher(model.Teacher{FirstName: "Margot", LastName: "DELAHAYE"})
	store.CreateTeacher(model.Teacher{FirstName: "Hélène", LastName: "THIERCELIN"})

	hash, err := HashPassword(SeedAdminPassword, bcryptCost)
	if err != nil {
		return err
	}
	_, err = store.CreateUser(model.User{
		Email:        SeedAdminEmail,
		FirstName:    "Admin",
		LastName:     "Admin",
		Admin:        true,
		PasswordHash: hash,
	})
	return err
}
