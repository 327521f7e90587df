package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"tips-service/internal/api/middleware"
	"tips-service/internal/auth"
	"tips-service/internal/post"
	"tips-service/internal/services"
	"tips-service/internal/user"
	"tips-service/internal/vote"
)

type Router struct {
	engine      *gin.Engine
	authHandler *auth.AuthHandler
	userHandler *user.UserHandler
	postHandler *post.PostHandler
	voteHandler *vote.VoteHandler
	rateLimitMW *middleware.RateLimitMiddleware
	authMW      *middleware.AuthMiddleware
}

func NewRouter(
	redisService *services.RedisService,
	db *gorm.DB,
	jwtSecret string,
	jwtExpire time.Duration,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	// Add middlewares
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.LogApi())

	// Initialize repositories
	authRepo := auth.NewAuthRepository(db)
	userRepo := user.NewUserRepository(db)
	postRepo := post.NewPostRepository(db)
	voteRepo := vote.NewVoteRepository(db)

	// Initialize services
	authService := auth.NewAuthService(authRepo, jwtSecret, jwtExpire)
	userService := user.NewUserService(userRepo)
	postService := post.NewPostService(postRepo)
	voteService := vote.NewVoteService(voteRepo)

	return &Router{
		engine:      engine,
		authHandler: auth.NewAuthHandler(authService),
		userHandler: user.NewUserHandler(userService),
		postHandler: post.NewPostHandler(postService),
		voteHandler: vote.NewVoteHandler(voteService),
		rateLimitMW: middleware.NewRateLimitMiddleware(redisService),
		authMW:      middleware.NewAuthMiddleware(jwtSecret),
	}
}

func (r *Router) SetupRoutes() {
	r.engine.GET("/healthcheck", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api/v1")

	// Auth routes, throttled per IP like the rest of the login surface
	authRoutes := api.Group("/auth")
	authRoutes.Use(r.rateLimitMW.RateLimitIP(10, 10*time.Minute))
	{
		authRoutes.POST("/register", r.authHandler.Register)
		authRoutes.POST("/login", r.authHandler.Login)
	}

	// User routes
	users := api.Group("/users")
	{
		users.GET("/search", r.userHandler.Search)
		users.GET("/:username", r.userHandler.GetProfile)
		users.PUT("/profile",
			r.authMW.RequireAuth(),
			r.rateLimitMW.RateLimit(100, time.Minute),
			r.userHandler.UpdateProfile,
		)
	}

	// Post routes
	posts := api.Group("/posts")
	{
		posts.GET("", r.postHandler.List)
		posts.GET("/search/location", r.postHandler.SearchByLocation)
	}

	postsAuth := api.Group("/posts")
	postsAuth.Use(r.authMW.RequireAuth(), r.rateLimitMW.RateLimit(100, time.Minute))
	{
		postsAuth.POST("", r.postHandler.Create)
		postsAuth.PUT("/:id", r.postHandler.Update)
		postsAuth.DELETE("/:id", r.postHandler.Delete)

		// Vote endpoints live on the posts group
		r.voteHandler.RegisterRoutes(postsAuth)
	}
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
