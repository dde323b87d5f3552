package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/taskflow/backend/api/handler"
	"github.com/taskflow/backend/domain"
	"github.com/taskflow/backend/internal/middleware"
)

// Middleware wraps a fasthttp handler.
type Middleware = func(fasthttp.RequestHandler) fasthttp.RequestHandler

type Handlers struct {
	Auth     *apiHandler.AuthHandler
	Task     *apiHandler.TaskHandler
	Category *apiHandler.CategoryHandler
	Comment  *apiHandler.CommentHandler
	User     *apiHandler.UserHandler
	Health   *apiHandler.HealthHandler
}

// New assembles the route table. Every route except health and the
// register/login/logout trio sits behind the authentication gate; the user
// management surface additionally requires the admin role.
func New(handlers Handlers, authenticate Middleware) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	r.POST("/api/auth/register", handlers.Auth.Register)
	r.POST("/api/auth/login", handlers.Auth.Login)
	r.POST("/api/auth/logout", handlers.Auth.Logout)
	r.GET("/api/auth/me", authenticate(handlers.Auth.Me))

	r.GET("/api/tasks", authenticate(handlers.Task.List))
	r.POST("/api/tasks", authenticate(handlers.Task.Create))
	r.GET("/api/tasks/{id}", authenticate(handlers.Task.Get))
	r.PUT("/api/tasks/{id}", authenticate(handlers.Task.Update))
	r.DELETE("/api/tasks/{id}", authenticate(handlers.Task.Delete))

	r.GET("/api/categories", authenticate(handlers.Category.List))
	r.POST("/api/categories", authenticate(handlers.Category.Create))
	r.GET("/api/categories/{id}", authenticate(handlers.Category.Get))
	r.PUT("/api/categories/{id}", authenticate(handlers.Category.Update))
	r.DELETE("/api/categories/{id}", authenticate(handlers.Category.Delete))

	r.GET("/api/comments/task/{taskId}", authenticate(handlers.Comment.ListForTask))
	r.POST("/api/comments/task/{taskId}", authenticate(handlers.Comment.Create))
	r.PUT("/api/comments/{id}", authenticate(handlers.Comment.Update))
	r.DELETE("/api/comments/{id}", authenticate(handlers.Comment.Delete))

	adminOnly := middleware.RequireRoles(domain.RoleAdmin)
	r.GET("/api/users", authenticate(adminOnly(handlers.User.List)))
	r.POST("/api/users", authenticate(adminOnly(handlers.User.Create)))
	r.GET("/api/users/{id}", authenticate(adminOnly(handlers.User.Get)))
	r.PUT("/api/users/{id}", authenticate(adminOnly(handlers.User.Update)))
	r.DELETE("/api/users/{id}", authenticate(adminOnly(handlers.User.Delete)))

	return r
}
