package server

import (
	"net/http"

	"mliou521/Inkwell/internal/api/controller"
	"mliou521/Inkwell/internal/api/middleware"
	"mliou521/Inkwell/internal/api/repository"

	"github.com/gin-gonic/gin"
)

// Server owns the gin engine and the route table.
type Server struct {
	engine *gin.Engine
}

// NewServer builds the router. Registration and login are the only open
// routes besides the health probe; everything else sits behind SessionAuth.
func NewServer(
	users *controller.UserController,
	posts *controller.PostController,
	sessions repository.SessionRepository,
) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery(), middleware.RequestLogger())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	engine.POST("/users", users.Register)
	engine.POST("/auth/login", users.Login)

	authed := engine.Group("", middleware.SessionAuth(sessions))
	authed.GET("/users/:id", users.Get)
	authed.PUT("/users/:id", users.Update)
	authed.DELETE("/users/:id", users.Delete)

	authed.POST("/posts", posts.Create)
	authed.GET("/posts", posts.List)
	authed.GET("/posts/:id", posts.Get)
	authed.PUT("/posts/:id", posts.Update)
	authed.DELETE("/posts/:id", posts.Delete)

	return &Server{engine: engine}
}

// Engine exposes the underlying handler for http.Server and tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
