package router

import (
	authhandler "notes_backend/internal/feature/auth/transport/handler"
	notehandler "notes_backend/internal/feature/notes/transport/handler"
	"notes_backend/internal/platform/http/handler"
	jwtmw "notes_backend/internal/platform/jwt"

	"github.com/gin-gonic/gin"
)

func NewRouter(auth *authhandler.AuthHandler, notes *notehandler.NoteHandler,
	verifier jwtmw.Verifier) *gin.Engine {
	r := gin.Default()

	// No authentication required
	r.GET("/healthz", handler.Health)
	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)

	// Everything below requires a valid bearer token
	protected := r.Group("/")
	protected.Use(jwtmw.AuthRequired(verifier))
	{
		protected.POST("/notes", notes.Create)
		protected.GET("/notes", notes.List)
		protected.GET("/notes/:id", notes.Get)
		protected.PUT("/notes/:id", notes.Update)
		protected.DELETE("/notes/:id", notes.Delete)
	}

	return r
}
