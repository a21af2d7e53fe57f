package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"research-nest.backend/internal/domain/entities"
	"research-nest.backend/internal/domain/repositories"
	"research-nest.backend/internal/interfaces/http/handlers"
)

// routeDeps holds the handlers and stores needed for route registration
type routeDeps struct {
	authHandler   *handlers.AuthHandler
	teamMembers   repositories.ContentStore[entities.TeamMember]
	researchAreas repositories.ContentStore[entities.ResearchArea]
	publications  repositories.ContentStore[entities.Publication]
	projects      repositories.ContentStore[entities.Project]
	activities    repositories.ContentStore[entities.Activity]
	gallery       repositories.ContentStore[entities.GalleryImage]
	requireAuth   gin.HandlerFunc
}

// registerAPIRoutes mounts the auth endpoints and the six content
// collections under /api. Reads are public; every mutation sits behind
// the session gate.
func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", d.authHandler.Login)
		auth.POST("/logout", d.authHandler.Logout)
		auth.GET("/me", d.requireAuth, d.authHandler.GetMe)
	}

	handlers.RegisterContentRoutes[entities.TeamMember, entities.InsertTeamMember, entities.TeamMemberPatch](
		api, "/team", "team", d.teamMembers, d.requireAuth)
	handlers.RegisterContentRoutes[entities.ResearchArea, entities.InsertResearchArea, entities.ResearchAreaPatch](
		api, "/research", "research", d.researchAreas, d.requireAuth)
	handlers.RegisterContentRoutes[entities.Publication, entities.InsertPublication, entities.PublicationPatch](
		api, "/publications", "publications", d.publications, d.requireAuth)
	handlers.RegisterContentRoutes[entities.Project, entities.InsertProject, entities.ProjectPatch](
		api, "/projects", "projects", d.projects, d.requireAuth)
	handlers.RegisterContentRoutes[entities.Activity, entities.InsertActivity, entities.ActivityPatch](
		api, "/activities", "activities", d.activities, d.requireAuth)
	handlers.RegisterContentRoutes[entities.GalleryImage, entities.InsertGalleryImage, entities.GalleryImagePatch](
		api, "/gallery", "gallery", d.gallery, d.requireAuth)
}

// registerRootRoutes mounts the welcome and health endpoints
func registerRootRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to Research-Nest API!")
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// applyCORSMiddleware allows the admin frontend to call the API from
// another origin. Credentials are allowed so the session cookie travels.
func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
}
