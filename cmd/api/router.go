package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"club-backend/internal/shared/middleware"
	"club-backend/internal/shared/response"
	"club-backend/internal/taxonomy"
	"club-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))
		v1.GET("/taxonomy", taxonomyHandler())

		setupAuthRoutes(v1, c)
		setupArticleRoutes(v1, c)
		setupEventRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.AuthHandler.Login)
		auth.GET("/me", middleware.AuthMiddleware(c.JWTManager), c.AuthHandler.Me)
	}
}

// ========================================
// PUBLIC CONTENT ROUTES
// ========================================
func setupArticleRoutes(v1 *gin.RouterGroup, c *container.Container) {
	articles := v1.Group("/articles")
	{
		articles.GET("", c.ArticleHandler.List)
		articles.GET("/:id", c.ArticleHandler.GetByID)
	}
}

func setupEventRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/events", c.EventHandler.List)
}

// ========================================
// ADMIN ROUTES (JWT required)
// ========================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		admin.POST("/articles", c.ArticleHandler.Submit)
		admin.DELETE("/articles/:id", c.ArticleHandler.Delete)

		admin.POST("/uploads", c.ArticleHandler.Upload)

		admin.GET("/events", c.EventHandler.ManageList)
		admin.POST("/events", c.EventHandler.Submit)
		admin.DELETE("/events/:id", c.EventHandler.Delete)
	}
}

// ========================================
// INLINE HANDLERS
// ========================================

// healthCheckHandler report trạng thái database và cache
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 5*time.Second)
		defer cancel()

		dbStatus := "up"
		if err := c.DB.HealthCheck(checkCtx); err != nil {
			dbStatus = "down"
		}

		cacheStatus := "up"
		if err := c.Cache.Ping(checkCtx); err != nil {
			cacheStatus = "down"
		}

		status := http.StatusOK
		if dbStatus == "down" {
			status = http.StatusServiceUnavailable
		}

		ctx.JSON(status, gin.H{
			"status":   dbStatus,
			"database": dbStatus,
			"cache":    cacheStatus,
			"version":  c.Config.App.Version,
		})
	}
}

// taxonomyHandler trả về toàn bộ category tree với display names
// Tree là hằng số nên build một lần lúc setup
func taxonomyHandler() gin.HandlerFunc {
	type subcategoryView struct {
		Slug string `json:"slug"`
		Name string `json:"name"`
	}
	type categoryView struct {
		Slug          string            `json:"slug"`
		Name          string            `json:"name"`
		Subcategories []subcategoryView `json:"subcategories"`
	}

	tree := []categoryView{}
	for _, cat := range taxonomy.Categories() {
		view := categoryView{
			Slug:          cat,
			Name:          taxonomy.DisplayName(cat),
			Subcategories: []subcategoryView{},
		}
		for _, sub := range taxonomy.SubcategoriesFor(cat) {
			view.Subcategories = append(view.Subcategories, subcategoryView{
				Slug: sub,
				Name: taxonomy.DisplayName(sub),
			})
		}
		tree = append(tree, view)
	}

	return func(ctx *gin.Context) {
		response.Success(ctx, http.StatusOK, tree)
	}
}
