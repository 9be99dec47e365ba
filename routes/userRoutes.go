package routes

import (
	"github.com/gin-gonic/gin"

	"cityreport-be/controllers"
)

func UserRoutes(r *gin.Engine, ac *controllers.AuthController, authMiddleware gin.HandlerFunc) {
	r.GET("/api/me", authMiddleware, ac.GetMe)
}

// CatalogRoutes exposes categories and the community lists
func CatalogRoutes(r *gin.Engine, cat *controllers.CatalogController) {
	api := r.Group("/api")
	{
		api.GET("/categories", cat.GetCategories)
		api.GET("/institutions", cat.GetInstitutions)
		api.GET("/clubs", cat.GetClubs)
		api.GET("/friends", cat.GetFriends)
	}
}
