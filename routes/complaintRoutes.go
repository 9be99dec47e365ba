package routes

import (
	"github.com/gin-gonic/gin"

	"cityreport-be/controllers"
)

// ComplaintRoutes sets up the complaint routes. Filing runs the auth and
// submit middlewares in order.
func ComplaintRoutes(r *gin.Engine, cc *controllers.ComplaintController, submit ...gin.HandlerFunc) {
	complaints := r.Group("/api/complaints")
	{
		complaints.GET("", cc.ListComplaints)
		complaints.GET("/stats", cc.GetStats)
		complaints.GET("/recent", cc.RecentComplaints)
		complaints.GET("/nearby", cc.NearbyComplaints)
		complaints.GET("/geojson", cc.ComplaintsGeoJSON)
		complaints.GET("/:id", cc.GetComplaint)
		complaints.POST("", append(submit, cc.CreateComplaint)...)
	}
}
