package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cityreport-be/store"
)

// CatalogController serves the static lists of the snapshot
type CatalogController struct {
	Snapshot store.Snapshot
}

func NewCatalogController(snap store.Snapshot) *CatalogController {
	return &CatalogController{Snapshot: snap}
}

func (cc *CatalogController) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Snapshot.Categories)
}

// GetInstitutions searches institutions by name or type, optionally within a city and district
func (cc *CatalogController) GetInstitutions(c *gin.Context) {
	c.JSON(http.StatusOK, store.SearchInstitutions(
		cc.Snapshot.Institutions,
		c.Query("q"),
		c.Query("city"),
		c.Query("district"),
	))
}

func (cc *CatalogController) GetClubs(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Snapshot.Clubs)
}

func (cc *CatalogController) GetFriends(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Snapshot.Friends)
}
