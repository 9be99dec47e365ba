package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"cityreport-be/events"
	"cityreport-be/middlewares"
	"cityreport-be/models"
	"cityreport-be/repository"
	"cityreport-be/store"
	"cityreport-be/utils"
)

const (
	defaultRecent       = 3
	defaultNearbyRadius = 1000.0
	maxNearbyRadius     = 50000.0
)

type ComplaintController struct {
	Repo      repository.Repository
	Publisher events.Publisher
	Metrics   *middlewares.Metrics
	Log       zerolog.Logger
	Now       func() time.Time
}

func NewComplaintController(repo repository.Repository, pub events.Publisher, metrics *middlewares.Metrics, log zerolog.Logger) *ComplaintController {
	return &ComplaintController{Repo: repo, Publisher: pub, Metrics: metrics, Log: log, Now: time.Now}
}

// filterParam reads a category or status filter. Missing or empty means all.
func filterParam(c *gin.Context, key string) string {
	if v := c.Query(key); v != "" {
		return v
	}
	return models.FilterAll
}

func (cc *ComplaintController) list(c *gin.Context) ([]models.Complaint, bool) {
	complaints, err := cc.Repo.ListComplaints(c.Request.Context())
	if err != nil {
		cc.Log.Error().Err(err).Msg("list complaints")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve complaints"})
		return nil, false
	}
	return complaints, true
}

// ListComplaints handles filtering by category and status, ordering and an optional cap
func (cc *ComplaintController) ListComplaints(c *gin.Context) {
	complaints, ok := cc.list(c)
	if !ok {
		return
	}

	category := filterParam(c, "category")
	status := filterParam(c, "status")
	limit := utils.QueryInt(c, "limit", 0)

	filtered := store.FilterByCategoryAndStatus(complaints, category, status)

	switch c.DefaultQuery("sort", "newest") {
	case "oldest":
		filtered = store.SortByAge(filtered)
	default:
		filtered = store.SortByRecency(filtered)
	}

	total := len(filtered)
	if limit > 0 {
		filtered = store.Recent(filtered, limit)
	}

	c.JSON(http.StatusOK, gin.H{
		"complaints": filtered,
		"total":      total,
		"counts":     store.CountByStatus(complaints),
	})
}

// GetStats returns the number of complaints per status
func (cc *ComplaintController) GetStats(c *gin.Context) {
	complaints, ok := cc.list(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, store.CountByStatus(complaints))
}

// RecentComplaints returns the newest n complaints for the home screen preview
func (cc *ComplaintController) RecentComplaints(c *gin.Context) {
	complaints, ok := cc.list(c)
	if !ok {
		return
	}
	n := utils.QueryInt(c, "n", defaultRecent)
	c.JSON(http.StatusOK, store.Recent(store.SortByRecency(complaints), n))
}

type complaintDetail struct {
	models.Complaint
	StatusStyle   models.Style          `json:"statusStyle"`
	CategoryStyle models.Style          `json:"categoryStyle"`
	CurrentStep   *models.TimelineEvent `json:"currentStep,omitempty"`
}

func newComplaintDetail(complaint models.Complaint) (complaintDetail, error) {
	statusStyle, err := complaint.Status.Style()
	if err != nil {
		return complaintDetail{}, err
	}
	categoryStyle, err := complaint.Category.Style()
	if err != nil {
		return complaintDetail{}, err
	}
	d := complaintDetail{Complaint: complaint, StatusStyle: statusStyle, CategoryStyle: categoryStyle}
	if step, ok := store.CurrentStep(complaint.Timeline); ok {
		d.CurrentStep = &step
	}
	return d, nil
}

// GetComplaint retrieves a complaint by its id with display styles attached
func (cc *ComplaintController) GetComplaint(c *gin.Context) {
	complaint, err := cc.Repo.GetComplaint(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
		} else {
			cc.Log.Error().Err(err).Str("id", c.Param("id")).Msg("get complaint")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve complaint"})
		}
		return
	}

	detail, err := newComplaintDetail(complaint)
	if err != nil {
		cc.Log.Error().Err(err).Str("id", complaint.ID).Msg("complaint with unknown enum")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve complaint"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// NearbyComplaints returns complaints around a point, nearest first
func (cc *ComplaintController) NearbyComplaints(c *gin.Context) {
	lat, okLat := utils.QueryFloat(c, "lat")
	lng, okLng := utils.QueryFloat(c, "lng")
	if !okLat || !okLng || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid lat and lng are required"})
		return
	}
	radius := defaultNearbyRadius
	if _, present := c.GetQuery("radius"); present {
		r, ok := utils.QueryFloat(c, "radius")
		if !ok || r <= 0 || r > maxNearbyRadius {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid radius"})
			return
		}
		radius = r
	}

	complaints, ok := cc.list(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, store.Nearby(complaints, models.Coords{Latitude: lat, Longitude: lng}, radius))
}

// ComplaintsGeoJSON returns every complaint, filtered like ListComplaints, as map pins
func (cc *ComplaintController) ComplaintsGeoJSON(c *gin.Context) {
	complaints, ok := cc.list(c)
	if !ok {
		return
	}
	filtered := store.FilterByCategoryAndStatus(complaints,
		filterParam(c, "category"),
		filterParam(c, "status"))
	c.JSON(http.StatusOK, store.FeatureCollection(filtered))
}

type createComplaintInput struct {
	Title       string         `json:"title" binding:"required,max=200"`
	Description string         `json:"description" binding:"required,max=1000"`
	Category    string         `json:"category" binding:"required"`
	Address     string         `json:"address" binding:"required,max=200"`
	Coords      *models.Coords `json:"coords,omitempty"`
	Images      []string       `json:"images,omitempty" binding:"max=10"`
}

// CreateComplaint files a new complaint for the authenticated user
func (cc *ComplaintController) CreateComplaint(c *gin.Context) {
	userID := c.GetString(middlewares.ContextUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input createComplaintInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := models.CategoryID(input.Category)
	if !category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}

	sub := store.Submission{
		Title:       input.Title,
		Description: input.Description,
		Category:    category,
		Address:     input.Address,
		Images:      input.Images,
	}
	if input.Coords != nil {
		if input.Coords.Latitude < -90 || input.Coords.Latitude > 90 ||
			input.Coords.Longitude < -180 || input.Coords.Longitude > 180 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coordinates"})
			return
		}
		sub.Coords = *input.Coords
	}

	complaint, err := cc.Repo.CreateComplaint(c.Request.Context(), sub, cc.Now().UTC())
	if err != nil {
		cc.Log.Error().Err(err).Str("user", userID).Msg("create complaint")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create complaint"})
		return
	}

	cc.Metrics.ComplaintCreated(string(complaint.Category))
	cc.Log.Info().
		Str("id", complaint.ID).
		Str("ref", complaint.ReferenceNumber).
		Str("category", string(complaint.Category)).
		Msg("complaint created")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()
	ev := events.NewComplaintEvent(complaint, userID)
	if err := cc.Publisher.Publish(ctx, events.RoutingComplaintCreated, ev); err != nil {
		cc.Log.Warn().Err(err).Str("id", complaint.ID).Msg("publish complaint event")
	}

	c.JSON(http.StatusCreated, complaint)
}
