package api

import (
	"errors"
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"go.mongodb.org/mongo-driver/bson/primitive"

	"listing_system/internal/domain"
	"listing_system/internal/store"
)

// searchDefaults per the search form contract.
const (
	defaultPage    = 1
	defaultPerPage = 5
)

// listQuery is the validated query surface of GET /api/AirBnBs.
type listQuery struct {
	Page         *int   `form:"page" binding:"omitempty,min=1"`
	PerPage      *int   `form:"perPage" binding:"omitempty,min=1"`
	PropertyType string `form:"property_type"`
}

// ShowSearchHandler renders the search form.
func ShowSearchHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "search_form.html", nil)
	}
}

// SearchHandler renders a paginated listing view from form fields,
// defaulting to page 1, five per page, no filter.
func SearchHandler(listings ListingStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := strconv.Atoi(c.DefaultPostForm("page", strconv.Itoa(defaultPage)))
		if err != nil || page < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Page must be a positive integer"})
			return
		}
		perPage, err := strconv.Atoi(c.DefaultPostForm("perPage", strconv.Itoa(defaultPerPage)))
		if err != nil || perPage < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Items per page must be a positive integer"})
			return
		}
		propertyType := c.PostForm("property_type")

		result, err := listings.List(c.Request.Context(), page, perPage, propertyType)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		renderResults(c, result, propertyType)
	}
}

// APIListHandler is the validated query-param variant of the search view.
func APIListHandler(listings ListingStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q listQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": []string{
				"page and perPage must be positive integers",
			}})
			return
		}
		page := defaultPage
		if q.Page != nil {
			page = *q.Page
		}
		perPage := defaultPerPage
		if q.PerPage != nil {
			perPage = *q.PerPage
		}

		result, err := listings.List(c.Request.Context(), page, perPage, q.PropertyType)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		renderResults(c, result, q.PropertyType)
	}
}

func renderResults(c *gin.Context, result *store.Page, propertyType string) {
	c.HTML(http.StatusOK, "search_results.html", gin.H{
		"Listings":     result.Items,
		"Page":         result.Page,
		"PerPage":      result.PerPage,
		"PropertyType": propertyType,
		"TotalCount":   result.TotalCount,
		"TotalPages":   result.TotalPages,
	})
}

// APIGetHandler returns the fixed projection of one listing.
func APIGetHandler(listings ListingStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		listing, err := listings.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "AirBnB not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, listing)
	}
}

// APIReviewHandler returns the nested review data of one listing.
func APIReviewHandler(listings ListingStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		scores, err := listings.GetReviewScores(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Reviews not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, scores)
	}
}

// APICreateHandler creates a listing from a JSON body.
func APICreateHandler(listings ListingStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var l domain.Listing
		if err := c.ShouldBindJSON(&l); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
			return
		}
		if l.ID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID must be a string"})
			return
		}
		if err := listings.Insert(c.Request.Context(), &l); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, l)
	}
}

// APIUpdateHandler updates a listing by identifier.
func APIUpdateHandler(listings ListingStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var l domain.Listing
		if err := c.ShouldBindJSON(&l); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
			return
		}
		updated, err := listings.Update(c.Request.Context(), id, &l)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "AirBnB not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// APIDeleteHandler deletes a listing by identifier.
func APIDeleteHandler(listings ListingStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := listings.Delete(c.Request.Context(), id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "AirBnB not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// InsertRequest carries the admin listing form fields.
type InsertRequest struct {
	ID                   string `form:"id" json:"id" binding:"required"`
	ListingURL           string `form:"listing_url" json:"listing_url"`
	Description          string `form:"description" json:"description"`
	NeighborhoodOverview string `form:"neighborhood_overview" json:"neighborhood_overview"`
	CancellationPolicy   string `form:"cancellation_policy" json:"cancellation_policy"`
	PropertyType         string `form:"property_type" json:"property_type"`
	RoomType             string `form:"room_type" json:"room_type"`
	Accommodates         int    `form:"accommodates" json:"accommodates" binding:"omitempty,min=0"`
	Price                string `form:"price" json:"price"`
	PictureURL           string `form:"picture_url" json:"picture_url"`
}

// InsertFormHandler renders a blank listing edit form.
func InsertFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "edit_form.html", nil)
	}
}

// InsertHandler creates a listing from the admin form.
func InsertHandler(listings ListingStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req InsertRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
			return
		}
		l := domain.Listing{
			ID:                   req.ID,
			ListingURL:           req.ListingURL,
			Description:          req.Description,
			NeighborhoodOverview: req.NeighborhoodOverview,
			CancellationPolicy:   req.CancellationPolicy,
			PropertyType:         req.PropertyType,
			RoomType:             req.RoomType,
			Accommodates:         req.Accommodates,
		}
		if req.Price != "" {
			price, err := primitive.ParseDecimal128(req.Price)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be a decimal number"})
				return
			}
			l.Price = &price
		}
		if req.PictureURL != "" {
			l.Images = &domain.Image{PictureURL: &req.PictureURL}
		}
		if err := listings.Insert(c.Request.Context(), &l); err != nil {
			logrus.WithFields(logrus.Fields{
				"listing_id": l.ID,
				"error":      err.Error(),
			}).Error("Listing insert failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		logrus.WithFields(logrus.Fields{
			"listing_id":    l.ID,
			"property_type": l.PropertyType,
		}).Info("Listing created")
		c.JSON(http.StatusCreated, gin.H{"message": "Listing created", "listing": l})
	}
}
