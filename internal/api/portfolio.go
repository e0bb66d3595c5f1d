package api

import (
	"context"                           // Context for Redis operations
	"net/http"                          // HTTP status codes
	"portfolio_backend/internal/domain" // Importing domain models
	"portfolio_backend/internal/utils"  // Utility functions
	"strconv"                           // String conversion
	"time"                              // Time durations

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// portfolioCacheTTL is how long read listings stay cached
const portfolioCacheTTL = 60 * time.Second

// categoriesCacheKey builds the cache key for a category listing
func categoriesCacheKey(parentSection string) string {
	if parentSection == "" {
		return "portfolio:categories:all"
	}
	return "portfolio:categories:section:" + parentSection
}

// imagesCacheKey builds the cache key for a per-category image listing
func imagesCacheKey(categoryID uint) string {
	return "portfolio:images:cat:" + strconv.Itoa(int(categoryID))
}

// ListCategoriesHandler returns all categories ordered for display,
// optionally filtered by parent section
func ListCategoriesHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		parentSection := c.Query("parent_section") // Optional section filter
		ctx := context.Background()                // Context for Redis operations
		cacheKey := categoriesCacheKey(parentSection)

		var categories []domain.Category // Slice to hold categories
		// Try to get from cache first
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &categories); err == nil && found {
			respondData(c, http.StatusOK, categories)
			return
		}
		query := db.Order("display_order ASC") // Ordered for display
		if parentSection != "" {
			query = query.Where("parent_section = ?", parentSection) // Filter by section
		}
		if err := query.Find(&categories).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "SERVER_ERROR", "Chyba při načítání kategorií")
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, categories, portfolioCacheTTL) // Cache the listing
		respondData(c, http.StatusOK, categories)
	}
}

// ListCategoryImagesHandler returns the images of one category ordered by
// display order then recency. Unknown categories 404 before the image query.
func ListCategoryImagesHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Validate categoryId is a number
		categoryID, err := strconv.ParseUint(c.Param("categoryId"), 10, 32)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_CATEGORY_ID", "Neplatné ID kategorie")
			return
		}
		var category domain.Category // Check if category exists
		if err := db.First(&category, uint(categoryID)).Error; err != nil {
			respondError(c, http.StatusNotFound, "CATEGORY_NOT_FOUND", "Kategorie nebyla nalezena")
			return
		}
		ctx := context.Background() // Context for Redis operations
		cacheKey := imagesCacheKey(category.ID)

		var images []domain.Image // Slice to hold images
		// Try to get from cache first
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &images); err == nil && found {
			respondData(c, http.StatusOK, images)
			return
		}
		// Fetch images ordered by explicit display order, then recency
		if err := db.Where("category_id = ?", category.ID).
			Order("display_order ASC, uploaded_at DESC").
			Find(&images).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "SERVER_ERROR", "Chyba při načítání obrázků")
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, images, portfolioCacheTTL) // Cache the listing
		respondData(c, http.StatusOK, images)
	}
}
