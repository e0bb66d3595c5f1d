package api

import (
	"context"                            // Context for Redis operations
	"net/http"                           // HTTP status codes
	"path/filepath"                      // Extension extraction
	"portfolio_backend/internal/domain"  // Importing domain models
	"portfolio_backend/internal/storage" // Upload file store
	"portfolio_backend/internal/utils"   // Utility functions
	"strconv"                            // String conversion
	"strings"                            // String manipulation

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// Allowed image MIME types for uploads
var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// Allowed file extensions for uploads
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// VerifyTokenHandler confirms a valid token and echoes the identity it carries
func VerifyTokenHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, exists := c.Get("claims") // Set by the JWT middleware
		userClaims, ok := claims.(*utils.Claims)
		if !exists || !ok {
			respondError(c, http.StatusUnauthorized, "AUTH_ERROR", "Chyba při ověřování tokenu")
			return
		}
		respondData(c, http.StatusOK, gin.H{
			"user": gin.H{
				"id":       userClaims.UserID,
				"username": userClaims.Username,
				"email":    userClaims.Email,
			},
		})
	}
}

// UploadImageHandler accepts one image per request, validates it against the
// allow-list and size limit, stores it under the category's subdirectory and
// inserts the metadata row. File write and row insert are not atomic.
func UploadImageHandler(db *gorm.DB, rdb *redis.Client, store *storage.FileStore, maxFileSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID") // Uploader, set by the JWT middleware

		// Check if a file was uploaded
		file, err := c.FormFile("image")
		if err != nil {
			respondError(c, http.StatusBadRequest, "NO_FILE", "Nebyl nahrán žádný soubor")
			return
		}
		// Get category ID from the form
		categoryParam := c.PostForm("categoryId")
		if categoryParam == "" {
			respondError(c, http.StatusBadRequest, "MISSING_CATEGORY", "ID kategorie je povinné")
			return
		}
		// Validate categoryId is a number
		categoryID, err := strconv.ParseUint(categoryParam, 10, 32)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_CATEGORY_ID", "Neplatné ID kategorie")
			return
		}
		// Enforce the upload size limit
		if file.Size > maxFileSize {
			respondError(c, http.StatusBadRequest, "FILE_TOO_LARGE", "Soubor je příliš velký. Maximální velikost je 5MB.")
			return
		}
		// Enforce the MIME type allow-list
		if !allowedMimeTypes[file.Header.Get("Content-Type")] {
			respondError(c, http.StatusBadRequest, "INVALID_FILE", "Neplatný typ souboru. Povolené formáty: JPG, JPEG, PNG, WEBP")
			return
		}
		// Enforce the extension allow-list
		if !allowedExtensions[strings.ToLower(filepath.Ext(file.Filename))] {
			respondError(c, http.StatusBadRequest, "INVALID_FILE", "Neplatná přípona souboru. Povolené přípony: .jpg, .jpeg, .png, .webp")
			return
		}
		// Check if the category exists and get its slug
		var category domain.Category
		if err := db.First(&category, uint(categoryID)).Error; err != nil {
			respondError(c, http.StatusNotFound, "CATEGORY_NOT_FOUND", "Kategorie nebyla nalezena")
			return
		}
		// Save the file to disk under the category's subdirectory
		saved, err := store.Save(file, category.Slug)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"category_id": category.ID,
				"filename":    file.Filename,
				"error":       err.Error(),
			}).Error("Failed to save uploaded file")
			respondError(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Nahrávání obrázku selhalo")
			return
		}
		// Insert the metadata row linking file, category and uploader
		image := domain.Image{
			CategoryID:       category.ID,
			Filename:         saved.Filename,
			OriginalFilename: saved.OriginalFilename,
			FilePath:         saved.FilePath,
			FileSize:         saved.FileSize,
			MimeType:         saved.MimeType,
			UploadedBy:       userID,
		}
		if err := db.Create(&image).Error; err != nil {
			// The file stays on disk; a crash here leaves an orphan
			logrus.WithFields(logrus.Fields{
				"category_id": category.ID,
				"file_path":   saved.FilePath,
				"error":       err.Error(),
			}).Error("Failed to create image record")
			respondError(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Nahrávání obrázku selhalo")
			return
		}
		logrus.WithFields(logrus.Fields{
			"image_id":    image.ID,
			"category_id": category.ID,
			"uploaded_by": userID,
		}).Info("Image uploaded")
		// Invalidate the cached listing for this category
		_ = utils.DeleteCache(context.Background(), rdb, imagesCacheKey(category.ID))
		respondMessage(c, http.StatusCreated, "Obrázek byl úspěšně nahrán", image)
	}
}

// DeleteImageHandler removes an image's backing file (best-effort) and its
// database row. Row removal happens even if the file removal fails.
func DeleteImageHandler(db *gorm.DB, rdb *redis.Client, store *storage.FileStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Validate imageId is a number
		imageID, err := strconv.ParseUint(c.Param("imageId"), 10, 32)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_IMAGE_ID", "Neplatné ID obrázku")
			return
		}
		var image domain.Image // Check if the image exists
		if err := db.First(&image, uint(imageID)).Error; err != nil {
			respondError(c, http.StatusNotFound, "IMAGE_NOT_FOUND", "Obrázek nebyl nalezen")
			return
		}
		// Delete the file from disk; failure is logged, not fatal
		if err := store.Remove(image.FilePath); err != nil {
			logrus.WithFields(logrus.Fields{
				"image_id":  image.ID,
				"file_path": image.FilePath,
				"error":     err.Error(),
			}).Error("Failed to delete image file from disk")
		}
		// Delete the database row regardless of the file removal outcome
		if err := db.Delete(&domain.Image{}, image.ID).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"image_id": image.ID,
				"error":    err.Error(),
			}).Error("Failed to delete image record")
			respondError(c, http.StatusInternalServerError, "DELETE_FAILED", "Mazání obrázku selhalo")
			return
		}
		logrus.WithFields(logrus.Fields{
			"image_id":   image.ID,
			"deleted_by": c.GetUint("userID"),
		}).Info("Image deleted")
		// Invalidate the cached listing for its category
		_ = utils.DeleteCache(context.Background(), rdb, imagesCacheKey(image.CategoryID))
		respondMessage(c, http.StatusOK, "Obrázek byl úspěšně smazán", nil)
	}
}

// ListAllImagesHandler returns every image joined with its category info,
// ordered the way the admin gallery displays them
func ListAllImagesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var images []domain.ImageWithCategory // Slice to hold joined rows
		if err := db.Model(&domain.Image{}).
			Select("images.*, categories.name_cs AS category_name, categories.slug AS category_slug").
			Joins("JOIN categories ON categories.id = images.category_id").
			Order("categories.display_order ASC, images.display_order ASC, images.uploaded_at DESC").
			Scan(&images).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "SERVER_ERROR", "Chyba při načítání obrázků")
			return
		}
		respondData(c, http.StatusOK, images)
	}
}
