package domain

import "time"

// Image Model
type Image struct {
	ID               uint      `gorm:"primaryKey" json:"id"`                    // Primary key
	CategoryID       uint      `gorm:"not null;index" json:"category_id"`       // Foreign key to Category
	Filename         string    `gorm:"not null" json:"filename"`                // Stored (unique) filename
	OriginalFilename string    `gorm:"not null" json:"original_filename"`       // Filename as uploaded
	FilePath         string    `gorm:"not null" json:"file_path"`               // Path on disk
	FileSize         int64     `gorm:"not null" json:"file_size"`               // Size in bytes
	MimeType         string    `gorm:"not null" json:"mime_type"`               // MIME type
	UploadedBy       uint      `gorm:"not null" json:"uploaded_by"`             // Foreign key to User
	DisplayOrder     int       `gorm:"not null;default:0" json:"display_order"` // Ordering within category
	UploadedAt       time.Time `gorm:"autoCreateTime" json:"uploaded_at"`       // Upload timestamp

	Category Category `gorm:"constraint:OnDelete:CASCADE" json:"-"` // Owning category
	Uploader User     `gorm:"foreignKey:UploadedBy" json:"-"`       // Uploading user
}

// ImageWithCategory is an Image joined with its category info for admin listings
type ImageWithCategory struct {
	Image
	CategoryName string `json:"category_name"` // Joined category name_cs
	CategorySlug string `json:"category_slug"` // Joined category slug
}
