package domain

// Category Model
type Category struct {
	ID            uint   `gorm:"primaryKey" json:"id"`                    // Primary key
	NameCS        string `gorm:"column:name_cs;not null" json:"name_cs"`  // Localized (Czech) name
	Slug          string `gorm:"uniqueIndex;not null" json:"slug"`        // URL-safe unique identifier
	DisplayOrder  int    `gorm:"not null;default:0" json:"display_order"` // Ordering for display
	ParentSection string `gorm:"index" json:"parent_section,omitempty"`   // Optional section tag (liceni, ucesy)
}
