package models

type Content struct {
	BaseModel
	UserID      int64  `gorm:"not null;index" json:"user_id"`
	Preview     string `json:"preview"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	ContentType string `gorm:"type:varchar(50)" json:"content_type"`

	// Relations
	User     *User     `gorm:"foreignKey:UserID" json:"-"`
	Comments []Comment `gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE" json:"-"`
}
