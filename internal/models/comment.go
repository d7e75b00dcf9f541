package models

type Comment struct {
	BaseModel
	UserID    int64  `gorm:"not null;index" json:"user_id"`
	ContentID int64  `gorm:"not null;index" json:"content_id"`
	UserName  string `json:"user_name"`
	Text      string `gorm:"not null" json:"text"`

	// Relations
	User    *User    `gorm:"foreignKey:UserID" json:"-"`
	Content *Content `gorm:"foreignKey:ContentID" json:"-"`
}
