package models

import "time"

type User struct {
	ID        string    `gorm:"type:varchar(36);primarykey" json:"id"`
	Username  string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"username"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Exercises []Exercise `gorm:"foreignKey:UserID" json:"-"`
}
