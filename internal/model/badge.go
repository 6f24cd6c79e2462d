package model

import "time"

// Badge is an earned achievement; one row per (user, name).
// swagger:model Badge
type Badge struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_badge_user_name,priority:1" json:"userId"`
	Name        string    `gorm:"size:100;not null;uniqueIndex:idx_badge_user_name,priority:2" json:"name"`
	Description string    `gorm:"size:200" json:"description"`
	Icon        string    `gorm:"size:50" json:"icon"`
	EarnedDate  string    `gorm:"size:10;index" json:"earnedDate"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Badge) TableName() string {
	return "badges"
}
