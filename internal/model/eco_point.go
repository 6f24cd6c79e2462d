package model

import "time"

// EcoPoint is one awarded-points event in a user's ledger.
// Date is a YYYY-MM-DD string in the ledger timezone.
// swagger:model EcoPoint
type EcoPoint struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_eco_point_user_day_task,priority:1;index" json:"userId"`
	Date        string    `gorm:"size:10;not null;uniqueIndex:idx_eco_point_user_day_task,priority:2;index" json:"date"`
	TaskType    string    `gorm:"size:50;not null;uniqueIndex:idx_eco_point_user_day_task,priority:3" json:"taskType"`
	Points      int       `gorm:"not null;default:0" json:"points"`
	Description string    `gorm:"size:200" json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (EcoPoint) TableName() string {
	return "eco_points"
}

// UserPoints is a leaderboard row aggregated from the ledger.
type UserPoints struct {
	UserID uint   `json:"userId"`
	Name   string `json:"name"`
	Points int64  `json:"points"`
}
