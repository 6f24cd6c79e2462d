package model

import "time"

// Tip is a short piece of eco advice shown on the dashboard.
type Tip struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Category  string    `gorm:"size:50;not null" json:"category"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Tip) TableName() string {
	return "tips"
}

// DefaultTips is the corpus seeded into an empty tips table.
var DefaultTips = []Tip{
	{Text: "Skip single-use plastic today 🌿", Category: "daily"},
	{Text: "Plant a tree 🌳", Category: "action"},
	{Text: "Turn off lights you are not using 💡", Category: "energy"},
	{Text: "Save water 💧", Category: "water"},
	{Text: "Recycle ♻️", Category: "recycle"},
	{Text: "Ride a bike 🚲", Category: "transport"},
	{Text: "Buy local produce 🍎", Category: "shopping"},
	{Text: "Start composting 🍂", Category: "waste"},
}
