package service

import (
	"fmt"
	"strconv"
	"strings"
)

const taskTagPrefix = "task_"

// DailyTask is one of the fixed eco tasks a user can complete once a day.
type DailyTask struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Points int    `json:"points"`
	Icon   string `json:"icon"`
	// Done is the past-tense line used in activity feeds.
	Done string `json:"-"`
}

var dailyTasks = []DailyTask{
	{ID: 1, Name: "Avoid plastic", Points: 10, Icon: "🚫", Done: "You avoided plastic"},
	{ID: 2, Name: "Save water", Points: 15, Icon: "💧", Done: "You saved water"},
	{ID: 3, Name: "Save energy", Points: 12, Icon: "⚡", Done: "You saved energy"},
	{ID: 4, Name: "Recycle", Points: 20, Icon: "♻️", Done: "You recycled waste"},
	{ID: 5, Name: "Plant something", Points: 25, Icon: "🌱", Done: "You planted something"},
}

func DailyTasks() []DailyTask {
	out := make([]DailyTask, len(dailyTasks))
	copy(out, dailyTasks)
	return out
}

func FindDailyTask(id int) (DailyTask, bool) {
	for _, t := range dailyTasks {
		if t.ID == id {
			return t, true
		}
	}
	return DailyTask{}, false
}

// TaskTag is the ledger task-type tag for a task id, e.g. "task_3".
func TaskTag(taskID int) string {
	return fmt.Sprintf("%s%d", taskTagPrefix, taskID)
}

// TaskIDFromTag parses a tag produced by TaskTag.
func TaskIDFromTag(tag string) (int, bool) {
	if !strings.HasPrefix(tag, taskTagPrefix) {
		return 0, false
	}
	id, err := strconv.Atoi(strings.TrimPrefix(tag, taskTagPrefix))
	if err != nil {
		return 0, false
	}
	return id, true
}

// DescribeTag resolves the catalog task behind a tag, with a generic
// fallback for free-form categories.
func DescribeTag(tag string) DailyTask {
	if id, ok := TaskIDFromTag(tag); ok {
		if t, ok := FindDailyTask(id); ok {
			return t
		}
	}
	return DailyTask{Name: "Eco task", Icon: "🌿", Done: "Eco task completed"}
}
