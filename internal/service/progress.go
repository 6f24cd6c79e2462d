package service

const pointsPerLevel = 100

func Level(totalPoints int) int {
	return totalPoints / pointsPerLevel
}

func PointsToNextLevel(totalPoints int) int {
	return (Level(totalPoints)+1)*pointsPerLevel - totalPoints
}

func ProgressWithinLevel(totalPoints int) int {
	return totalPoints % pointsPerLevel
}

// LevelInfo bundles the level figures shown on the dashboard and profile.
type LevelInfo struct {
	Level             int `json:"level"`
	PointsToNextLevel int `json:"pointsToNextLevel"`
	ProgressPercent   int `json:"progressPercent"`
}

func ComputeLevel(totalPoints int) LevelInfo {
	if totalPoints < 0 {
		totalPoints = 0
	}
	return LevelInfo{
		Level:             Level(totalPoints),
		PointsToNextLevel: PointsToNextLevel(totalPoints),
		ProgressPercent:   ProgressWithinLevel(totalPoints),
	}
}

// BadgeProgress describes the badge a user is working towards.
type BadgeProgress struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Icon         string  `json:"icon"`
	Current      int     `json:"current"`
	Required     int     `json:"required"`
	Progress     float64 `json:"progress"`
	CurrentBadge string  `json:"currentBadge,omitempty"`
}

// NextBadgeInfo reports progress from the highest reached tier to the
// following one. Before the first tier the baseline is zero points. Once the
// last tier is reached current and next are both the last tier at 100%.
func NextBadgeInfo(totalPoints int) BadgeProgress {
	catalog := BadgeCatalog()

	baseline := 0
	currentName := ""
	next := catalog[0]
	for i, tier := range catalog {
		if totalPoints < tier.Threshold {
			break
		}
		baseline = tier.Threshold
		currentName = tier.Name
		if i+1 < len(catalog) {
			next = catalog[i+1]
		} else {
			next = tier
		}
	}

	var progress float64
	if next.Threshold > baseline {
		progress = float64(totalPoints-baseline) / float64(next.Threshold-baseline) * 100
	} else {
		progress = 100
	}
	if progress > 100 {
		progress = 100
	}
	if progress < 0 {
		progress = 0
	}

	return BadgeProgress{
		Name:         next.Name,
		Description:  next.Description,
		Icon:         next.Icon,
		Current:      totalPoints,
		Required:     next.Threshold,
		Progress:     progress,
		CurrentBadge: currentName,
	}
}
