package service

// BadgeTier is one entry of the fixed, ascending badge catalog.
type BadgeTier struct {
	Threshold   int    `json:"threshold"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

var badgeCatalog = []BadgeTier{
	{Threshold: 50, Name: "Green Starter", Description: "First steps on the green path", Icon: "🌱"},
	{Threshold: 100, Name: "Eco Friend", Description: "A friend of nature", Icon: "🤝"},
	{Threshold: 200, Name: "Nature Guardian", Description: "Guardian of nature", Icon: "🛡️"},
	{Threshold: 500, Name: "Planet Hero", Description: "Hero of the planet", Icon: "🦸"},
	{Threshold: 1000, Name: "Eco Master", Description: "Master of ecology", Icon: "🏆"},
}

// BadgeCatalog returns a copy of the catalog in ascending threshold order.
func BadgeCatalog() []BadgeTier {
	out := make([]BadgeTier, len(badgeCatalog))
	copy(out, badgeCatalog)
	return out
}

// EarnedTiers lists every tier whose threshold is at or below totalPoints.
func EarnedTiers(totalPoints int) []BadgeTier {
	var out []BadgeTier
	for _, tier := range badgeCatalog {
		if totalPoints >= tier.Threshold {
			out = append(out, tier)
		}
	}
	return out
}
