package service

import "math"

// Impact is the estimated environmental saving for a number of points.
type Impact struct {
	CO2Saved     float64 `json:"co2Saved"`     // kg
	WaterSaved   float64 `json:"waterSaved"`   // liters
	PlasticSaved float64 `json:"plasticSaved"` // kg
	EnergySaved  float64 `json:"energySaved"`  // kWh
}

// Comparisons restates an Impact in everyday units.
type Comparisons struct {
	CO2CarKm       float64 `json:"co2CarKm"`
	WaterShowers   int     `json:"waterShowers"`
	PlasticBottles int     `json:"plasticBottles"`
	EnergyHomes    int     `json:"energyHomes"`
}

const (
	co2PerPoint     = 0.2
	waterPerPoint   = 1.5
	plasticPerPoint = 0.1
	energyPerPoint  = 0.5

	co2PerCarKm      = 0.404
	litersPerShower  = 65
	kgPerBottle      = 0.05
	kwhPerHomeDay    = 30
	co2PerTreeYearly = 21
)

// All rounding is half to even.
func roundTo(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.RoundToEven(x*p) / p
}

func roundInt(x float64) int {
	return int(math.RoundToEven(x))
}

// ComputeImpact converts points into saving estimates. Negative input is
// outside the domain and is treated as zero.
func ComputeImpact(points int) Impact {
	if points < 0 {
		points = 0
	}
	p := float64(points)
	return Impact{
		CO2Saved:     roundTo(p*co2PerPoint, 1),
		WaterSaved:   p * waterPerPoint,
		PlasticSaved: roundTo(p*plasticPerPoint, 1),
		EnergySaved:  p * energyPerPoint,
	}
}

func ComputeComparisons(impact Impact) Comparisons {
	var c Comparisons
	if impact.CO2Saved > 0 {
		c.CO2CarKm = roundTo(impact.CO2Saved/co2PerCarKm, 1)
	}
	if impact.WaterSaved > 0 {
		c.WaterShowers = roundInt(impact.WaterSaved / litersPerShower)
	}
	if impact.PlasticSaved > 0 {
		c.PlasticBottles = roundInt(impact.PlasticSaved / kgPerBottle)
	}
	if impact.EnergySaved > 0 {
		c.EnergyHomes = roundInt(impact.EnergySaved / kwhPerHomeDay)
	}
	return c
}

// TreesEquivalent is how many trees absorb co2 kg in a year.
func TreesEquivalent(co2 float64) int {
	if co2 <= 0 {
		return 0
	}
	return roundInt(co2 / co2PerTreeYearly)
}

// CommunityImpact is the coarse site-wide estimate shown on the landing page.
type CommunityImpact struct {
	TotalTasks int64 `json:"totalTasks"`
	TotalCO2   int64 `json:"totalCo2Saved"`
	TotalWater int64 `json:"totalWaterSaved"`
	TotalTrees int64 `json:"totalTrees"`
}

// ComputeCommunityImpact credits every completed task with 2 kg CO2 and 15 l water.
func ComputeCommunityImpact(totalTasks int64) CommunityImpact {
	if totalTasks < 0 {
		totalTasks = 0
	}
	co2 := totalTasks * 2
	return CommunityImpact{
		TotalTasks: totalTasks,
		TotalCO2:   co2,
		TotalWater: totalTasks * 15,
		TotalTrees: co2 / co2PerTreeYearly,
	}
}
