package domain

import "math"

const (
	// CostSearchMarginRatio is the share of the target cost accepted on each side.
	CostSearchMarginRatio = 0.2
	CostSearchLimit       = 5
	// HybridSearchTolerance is the largest accepted |proportion - target|.
	HybridSearchTolerance = 0.1
)

type CostComparison struct {
	CostOfLivingPercent float64 `json:"cost_of_living_percent"`
	RentPercent         float64 `json:"rent_percent"`
	WagePercent         float64 `json:"wage_percent"`
}

type CostMetrics struct {
	CostToWageRatio   float64        `json:"cost_to_wage_ratio"`
	RentToWageRatio   float64        `json:"rent_to_wage_ratio"`
	CostVsNationalAvg CostComparison `json:"cost_vs_national_avg"`
}

type CityCostMatch struct {
	CityID       int64       `json:"city_id"`
	Name         string      `json:"name"`
	CostOfLiving float64     `json:"cost_of_living"`
	AvgRent      float64     `json:"avg_rent"`
	AvgWage      float64     `json:"avg_wage"`
	Distance     float64     `json:"distance"`
	CostMetrics  CostMetrics `json:"cost_metrics"`
}

type CityHybridMatch struct {
	CityID            int64   `db:"id" json:"city_id"`
	Name              string  `db:"name" json:"name"`
	PropHybridWorkers float64 `db:"prop_hybrid_workers" json:"prop_hybrid_workers"`
	Difference        float64 `db:"difference" json:"difference"`
}

// CostWindow returns the inclusive cost range searched around target.
func CostWindow(target float64) (low, high float64) {
	margin := target * CostSearchMarginRatio
	return target - margin, target + margin
}

// PercentDeviation is (value / reference * 100) - 100. A zero reference yields 0.
func PercentDeviation(value, reference float64) float64 {
	if reference == 0 {
		return 0
	}
	return value/reference*100 - 100
}

// Ratio divides num by den and yields 0 for a non-positive denominator.
func Ratio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}

func NewCostMetrics(c City, avg NationalAverages) CostMetrics {
	return CostMetrics{
		CostToWageRatio: Ratio(c.AvgCostOfLiving, c.AvgWage),
		RentToWageRatio: Ratio(c.AvgRent, c.AvgWage),
		CostVsNationalAvg: CostComparison{
			CostOfLivingPercent: PercentDeviation(c.AvgCostOfLiving, avg.CostOfLiving),
			RentPercent:         PercentDeviation(c.AvgRent, avg.Rent),
			WagePercent:         PercentDeviation(c.AvgWage, avg.Wage),
		},
	}
}

func NewCityCostMatch(c City, target float64, avg NationalAverages) CityCostMatch {
	return CityCostMatch{
		CityID:       c.ID,
		Name:         c.Name,
		CostOfLiving: c.AvgCostOfLiving,
		AvgRent:      c.AvgRent,
		AvgWage:      c.AvgWage,
		Distance:     math.Abs(c.AvgCostOfLiving - target),
		CostMetrics:  NewCostMetrics(c, avg),
	}
}
