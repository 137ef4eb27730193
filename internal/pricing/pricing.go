// Package pricing derives quote figures from raw form inputs. Everything
// here is pure: the same inputs always produce the same outputs, and
// missing or non-numeric inputs are treated as zero.
package pricing

import "math"

const (
	// GSTRate is the NZ goods-and-services tax applied to the contract price.
	GSTRate = 0.15

	// bagsPerSQM coverage divisors by wall cavity depth.
	shallowCavityDepth   = 0.10
	shallowCavityDivisor = 6.5
	deepCavityDivisor    = 5.0

	// ceilingBagFactor converts R-value x area into blown-fibre bags.
	ceilingBagFactor = 0.0405

	// ceilingThicknessPerR is the settled depth in millimetres per unit R.
	ceilingThicknessPerR = 42.0

	// wallRPerMetre: R-value gained per metre of filled cavity.
	wallRPerMetre = 28.0
)

type Extra struct {
	Name  string
	Price float64
}

type Inputs struct {
	WallEnabled     bool
	WallSQM         float64
	WallSQMPrice    float64
	WallCavityDepth float64 // metres: 0.10 or 0.15

	CeilingEnabled  bool
	CeilingSQM      float64
	CeilingSQMPrice float64
	CeilingRValue   float64

	Extras []Extra

	ConsentFee        float64
	DepositPercentage float64

	// Manual overrides; a value > 0 supersedes the computed figure.
	TotalOverride   float64
	DepositOverride float64
}

type Outputs struct {
	WallRValue         float64
	WallBags           float64
	CeilingBags        float64
	CeilingThicknessMM float64 // display only

	ContractPrice float64
	GST           float64
	AutoTotal     float64
	Total         float64
	AutoDeposit   float64
	Deposit       float64
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Calculate derives the full set of quote figures. It never fails:
// incomplete input simply yields zero-valued outputs.
func Calculate(in Inputs) Outputs {
	var out Outputs

	out.WallRValue = round1(wallRPerMetre * in.WallCavityDepth)
	divisor := deepCavityDivisor
	if in.WallCavityDepth == shallowCavityDepth {
		divisor = shallowCavityDivisor
	}
	out.WallBags = round1(in.WallSQM / divisor)

	out.CeilingBags = round1(in.CeilingRValue * in.CeilingSQM * ceilingBagFactor)
	out.CeilingThicknessMM = in.CeilingRValue * ceilingThicknessPerR

	if in.WallEnabled {
		out.ContractPrice += in.WallSQM * in.WallSQMPrice
	}
	if in.CeilingEnabled {
		out.ContractPrice += in.CeilingSQM * in.CeilingSQMPrice
	}
	for _, e := range in.Extras {
		out.ContractPrice += e.Price
	}

	out.GST = out.ContractPrice * GSTRate
	out.AutoTotal = out.ContractPrice + out.GST + in.ConsentFee
	out.Total = out.AutoTotal
	if in.TotalOverride > 0 {
		out.Total = in.TotalOverride
	}

	out.AutoDeposit = out.Total * in.DepositPercentage / 100
	out.Deposit = out.AutoDeposit
	if in.DepositOverride > 0 {
		out.Deposit = in.DepositOverride
	}
	return out
}
