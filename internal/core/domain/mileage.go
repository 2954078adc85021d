package domain

import "github.com/shopspring/decimal"

var (
	mileageThreshold = decimal.NewFromInt(10000)
	mileageUpperRate = decimal.RequireFromString("0.45")
	mileageLowerRate = decimal.RequireFromString("0.25")
)

// MileageAllowance returns the HMRC approved mileage allowance for a year's
// business miles: 45p for the first 10,000 miles and 25p thereafter.
func MileageAllowance(totalMiles decimal.Decimal) decimal.Decimal {
	if totalMiles.Sign() <= 0 {
		return decimal.Zero
	}
	if totalMiles.LessThanOrEqual(mileageThreshold) {
		return totalMiles.Mul(mileageUpperRate).Round(2)
	}
	base := mileageThreshold.Mul(mileageUpperRate)
	return base.Add(totalMiles.Sub(mileageThreshold).Mul(mileageLowerRate)).Round(2)
}

// BackfillMiles fills in zero-mile sessions from their client's default
// mileage and returns the sessions that changed. The input is not modified.
func BackfillMiles(sessions []WorkSession, clients []Client) []WorkSession {
	defaults := make(map[string]decimal.Decimal, len(clients))
	for _, c := range clients {
		if c.DefaultMiles.Sign() > 0 {
			defaults[c.ID] = c.DefaultMiles
		}
	}
	var changed []WorkSession
	for _, s := range sessions {
		if !s.Miles.IsZero() {
			continue
		}
		if miles, ok := defaults[s.ClientID]; ok {
			s.Miles = miles
			changed = append(changed, s)
		}
	}
	return changed
}
