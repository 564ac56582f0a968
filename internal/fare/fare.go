// Package fare prices tickets from checked bags, distance and party size.
package fare

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	BagPrice     = 25
	PricePerMile = 0.10
)

type Quote struct {
	CheckedBags int     `json:"checked_bags"`
	Distance    int     `json:"distance"`
	Travelers   int     `json:"travelers"`
	Total       float64 `json:"total"`
	Formatted   string  `json:"formatted"`
}

// CalculateAirfare returns (bags*25 + distance*0.10) * travelers.
// Inputs are not validated; negative values give negative fares.
func CalculateAirfare(checkedBags, distance, travelers int) float64 {
	bagCost := BagPrice * checkedBags
	distanceCost := PricePerMile * float64(distance)
	return (float64(bagCost) + distanceCost) * float64(travelers)
}

func NewQuote(checkedBags, distance, travelers int) Quote {
	total := CalculateAirfare(checkedBags, distance, travelers)
	return Quote{
		CheckedBags: checkedBags,
		Distance:    distance,
		Travelers:   travelers,
		Total:       total,
		Formatted:   FormatUSD(total),
	}
}

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders amount as US dollars with grouped thousands, e.g. "$1,250.00".
func FormatUSD(amount float64) string {
	if amount < 0 {
		return usd.Sprintf("-$%.2f", -amount)
	}
	return usd.Sprintf("$%.2f", amount)
}
