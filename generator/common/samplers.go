package common

import (
	"math"

	ic "github.com/Uthara1292/small-business-analysis/innercommunication"
)

// Hour weights peak with the morning rush at 9 and again at lunch.
var DefaultHourWeights = []Weighted[int]{
	{7, 10}, {8, 15}, {9, 20}, {10, 15}, {11, 10}, {12, 12}, {13, 10},
	{14, 8}, {15, 10}, {16, 8}, {17, 5}, {18, 3}, {19, 2},
}

var DefaultQuantityWeights = []Weighted[int]{
	{1, 80}, {2, 15}, {3, 5},
}

var DefaultPaymentWeights = []Weighted[ic.PaymentMethod]{
	{ic.CreditCard, 60}, {ic.Cash, 20}, {ic.MobilePayment, 20},
}

var DefaultCustomerWeights = []Weighted[ic.CustomerType]{
	{ic.Regular, 50}, {ic.New, 30}, {ic.Transient, 20},
}

const DefaultCoffeeWeight = 1.5

// DailyVolumeSampler draws how many transactions a day gets.
type DailyVolumeSampler struct {
	Mean   float64
	StdDev float64
	Floor  int
}

// Sample draws from Normal(Mean, StdDev), rounds to the nearest integer and
// clamps to Floor. The clamp comes last so the floor always holds.
func (s DailyVolumeSampler) Sample(r RandomSource) int {
	n := int(math.Round(s.Mean + s.StdDev*r.NormFloat64()))
	return max(n, s.Floor)
}

// TimeOfDaySampler draws a weighted hour and a uniform minute.
type TimeOfDaySampler struct {
	hours *Distribution[int]
}

func NewTimeOfDaySampler(hourWeights []Weighted[int]) (*TimeOfDaySampler, error) {
	hours, err := NewDistribution(hourWeights)
	if err != nil {
		return nil, err
	}
	return &TimeOfDaySampler{hours: hours}, nil
}

func (s *TimeOfDaySampler) Sample(r RandomSource) ic.ClockTime {
	return ic.ClockTime{
		Hour:   s.hours.Sample(r),
		Minute: r.IntN(60),
	}
}

// ProductSelector picks catalog entries, favouring coffee.
type ProductSelector struct {
	products *Distribution[CatalogEntry]
}

func NewProductSelector(catalog []CatalogEntry, coffeeWeight float64) (*ProductSelector, error) {
	choices := make([]Weighted[CatalogEntry], 0, len(catalog))
	for _, entry := range catalog {
		weight := 1.0
		if entry.Category == ic.Coffee {
			weight = coffeeWeight
		}
		choices = append(choices, Weighted[CatalogEntry]{Value: entry, Weight: weight})
	}
	products, err := NewDistribution(choices)
	if err != nil {
		return nil, err
	}
	return &ProductSelector{products: products}, nil
}

func (s *ProductSelector) Sample(r RandomSource) CatalogEntry {
	return s.products.Sample(r)
}
