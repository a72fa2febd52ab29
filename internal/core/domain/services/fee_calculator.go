package services

import (
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

const (
	// defaultDeliveryFeeCents is the flat delivery fee applied to orders.
	defaultDeliveryFeeCents int64 = 300

	// freeDeliveryThresholdCents is the items subtotal above which delivery is free.
	freeDeliveryThresholdCents int64 = 5000
)

// FeeCalculator is a domain service that computes the delivery fee for a set
// of order lines.
//
// Business rules:
//   - A flat fee applies to every order
//   - The fee is waived when the items subtotal exceeds the free-delivery threshold
//   - The fee is computed once, at placement, and snapshotted on the order
//
// Example usage:
//
//	calc := services.NewFeeCalculator()
//	fee, err := calc.FeeFor(lines)
//	if err != nil {
//	    // Handle invalid lines
//	}
//	o, err := order.NewOrder(id, customerID, location, lines, fee)
type FeeCalculator struct{}

// NewFeeCalculator creates a new FeeCalculator instance.
func NewFeeCalculator() FeeCalculator {
	return FeeCalculator{}
}

// FeeFor computes the delivery fee for the given order lines.
// Each line must be a properly constructed OrderLine.
func (c FeeCalculator) FeeFor(lines []order.OrderLine) (kernel.Money, error) {
	var subtotal kernel.Money
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return kernel.Money{}, err
		}
		subtotal = subtotal.Add(line.Total())
	}

	threshold, err := kernel.NewMoneyFromCents(freeDeliveryThresholdCents)
	if err != nil {
		return kernel.Money{}, err
	}

	if subtotal.GreaterThan(threshold) {
		return kernel.Money{}, nil
	}

	return kernel.NewMoneyFromCents(defaultDeliveryFeeCents)
}
