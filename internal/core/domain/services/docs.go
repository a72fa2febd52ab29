// Package services contains stateless domain services: business logic that
// spans value objects without belonging to a single aggregate.
//
// FeeCalculator computes the delivery fee for an order's lines at placement
// time. The fee becomes part of the order and never changes afterwards, even
// if the fee policy does.
package services
