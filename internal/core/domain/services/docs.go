// Package services provides the stateless domain services of the order workflow. They
// hold rules that do not belong to a single aggregate and perform no I/O.
//
// The package includes:
//   - GeoFeeCalculator: great-circle distance, delivery-fee banding and ETA estimation
//   - PaymentSimulator: a deterministic mock gateway turning a payment request into an outcome
//   - RatingAggregator: derives a restaurant's rating and review statistics from rating totals
package services
