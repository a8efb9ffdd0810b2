// Package kernel provides the value objects shared by every aggregate of the order
// fulfillment domain.
//
// The package includes:
//   - GeoPoint: a validated latitude/longitude pair used for distance and ETA estimation
//   - money helpers: decimal rounding and percentage arithmetic for prices, fees and taxes
//   - references: time-ordered, human-decodable identifiers such as order and transaction ids
//
// All values are immutable and safe for concurrent use.
package kernel
