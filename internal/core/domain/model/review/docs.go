// Package review contains customer reviews of delivered orders and the rating totals the
// restaurant rating is derived from.
//
// Business rules:
//   - only the customer of an order may review it, and only once it is delivered
//   - at most one review exists per (order, user)
//   - each of the three ratings lies in [1, 5]; the comment is at most 500 characters
package review
