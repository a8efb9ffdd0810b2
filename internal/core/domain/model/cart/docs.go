// Package cart contains the Cart aggregate: the pending selection of menu items of one user.
//
// Business rules:
//   - every line of a cart belongs to the same restaurant; adding from another restaurant is
//     rejected until the cart is cleared
//   - a menu item appears at most once; adding it again sums the quantities and replaces the note
//   - quantities set explicitly must lie in [MinQuantity, MaxQuantity]
//   - each line keeps the catalog price seen when it was last added
//
// The single-restaurant rule is an application-level invariant. The cart relation only knows
// the (user, menu item) uniqueness, so the rule is checked in Add before any write.
package cart
