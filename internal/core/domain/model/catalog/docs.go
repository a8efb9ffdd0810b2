// Package catalog holds read-only snapshots of the records this service consumes from the
// restaurant catalog and the address book: restaurants, menu items and delivery addresses.
//
// The snapshots are never written by the order workflow. The only exception is the derived
// restaurant rating, which is recomputed by the review use case through the catalog port.
package catalog
