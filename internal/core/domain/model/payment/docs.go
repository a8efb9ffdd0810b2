// Package payment models simulated payment attempts.
//
// An order may have several attempts but at most one completed attempt. Every attempt is
// persisted exactly once, together with the opaque gateway payload it produced.
package payment
