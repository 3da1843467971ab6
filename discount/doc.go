// Package discount holds the external data model the rest of this module
// treats as a black box: order items, discounts, and deals that turn the
// former into the latter. None of these types know anything about the
// Dancing Links matrix; package solver is the only consumer that wires them
// together with package dlx and package cover.
package discount
