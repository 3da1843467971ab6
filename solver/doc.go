// Package solver is the driver that ties package discount's data model to
// packages dlx and cover: it applies deals to an order, deduplicates the
// resulting discounts, builds a Dancing Links matrix out of them, and picks
// the partial covering with the greatest total savings.
package solver
