// Package services contains stateless domain services that work across
// aggregates, such as drone selection for a pickup.
package services
