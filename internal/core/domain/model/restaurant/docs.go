// Package restaurant contains the kitchen ticket the restaurant tracker
// opens for each paid order and walks through confirmation and readiness.
package restaurant
