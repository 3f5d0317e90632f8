// Package delivery contains the flight record the motion sweep advances
// every tick: two cached waypoints, the interpolated drone position, and
// the pickup, halfway and completion milestones derived from it.
package delivery
