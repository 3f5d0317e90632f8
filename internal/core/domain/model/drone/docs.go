// Package drone contains the fleet aggregate: availability, battery
// accounting per flown kilometre, and the lifetime delivery statistics.
package drone
