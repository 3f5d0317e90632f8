// Package ports declares the contracts between the application core and
// its adapters: repositories, the unit of work, the event bus, external
// service clients and the customer notifier.
package ports
