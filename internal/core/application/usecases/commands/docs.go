// Package commands contains the write operations of the system: the
// HTTP-triggered commands and the event-triggered saga steps. All handlers
// follow the same pattern of validation, a unit-of-work transaction, and
// event publication after commit. Event-triggered handlers are idempotent
// because the bus delivers at least once.
package commands
