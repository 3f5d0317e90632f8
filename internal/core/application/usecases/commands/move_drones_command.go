package commands

import (
	"errors"
)

var ErrMoveDronesCommandIsNotConstructed = errors.New(
	"MoveDronesCommand must be created via NewMoveDronesCommand constructor")

// MoveDronesCommand advances every active flight by one tick. It carries no
// data; the sweep discovers its work itself.
type MoveDronesCommand struct {
	isConstructed bool
}

// NewMoveDronesCommand creates the sweep command.
func NewMoveDronesCommand() (MoveDronesCommand, error) {
	return MoveDronesCommand{isConstructed: true}, nil
}

// Validate ensures the command was created through the constructor.
func (c MoveDronesCommand) Validate() error {
	if !c.isConstructed {
		return ErrMoveDronesCommandIsNotConstructed
	}
	return nil
}
