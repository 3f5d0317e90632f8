package queries

import (
	"errors"

	"fooddrone/internal/core/domain/model/kernel"
)

var ErrGetUserOrdersQueryIsNotConstructed = errors.New(
	"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor")

// GetUserOrdersQuery retrieves a user's order history, newest first.
type GetUserOrdersQuery struct {
	userID kernel.UUID

	isConstructed bool
}

// NewGetUserOrdersQuery validates and creates the query.
func NewGetUserOrdersQuery(userID kernel.UUID) (GetUserOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserOrdersQuery{}, err
	}

	return GetUserOrdersQuery{userID: userID, isConstructed: true}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserOrdersQuery) Validate() error {
	if !q.isConstructed {
		return ErrGetUserOrdersQueryIsNotConstructed
	}
	return nil
}

// UserID returns the requesting user's identifier.
func (q GetUserOrdersQuery) UserID() kernel.UUID { return q.userID }
