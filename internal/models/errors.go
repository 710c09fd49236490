package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateItem = errors.New("this product is already in the cart")
	ErrEmptyOrder    = errors.New("order has no items")
)

// ValidationError - запрос отклонен до обращения к хранилищу.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid field %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// StockError - запрошенное количество больше остатка у дистрибьютора.
type StockError struct {
	ProductID int64
	Requested int
	Available int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("Cannot update quantity. Available stock is only %d.", e.Available)
}
