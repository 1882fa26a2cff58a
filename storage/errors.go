package storage

import "errors"

var (
	ErrNotFound        = errors.New("record not found")
	ErrDuplicate       = errors.New("record already exists")
	ErrInvalidEntity   = errors.New("invalid entity")
	ErrInvokerNotFound = errors.New("invoker does not exist")
)
