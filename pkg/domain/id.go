package domain

// IDGenerator produz identificadores para novas entidades.
type IDGenerator[T any] func() T
