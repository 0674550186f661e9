package table

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateDeclaration = errors.New("duplicate declaration")
	ErrCapacityExceeded     = errors.New("symbol table capacity exceeded")
)

// DuplicateDeclarationError is returned when a name is declared twice.
// The first declaration stays in the table.
type DuplicateDeclarationError struct {
	Name string
}

func (e *DuplicateDeclarationError) Error() string {
	return fmt.Sprintf("Variável '%s' já declarada anteriormente.", e.Name)
}

func (e *DuplicateDeclarationError) Is(target error) bool {
	return target == ErrDuplicateDeclaration
}

// CapacityExceededError is returned when a bounded table is full
type CapacityExceededError struct {
	Name     string
	Capacity int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("Limite de %d símbolos excedido ao declarar '%s'.", e.Capacity, e.Name)
}

func (e *CapacityExceededError) Is(target error) bool {
	return target == ErrCapacityExceeded
}
