package booking

import "fmt"

// SlotConflictError indicates the requested slot is no longer available.
type SlotConflictError struct {
	Message string
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("slotConflict: %s", e.Message)
}

func NewSlotConflictError(msg string) error {
	return &SlotConflictError{Message: msg}
}
