// Package stack implements the CHIP-8 call stack.
// The stack is only used for storing return addresses when calling subroutines.
package stack

import "errors"

// Capacity is the maximum number of return addresses the stack can hold.
const Capacity = 24

// ErrOverflow is returned when pushing onto a full stack.
var ErrOverflow = errors.New("stack overflow")

// ErrUnderflow is returned when popping from an empty stack.
var ErrUnderflow = errors.New("stack underflow")

// Stack is a fixed-depth LIFO store of 16-bit return addresses.
type Stack struct {
	memory  [Capacity]uint16
	pointer int
}

// New returns a new empty stack.
func New() *Stack {
	return &Stack{}
}

// Push stores a return address on top of the stack.
// The stack is left unchanged if it is already at capacity.
func (s *Stack) Push(returnAddress uint16) error {
	if s.pointer >= Capacity {
		return ErrOverflow
	}

	s.memory[s.pointer] = returnAddress
	s.pointer++
	return nil
}

// Pop removes and returns the most recently pushed return address.
// The stack is left unchanged if it is empty.
func (s *Stack) Pop() (uint16, error) {
	if s.pointer <= 0 {
		return 0, ErrUnderflow
	}

	s.pointer--
	return s.memory[s.pointer], nil
}
