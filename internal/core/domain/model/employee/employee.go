// Package employee models the driver directory as seen by the dispatch core.
// Employees are managed elsewhere in the retail application; this core only
// looks drivers up by id to validate assignments and to show contact details
// in the driver view.
package employee

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrEmployeeIsNotConstructed is returned when an Employee instance was not
// created through RestoreEmployee.
var ErrEmployeeIsNotConstructed = errors.New("Employee must be created via RestoreEmployee constructor")

// Employee is a read-only directory entry for a staff member who can drive
// routes.
type Employee struct {
	id    kernel.UUID
	name  string
	phone string

	isConstructed bool
}

// RestoreEmployee rehydrates an employee from the directory.
func RestoreEmployee(id kernel.UUID, name, phone string) (*Employee, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Employee{
		id:            id,
		name:          name,
		phone:         phone,
		isConstructed: true,
	}, nil
}

// Validate ensures the Employee instance was created through RestoreEmployee.
func (e *Employee) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEmployeeIsNotConstructed
	}
	return nil
}

// ID returns the employee's unique identifier.
func (e *Employee) ID() kernel.UUID {
	return e.id
}

// Name returns the employee's display name.
func (e *Employee) Name() string {
	return e.name
}

// Phone returns the employee's phone number, possibly empty.
func (e *Employee) Phone() string {
	return e.phone
}
