package ports

import (
	"context"

	"dispatch/internal/core/domain/model/employee"
	"dispatch/internal/core/domain/model/kernel"
)

// EmployeeRepository is the read-only driver directory lookup.
type EmployeeRepository interface {
	// Get retrieves an employee by id.
	Get(ctx context.Context, id kernel.UUID) (*employee.Employee, error)
}
