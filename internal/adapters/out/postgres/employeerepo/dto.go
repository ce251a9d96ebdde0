// Package employeerepo provides the read-only driver directory lookup.
// Employees are managed by the wider retail application; the dispatch core
// only resolves driver assignments against them.
package employeerepo

import (
	"dispatch/internal/core/domain/model/employee"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EmployeeDTO represents the database structure for employee rows.
type EmployeeDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255);not null"`
	Phone string    `gorm:"type:varchar(32)"`
}

// TableName overrides GORM's default naming to use "employees".
func (EmployeeDTO) TableName() string {
	return "employees"
}

// toDomain converts a database DTO to an employee entity.
func toDomain(dto EmployeeDTO) (*employee.Employee, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return employee.RestoreEmployee(id, dto.Name, dto.Phone)
}
