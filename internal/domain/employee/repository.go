package employee

import "context"

// EmployeeRepository reads from the employee directory. The directory is
// owned by an external collaborator; this interface is read-only.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
}
