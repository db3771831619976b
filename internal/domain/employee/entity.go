package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the read-only projection of the directory collaborator's
// employee record. The core only consumes salary, hire date and activity;
// directory management lives outside this service.
type Employee struct {
	ID string

	// BaseSalary is the annual base salary.
	BaseSalary decimal.Decimal

	HireDate time.Time
	IsActive bool
}
