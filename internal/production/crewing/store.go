package crewing

import "context"

type Repository interface {
	ListAssignments(context context.Context, filmID int64, limit, offset int) ([]*Assignment, int, error)
	CreateAssignment(context context.Context, a *Assignment) error
	DeleteAssignment(context context.Context, id int64) error

	// GetCrewDepartment resolves the department from the crew record.
	GetCrewDepartment(context context.Context, crewID int64) (string, error)

	ListAllocations(context context.Context, filmID int64, limit, offset int) ([]*Allocation, int, error)
	CreateAllocation(context context.Context, a *Allocation) error
	DeleteAllocation(context context.Context, id int64) error
}
