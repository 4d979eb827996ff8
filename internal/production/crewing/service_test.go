package crewing_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danghoanh/cinevault/internal/platform/apperr"
	"github.com/danghoanh/cinevault/internal/production/crewing"
)

type fakeRepository struct {
	department      string
	departmentCalls int
	assignment      *crewing.Assignment
	allocation      *crewing.Allocation
}

func (f *fakeRepository) ListAssignments(ctx context.Context, filmID int64, limit, offset int) ([]*crewing.Assignment, int, error) {
	return nil, 0, nil
}
func (f *fakeRepository) CreateAssignment(ctx context.Context, a *crewing.Assignment) error {
	f.assignment = a
	return nil
}
func (f *fakeRepository) DeleteAssignment(ctx context.Context, id int64) error { return nil }
func (f *fakeRepository) GetCrewDepartment(ctx context.Context, crewID int64) (string, error) {
	f.departmentCalls++
	return f.department, nil
}
func (f *fakeRepository) ListAllocations(ctx context.Context, filmID int64, limit, offset int) ([]*crewing.Allocation, int, error) {
	return nil, 0, nil
}
func (f *fakeRepository) CreateAllocation(ctx context.Context, a *crewing.Allocation) error {
	f.allocation = a
	return nil
}
func (f *fakeRepository) DeleteAllocation(ctx context.Context, id int64) error { return nil }

func newTestService(repo crewing.Repository) *crewing.Service {
	return crewing.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func date(day int) time.Time {
	return time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC)
}

/*
TestAssignment_Days counts working days inclusively.
*/
func TestAssignment_Days(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int64
	}{
		{"single_day", date(1), date(1), 1},
		{"full_week", date(1), date(7), 7},
		{"two_days", date(10), date(11), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &crewing.Assignment{StartDate: tt.start, EndDate: tt.end}
			assert.Equal(t, tt.want, a.Days())
		})
	}
}

/*
TestAssignCrew_DerivesDepartment ignores any caller-supplied department and
snapshots the one on the crew record.
*/
func TestAssignCrew_DerivesDepartment(t *testing.T) {
	repo := &fakeRepository{department: "Lighting"}
	service := newTestService(repo)

	assignment := &crewing.Assignment{
		CrewID:     5,
		FilmID:     2,
		Department: "Forged",
		StartDate:  date(1),
		EndDate:    date(10),
	}

	require.NoError(t, service.AssignCrew(context.Background(), assignment))
	assert.Equal(t, "Lighting", assignment.Department)
	assert.Equal(t, 1, repo.departmentCalls)
	require.NotNil(t, repo.assignment)
}

/*
TestAssignCrew_Validation covers the window guards.
*/
func TestAssignCrew_Validation(t *testing.T) {
	tests := []struct {
		name       string
		assignment crewing.Assignment
	}{
		{"missing_crew", crewing.Assignment{FilmID: 2, StartDate: date(1), EndDate: date(2)}},
		{"missing_film", crewing.Assignment{CrewID: 5, StartDate: date(1), EndDate: date(2)}},
		{"missing_dates", crewing.Assignment{CrewID: 5, FilmID: 2}},
		{"end_before_start", crewing.Assignment{CrewID: 5, FilmID: 2, StartDate: date(10), EndDate: date(3)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{department: "Lighting"}
			service := newTestService(repo)

			err := service.AssignCrew(context.Background(), &tt.assignment)

			require.Error(t, err)
			assert.True(t, apperr.IsCode(err, "VALIDATION_ERROR"))
			assert.Zero(t, repo.departmentCalls, "validation must run before the department lookup")
			assert.Nil(t, repo.assignment)
		})
	}
}

/*
TestAllocateEquipment_RatingBounds enforces the 1..10 efficiency range.
*/
func TestAllocateEquipment_RatingBounds(t *testing.T) {
	tests := []struct {
		name    string
		rating  int
		wantErr bool
	}{
		{"minimum", 1, false},
		{"maximum", 10, false},
		{"middle", 6, false},
		{"zero", 0, true},
		{"too_high", 11, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			service := newTestService(repo)

			err := service.AllocateEquipment(context.Background(), &crewing.Allocation{
				EquipmentID:      7,
				FilmID:           2,
				CrewID:           5,
				EfficiencyRating: tt.rating,
			})

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperr.IsCode(err, "VALIDATION_ERROR"))
				assert.Nil(t, repo.allocation)
			} else {
				require.NoError(t, err)
				require.NotNil(t, repo.allocation)
			}
		})
	}
}
