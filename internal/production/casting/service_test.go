package casting_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danghoanh/cinevault/internal/platform/apperr"
	"github.com/danghoanh/cinevault/internal/production/casting"
)

type fakeRepository struct {
	assigned  *casting.Role
	updated   *casting.Role
	removedID int64
	changedBy string
}

func (f *fakeRepository) ListRoles(ctx context.Context, filter casting.Filter, limit, offset int) ([]*casting.Role, int, error) {
	return nil, 0, nil
}
func (f *fakeRepository) GetRole(ctx context.Context, id int64) (*casting.Role, error) {
	return nil, nil
}
func (f *fakeRepository) AssignRole(ctx context.Context, r *casting.Role, changedBy string) error {
	f.assigned = r
	f.changedBy = changedBy
	return nil
}
func (f *fakeRepository) UpdateRole(ctx context.Context, r *casting.Role, changedBy string) error {
	f.updated = r
	f.changedBy = changedBy
	return nil
}
func (f *fakeRepository) RemoveRole(ctx context.Context, id int64, changedBy string) error {
	f.removedID = id
	f.changedBy = changedBy
	return nil
}

func newTestService(repo casting.Repository) *casting.Service {
	return casting.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func validRole() *casting.Role {
	return &casting.Role{
		ActorID:           4,
		FilmID:            9,
		CharacterName:     "Captain Hoa",
		ScreenTimeMinutes: 45,
		Importance:        casting.ImportanceLead,
		Salary:            750_000,
	}
}

/*
TestAssignRole_Validation covers the casting guards.
*/
func TestAssignRole_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*casting.Role)
		wantErr bool
	}{
		{"valid", func(r *casting.Role) {}, false},
		{"cameo_unpaid", func(r *casting.Role) { r.Importance = casting.ImportanceCameo; r.Salary = 0 }, false},
		{"missing_actor", func(r *casting.Role) { r.ActorID = 0 }, true},
		{"missing_film", func(r *casting.Role) { r.FilmID = 0 }, true},
		{"missing_character", func(r *casting.Role) { r.CharacterName = "" }, true},
		{"negative_screen_time", func(r *casting.Role) { r.ScreenTimeMinutes = -5 }, true},
		{"unknown_importance", func(r *casting.Role) { r.Importance = "EXTRA" }, true},
		{"negative_salary", func(r *casting.Role) { r.Salary = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			service := newTestService(repo)

			role := validRole()
			tt.mutate(role)

			err := service.AssignRole(context.Background(), role, "director.nam")

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperr.IsCode(err, "VALIDATION_ERROR"))
				assert.Nil(t, repo.assigned)
			} else {
				require.NoError(t, err)
				require.NotNil(t, repo.assigned)
				assert.Equal(t, "director.nam", repo.changedBy)
			}
		})
	}
}

/*
TestUpdateRole_SkipsReferenceChecks allows updates without actor and film IDs,
since a role cannot move between films.
*/
func TestUpdateRole_SkipsReferenceChecks(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	err := service.UpdateRole(context.Background(), 31, &casting.Role{
		CharacterName:     "Captain Hoa",
		ScreenTimeMinutes: 60,
		Importance:        casting.ImportanceSupporting,
		Salary:            500_000,
	}, "director.nam")

	require.NoError(t, err)
	require.NotNil(t, repo.updated)
	assert.Equal(t, int64(31), repo.updated.ID)
}

/*
TestRemoveRole records the acting user alongside the removal.
*/
func TestRemoveRole(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	require.NoError(t, service.RemoveRole(context.Background(), 31, "director.nam"))
	assert.Equal(t, int64(31), repo.removedID)
	assert.Equal(t, "director.nam", repo.changedBy)
}
