package crew_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danghoanh/cinevault/internal/catalog/crew"
	"github.com/danghoanh/cinevault/internal/platform/apperr"
	"github.com/danghoanh/cinevault/pkg/pointer"
)

type fakeRepository struct {
	created *crew.Member
	updated *crew.Member
}

func (f *fakeRepository) ListMembers(ctx context.Context, filter crew.Filter, limit, offset int) ([]*crew.Member, int, error) {
	return nil, 0, nil
}
func (f *fakeRepository) GetMember(ctx context.Context, id int64) (*crew.Member, error) {
	return nil, nil
}
func (f *fakeRepository) CreateMember(ctx context.Context, m *crew.Member) error {
	f.created = m
	return nil
}
func (f *fakeRepository) UpdateMember(ctx context.Context, m *crew.Member) error {
	f.updated = m
	return nil
}
func (f *fakeRepository) DeleteMember(ctx context.Context, id int64) error { return nil }

func newTestService(repo crew.Repository) *crew.Service {
	return crew.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestCreateMember_Validation covers the field guards.
*/
func TestCreateMember_Validation(t *testing.T) {
	tests := []struct {
		name    string
		member  crew.Member
		wantErr bool
	}{
		{"valid", crew.Member{Name: "Quang Vo", Department: "Camera", ExperienceYears: 6}, false},
		{"zero_experience_ok", crew.Member{Name: "New Hire", Department: "Sound"}, false},
		{"missing_name", crew.Member{Department: "Camera"}, true},
		{"missing_department", crew.Member{Name: "Quang Vo"}, true},
		{"negative_experience", crew.Member{Name: "Quang Vo", Department: "Camera", ExperienceYears: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			service := newTestService(repo)

			err := service.CreateMember(context.Background(), &tt.member)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperr.IsCode(err, "VALIDATION_ERROR"))
				assert.Nil(t, repo.created)
			} else {
				require.NoError(t, err)
				require.NotNil(t, repo.created)
			}
		})
	}
}

/*
TestUpdateMember_SelfSupervision rejects a member supervising themselves.
*/
func TestUpdateMember_SelfSupervision(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	err := service.UpdateMember(context.Background(), 12, &crew.Member{
		Name:         "Quang Vo",
		Department:   "Camera",
		SupervisorID: pointer.To(int64(12)),
	})

	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, "VALIDATION_ERROR"))
	assert.Nil(t, repo.updated)
}

/*
TestUpdateMember_ValidSupervisor allows a different supervisor.
*/
func TestUpdateMember_ValidSupervisor(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	err := service.UpdateMember(context.Background(), 12, &crew.Member{
		Name:         "Quang Vo",
		Department:   "Camera",
		SupervisorID: pointer.To(int64(3)),
	})

	require.NoError(t, err)
	require.NotNil(t, repo.updated)
	assert.Equal(t, int64(12), repo.updated.ID)
}
