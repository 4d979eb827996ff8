package actor_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danghoanh/cinevault/internal/catalog/actor"
	"github.com/danghoanh/cinevault/internal/platform/apperr"
)

type fakeRepository struct {
	created *actor.Actor
	deleted int64
}

func (f *fakeRepository) ListActors(ctx context.Context, filter actor.Filter, limit, offset int) ([]*actor.Actor, int, error) {
	return nil, 0, nil
}
func (f *fakeRepository) GetActor(ctx context.Context, id int64) (*actor.Actor, error) {
	return nil, nil
}
func (f *fakeRepository) CreateActor(ctx context.Context, a *actor.Actor) error {
	f.created = a
	return nil
}
func (f *fakeRepository) UpdateActor(ctx context.Context, a *actor.Actor) error { return nil }
func (f *fakeRepository) DeleteActor(ctx context.Context, id int64) error {
	f.deleted = id
	return nil
}

func newTestService(repo actor.Repository) *actor.Service {
	return actor.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestActor_Age covers the anniversary boundary.
*/
func TestActor_Age(t *testing.T) {
	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		dob  time.Time
		want int
	}{
		{"birthday_today", time.Date(2008, time.June, 15, 0, 0, 0, 0, time.UTC), 18},
		{"birthday_tomorrow", time.Date(2008, time.June, 16, 0, 0, 0, 0, time.UTC), 17},
		{"birthday_yesterday", time.Date(2008, time.June, 14, 0, 0, 0, 0, time.UTC), 18},
		{"mid_career", time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC), 46},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &actor.Actor{DateOfBirth: tt.dob}
			assert.Equal(t, tt.want, a.Age(now))
		})
	}
}

/*
TestCreateActor_MinimumAge rejects performers under eighteen.
*/
func TestCreateActor_MinimumAge(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		dob     time.Time
		wantErr bool
	}{
		{"exactly_eighteen", now.AddDate(-18, 0, 0), false},
		{"well_over", now.AddDate(-35, 0, 0), false},
		{"one_day_short", now.AddDate(-18, 0, 1), true},
		{"seventeen", now.AddDate(-17, 0, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			service := newTestService(repo)

			err := service.CreateActor(context.Background(), &actor.Actor{
				Name:        "Mai Tran",
				DateOfBirth: tt.dob,
			})

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
TestCreateActor_RequiredFields rejects missing name and date of birth.
*/
func TestCreateActor_RequiredFields(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	err := service.CreateActor(context.Background(), &actor.Actor{})

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 2) // name and date_of_birth
}

/*
TestDeleteActor passes the ID straight through.
*/
func TestDeleteActor(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	require.NoError(t, service.DeleteActor(context.Background(), 99))
	assert.Equal(t, int64(99), repo.deleted)
}
