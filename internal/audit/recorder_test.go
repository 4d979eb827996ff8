package audit_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danghoanh/cinevault/internal/audit"
)

// capturedStatement is one SQL statement a fakeQuerier received.
type capturedStatement struct {
	sql  string
	args []any
}

// fakeQuerier records every statement instead of hitting a database.
type fakeQuerier struct {
	statements []capturedStatement
	rowErr     error
}

func (q *fakeQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.statements = append(q.statements, capturedStatement{sql: sql, args: args})
	return pgconn.CommandTag{}, nil
}

func (q *fakeQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	q.statements = append(q.statements, capturedStatement{sql: sql, args: args})
	return fakeRow{err: q.rowErr}
}

// fakeRow satisfies pgx.Row for the RETURNING id, changedat scan.
type fakeRow struct {
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for _, d := range dest {
		switch v := d.(type) {
		case *int64:
			*v = 7
		case *time.Time:
			*v = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
		}
	}
	return nil
}

/*
TestRecordRoleChange_CapturesCharacter verifies a casting audit entry writes
the character name alongside the ids and salary, and that the generated id
and timestamp flow back into the entry.
*/
func TestRecordRoleChange_CapturesCharacter(t *testing.T) {
	q := &fakeQuerier{}
	recorder := audit.NewRecorder()

	entry := &audit.RoleEntry{
		RoleID:        11,
		ActorID:       3,
		FilmID:        5,
		CharacterName: "Elena Voss",
		Action:        audit.ActionInsert,
		Salary:        250_000,
		ChangedBy:     "casting.director",
	}
	require.NoError(t, recorder.RecordRoleChange(context.Background(), q, entry))

	require.Len(t, q.statements, 1)
	stmt := q.statements[0]
	assert.Contains(t, stmt.sql, "audit.roleaudit")
	assert.Contains(t, stmt.sql, "charactername")
	assert.Contains(t, stmt.args, "Elena Voss")
	assert.Contains(t, stmt.args, int64(250_000))
	assert.Contains(t, stmt.args, "casting.director")

	assert.Equal(t, int64(7), entry.ID)
	assert.False(t, entry.ChangedAt.IsZero())
}

/*
TestRecordEquipmentChange_CapturesName verifies an equipment availability
entry carries the item's name and both sides of the transition.
*/
func TestRecordEquipmentChange_CapturesName(t *testing.T) {
	q := &fakeQuerier{}
	recorder := audit.NewRecorder()

	entry := &audit.EquipmentEntry{
		EquipmentID: 42,
		Name:        "ARRI Alexa 35",
		Action:      audit.ActionUpdate,
		OldStatus:   "AVAILABLE",
		NewStatus:   "IN_USE",
		ChangedBy:   "gear.manager",
	}
	require.NoError(t, recorder.RecordEquipmentChange(context.Background(), q, entry))

	require.Len(t, q.statements, 1)
	stmt := q.statements[0]
	assert.Contains(t, stmt.sql, "audit.equipmentaudit")
	assert.Contains(t, stmt.args, "ARRI Alexa 35")
	assert.Contains(t, stmt.args, audit.ActionUpdate)
	assert.Contains(t, stmt.args, "AVAILABLE")
	assert.Contains(t, stmt.args, "IN_USE")
}

/*
TestRecordFilmChange_CapturesTitleAndBudgets verifies a film entry carries
the title and the old/new budget pair.
*/
func TestRecordFilmChange_CapturesTitleAndBudgets(t *testing.T) {
	q := &fakeQuerier{}
	recorder := audit.NewRecorder()

	entry := &audit.FilmEntry{
		FilmID:    9,
		Title:     "Midnight Reel",
		Action:    audit.ActionStatusChange,
		OldStatus: "IN_PRODUCTION",
		NewStatus: "POST_PRODUCTION",
		OldBudget: 4_000_000,
		NewBudget: 4_000_000,
		ChangedBy: "line.producer",
	}
	require.NoError(t, recorder.RecordFilmChange(context.Background(), q, entry))

	require.Len(t, q.statements, 1)
	stmt := q.statements[0]
	assert.Contains(t, stmt.sql, "audit.filmaudit")
	assert.Contains(t, stmt.sql, "oldbudget")
	assert.Contains(t, stmt.sql, "newbudget")
	assert.Contains(t, stmt.args, "Midnight Reel")
	assert.Contains(t, stmt.args, int64(4_000_000))
}

/*
TestRecordFilmStatusTransition_WritesEntryPair verifies a status transition
appends two entries on the same querier: the STATUS_CHANGE entry first, then
the STATUS_UPDATE marker, both carrying the title and budget pair.
*/
func TestRecordFilmStatusTransition_WritesEntryPair(t *testing.T) {
	q := &fakeQuerier{}
	recorder := audit.NewRecorder()

	entry := &audit.FilmEntry{
		FilmID:    9,
		Title:     "Midnight Reel",
		OldStatus: "IN_PRODUCTION",
		NewStatus: "POST_PRODUCTION",
		OldBudget: 4_000_000,
		NewBudget: 4_000_000,
		ChangedBy: "line.producer",
	}
	require.NoError(t, recorder.RecordFilmStatusTransition(context.Background(), q, entry))

	require.Len(t, q.statements, 2)
	assert.Contains(t, q.statements[0].args, audit.ActionStatusChange)
	assert.Contains(t, q.statements[1].args, audit.ActionStatusUpdate)
	for _, stmt := range q.statements {
		assert.Contains(t, stmt.args, "Midnight Reel")
		assert.Contains(t, stmt.args, "IN_PRODUCTION")
		assert.Contains(t, stmt.args, "POST_PRODUCTION")
		assert.Contains(t, stmt.args, int64(4_000_000))
	}

	assert.Equal(t, audit.ActionStatusChange, entry.Action)
}

/*
TestRecordFilmStatusTransition_StopsOnFirstFailure verifies a failed append
surfaces the error without attempting the marker entry.
*/
func TestRecordFilmStatusTransition_StopsOnFirstFailure(t *testing.T) {
	q := &fakeQuerier{rowErr: assert.AnError}
	recorder := audit.NewRecorder()

	err := recorder.RecordFilmStatusTransition(context.Background(), q, &audit.FilmEntry{FilmID: 9})

	require.Error(t, err)
	assert.Len(t, q.statements, 1)
}

/*
TestRecordUserActivity_CapturesDetail verifies an account activity entry
carries the username, detail and source address.
*/
func TestRecordUserActivity_CapturesDetail(t *testing.T) {
	q := &fakeQuerier{}
	recorder := audit.NewRecorder()

	entry := &audit.UserActivityEntry{
		Username:  "j.huston",
		Action:    audit.ActionLoginFailed,
		Detail:    "bad password",
		IPAddress: "10.1.2.3",
	}
	require.NoError(t, recorder.RecordUserActivity(context.Background(), q, entry))

	require.Len(t, q.statements, 1)
	stmt := q.statements[0]
	assert.Contains(t, stmt.sql, "audit.useractivity")
	assert.Contains(t, stmt.args, "j.huston")
	assert.Contains(t, stmt.args, audit.ActionLoginFailed)
	assert.Contains(t, stmt.args, "bad password")
	assert.Contains(t, stmt.args, "10.1.2.3")
}

/*
TestEntries_SerializeGovernedFields verifies the API representation of the
entries exposes the character name, title and budget pair.
*/
func TestEntries_SerializeGovernedFields(t *testing.T) {
	roleJSON, err := json.Marshal(audit.RoleEntry{CharacterName: "Elena Voss"})
	require.NoError(t, err)
	assert.Contains(t, string(roleJSON), `"character_name":"Elena Voss"`)

	filmJSON, err := json.Marshal(audit.FilmEntry{Title: "Midnight Reel", OldBudget: 1, NewBudget: 2})
	require.NoError(t, err)
	assert.Contains(t, string(filmJSON), `"title":"Midnight Reel"`)
	assert.Contains(t, string(filmJSON), `"old_budget":1`)
	assert.Contains(t, string(filmJSON), `"new_budget":2`)

	equipmentJSON, err := json.Marshal(audit.EquipmentEntry{Name: "ARRI Alexa 35"})
	require.NoError(t, err)
	assert.Contains(t, string(equipmentJSON), `"name":"ARRI Alexa 35"`)
}
