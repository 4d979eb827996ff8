package schema

// AuditFilmAuditTable represents the 'audit.filmaudit' table
type AuditFilmAuditTable struct {
	Table     string
	ID        string
	FilmID    string
	Title     string
	Action    string
	OldStatus string
	NewStatus string
	OldBudget string
	NewBudget string
	ChangedBy string
	ChangedAt string
}

// AuditFilmAudit is the schema definition for audit.filmaudit
var AuditFilmAudit = AuditFilmAuditTable{
	Table:     "audit.filmaudit",
	ID:        "id",
	FilmID:    "filmid",
	Title:     "title",
	Action:    "action",
	OldStatus: "oldstatus",
	NewStatus: "newstatus",
	OldBudget: "oldbudget",
	NewBudget: "newbudget",
	ChangedBy: "changedby",
	ChangedAt: "changedat",
}

func (t AuditFilmAuditTable) Columns() []string {
	return []string{t.ID, t.FilmID, t.Title, t.Action, t.OldStatus, t.NewStatus, t.OldBudget, t.NewBudget, t.ChangedBy, t.ChangedAt}
}
