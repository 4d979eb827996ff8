package schema

// AuditRoleAuditTable represents the 'audit.roleaudit' table
type AuditRoleAuditTable struct {
	Table         string
	ID            string
	RoleID        string
	ActorID       string
	FilmID        string
	CharacterName string
	Action        string
	Salary        string
	ChangedBy     string
	ChangedAt     string
}

// AuditRoleAudit is the schema definition for audit.roleaudit
var AuditRoleAudit = AuditRoleAuditTable{
	Table:         "audit.roleaudit",
	ID:            "id",
	RoleID:        "roleid",
	ActorID:       "actorid",
	FilmID:        "filmid",
	CharacterName: "charactername",
	Action:        "action",
	Salary:        "salary",
	ChangedBy:     "changedby",
	ChangedAt:     "changedat",
}

func (t AuditRoleAuditTable) Columns() []string {
	return []string{t.ID, t.RoleID, t.ActorID, t.FilmID, t.CharacterName, t.Action, t.Salary, t.ChangedBy, t.ChangedAt}
}
