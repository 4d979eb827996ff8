package schema

// AuditUserActivityTable represents the 'audit.useractivity' table
type AuditUserActivityTable struct {
	Table     string
	ID        string
	Username  string
	Action    string
	Detail    string
	IPAddress string
	CreatedAt string
}

// AuditUserActivity is the schema definition for audit.useractivity
var AuditUserActivity = AuditUserActivityTable{
	Table:     "audit.useractivity",
	ID:        "id",
	Username:  "username",
	Action:    "action",
	Detail:    "detail",
	IPAddress: "ipaddress",
	CreatedAt: "createdat",
}

func (t AuditUserActivityTable) Columns() []string {
	return []string{t.ID, t.Username, t.Action, t.Detail, t.IPAddress, t.CreatedAt}
}
