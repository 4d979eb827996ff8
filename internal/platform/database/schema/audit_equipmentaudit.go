package schema

// AuditEquipmentAuditTable represents the 'audit.equipmentaudit' table
type AuditEquipmentAuditTable struct {
	Table       string
	ID          string
	EquipmentID string
	Name        string
	Action      string
	OldStatus   string
	NewStatus   string
	ChangedBy   string
	ChangedAt   string
}

// AuditEquipmentAudit is the schema definition for audit.equipmentaudit
var AuditEquipmentAudit = AuditEquipmentAuditTable{
	Table:       "audit.equipmentaudit",
	ID:          "id",
	EquipmentID: "equipmentid",
	Name:        "name",
	Action:      "action",
	OldStatus:   "oldstatus",
	NewStatus:   "newstatus",
	ChangedBy:   "changedby",
	ChangedAt:   "changedat",
}

func (t AuditEquipmentAuditTable) Columns() []string {
	return []string{t.ID, t.EquipmentID, t.Name, t.Action, t.OldStatus, t.NewStatus, t.ChangedBy, t.ChangedAt}
}
