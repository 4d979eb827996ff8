// Package audit provides the append-only audit trail for governed records.
//
// # Architecture
//
// Writes flow through [Recorder], which is invoked by the owning domain
// service inside the SAME database transaction as the primary mutation.
// A governed change and its audit entry therefore commit or roll back
// together; there is no window where one exists without the other.
//
// Reads flow through [Service] and are exposed on the API as a
// query-only surface. Audit rows are never updated or deleted.
package audit

import "time"

// Audit actions recorded for governed entities.
const (
	ActionInsert       = "INSERT"
	ActionDelete       = "DELETE"
	ActionUpdate       = "UPDATE"
	ActionStatusChange = "STATUS_CHANGE"
	ActionStatusUpdate = "STATUS_UPDATE"
)

// Audit actions recorded for account activity.
const (
	ActionUserCreated      = "USER_CREATED"
	ActionUserStatusChange = "USER_STATUS_CHANGE"
	ActionUserRoleChange   = "USER_ROLE_CHANGE"
	ActionUserDeleted      = "USER_DELETED"
	ActionLoginSuccess     = "LOGIN_SUCCESS"
	ActionLoginFailed      = "LOGIN_FAILED"
)

// RoleEntry records a casting assignment change (creation or removal of a
// film role, with the character and salary the role carried at that moment).
type RoleEntry struct {
	ID            int64     `json:"id"`
	RoleID        int64     `json:"role_id"`
	ActorID       int64     `json:"actor_id"`
	FilmID        int64     `json:"film_id"`
	CharacterName string    `json:"character_name"`
	Action        string    `json:"action"`
	Salary        int64     `json:"salary"`
	ChangedBy     string    `json:"changed_by"`
	ChangedAt     time.Time `json:"changed_at"`
}

// EquipmentEntry records an equipment availability transition. Name is the
// equipment's name at the time of the change, so the trail stays readable
// after the item is renamed or deleted.
type EquipmentEntry struct {
	ID          int64     `json:"id"`
	EquipmentID int64     `json:"equipment_id"`
	Name        string    `json:"name"`
	Action      string    `json:"action"`
	OldStatus   string    `json:"old_status"`
	NewStatus   string    `json:"new_status"`
	ChangedBy   string    `json:"changed_by"`
	ChangedAt   time.Time `json:"changed_at"`
}

// FilmEntry records a film lifecycle status transition. The title and the
// budget pair are captured alongside the status pair; a pure status change
// carries the same budget on both sides.
type FilmEntry struct {
	ID        int64     `json:"id"`
	FilmID    int64     `json:"film_id"`
	Title     string    `json:"title"`
	Action    string    `json:"action"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	OldBudget int64     `json:"old_budget"`
	NewBudget int64     `json:"new_budget"`
	ChangedBy string    `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
}

// UserActivityEntry records account lifecycle and login events.
type UserActivityEntry struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail,omitempty"`
	IPAddress string    `json:"ip_address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Filter holds the parameters for a paginated audit trail search.
type Filter struct {
	EntityID int64      // Filter by the governed entity's ID (0 = all)
	Action   string     // Filter by exact action (empty = all)
	From     *time.Time // Inclusive lower bound on the change timestamp
	To       *time.Time // Inclusive upper bound on the change timestamp
}
