package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table        string
	Username     string
	PasswordHash string
	FullName     string
	Email        string
	Role         string
	Status       string
	CreatedBy    string
	LastLoginAt  string
	CreatedAt    string
	UpdatedAt    string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:        "users.account",
	Username:     "username",
	PasswordHash: "passwordhash",
	FullName:     "fullname",
	Email:        "email",
	Role:         "role",
	Status:       "status",
	CreatedBy:    "createdby",
	LastLoginAt:  "lastloginat",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.Username, t.PasswordHash, t.FullName, t.Email, t.Role, t.Status,
		t.CreatedBy, t.LastLoginAt, t.CreatedAt, t.UpdatedAt,
	}
}
