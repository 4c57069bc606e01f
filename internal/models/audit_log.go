package models

// AuditLog records mutating operations on ledger records.
type AuditLog struct {
	Base
	Action       string `gorm:"not null" json:"action"`
	ResourceType string `gorm:"not null;index" json:"resource_type"`
	ResourceID   string `gorm:"type:varchar(36);index" json:"resource_id"`
	IPAddress    string `json:"ip_address"`
	Changes      string `json:"changes,omitempty"`
}
