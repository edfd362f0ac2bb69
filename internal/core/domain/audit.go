package domain

import "time"

// AuditEvent records one authenticated request for the audit trail.
type AuditEvent struct {
	ID        string    `json:"id" bson:"_id"`
	Actor     string    `json:"actor" bson:"actor"`
	Email     string    `json:"email" bson:"email"`
	Roles     []string  `json:"roles" bson:"roles"`
	Method    string    `json:"method" bson:"method"`
	Path      string    `json:"path" bson:"path"`
	Status    int       `json:"status" bson:"status"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}
