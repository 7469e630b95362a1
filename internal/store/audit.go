package store

import (
	"sync"
	"time"
)

// AuditEvent records a single security-relevant event against a Store.
// Audit events are kept in memory only; the spec's Non-goals exclude
// secret versioning/history, and persisting a security log is a superset
// of that concern this port does not take on. Adapted from the teacher's
// key-lifecycle.go AuditEntry, trimmed to what this domain needs: no key
// rotation fields, since key rotation is an explicit Non-goal.
type AuditEvent struct {
	Timestamp time.Time
	Kind      string // e.g. "initialize", "unlock", "tamper_detected", "close"
	Detail    string
	Success   bool
}

type auditTrail struct {
	mu     sync.Mutex
	events []AuditEvent
}

func (a *auditTrail) record(kind, detail string, success bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, AuditEvent{
		Timestamp: time.Now(),
		Kind:      kind,
		Detail:    detail,
		Success:   success,
	})
}

func (a *auditTrail) snapshot() []AuditEvent {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]AuditEvent, len(a.events))
	copy(out, a.events)
	return out
}

// AuditTrail returns a snapshot of the security events recorded against
// this Store since it was opened: initialization, unlock attempts
// (success and failure, never including the password), tamper detections,
// and closes.
func (s *Store) AuditTrail() []AuditEvent {
	return s.audit.snapshot()
}
