package models

// ReferralStatus represents the lifecycle of a specialist referral.
type ReferralStatus string

const (
	ReferralCreated   ReferralStatus = "CREATED"
	ReferralSent      ReferralStatus = "SENT"
	ReferralScheduled ReferralStatus = "SCHEDULED"
	ReferralCompleted ReferralStatus = "COMPLETED"
	ReferralEscalated ReferralStatus = "ESCALATED"
)

// Referral represents a specialist referral. Referrals are read-only in
// this server; they are seeded and surfaced on dashboards.
type Referral struct {
	ID            string         `json:"id"`
	PatientID     string         `json:"patientId"`
	Specialty     string         `json:"specialty"`
	Provider      string         `json:"provider"`
	Urgency       RiskLevel      `json:"urgency"`
	Status        ReferralStatus `json:"status"`
	RequestedDate string         `json:"requestedDate"`
}

// TaskPriority represents the urgency of a follow-up task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
	TaskPriorityUrgent TaskPriority = "URGENT"
)

// TaskStatus represents the state of a follow-up task.
type TaskStatus string

const (
	TaskPending   TaskStatus = "PENDING"
	TaskCompleted TaskStatus = "COMPLETED"
)

// FollowUpTask represents an item in the care coordination work queue.
type FollowUpTask struct {
	ID        string       `json:"id"`
	PatientID string       `json:"patientId"`
	Title     string       `json:"title"`
	Priority  TaskPriority `json:"priority"`
	Status    TaskStatus   `json:"status"`
	DueDate   string       `json:"dueDate"`
}
