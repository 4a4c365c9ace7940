// Package expiry keeps a persisted compliance-notification table in sync
// with the current expiry status of a client's legal documents. Four fixed
// severity rules fan out to two audiences; reconciliation is a full
// set-difference against desired state, never an incremental diff.
package expiry

import "fmt"

// Kind identifies one of the fixed expiry-notification severities.
type Kind string

const (
	KindExpiry30Days Kind = "EXPIRY_30_DAYS"
	KindExpiry7Days  Kind = "EXPIRY_7_DAYS"
	KindExpiry1Day   Kind = "EXPIRY_1_DAY"
	KindExpired      Kind = "EXPIRED"
)

// Audience is the recipient category for a notification.
type Audience string

const (
	AudienceAdmin  Audience = "ADMIN"
	AudienceClient Audience = "CLIENT"
)

// Audiences lists every audience each firing rule fans out to.
var Audiences = []Audience{AudienceAdmin, AudienceClient}

// Rule pairs a severity kind with its day window and human labels.
type Rule struct {
	Kind       Kind
	DaysBefore int
	Title      string
	label      string
}

// Rules is the fixed severity ladder. Multiple rules fire simultaneously on
// purpose: at one day to expiry the 30-day, 7-day and 1-day rules are all
// active, each as its own notification, so a UI can show the most severe or
// all of them.
var Rules = []Rule{
	{Kind: KindExpiry30Days, DaysBefore: 30, Title: "Document expiring within 30 days", label: "expiring within 30 days"},
	{Kind: KindExpiry7Days, DaysBefore: 7, Title: "Document expiring within 7 days", label: "expiring within 7 days"},
	{Kind: KindExpiry1Day, DaysBefore: 1, Title: "Document expiring within 1 day", label: "expiring within 1 day"},
	{Kind: KindExpired, DaysBefore: 0, Title: "Document expired"},
}

// Fires reports whether the rule is active for a document diffDays whole
// days from expiry. EXPIRED fires strictly after the expiry date has passed.
func (r Rule) Fires(diffDays int) bool {
	if r.Kind == KindExpired {
		return diffDays < 0
	}
	return diffDays >= 0 && diffDays <= r.DaysBefore
}

// Message builds the human-readable notification body for a document.
func (r Rule) Message(docName, clientName string) string {
	if r.Kind == KindExpired {
		return fmt.Sprintf("%s for %s has expired.", docName, clientName)
	}
	return fmt.Sprintf("%s for %s is %s.", docName, clientName, r.label)
}
