package notification

// SMTPConfig holds connection parameters for the SMTP provider.
type SMTPConfig struct {
	Host       string `json:"host"`
	Port       int    `json:"port"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	FromAddr   string `json:"from_address"`
	ToAddrs    string `json:"to_addresses"`
	Encryption string `json:"encryption"` // "none", "starttls", "ssl_tls"
}

// ReconcilePreferences toggles email delivery per reconciliation event.
// Nil means enabled, so a settings blob written before a toggle existed
// keeps delivering.
type ReconcilePreferences struct {
	OnCompleted *bool `json:"on_completed,omitempty"`
	OnFailed    *bool `json:"on_failed,omitempty"`
	OnCreated   *bool `json:"on_created,omitempty"`
	OnRetracted *bool `json:"on_retracted,omitempty"`
}

// IsOnCompletedEnabled reports whether completed-sweep emails are enabled.
func (p ReconcilePreferences) IsOnCompletedEnabled() bool {
	return p.OnCompleted == nil || *p.OnCompleted
}

// IsOnFailedEnabled reports whether failed-sweep emails are enabled.
func (p ReconcilePreferences) IsOnFailedEnabled() bool {
	return p.OnFailed == nil || *p.OnFailed
}

// IsOnCreatedEnabled reports whether new-notification emails are enabled.
func (p ReconcilePreferences) IsOnCreatedEnabled() bool {
	return p.OnCreated == nil || *p.OnCreated
}

// IsOnRetractedEnabled reports whether retracted-notification emails are enabled.
func (p ReconcilePreferences) IsOnRetractedEnabled() bool {
	return p.OnRetracted == nil || *p.OnRetracted
}

// Preferences groups per-event delivery toggles.
type Preferences struct {
	Reconcile ReconcilePreferences `json:"reconcile"`
}

// NotificationSettings represents the persisted notification configuration.
// The name is intentional: it provides clarity when referenced as notification.NotificationSettings.
//
//nolint:revive
type NotificationSettings struct {
	Enabled     bool        `json:"enabled"`
	Provider    SMTPConfig  `json:"provider"`
	Preferences Preferences `json:"preferences"`
}
