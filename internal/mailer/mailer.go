package mailer

import "embed"

const (
	FromName              = "CampusEvents"
	maxRetries            = 3
	UserWelcomeTemplate   = "user_invitation.tmpl"
	EventApprovedTemplate = "event_approved.tmpl"
	EventRejectedTemplate = "event_rejected.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(templateFile, username, email string, data any) (int, error)
}
