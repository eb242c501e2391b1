package commands

import "context"

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/mock_ports.go -package=commands

const (
	UrgencyLow    = "baixa"
	UrgencyMedium = "media"
	UrgencyHigh   = "alta"
)

// Notification mirrors the client notice ("aviso") shape.
type Notification struct {
	ClientID string `json:"clientId"`
	Title    string `json:"titulo"`
	Message  string `json:"mensagem"`
	Kind     string `json:"tipo"`
	Urgency  string `json:"urgencia"`
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
