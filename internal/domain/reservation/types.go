package reservation

import "strings"

// Status values are stored in their canonical form. Display() renders the
// wire vocabulary; ParseStatus accepts either.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusCancelled  Status = "cancelled"
	StatusInProgress Status = "in_progress"
)

var statusAliases = map[string]Status{
	"pending":      StatusPending,
	"pendente":     StatusPending,
	"confirmed":    StatusConfirmed,
	"confirmada":   StatusConfirmed,
	"cancelled":    StatusCancelled,
	"canceled":     StatusCancelled,
	"cancelada":    StatusCancelled,
	"in_progress":  StatusInProgress,
	"em_andamento": StatusInProgress,
}

var transitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusCancelled, StatusInProgress},
	StatusInProgress: {StatusConfirmed, StatusCancelled},
}

func ParseStatus(s string) (Status, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "-", "_")
	key = strings.ReplaceAll(key, " ", "_")
	if st, ok := statusAliases[key]; ok {
		return st, nil
	}
	// word-joined spellings
	switch key {
	case "inprogress":
		return StatusInProgress, nil
	case "emandamento":
		return StatusInProgress, nil
	}
	return "", ErrInvalidStatus
}

func (s Status) String() string {
	return string(s)
}

func (s Status) Display() string {
	if s == StatusInProgress {
		return "in-progress"
	}
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusInProgress:
		return true
	default:
		return false
	}
}

func (s Status) IsActive() bool {
	return s.IsValid() && s != StatusCancelled
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
