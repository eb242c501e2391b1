package client

import "strings"

type PlanTier string

const (
	PlanBasic  PlanTier = "basic"
	PlanFiscal PlanTier = "fiscal"
	PlanFull   PlanTier = "full"
)

func (p PlanTier) String() string {
	return string(p)
}

func (p PlanTier) IsValid() bool {
	switch p {
	case PlanBasic, PlanFiscal, PlanFull:
		return true
	default:
		return false
	}
}

// ParsePlanTier also accepts the commercial names used on contracts.
func ParsePlanTier(s string) (PlanTier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic", "comercial":
		return PlanBasic, nil
	case "fiscal":
		return PlanFiscal, nil
	case "full", "mensalista":
		return PlanFull, nil
	default:
		return "", ErrInvalidPlan
	}
}
