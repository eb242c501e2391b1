package client

import (
	"errors"
	"strings"
)

var (
	ErrInvalidPlan     = errors.New("invalid plan tier")
	ErrEmptyClientID   = errors.New("client id cannot be empty")
	ErrEmptyClientName = errors.New("client name cannot be empty")
)

type Client struct {
	id    string
	name  string
	email string
	phone string
	plan  PlanTier
}

func NewClient(id, name, email, phone string, plan PlanTier) (*Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyClientID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyClientName
	}
	if !plan.IsValid() {
		return nil, ErrInvalidPlan
	}
	return &Client{id: id, name: name, email: strings.TrimSpace(email), phone: phone, plan: plan}, nil
}

func ReconstructClient(id, name, email, phone string, plan PlanTier) *Client {
	return &Client{id: id, name: name, email: email, phone: phone, plan: plan}
}

// CanSelfBook reports whether the client may book rooms on their own.
// Only the full plan carries booking rights.
func (c *Client) CanSelfBook() bool {
	return c.plan == PlanFull
}

func (c *Client) ID() string     { return c.id }
func (c *Client) Name() string   { return c.name }
func (c *Client) Email() string  { return c.email }
func (c *Client) Phone() string  { return c.phone }
func (c *Client) Plan() PlanTier { return c.plan }
