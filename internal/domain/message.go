package domain

import (
	"fmt"
	"strings"
	"time"
)

// Message is one chat line exchanged on a simulation.
type Message struct {
	ID           string
	SimulationID string
	Sender       Sender
	Body         string
	SentAt       time.Time
}

func (m *Message) Validate() error {
	if !ValidSenders[string(m.Sender)] {
		return fmt.Errorf("invalid sender %q (user|client)", m.Sender)
	}
	if strings.TrimSpace(m.Body) == "" {
		return fmt.Errorf("message body is required")
	}
	return nil
}
