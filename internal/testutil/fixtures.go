package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/gigsim/internal/domain"
	"github.com/google/uuid"
)

var testShortIDCounter atomic.Int64

type SimulationOption func(*domain.Simulation)

func WithDeadline(d time.Time) SimulationOption {
	return func(s *domain.Simulation) {
		s.Deadline = &d
	}
}

func WithStatus(st domain.SimulationStatus) SimulationOption {
	return func(s *domain.Simulation) {
		s.Status = st
	}
}

func WithShortID(id string) SimulationOption {
	return func(s *domain.Simulation) {
		s.ShortID = id
	}
}

func WithClient(c string) SimulationOption {
	return func(s *domain.Simulation) {
		s.Client = c
	}
}

func WithImportedMessages(n int) SimulationOption {
	return func(s *domain.Simulation) {
		s.ImportedMessages = n
	}
}

func WithCreatedAt(t time.Time) SimulationOption {
	return func(s *domain.Simulation) {
		s.CreatedAt = t
		s.UpdatedAt = t
	}
}

// defaultShortID builds a unique ID from the first three letters of title.
func defaultShortID(title string) string {
	upper := strings.ToUpper(title)
	var letters []byte
	for i := 0; i < len(upper) && len(letters) < 3; i++ {
		if upper[i] >= 'A' && upper[i] <= 'Z' {
			letters = append(letters, upper[i])
		}
	}
	for len(letters) < 3 {
		letters = append(letters, 'X')
	}
	n := testShortIDCounter.Add(1)
	return fmt.Sprintf("%s%02d", string(letters), n%10000)
}

func NewTestSimulation(title string, opts ...SimulationOption) *domain.Simulation {
	now := time.Now().UTC().Truncate(time.Second)
	s := &domain.Simulation{
		ID:        uuid.New().String(),
		ShortID:   defaultShortID(title),
		Title:     title,
		Client:    "Acme Co",
		Status:    domain.StatusCreated,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func NewTestMessage(simulationID string, sender domain.Sender, body string, sentAt time.Time) *domain.Message {
	return &domain.Message{
		ID:           uuid.New().String(),
		SimulationID: simulationID,
		Sender:       sender,
		Body:         body,
		SentAt:       sentAt.UTC().Truncate(time.Second),
	}
}
