package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/gigsim/internal/db"
	"github.com/alexanderramin/gigsim/internal/domain"
	"github.com/alexanderramin/gigsim/internal/repository"
	"github.com/google/uuid"
)

type messageService struct {
	messages repository.MessageRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewMessageService(messages repository.MessageRepo, uow db.UnitOfWork, observers ...UseCaseObserver) MessageService {
	return &messageService{messages: messages, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

// Send stores m. The first user message on a created simulation sends the
// requirements, moving it to requirements_sent in the same transaction.
func (s *messageService) Send(ctx context.Context, m *domain.Message) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"simulation_id": m.SimulationID,
		"sender":        string(m.Sender),
	}
	defer func() { observeUseCase(ctx, s.observer, "send-message", startedAt, fields, err) }()

	if err = m.Validate(); err != nil {
		return err
	}
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.SentAt.IsZero() {
		m.SentAt = startedAt.Truncate(time.Second)
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSims := repository.NewSQLiteSimulationRepo(tx)
		txMsgs := repository.NewSQLiteMessageRepo(tx)

		sim, err := txSims.GetByID(ctx, m.SimulationID)
		if err != nil {
			return err
		}
		if sim.Status.Terminal() {
			return fmt.Errorf("simulation %s is %s and accepts no messages", sim.DisplayID(), sim.Status)
		}
		if err := txMsgs.Create(ctx, m); err != nil {
			return err
		}

		if m.Sender == domain.SenderUser && sim.Status == domain.StatusCreated {
			if err := sim.TransitionTo(domain.StatusRequirementsSent, m.SentAt); err != nil {
				return err
			}
			if err := txSims.Update(ctx, sim); err != nil {
				return err
			}
			fields["advanced_to"] = string(sim.Status)
		}
		return nil
	})
}

func (s *messageService) List(ctx context.Context, simulationID string) ([]*domain.Message, error) {
	return s.messages.ListBySimulation(ctx, simulationID)
}

func (s *messageService) Delete(ctx context.Context, id string) error {
	return s.messages.Delete(ctx, id)
}
