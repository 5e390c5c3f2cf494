package sync

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"

	"github.com/iudanet/jubeesync/internal/conflict"
	"github.com/iudanet/jubeesync/internal/models"
)

//go:generate moq -out service_mock.go . Service

// Service определяет операции разрешения конфликтов, доступные CLI и автоматическим вызывающим
type Service interface {
	// GetConflicts возвращает ожидающие конфликты
	GetConflicts() []models.ConflictGroup

	// GetDiagnosis возвращает рекомендацию для каждого ожидающего конфликта
	GetDiagnosis() map[string]models.ResolutionChoice

	// ResolveConflict разрешает один конфликт и сохраняет результат
	ResolveConflict(ctx context.Context, id string, choice models.ResolutionChoice) (*PersistSummary, error)

	// ResolveAll применяет одну стратегию ко всем конфликтам
	ResolveAll(ctx context.Context, choice models.ResolutionChoice) (*PersistSummary, error)

	// ResolveByStore применяет стратегию ко всем конфликтам одной коллекции
	ResolveByStore(ctx context.Context, collection models.Collection, choice models.ResolutionChoice) (*PersistSummary, error)

	// ResolveBatch применяет стратегию к перечисленным id
	ResolveBatch(ctx context.Context, ids []string, choice models.ResolutionChoice) (*PersistSummary, error)

	// AcceptDiagnosis разрешает каждый конфликт рекомендованной стратегией
	AcceptDiagnosis(ctx context.Context) (*PersistSummary, error)
}

// service соединяет движок конфликтов и оркестратор: разрешение, сохранение
// и возврат в очередь тех конфликтов, которые не удалось сохранить локально.
type service struct {
	engine       *conflict.Engine
	orchestrator *Orchestrator
	logger       *slog.Logger
}

// NewService creates the resolution service.
func NewService(engine *conflict.Engine, orchestrator *Orchestrator, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &service{
		engine:       engine,
		orchestrator: orchestrator,
		logger:       logger,
	}
}

func (s *service) GetConflicts() []models.ConflictGroup {
	return s.engine.GetConflicts()
}

func (s *service) GetDiagnosis() map[string]models.ResolutionChoice {
	return s.engine.GetDiagnosis()
}

func (s *service) ResolveConflict(ctx context.Context, id string, choice models.ResolutionChoice) (*PersistSummary, error) {
	groups := s.pendingGroups()

	resolved, err := s.engine.ResolveConflict(id, choice)
	if err != nil {
		return nil, err
	}

	return s.persist(ctx, []models.ResolvedConflict{resolved}, groups), nil
}

func (s *service) ResolveAll(ctx context.Context, choice models.ResolutionChoice) (*PersistSummary, error) {
	groups := s.pendingGroups()

	resolved, err := s.engine.ResolveAll(choice)
	if len(resolved) == 0 {
		return &PersistSummary{}, err
	}

	return s.persist(ctx, resolved, groups), err
}

func (s *service) ResolveByStore(ctx context.Context, collection models.Collection, choice models.ResolutionChoice) (*PersistSummary, error) {
	groups := s.pendingGroups()

	resolved, err := s.engine.ResolveByStore(collection, choice)
	if len(resolved) == 0 {
		return &PersistSummary{}, err
	}

	return s.persist(ctx, resolved, groups), err
}

// ResolveBatch сохраняет найденные id, даже если часть id неизвестна;
// неизвестные возвращаются ошибкой вместе с отчетом.
func (s *service) ResolveBatch(ctx context.Context, ids []string, choice models.ResolutionChoice) (*PersistSummary, error) {
	groups := s.pendingGroups()

	resolved, err := s.engine.ResolveBatch(ids, choice)
	if len(resolved) == 0 {
		return &PersistSummary{}, err
	}

	return s.persist(ctx, resolved, groups), err
}

// AcceptDiagnosis разбивает конфликты по рекомендованной стратегии и разрешает
// каждую часть одним пакетом. Все результаты сохраняются одним вызовом Persist.
func (s *service) AcceptDiagnosis(ctx context.Context) (*PersistSummary, error) {
	groups := s.pendingGroups()
	diagnosis := s.engine.GetDiagnosis()

	partitions := make(map[models.ResolutionChoice][]string)
	for id, choice := range diagnosis {
		partitions[choice] = append(partitions[choice], id)
	}

	var (
		resolved []models.ResolvedConflict
		errs     []error
	)
	for _, choice := range []models.ResolutionChoice{models.ChoiceLocal, models.ChoiceServer, models.ChoiceMerge} {
		ids := partitions[choice]
		if len(ids) == 0 {
			continue
		}
		sort.Strings(ids)

		batch, err := s.engine.ResolveBatch(ids, choice)
		if err != nil {
			// конфликт мог быть разрешен параллельно после чтения рекомендации
			if errors.Is(err, conflict.ErrNotFound) {
				s.logger.Debug("Some diagnosed conflicts were already resolved", "choice", choice, "error", err)
			} else {
				errs = append(errs, err)
			}
		}
		resolved = append(resolved, batch...)
	}

	s.logger.Info("Accepted diagnosis", "conflicts", len(diagnosis), "resolved", len(resolved))

	if len(resolved) == 0 {
		return &PersistSummary{}, errors.Join(errs...)
	}

	return s.persist(ctx, resolved, groups), errors.Join(errs...)
}

// persist сохраняет результаты и возвращает в очередь конфликты, чья локальная запись не удалась
func (s *service) persist(ctx context.Context, resolved []models.ResolvedConflict, groups map[models.RecordKey]models.ConflictGroup) *PersistSummary {
	summary := s.orchestrator.Persist(ctx, resolved)

	failed := summary.FailedKeys()
	if len(failed) == 0 {
		return summary
	}

	requeue := make([]models.ConflictGroup, 0, len(failed))
	for _, key := range failed {
		group, ok := groups[key]
		if !ok {
			s.logger.Error("Cannot requeue conflict without its group", "key", key.String())
			continue
		}
		requeue = append(requeue, group)
	}

	added := s.engine.Requeue(requeue...)
	s.logger.Warn("Conflicts returned to pending set after local write failure",
		"failed", len(failed), "requeued", added)

	return summary
}

// pendingGroups снимает копию очереди до разрешения, чтобы вернуть группы при сбое записи
func (s *service) pendingGroups() map[models.RecordKey]models.ConflictGroup {
	conflicts := s.engine.GetConflicts()
	groups := make(map[models.RecordKey]models.ConflictGroup, len(conflicts))
	for _, g := range conflicts {
		groups[g.Key()] = g
	}
	return groups
}
