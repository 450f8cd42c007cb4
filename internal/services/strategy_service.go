// internal/services/strategy_service.go
package services

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/tugaskuliahlouis-netizen/OptimaBiz-nk/internal/config"
	"github.com/tugaskuliahlouis-netizen/OptimaBiz-nk/internal/engine"
)

// StrategyService keeps one strategy workflow per user. Workflows are
// in-memory session state: they do not survive a restart, which matches the
// staged, interactive nature of the generation flow.
type StrategyService struct {
	cfg      *config.Config
	products *ProductService
	brands   *BrandService
	catalog  *engine.Catalog

	mu        sync.Mutex
	workflows map[uuid.UUID]*engine.Workflow
}

func NewStrategyService(cfg *config.Config, products *ProductService, brands *BrandService) *StrategyService {
	return &StrategyService{
		cfg:       cfg,
		products:  products,
		brands:    brands,
		catalog:   engine.DefaultCatalog(),
		workflows: make(map[uuid.UUID]*engine.Workflow),
	}
}

func (s *StrategyService) workflow(userID uuid.UUID) *engine.Workflow {
	s.mu.Lock()
	defer s.mu.Unlock()

	wf, ok := s.workflows[userID]
	if !ok {
		wf = engine.NewWorkflow(s.catalog, engine.WorkflowConfig{
			GenerateDelay:   s.cfg.Engine.GenerateDelay,
			TypeInterval:    s.cfg.Engine.TypeInterval,
			RevealPause:     s.cfg.Engine.RevealPause,
			SectionInterval: s.cfg.Engine.SectionInterval,
		})
		s.workflows[userID] = wf
	}
	return wf
}

func (s *StrategyService) ToggleSelection(userID uuid.UUID, productID string) error {
	return s.workflow(userID).ToggleSelection(productID)
}

// SelectAll puts the user's entire catalog into the selection.
func (s *StrategyService) SelectAll(userID uuid.UUID) error {
	snapshots, err := s.products.Snapshots(userID)
	if err != nil {
		return err
	}

	ids := make([]string, len(snapshots))
	for i, p := range snapshots {
		ids[i] = p.ID
	}
	return s.workflow(userID).SelectAll(ids)
}

func (s *StrategyService) ClearSelection(userID uuid.UUID) error {
	return s.workflow(userID).ClearSelection()
}

// Confirm freezes the selected products and the brand profile into the
// workflow. A missing brand profile is not an error; the engine falls back
// to its defaults.
func (s *StrategyService) Confirm(userID uuid.UUID) error {
	snapshots, err := s.products.Snapshots(userID)
	if err != nil {
		return err
	}

	var profile engine.BrandProfile
	if stored, err := s.brands.GetProfile(userID); err == nil {
		profile = stored.Snapshot()
	}

	return s.workflow(userID).Confirm(snapshots, profile)
}

func (s *StrategyService) Back(userID uuid.UUID) error {
	return s.workflow(userID).Back()
}

func (s *StrategyService) Generate(userID uuid.UUID) error {
	return s.workflow(userID).Generate()
}

func (s *StrategyService) Reset(userID uuid.UUID) {
	s.workflow(userID).Reset()
}

func (s *StrategyService) Status(userID uuid.UUID) engine.WorkflowStatus {
	return s.workflow(userID).Status()
}

// Result returns the finished strategy together with the reveal progress.
func (s *StrategyService) Result(userID uuid.UUID) (*engine.Strategy, *engine.RevealProgress, error) {
	wf := s.workflow(userID)

	strategy := wf.Strategy()
	if strategy == nil {
		return nil, nil, errors.New("strategy not ready")
	}

	if progress, ok := wf.RevealProgress(); ok {
		return strategy, &progress, nil
	}
	return strategy, nil, nil
}
