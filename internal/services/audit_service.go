// internal/services/audit_service.go
package services

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/tugaskuliahlouis-netizen/OptimaBiz-nk/internal/engine"
)

// AuditService runs the inventory audit over a user's full catalog and keeps
// the latest findings in memory so completion toggles survive between
// requests. A re-run replaces the cached findings and resets their status.
type AuditService struct {
	products *ProductService

	mu       sync.Mutex
	findings map[uuid.UUID][]engine.Finding
}

func NewAuditService(products *ProductService) *AuditService {
	return &AuditService{
		products: products,
		findings: make(map[uuid.UUID][]engine.Finding),
	}
}

// RunAudit analyzes the user's full catalog. An empty catalog is rejected
// rather than audited; the constant findings are meaningless without
// products to apply them to.
func (s *AuditService) RunAudit(userID uuid.UUID) ([]engine.Finding, error) {
	snapshots, err := s.products.Snapshots(userID)
	if err != nil {
		return nil, err
	}
	if len(snapshots) == 0 {
		return nil, errors.New("no products to audit")
	}

	findings := engine.RunAudit(snapshots)

	s.mu.Lock()
	s.findings[userID] = findings
	s.mu.Unlock()

	return s.copyFindings(findings), nil
}

// GetFindings returns the cached findings from the last run, or an error
// when no audit has been run yet.
func (s *AuditService) GetFindings(userID uuid.UUID) ([]engine.Finding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	findings, ok := s.findings[userID]
	if !ok {
		return nil, errors.New("no audit findings")
	}
	return s.copyFindings(findings), nil
}

// ToggleFinding flips one finding between pending and completed.
func (s *AuditService) ToggleFinding(userID uuid.UUID, findingID int) (*engine.Finding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	findings, ok := s.findings[userID]
	if !ok {
		return nil, errors.New("no audit findings")
	}

	for i := range findings {
		if findings[i].ID == findingID {
			findings[i].ToggleStatus()
			found := findings[i]
			return &found, nil
		}
	}

	return nil, errors.New("finding not found")
}

func (s *AuditService) copyFindings(findings []engine.Finding) []engine.Finding {
	out := make([]engine.Finding, len(findings))
	copy(out, findings)
	return out
}
