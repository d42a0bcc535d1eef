package recommend

import (
	"github.com/sabin7k/ukstudy/pkg/catalog"
	"github.com/sabin7k/ukstudy/pkg/profile"
)

// UseCase exposes the matching engine over a fixed catalog snapshot.
type UseCase interface {
	Strict(p profile.Profile) []Result
	Relaxed(p profile.Profile) []Result
	ByBudget(budget float64) []Result
	WaiverFriendly() []Result
	Affordable() []Result
}

type service struct {
	snap catalog.Snapshot
}

// NewService binds the pure matching functions to a snapshot. The snapshot
// is read-only, so the service is safe for concurrent use.
func NewService(snap catalog.Snapshot) UseCase {
	return &service{snap: snap}
}

func (s *service) Strict(p profile.Profile) []Result  { return MatchStrict(p, s.snap) }
func (s *service) Relaxed(p profile.Profile) []Result { return MatchRelaxed(p, s.snap) }
func (s *service) ByBudget(budget float64) []Result   { return MatchesByBudget(budget, s.snap) }
func (s *service) WaiverFriendly() []Result           { return WaiverFriendly(s.snap) }
func (s *service) Affordable() []Result               { return MostAffordable(s.snap) }
