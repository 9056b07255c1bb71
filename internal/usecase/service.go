package usecase

import (
	"airline-booking/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	// VersionLocking reads the flight first and books under a version guard.
	VersionLocking BookFlightService
	// NoLocking books blind, with the invariants enforced at the store.
	NoLocking BookFlightService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		VersionLocking: NewOptimisticLockingService(repo.VersionGuarded, log),
		NoLocking:      NewNoLockingService(repo.ConditionExpression, log),
	}
}
