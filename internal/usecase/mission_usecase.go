package usecase

import (
	"context"
	"errors"
	"strings"

	"convoyage/internal/domain/entities"
	"convoyage/internal/usecase/interfaces"
)

var (
	ErrMissionNotFound  = errors.New("mission not found")
	ErrInvalidMissionID = errors.New("invalid mission id")
)

// IMissionUseCase exposes mission reads and dispatch transitions. Mission
// creation happens only through the wizard submission.

type IMissionUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Mission, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]entities.Mission, error)
	Assign(ctx context.Context, id string) (entities.Mission, error)
	Start(ctx context.Context, id string) (entities.Mission, error)
	Deliver(ctx context.Context, id string) (entities.Mission, error)
	Cancel(ctx context.Context, id string) (entities.Mission, error)
}

type MissionUseCase struct {
	repo interfaces.IMissionRepository
}

var _ IMissionUseCase = (*MissionUseCase)(nil)

func NewMissionUseCase(repo interfaces.IMissionRepository) *MissionUseCase {
	return &MissionUseCase{repo: repo}
}

func (u *MissionUseCase) GetByID(ctx context.Context, id string) (entities.Mission, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Mission{}, ErrInvalidMissionID
	}
	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Mission{}, err
	}
	if m.ID == "" {
		return entities.Mission{}, ErrMissionNotFound
	}
	return m, nil
}

func (u *MissionUseCase) ListByOwnerID(ctx context.Context, ownerID string) ([]entities.Mission, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidOwnerID
	}
	return u.repo.ListByOwnerID(ctx, ownerID)
}

func (u *MissionUseCase) Assign(ctx context.Context, id string) (entities.Mission, error) {
	return u.updateStatus(ctx, id, entities.MissionStatusAssigned)
}

func (u *MissionUseCase) Start(ctx context.Context, id string) (entities.Mission, error) {
	return u.updateStatus(ctx, id, entities.MissionStatusInProgress)
}

func (u *MissionUseCase) Deliver(ctx context.Context, id string) (entities.Mission, error) {
	return u.updateStatus(ctx, id, entities.MissionStatusDelivered)
}

func (u *MissionUseCase) Cancel(ctx context.Context, id string) (entities.Mission, error) {
	return u.updateStatus(ctx, id, entities.MissionStatusCancelled)
}

func (u *MissionUseCase) updateStatus(ctx context.Context, id string, status entities.MissionStatus) (entities.Mission, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Mission{}, ErrInvalidMissionID
	}
	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.Mission{}, err
	}
	if updated.ID == "" {
		return entities.Mission{}, ErrMissionNotFound
	}
	return updated, nil
}
