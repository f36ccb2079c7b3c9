// README: Ride request service; validation over the persistence store.
package rides

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Repository is the persistence surface the service needs. *Store satisfies it.
type Repository interface {
	Create(ctx context.Context, r *RideRequest) error
	Get(ctx context.Context, id int64) (RideRequest, error)
	List(ctx context.Context) ([]RideRequest, error)
	UpdateStatus(ctx context.Context, id int64, status Status) (RideRequest, error)
}

type Service struct {
	repo Repository
	log  *zap.Logger
}

func NewService(repo Repository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, log: log}
}

type CreateCommand struct {
	UserID         string
	SourceLocation string
	DestLocation   string
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (RideRequest, error) {
	if cmd.UserID == "" || cmd.SourceLocation == "" || cmd.DestLocation == "" {
		return RideRequest{}, ErrBadRequest
	}

	r := RideRequest{
		Ref:            uuid.NewString(),
		UserID:         cmd.UserID,
		SourceLocation: cmd.SourceLocation,
		DestLocation:   cmd.DestLocation,
		Status:         StatusPending,
	}
	if err := s.repo.Create(ctx, &r); err != nil {
		return RideRequest{}, err
	}
	s.log.Info("ride request created", zap.Int64("id", r.ID), zap.String("user_id", r.UserID))
	return r, nil
}

func (s *Service) Get(ctx context.Context, id int64) (RideRequest, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]RideRequest, error) {
	return s.repo.List(ctx)
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, raw string) (RideRequest, error) {
	status, err := ParseStatus(raw)
	if err != nil {
		return RideRequest{}, err
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
