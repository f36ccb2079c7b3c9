// README: Driver service; registry mutations plus geo mirror and event fan-out.
package driver

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

var ErrInvalidCoordinates = errors.New("invalid coordinates: latitude must be in [-90,90] and longitude in [-180,180]")

// GeoMirror receives best-effort copies of the available-driver set.
type GeoMirror interface {
	Upsert(ctx context.Context, d Driver) error
	Remove(ctx context.Context, id int64) error
}

// EventSink receives driver change notifications for live subscribers.
type EventSink interface {
	Publish(event string, d Driver)
}

const (
	EventMoved  = "driver_moved"
	EventStatus = "driver_status"
)

type Service struct {
	registry *Registry
	mirror   GeoMirror
	events   EventSink
	log      *zap.Logger
}

// NewService wires the registry to its collaborators. mirror and events may
// be nil (tests, redis-less development); failures there never fail the
// registry operation.
func NewService(registry *Registry, mirror GeoMirror, events EventSink, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{registry: registry, mirror: mirror, events: events, log: log}
}

// Seed populates the sample fleet once per process and pushes the resulting
// available set into the mirror.
func (s *Service) Seed(ctx context.Context) {
	s.registry.Seed()
	for _, d := range s.registry.List() {
		if d.Status == StatusAvailable {
			s.mirrorUpsert(ctx, d)
		}
	}
}

func (s *Service) Get(id int64) (Driver, error) {
	return s.registry.Get(id)
}

func (s *Service) List() []Driver {
	return s.registry.List()
}

func (s *Service) UpdateLocation(ctx context.Context, id int64, lat, lng float64) (Driver, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Driver{}, ErrInvalidCoordinates
	}

	d, err := s.registry.UpdateLocation(id, lat, lng)
	if err != nil {
		return Driver{}, err
	}

	if d.Status == StatusAvailable {
		s.mirrorUpsert(ctx, d)
	}
	s.publish(EventMoved, d)
	return d, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, raw string) (Driver, error) {
	status, err := ParseStatus(raw)
	if err != nil {
		return Driver{}, err
	}

	d, err := s.registry.UpdateStatus(id, status)
	if err != nil {
		return Driver{}, err
	}

	if d.Status == StatusAvailable {
		s.mirrorUpsert(ctx, d)
	} else {
		s.mirrorRemove(ctx, d.ID)
	}
	s.publish(EventStatus, d)
	return d, nil
}

func (s *Service) mirrorUpsert(ctx context.Context, d Driver) {
	if s.mirror == nil {
		return
	}
	if err := s.mirror.Upsert(ctx, d); err != nil {
		s.log.Warn("geo mirror upsert failed", zap.Int64("driver_id", d.ID), zap.Error(err))
	}
}

func (s *Service) mirrorRemove(ctx context.Context, id int64) {
	if s.mirror == nil {
		return
	}
	if err := s.mirror.Remove(ctx, id); err != nil {
		s.log.Warn("geo mirror remove failed", zap.Int64("driver_id", id), zap.Error(err))
	}
}

func (s *Service) publish(event string, d Driver) {
	if s.events == nil {
		return
	}
	s.events.Publish(event, d)
}
