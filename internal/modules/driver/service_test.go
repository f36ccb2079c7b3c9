package driver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"minicab/internal/types"
)

type mockMirror struct {
	mock.Mock
}

func (m *mockMirror) Upsert(ctx context.Context, d Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *mockMirror) Remove(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockSink struct {
	mock.Mock
}

func (m *mockSink) Publish(event string, d Driver) {
	m.Called(event, d)
}

func newTestService(t *testing.T) (*Service, *mockMirror, *mockSink) {
	t.Helper()
	reg := NewRegistry()
	if err := reg.Add(Driver{ID: 1, Name: "John Smith", Rating: 4.9, Position: types.Point{Lat: 28.6139, Lng: 77.2090}}); err != nil {
		t.Fatal(err)
	}
	mirror := new(mockMirror)
	sink := new(mockSink)
	return NewService(reg, mirror, sink, nil), mirror, sink
}

func TestService_UpdateLocation_MirrorsAvailableDriver(t *testing.T) {
	svc, mirror, sink := newTestService(t)
	mirror.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	sink.On("Publish", EventMoved, mock.Anything).Return()

	d, err := svc.UpdateLocation(context.Background(), 1, 28.7, 77.3)

	assert.NoError(t, err)
	assert.Equal(t, 28.7, d.Position.Lat)
	mirror.AssertExpectations(t)
	sink.AssertExpectations(t)
}

func TestService_UpdateLocation_RejectsMalformedCoordinates(t *testing.T) {
	svc, mirror, _ := newTestService(t)

	cases := [][2]float64{{91, 0}, {-91, 0}, {0, 181}, {0, -181}}
	for _, c := range cases {
		_, err := svc.UpdateLocation(context.Background(), 1, c[0], c[1])
		assert.ErrorIs(t, err, ErrInvalidCoordinates, "coords %v", c)
	}

	// Registry untouched, mirror never called.
	d, _ := svc.Get(1)
	assert.Equal(t, 28.6139, d.Position.Lat)
	mirror.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestService_UpdateStatus_RemovesUnavailableFromMirror(t *testing.T) {
	svc, mirror, sink := newTestService(t)
	mirror.On("Remove", mock.Anything, int64(1)).Return(nil)
	sink.On("Publish", EventStatus, mock.Anything).Return()

	d, err := svc.UpdateStatus(context.Background(), 1, "busy")

	assert.NoError(t, err)
	assert.Equal(t, StatusBusy, d.Status)
	mirror.AssertExpectations(t)
	mirror.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestService_UpdateStatus_MirrorsWhenBackAvailable(t *testing.T) {
	svc, mirror, sink := newTestService(t)
	mirror.On("Remove", mock.Anything, int64(1)).Return(nil)
	mirror.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	sink.On("Publish", EventStatus, mock.Anything).Return()

	_, err := svc.UpdateStatus(context.Background(), 1, "offline")
	assert.NoError(t, err)

	d, err := svc.UpdateStatus(context.Background(), 1, "available")
	assert.NoError(t, err)
	assert.Equal(t, StatusAvailable, d.Status)
	mirror.AssertExpectations(t)
}

func TestService_UpdateStatus_InvalidValue(t *testing.T) {
	svc, mirror, sink := newTestService(t)

	_, err := svc.UpdateStatus(context.Background(), 1, "parked")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	mirror.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	mirror.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	sink.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestService_MirrorFailureDoesNotFailOperation(t *testing.T) {
	svc, mirror, sink := newTestService(t)
	mirror.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("redis down"))
	sink.On("Publish", EventMoved, mock.Anything).Return()

	d, err := svc.UpdateLocation(context.Background(), 1, 28.7, 77.3)

	assert.NoError(t, err)
	assert.Equal(t, 28.7, d.Position.Lat)
	sink.AssertExpectations(t)
}

func TestService_NilCollaborators(t *testing.T) {
	reg := NewRegistry()
	reg.Seed()
	svc := NewService(reg, nil, nil, nil)

	svc.Seed(context.Background())
	_, err := svc.UpdateLocation(context.Background(), 1, 28.7, 77.3)
	assert.NoError(t, err)
	_, err = svc.UpdateStatus(context.Background(), 1, "busy")
	assert.NoError(t, err)
}
