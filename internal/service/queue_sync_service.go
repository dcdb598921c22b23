package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"washmap-api/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// RedisQueueKeyPrefix prefixes the mirrored queue count of a facility
	RedisQueueKeyPrefix = "facility:queue:"

	// BookingConfirmedChannel receives a JSON event per created booking
	BookingConfirmedChannel = "booking.confirmed"

	redisSyncTimeout = 5 * time.Second
)

// QueueNotifier is told about queue changes after they are committed in memory
type QueueNotifier interface {
	IncrQueue(ctx context.Context, facilityID string) error
	PublishBookingConfirmed(ctx context.Context, booking *entity.Booking) error
}

// BookingConfirmedEvent is the payload published on BookingConfirmedChannel
type BookingConfirmedEvent struct {
	BookingID    string    `json:"bookingId"`
	UserID       string    `json:"userId"`
	FacilityID   string    `json:"facilityId"`
	FacilityName string    `json:"facilityName"`
	ServiceName  string    `json:"serviceName"`
	ServiceID    string    `json:"serviceId,omitempty"`
	Time         string    `json:"time"`
	CreatedAt    time.Time `json:"createdAt"`
}

// QueueSyncService mirrors facility queue counts into Redis so other
// processes can read them. The in-memory store stays the source of truth.
// With a nil client every method is a no-op.
type QueueSyncService struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewQueueSyncService(redisClient *redis.Client, log *logrus.Logger) *QueueSyncService {
	return &QueueSyncService{
		redisClient: redisClient,
		log:         log,
	}
}

// Enabled reports whether a Redis client is attached
func (s *QueueSyncService) Enabled() bool {
	return s.redisClient != nil
}

// QueueKey returns the Redis key holding a facility's queue count
func QueueKey(facilityID string) string {
	return RedisQueueKeyPrefix + facilityID
}

// SyncOnStartup overwrites the mirrored counts with the catalog baseline,
// so counts from a previous process do not survive a restart.
func (s *QueueSyncService) SyncOnStartup(ctx context.Context, facilities []entity.Facility) error {
	if !s.Enabled() {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, redisSyncTimeout)
	defer cancel()

	pipe := s.redisClient.TxPipeline()
	for _, f := range facilities {
		pipe.Set(ctx, QueueKey(f.ID), f.QueueCount, 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("sync queue counts: %w", err)
	}

	s.log.Infof("Synced %d facility queue counts to Redis", len(facilities))
	return nil
}

// IncrQueue bumps the mirrored queue count of a facility
func (s *QueueSyncService) IncrQueue(ctx context.Context, facilityID string) error {
	if !s.Enabled() {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, redisSyncTimeout)
	defer cancel()

	if err := s.redisClient.Incr(ctx, QueueKey(facilityID)).Err(); err != nil {
		return fmt.Errorf("incr queue for facility %s: %w", facilityID, err)
	}
	return nil
}

// PublishBookingConfirmed announces a booking on BookingConfirmedChannel
func (s *QueueSyncService) PublishBookingConfirmed(ctx context.Context, booking *entity.Booking) error {
	if !s.Enabled() {
		return nil
	}

	payload, err := json.Marshal(NewBookingConfirmedEvent(booking))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, redisSyncTimeout)
	defer cancel()

	if err := s.redisClient.Publish(ctx, BookingConfirmedChannel, payload).Err(); err != nil {
		return fmt.Errorf("publish booking %s: %w", booking.ID, err)
	}
	return nil
}

func NewBookingConfirmedEvent(booking *entity.Booking) BookingConfirmedEvent {
	return BookingConfirmedEvent{
		BookingID:    booking.ID,
		UserID:       booking.UserID,
		FacilityID:   booking.FacilityID,
		FacilityName: booking.FacilityName,
		ServiceName:  booking.ServiceName,
		ServiceID:    booking.ServiceID,
		Time:         booking.Time,
		CreatedAt:    booking.CreatedAt,
	}
}
