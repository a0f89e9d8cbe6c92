// Package cache is the durable local store that lets session and auth state
// survive a restart without a network round trip to the store of record.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"assessment-service/internal/models"

	"github.com/redis/go-redis/v9"
)

// Keys are versioned; a format change bumps the version and old snapshots are
// simply never read again, which counts as a fresh start.
const (
	sessionKeyPrefix = "assessment:v1:session:"
	authKeyPrefix    = "assessment:v1:auth:"
)

// AuthSnapshot is the cached record of who was last authenticated, one per
// user, separate from the assessment snapshot.
type AuthSnapshot struct {
	UserID      string    `json:"user_id"`
	ValidatedAt time.Time `json:"validated_at"`
}

type Store struct {
	client *redis.Client
}

// NewClient connects a redis client and pings it. A failed ping is logged,
// not fatal: the engine treats a missing snapshot as a fresh start.
func NewClient(addr, password string, db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("Error connecting to Redis: %s", err)
	}
	return client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// SaveSession write-through persists a session snapshot.
func (s *Store) SaveSession(ctx context.Context, userID string, session *models.AssessmentSession) error {
	val, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("error saving session snapshot: %s", err)
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+userID, val, 0).Err(); err != nil {
		return fmt.Errorf("error saving session snapshot: %s", err)
	}
	return nil
}

// LoadSession returns the cached session snapshot, or (nil, nil) when there
// is none. A snapshot that no longer decodes is treated as absent.
func (s *Store) LoadSession(ctx context.Context, userID string) (*models.AssessmentSession, error) {
	val, err := s.client.Get(ctx, sessionKeyPrefix+userID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("error loading session snapshot: %s", err)
	}
	var session models.AssessmentSession
	if err := json.Unmarshal(val, &session); err != nil {
		log.Printf("discarding undecodable session snapshot for user %s: %v", userID, err)
		return nil, nil
	}
	return &session, nil
}

func (s *Store) DeleteSession(ctx context.Context, userID string) error {
	return s.client.Del(ctx, sessionKeyPrefix+userID).Err()
}

// SaveAuth write-through persists the auth record for a user.
func (s *Store) SaveAuth(ctx context.Context, snapshot AuthSnapshot) error {
	val, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("error saving auth snapshot: %s", err)
	}
	if err := s.client.Set(ctx, authKeyPrefix+snapshot.UserID, val, 0).Err(); err != nil {
		return fmt.Errorf("error saving auth snapshot: %s", err)
	}
	return nil
}

// LoadAuth returns the cached auth record, or (nil, nil) when there is none.
func (s *Store) LoadAuth(ctx context.Context, userID string) (*AuthSnapshot, error) {
	val, err := s.client.Get(ctx, authKeyPrefix+userID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("error loading auth snapshot: %s", err)
	}
	var snapshot AuthSnapshot
	if err := json.Unmarshal(val, &snapshot); err != nil {
		return nil, nil
	}
	return &snapshot, nil
}
