package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/privsafe/agegate-go/internal/types"
)

const (
	fpIDKey         = "agFpId"
	storedEntityKey = "AgeGateStoredEntity"
)

// Storage is the age-gate view over a KV: env-scoped keys, the append-only
// entity set, and the fingerprint cache. Entity writes go through a single
// mutex; storing the same (userIdentifier, nickname, agId) tuple twice is a
// no-op, and records are never removed.
type Storage struct {
	kv  KV
	env string
	log zerolog.Logger

	mu sync.Mutex // serialises entity read-modify-write
}

// New wraps kv with age-gate semantics scoped to the given environment
// ("sandbox" or "production").
func New(kv KV, env string, log zerolog.Logger) *Storage {
	return &Storage{kv: kv, env: env, log: log}
}

// StoredEntitiesKey returns the env-scoped key under which the entity set is
// persisted as a JSON array.
func (s *Storage) StoredEntitiesKey() string {
	return fmt.Sprintf("%s-%s", storedEntityKey, s.env)
}

// FpIDKey returns the env-scoped fingerprint cache key.
func (s *Storage) FpIDKey() string {
	return fmt.Sprintf("%s-%s", fpIDKey, s.env)
}

// StoredEntities returns every persisted linkage. Missing or malformed data
// reads as an empty set; it never fails the caller.
func (s *Storage) StoredEntities() []types.AgeGateStoredEntity {
	raw, ok, err := s.kv.Get(s.StoredEntitiesKey())
	if err != nil || !ok {
		if err != nil {
			s.log.Debug().Err(err).Msg("entity set read failed, treating as empty")
		}
		return nil
	}
	var entities []types.AgeGateStoredEntity
	if err := json.Unmarshal([]byte(raw), &entities); err != nil {
		s.log.Debug().Err(err).Msg("entity set unmarshal failed, treating as empty")
		return nil
	}
	return entities
}

// StoreAgID appends a linkage to the entity set. Dedup is by full tuple
// equality, not by agId: the same agId under a new identifier is a new member.
func (s *Storage) StoreAgID(userIdentifier, nickname, agID string) {
	if agID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	entity := types.AgeGateStoredEntity{UserIdentifier: userIdentifier, Nickname: nickname, AgID: agID}
	entities := s.StoredEntities()
	for _, ent := range entities {
		if ent == entity {
			return
		}
	}
	entities = append(entities, entity)
	raw, err := json.Marshal(entities)
	if err != nil {
		s.log.Debug().Err(err).Msg("entity set marshal failed, dropping write")
		return
	}
	if err := s.kv.Set(s.StoredEntitiesKey(), string(raw)); err != nil {
		s.log.Debug().Err(err).Msg("entity set write failed")
	}
}

// StoreInfoFromEvent folds the agId-bearing subset of an evaluation outcome
// into the entity set. Events without an agId are not persisted.
func (s *Storage) StoreInfoFromEvent(event *types.AgeGateEvent) {
	if event == nil || event.AgID == "" {
		return
	}
	s.StoreAgID(event.UserIdentifier, event.Nickname, event.AgID)
}

// StoredAgeGateID scans the entity set for the first match: by userIdentifier
// when one is supplied, otherwise by nickname. Returns "" when nothing
// matches.
func (s *Storage) StoredAgeGateID(userIdentifier, nickname string) string {
	for _, ent := range s.StoredEntities() {
		if userIdentifier != "" {
			if ent.UserIdentifier == userIdentifier {
				return ent.AgID
			}
			continue
		}
		if ent.Nickname == nickname {
			return ent.AgID
		}
	}
	return ""
}

// FpID returns the cached fingerprint identifier, if any.
func (s *Storage) FpID() (string, bool) {
	v, ok, err := s.kv.Get(s.FpIDKey())
	if err != nil {
		s.log.Debug().Err(err).Msg("fingerprint cache read failed")
		return "", false
	}
	return v, ok && v != ""
}

// SetFpID caches the fingerprint identifier. Concurrent racers derive the
// same value from the backend, so last-write-wins is safe.
func (s *Storage) SetFpID(id string) {
	if err := s.kv.Set(s.FpIDKey(), id); err != nil {
		s.log.Debug().Err(err).Msg("fingerprint cache write failed")
	}
}
