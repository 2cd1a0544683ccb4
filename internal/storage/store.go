package storage

import (
	"encoding/json"
	"sort"

	"github.com/julianstephens/fastlit/internal/constants"
	"github.com/julianstephens/fastlit/internal/logger"
	"github.com/julianstephens/fastlit/internal/models"
)

// Store is the typed persistence layer over a Gateway. Every value lives
// under its own versioned key and loads tolerantly: missing or corrupted
// bytes degrade to the default value, never to an error. Saves overwrite
// the full value for the key.
type Store struct {
	gw Gateway
}

func NewStore(gw Gateway) *Store {
	return &Store{gw: gw}
}

// Gateway exposes the underlying gateway for lifecycle management.
func (s *Store) Gateway() Gateway {
	return s.gw
}

// Sessions loads the full session history sorted by start descending.
// Absent or undecodable data yields an empty history.
func (s *Store) Sessions() []models.FastSession {
	data, err := s.gw.Get(constants.KeySessions)
	if err != nil {
		if err != ErrKeyNotFound {
			logger.Debug("Session history unreadable, starting empty", "error", err)
		}
		return []models.FastSession{}
	}

	var sessions []models.FastSession
	if err := json.Unmarshal(data, &sessions); err != nil {
		logger.Debug("Session history undecodable, starting empty", "error", err)
		return []models.FastSession{}
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Start.After(sessions[j].Start)
	})
	return sessions
}

// SaveSessions overwrites the persisted session history.
func (s *Store) SaveSessions(sessions []models.FastSession) error {
	if sessions == nil {
		sessions = []models.FastSession{}
	}
	data, err := json.Marshal(sessions)
	if err != nil {
		return err
	}
	return s.gw.Put(constants.KeySessions, data)
}

// Plan loads the selected fasting plan, defaulting to 16:8.
func (s *Store) Plan() models.FastingPlan {
	data, err := s.gw.Get(constants.KeyPlan)
	if err != nil {
		return models.FastingPlan{Kind: models.PlanSixteenEight}
	}
	var tag string
	if err := json.Unmarshal(data, &tag); err != nil {
		logger.Debug("Plan selection undecodable, using default", "error", err)
		return models.FastingPlan{Kind: models.PlanSixteenEight}
	}
	return models.ParsePlanTag(tag)
}

// SavePlan persists the plan selection as its stable tag.
func (s *Store) SavePlan(plan models.FastingPlan) error {
	data, err := json.Marshal(plan.Tag())
	if err != nil {
		return err
	}
	return s.gw.Put(constants.KeyPlan, data)
}

// Reminders loads reminder settings, defaulting on absence or corruption.
func (s *Store) Reminders() models.ReminderSettings {
	data, err := s.gw.Get(constants.KeyReminders)
	if err != nil {
		return models.DefaultReminderSettings()
	}
	var r models.ReminderSettings
	if err := json.Unmarshal(data, &r); err != nil {
		logger.Debug("Reminder settings undecodable, using defaults", "error", err)
		return models.DefaultReminderSettings()
	}
	return r
}

// SaveReminders persists reminder settings.
func (s *Store) SaveReminders(r models.ReminderSettings) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return s.gw.Put(constants.KeyReminders, data)
}

// TimeFormat24h loads the 24-hour display preference, defaulting to false.
func (s *Store) TimeFormat24h() bool {
	return s.boolValue(constants.KeyTimeFormat)
}

// SetTimeFormat24h persists the 24-hour display preference.
func (s *Store) SetTimeFormat24h(on bool) error {
	return s.putBool(constants.KeyTimeFormat, on)
}

// Onboarded loads the onboarding-complete flag, defaulting to false.
func (s *Store) Onboarded() bool {
	return s.boolValue(constants.KeyOnboarded)
}

// SetOnboarded persists the onboarding-complete flag.
func (s *Store) SetOnboarded(done bool) error {
	return s.putBool(constants.KeyOnboarded, done)
}

// HealthLinked loads the health-integration placeholder toggle. The toggle
// has no behavior; it is persisted display state only.
func (s *Store) HealthLinked() bool {
	return s.boolValue(constants.KeyHealthLinked)
}

// SetHealthLinked persists the health-integration placeholder toggle.
func (s *Store) SetHealthLinked(on bool) error {
	return s.putBool(constants.KeyHealthLinked, on)
}

func (s *Store) boolValue(key string) bool {
	data, err := s.gw.Get(key)
	if err != nil {
		return false
	}
	var v bool
	if err := json.Unmarshal(data, &v); err != nil {
		logger.Debug("Boolean preference undecodable, using false", "key", key, "error", err)
		return false
	}
	return v
}

func (s *Store) putBool(key string, v bool) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.gw.Put(key, data)
}
