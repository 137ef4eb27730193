package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Reddyn-Wallace/insulhub-ui/internal/models"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/pipeline"
)

// ErrSessionNotFound is returned when a session id has no row, either
// because it was never created or because logout removed it.
var ErrSessionNotFound = errors.New("session not found")

// Session holds one logged-in user: the API token plus the user fields
// the UI renders without a round trip.
type Session struct {
	ID        string `gorm:"primaryKey"`
	Token     string `gorm:"not null"`
	UserID    string `gorm:"index"`
	UserName  string
	UserEmail string
	UserRole  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StageCache is one serialized pipeline.CacheEntry per (session, stage).
type StageCache struct {
	SessionID string `gorm:"primaryKey"`
	Stage     string `gorm:"primaryKey"`
	Payload   []byte `gorm:"not null"`
	FetchedAt time.Time
}

// PhotoCache remembers which uploaded photo file names belong to an
// assessment section, so a half-finished form survives navigation.
type PhotoCache struct {
	SessionID string `gorm:"primaryKey"`
	JobID     string `gorm:"primaryKey"`
	Section   string `gorm:"primaryKey"`
	FileNames string // pipe separated
	UpdatedAt time.Time
}

type Store struct {
	db *gorm.DB
}

// Open connects to the sqlite database at dsn and migrates the schema.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if err := db.AutoMigrate(&Session{}, &StageCache{}, &PhotoCache{}); err != nil {
		return nil, fmt.Errorf("migrate store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) User(sess Session) models.User {
	return models.User{ID: sess.UserID, Name: sess.UserName, Email: sess.UserEmail, Role: sess.UserRole}
}

// CreateSession persists a fresh session for a login and returns it.
func (s *Store) CreateSession(token string, user models.User) (Session, error) {
	sess := Session{
		ID:        uuid.NewString(),
		Token:     token,
		UserID:    user.ID,
		UserName:  user.Name,
		UserEmail: user.Email,
		UserRole:  user.Role,
	}
	if err := s.db.Create(&sess).Error; err != nil {
		return Session{}, fmt.Errorf("create session: %w", err)
	}
	return sess, nil
}

func (s *Store) GetSession(id string) (Session, error) {
	var sess Session
	err := s.db.First(&sess, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Session{}, ErrSessionNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

// DeleteSession removes the session and everything cached under it.
func (s *Store) DeleteSession(id string) error {
	if err := s.db.Delete(&Session{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if err := s.db.Delete(&StageCache{}, "session_id = ?", id).Error; err != nil {
		return fmt.Errorf("delete session caches: %w", err)
	}
	if err := s.db.Delete(&PhotoCache{}, "session_id = ?", id).Error; err != nil {
		return fmt.Errorf("delete session photos: %w", err)
	}
	return nil
}

// GetStage implements pipeline.Cache.
func (s *Store) GetStage(sessionID string, stage models.Stage) (pipeline.CacheEntry, bool) {
	var row StageCache
	err := s.db.First(&row, "session_id = ? AND stage = ?", sessionID, string(stage)).Error
	if err != nil {
		return pipeline.CacheEntry{}, false
	}
	var entry pipeline.CacheEntry
	if err := json.Unmarshal(row.Payload, &entry); err != nil {
		return pipeline.CacheEntry{}, false
	}
	return entry, true
}

// PutStage implements pipeline.Cache.
func (s *Store) PutStage(sessionID string, stage models.Stage, entry pipeline.CacheEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode stage cache: %w", err)
	}
	row := StageCache{SessionID: sessionID, Stage: string(stage), Payload: payload, FetchedAt: entry.FetchedAt}
	err = s.db.Save(&row).Error
	if err != nil {
		return fmt.Errorf("put stage cache: %w", err)
	}
	return nil
}

// InvalidateStageCaches drops every cached stage list for the session.
// Called after any mutation so the next list view refetches.
func (s *Store) InvalidateStageCaches(sessionID string) error {
	if err := s.db.Delete(&StageCache{}, "session_id = ?", sessionID).Error; err != nil {
		return fmt.Errorf("invalidate stage caches: %w", err)
	}
	return nil
}

// AddPhotos appends uploaded file names to a section's cached set.
func (s *Store) AddPhotos(sessionID, jobID, section string, names []string) error {
	existing := s.PhotosFor(sessionID, jobID, section)
	seen := map[string]bool{}
	for _, n := range existing {
		seen[n] = true
	}
	for _, n := range names {
		if n != "" && !seen[n] {
			existing = append(existing, n)
			seen[n] = true
		}
	}
	row := PhotoCache{SessionID: sessionID, JobID: jobID, Section: section, FileNames: strings.Join(existing, "|")}
	if err := s.db.Save(&row).Error; err != nil {
		return fmt.Errorf("save photo cache: %w", err)
	}
	return nil
}

// RemovePhoto drops one file name from a section's cached set.
func (s *Store) RemovePhoto(sessionID, jobID, section, name string) error {
	existing := s.PhotosFor(sessionID, jobID, section)
	kept := existing[:0]
	for _, n := range existing {
		if n != name {
			kept = append(kept, n)
		}
	}
	row := PhotoCache{SessionID: sessionID, JobID: jobID, Section: section, FileNames: strings.Join(kept, "|")}
	if err := s.db.Save(&row).Error; err != nil {
		return fmt.Errorf("save photo cache: %w", err)
	}
	return nil
}

// PhotosFor returns the cached file names for one section, oldest first.
func (s *Store) PhotosFor(sessionID, jobID, section string) []string {
	var row PhotoCache
	err := s.db.First(&row, "session_id = ? AND job_id = ? AND section = ?", sessionID, jobID, section).Error
	if err != nil || row.FileNames == "" {
		return nil
	}
	return strings.Split(row.FileNames, "|")
}

// ClearPhotos drops every cached section for the job, used once the
// assessment form is submitted for good.
func (s *Store) ClearPhotos(sessionID, jobID string) error {
	if err := s.db.Delete(&PhotoCache{}, "session_id = ? AND job_id = ?", sessionID, jobID).Error; err != nil {
		return fmt.Errorf("clear photo cache: %w", err)
	}
	return nil
}
