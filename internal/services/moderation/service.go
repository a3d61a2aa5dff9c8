package moderation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/reversigame/internal/dependencies/clock"
	"github.com/mcoot/reversigame/internal/model"
	"github.com/mcoot/reversigame/internal/storage"
)

// Config holds configuration for the moderation service
type Config struct {
	// AdminSecretHash is a bcrypt hash of the shared administrator secret.
	// Empty disables administrator accounts and admin bans.
	AdminSecretHash string
	// BanThreshold is the suspicion count at which a player is banned
	BanThreshold int
	// InitialRating is the rating given to new players
	InitialRating int
}

// DefaultConfig returns default moderation configuration
func DefaultConfig() Config {
	return Config{
		BanThreshold:  5,
		InitialRating: 1000,
	}
}

// Service handles registration and the report -> ban state machine
type Service struct {
	directory storage.Directory
	clock     clock.Clock
	cfg       Config
	logger    *slog.Logger
}

// New creates a new moderation service
func New(directory storage.Directory, clock clock.Clock, cfg Config, logger *slog.Logger) *Service {
	defaults := DefaultConfig()
	if cfg.BanThreshold <= 0 {
		cfg.BanThreshold = defaults.BanThreshold
	}
	if cfg.InitialRating == 0 {
		cfg.InitialRating = defaults.InitialRating
	}
	return &Service{
		directory: directory,
		clock:     clock,
		cfg:       cfg,
		logger:    logger.With(slog.String("component", "moderation")),
	}
}

// Register creates a player record.
// A banned name is rejected before the existence check, so it stays
// unavailable even if no record was ever created for it.
func (s *Service) Register(ctx context.Context, username, password string) (*model.PlayerRecord, error) {
	banned, err := s.directory.SetContains(ctx, storage.BanListKey, username)
	if err != nil {
		return nil, err
	}
	if banned {
		return nil, model.ErrAlreadyBanned
	}

	rec := &model.PlayerRecord{
		Username:  username,
		Password:  password,
		Rating:    s.cfg.InitialRating,
		IsAdmin:   s.isAdminSecret(password),
		CreatedAt: s.clock.Now().UTC(),
	}

	created, err := s.directory.CreateFields(ctx, storage.PlayerKey(username), map[string]any{
		storage.FieldPassword:       rec.Password,
		storage.FieldRating:         rec.Rating,
		storage.FieldSuspicionCount: rec.SuspicionCount,
		storage.FieldIsAdmin:        strconv.FormatBool(rec.IsAdmin),
		storage.FieldCreatedAt:      rec.CreatedAt.Format(time.RFC3339),
	})
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, model.ErrNameTaken
	}

	s.logger.Info("player registered",
		slog.String("username", username),
		slog.Bool("is_admin", rec.IsAdmin),
	)
	return rec, nil
}

// Report records one suspicious-behaviour report against a player.
// The counter only grows; reaching the threshold adds the player to the ban
// list for good. Reports against a banned player keep counting and keep
// returning BANNED.
func (s *Service) Report(ctx context.Context, username, reason string) (*model.ReportResult, error) {
	exists, err := s.directory.Exists(ctx, storage.PlayerKey(username))
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrPlayerNotFound
	}

	n, err := s.directory.IncrementField(ctx, storage.PlayerKey(username), storage.FieldSuspicionCount, 1)
	if err != nil {
		return nil, err
	}
	count := int(n)

	if count >= s.cfg.BanThreshold {
		if err := s.ban(ctx, username, autoBanReason(reason)); err != nil {
			return nil, err
		}
		return &model.ReportResult{Status: model.ReportBanned, Count: count}, nil
	}

	// Banned by an administrator before reaching the threshold
	banned, err := s.directory.SetContains(ctx, storage.BanListKey, username)
	if err != nil {
		return nil, err
	}
	if banned {
		return &model.ReportResult{Status: model.ReportBanned, Count: count}, nil
	}

	s.logger.Info("player warned",
		slog.String("username", username),
		slog.Int("count", count),
	)
	return &model.ReportResult{Status: model.ReportWarned, Count: count}, nil
}

// Ban adds username to the ban list on behalf of an administrator
func (s *Service) Ban(ctx context.Context, adminSecret, username string) error {
	if !s.isAdminSecret(adminSecret) {
		return model.ErrNotAdmin
	}
	return s.ban(ctx, username, "")
}

// GetPlayer loads a player record
func (s *Service) GetPlayer(ctx context.Context, username string) (*model.PlayerRecord, error) {
	fields, err := s.directory.GetFields(ctx, storage.PlayerKey(username))
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, model.ErrPlayerNotFound
	}
	return recordFromFields(username, fields)
}

// IsBanned reports ban list membership
func (s *Service) IsBanned(ctx context.Context, username string) (bool, error) {
	return s.directory.SetContains(ctx, storage.BanListKey, username)
}

// Ping checks that the player directory is reachable
func (s *Service) Ping(ctx context.Context) error {
	return s.directory.Ping(ctx)
}

// ban is idempotent: set membership does not change on repeat
func (s *Service) ban(ctx context.Context, username, reason string) error {
	if err := s.directory.SetAdd(ctx, storage.BanListKey, username); err != nil {
		return err
	}
	if reason != "" {
		err := s.directory.SetFields(ctx, storage.PlayerKey(username), map[string]any{
			storage.FieldBanReason: reason,
		})
		if err != nil {
			return err
		}
	}

	s.logger.Warn("player banned",
		slog.String("username", username),
		slog.String("reason", reason),
	)
	return nil
}

func (s *Service) isAdminSecret(secret string) bool {
	if s.cfg.AdminSecretHash == "" || secret == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminSecretHash), []byte(secret)) == nil
}

func autoBanReason(reason string) string {
	if reason == "" {
		return "automatic ban: repeated reports"
	}
	return "automatic ban: repeated " + reason
}

// recordFromFields decodes a stored hash into a PlayerRecord
func recordFromFields(username string, fields map[string]string) (*model.PlayerRecord, error) {
	rec := &model.PlayerRecord{
		Username:  username,
		Password:  fields[storage.FieldPassword],
		BanReason: fields[storage.FieldBanReason],
	}

	var errs []error
	if v, ok := fields[storage.FieldRating]; ok {
		n, err := strconv.Atoi(v)
		errs = append(errs, err)
		rec.Rating = n
	}
	if v, ok := fields[storage.FieldSuspicionCount]; ok {
		n, err := strconv.Atoi(v)
		errs = append(errs, err)
		rec.SuspicionCount = n
	}
	if v, ok := fields[storage.FieldIsAdmin]; ok {
		b, err := strconv.ParseBool(v)
		errs = append(errs, err)
		rec.IsAdmin = b
	}
	if v, ok := fields[storage.FieldCreatedAt]; ok {
		t, err := time.Parse(time.RFC3339, v)
		errs = append(errs, err)
		rec.CreatedAt = t
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("decode player %s: %w", username, err)
	}
	return rec, nil
}
