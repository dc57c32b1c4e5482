// Package sqlite provides a SQLite-backed implementation of repositories.Store.
package sqlite

import (
	"database/sql"
	"dcbot/domain"
	"dcbot/errors"
	_ "embed"
	stderrors "errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/samber/lo"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

// Store persists the bot state in a single SQLite file.
// One connection is kept open so every transaction is serialized.
type Store struct {
	sqlDB *sql.DB
	log   *slog.Logger
}

func toNanos(value time.Time) int64 {
	return value.UTC().UnixNano()
}

func fromNanos(value sql.NullInt64) *time.Time {
	if !value.Valid {
		return nil
	}
	return lo.ToPtr(time.Unix(0, value.Int64).UTC())
}

// Open opens (or creates) a SQLite store and applies the schema.
func Open(path string, log *slog.Logger) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err = sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err = sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{sqlDB: sqlDB, log: log}, nil
}

func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) UpsertParticipant(participant domain.Participant) error {
	_, err := s.sqlDB.Exec(
		`INSERT INTO participants (id, handle, display_name, real_name) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   handle = excluded.handle,
		   display_name = excluded.display_name,
		   real_name = excluded.real_name`,
		participant.ID, participant.Handle, participant.DisplayName, participant.RealName,
	)
	if err != nil {
		return fmt.Errorf("upsert participant %s: %w", participant.ID, err)
	}
	return nil
}

func (s *Store) GetParticipantByID(id string) (*domain.Participant, error) {
	return s.getParticipant(`SELECT id, handle, display_name, real_name FROM participants WHERE id = ?`, id)
}

func (s *Store) GetParticipantByHandle(handle string) (*domain.Participant, error) {
	return s.getParticipant(`SELECT id, handle, display_name, real_name FROM participants WHERE handle = ? LIMIT 1`, handle)
}

func (s *Store) getParticipant(query string, arg string) (*domain.Participant, error) {
	var p domain.Participant
	err := s.sqlDB.QueryRow(query, arg).Scan(&p.ID, &p.Handle, &p.DisplayName, &p.RealName)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get participant %s: %w", arg, err)
	}
	return &p, nil
}

func (s *Store) ListParticipants() ([]domain.Participant, error) {
	rows, err := s.sqlDB.Query(`SELECT id, handle, display_name, real_name FROM participants ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	var participants []domain.Participant
	for rows.Next() {
		var p domain.Participant
		if err = rows.Scan(&p.ID, &p.Handle, &p.DisplayName, &p.RealName); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

const serviceChannelColumns = `id, name, archived, host_id, host_confirmed_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanServiceChannel(row rowScanner) (domain.ServiceChannel, error) {
	var (
		channel     domain.ServiceChannel
		hostID      sql.NullString
		confirmedAt sql.NullInt64
	)
	if err := row.Scan(&channel.ID, &channel.Name, &channel.Archived, &hostID, &confirmedAt); err != nil {
		return domain.ServiceChannel{}, err
	}
	if hostID.Valid && hostID.String != "" {
		channel.HostID = lo.ToPtr(hostID.String)
	}
	channel.HostConfirmedAt = fromNanos(confirmedAt)
	return channel, nil
}

// UpsertServiceChannel leaves host_id and host_confirmed_at untouched on update.
func (s *Store) UpsertServiceChannel(channel domain.ServiceChannel) (domain.ServiceChannel, error) {
	row := s.sqlDB.QueryRow(
		`INSERT INTO service_channels (id, name, archived) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name, archived = excluded.archived
		 RETURNING `+serviceChannelColumns,
		channel.ID, channel.Name, channel.Archived,
	)
	stored, err := scanServiceChannel(row)
	if err != nil {
		return domain.ServiceChannel{}, fmt.Errorf("upsert service channel %s: %w", channel.ID, err)
	}
	return stored, nil
}

func (s *Store) GetServiceChannelByID(id string) (*domain.ServiceChannel, error) {
	return s.getServiceChannel(`SELECT `+serviceChannelColumns+` FROM service_channels WHERE id = ?`, id)
}

// GetServiceChannelByName prefers a live channel when an archived one shares
// its name, then the greatest ID.
func (s *Store) GetServiceChannelByName(name string) (*domain.ServiceChannel, error) {
	return s.getServiceChannel(
		`SELECT `+serviceChannelColumns+` FROM service_channels WHERE name = ? ORDER BY archived ASC, id DESC LIMIT 1`,
		name,
	)
}

func (s *Store) GetHostedChannel(hostID string) (*domain.ServiceChannel, error) {
	return s.getServiceChannel(`SELECT `+serviceChannelColumns+` FROM service_channels WHERE host_id = ? LIMIT 1`, hostID)
}

func (s *Store) getServiceChannel(query, arg string) (*domain.ServiceChannel, error) {
	channel, err := scanServiceChannel(s.sqlDB.QueryRow(query, arg))
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get service channel %s: %w", arg, err)
	}
	return &channel, nil
}

func (s *Store) ListServiceChannels() ([]domain.ServiceChannel, error) {
	rows, err := s.sqlDB.Query(`SELECT ` + serviceChannelColumns + ` FROM service_channels ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list service channels: %w", err)
	}
	defer rows.Close()

	var channels []domain.ServiceChannel
	for rows.Next() {
		channel, err := scanServiceChannel(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service channel: %w", err)
		}
		channels = append(channels, channel)
	}
	return channels, rows.Err()
}

func (s *Store) SetHost(channelID string, hostID *string, at time.Time) error {
	var (
		result sql.Result
		err    error
	)
	if hostID == nil || *hostID == "" {
		result, err = s.sqlDB.Exec(
			`UPDATE service_channels SET host_id = NULL, host_confirmed_at = NULL WHERE id = ?`, channelID)
	} else {
		result, err = s.sqlDB.Exec(
			`UPDATE service_channels SET host_id = ?, host_confirmed_at = ? WHERE id = ?`,
			*hostID, toNanos(at), channelID)
	}
	if err != nil {
		return fmt.Errorf("set host of %s: %w", channelID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("service channel %s: %w", channelID, errors.ErrNotFound)
	}
	return nil
}

func (s *Store) AssignHost(channelID, hostID string, at time.Time) (previous *string, err error) {
	tx, err := s.sqlDB.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin assign host: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	channel, err := scanServiceChannel(tx.QueryRow(
		`SELECT `+serviceChannelColumns+` FROM service_channels WHERE id = ?`, channelID))
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("service channel %s: %w", channelID, errors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get service channel %s: %w", channelID, err)
	}

	var hostedName string
	err = tx.QueryRow(
		`SELECT name FROM service_channels WHERE host_id = ? AND id <> ? LIMIT 1`, hostID, channelID,
	).Scan(&hostedName)
	switch {
	case err == nil:
		return nil, &errors.AlreadyHostingError{Service: hostedName}
	case !stderrors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("find hosted channel of %s: %w", hostID, err)
	}

	if _, err = tx.Exec(
		`UPDATE service_channels SET host_id = ?, host_confirmed_at = ? WHERE id = ?`,
		hostID, toNanos(at), channelID,
	); err != nil {
		return nil, fmt.Errorf("assign host of %s: %w", channelID, err)
	}
	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit assign host: %w", err)
	}
	return channel.HostID, nil
}

func (s *Store) ClearHost(channelID, hostID string) (bool, error) {
	result, err := s.sqlDB.Exec(
		`UPDATE service_channels SET host_id = NULL, host_confirmed_at = NULL WHERE id = ? AND host_id = ?`,
		channelID, hostID)
	if err != nil {
		return false, fmt.Errorf("clear host of %s: %w", channelID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *Store) SetFloorStatus(participantID string, status domain.FloorStatus, at time.Time) error {
	if !status.IsValid() {
		return fmt.Errorf("floor status %d is not a known status", status)
	}
	var onFloorAt sql.NullInt64
	if status == domain.OnTheFloor {
		onFloorAt = sql.NullInt64{Int64: toNanos(at), Valid: true}
	}
	_, err := s.sqlDB.Exec(
		`INSERT INTO floor_records (participant_id, status, on_floor_at) VALUES (?, ?, ?)
		 ON CONFLICT(participant_id) DO UPDATE SET
		   status = excluded.status,
		   on_floor_at = COALESCE(excluded.on_floor_at, floor_records.on_floor_at)`,
		participantID, int(status), onFloorAt,
	)
	if err != nil {
		return fmt.Errorf("set floor status of %s: %w", participantID, err)
	}
	return nil
}

func (s *Store) GetFloorRecord(participantID string) (*domain.FloorRecord, error) {
	var (
		record    domain.FloorRecord
		onFloorAt sql.NullInt64
	)
	err := s.sqlDB.QueryRow(
		`SELECT participant_id, status, on_floor_at FROM floor_records WHERE participant_id = ?`, participantID,
	).Scan(&record.ParticipantID, &record.Status, &onFloorAt)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get floor record %s: %w", participantID, err)
	}
	record.OnFloorAt = fromNanos(onFloorAt)
	return &record, nil
}

func (s *Store) ListFloorRecords() ([]domain.FloorRecord, error) {
	rows, err := s.sqlDB.Query(`SELECT participant_id, status, on_floor_at FROM floor_records ORDER BY participant_id`)
	if err != nil {
		return nil, fmt.Errorf("list floor records: %w", err)
	}
	defer rows.Close()

	var records []domain.FloorRecord
	for rows.Next() {
		var (
			record    domain.FloorRecord
			onFloorAt sql.NullInt64
		)
		if err = rows.Scan(&record.ParticipantID, &record.Status, &onFloorAt); err != nil {
			return nil, fmt.Errorf("scan floor record: %w", err)
		}
		record.OnFloorAt = fromNanos(onFloorAt)
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *Store) RecordPost(participantID, channelID string, at time.Time) error {
	_, err := s.sqlDB.Exec(
		`INSERT INTO recent_activity (channel_id, participant_id, last_post_at) VALUES (?, ?, ?)
		 ON CONFLICT(channel_id, participant_id) DO UPDATE SET last_post_at = excluded.last_post_at`,
		channelID, participantID, toNanos(at),
	)
	if err != nil {
		return fmt.Errorf("record post of %s in %s: %w", participantID, channelID, err)
	}
	return nil
}

func (s *Store) ListRecentPosts(channelID string) ([]domain.RecentActivity, error) {
	rows, err := s.sqlDB.Query(
		`SELECT participant_id, last_post_at FROM recent_activity WHERE channel_id = ? ORDER BY participant_id`, channelID)
	if err != nil {
		return nil, fmt.Errorf("list recent posts of %s: %w", channelID, err)
	}
	defer rows.Close()

	var activities []domain.RecentActivity
	for rows.Next() {
		var (
			participantID string
			lastPostAt    int64
		)
		if err = rows.Scan(&participantID, &lastPostAt); err != nil {
			return nil, fmt.Errorf("scan recent post: %w", err)
		}
		activities = append(activities, domain.RecentActivity{
			ParticipantID: participantID,
			ChannelID:     channelID,
			LastPostAt:    time.Unix(0, lastPostAt).UTC(),
		})
	}
	return activities, rows.Err()
}
