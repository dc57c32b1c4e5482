package services

import (
	"dcbot/domain"
	"dcbot/repositories"
	"fmt"
	"log/slog"
	"sort"
	"time"
)

type IFloorService interface {
	RequestFloor(participantID string) error
	AdmitToFloor(participantID string) error
	LeaveFloor(participantID string) error
	QueryAll() ([]domain.FloorRecord, error)
	Buckets() (domain.FloorBuckets, error)
}

// FloorService moves players between Neutral, WantsToGo and OnTheFloor.
// Any transition is allowed from any state and never fails for an unknown
// participant: the first transition creates the record.
type FloorService struct {
	repository repositories.IFloorRepository
	log        *slog.Logger
	now        func() time.Time
}

func NewFloorService(repository repositories.IFloorRepository, log *slog.Logger) IFloorService {
	return &FloorService{repository: repository, log: log, now: time.Now}
}

func (s *FloorService) RequestFloor(participantID string) error {
	return s.transition(participantID, domain.WantsToGo)
}

// AdmitToFloor records the admission time. Only administrators may call it,
// which the dispatcher checks.
func (s *FloorService) AdmitToFloor(participantID string) error {
	return s.transition(participantID, domain.OnTheFloor)
}

func (s *FloorService) LeaveFloor(participantID string) error {
	return s.transition(participantID, domain.Neutral)
}

func (s *FloorService) transition(participantID string, status domain.FloorStatus) error {
	if err := s.repository.SetFloorStatus(participantID, status, s.now().UTC()); err != nil {
		return fmt.Errorf("floor transition of %s to %s: %w", participantID, status, err)
	}
	s.log.Debug("Floor status changed", "user_id", participantID, "status", status.String())
	return nil
}

// QueryAll returns every stored record sorted by participant ID. Participants
// who never asked for anything have no record and are not listed.
func (s *FloorService) QueryAll() ([]domain.FloorRecord, error) {
	records, err := s.repository.ListFloorRecords()
	if err != nil {
		return nil, fmt.Errorf("list floor records: %w", err)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].ParticipantID < records[j].ParticipantID
	})
	return records, nil
}

func (s *FloorService) Buckets() (domain.FloorBuckets, error) {
	records, err := s.QueryAll()
	if err != nil {
		return domain.FloorBuckets{}, err
	}
	return Bucketize(records), nil
}

// Bucketize partitions records by status, keeping their relative order.
func Bucketize(records []domain.FloorRecord) domain.FloorBuckets {
	var buckets domain.FloorBuckets
	for _, record := range records {
		switch record.Status {
		case domain.WantsToGo:
			buckets.WantsToGo = append(buckets.WantsToGo, record)
		case domain.OnTheFloor:
			buckets.OnTheFloor = append(buckets.OnTheFloor, record)
		default:
			buckets.Neutral = append(buckets.Neutral, record)
		}
	}
	return buckets
}
