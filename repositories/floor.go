package repositories

import (
	"dcbot/domain"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

type floorRecord struct {
	ParticipantID string `cbor:"participant_id"`
	Status        int    `cbor:"status"`
	OnFloorAt     int64  `cbor:"on_floor_at,omitempty"`
}

func floorKey(participantID string) string { return "floor:" + participantID }

// SetFloorStatus writes the status of a participant, creating the record on
// first use. The admission time is only touched when entering OnTheFloor.
func (s *BadgerStore) SetFloorStatus(participantID string, status domain.FloorStatus, at time.Time) error {
	if !status.IsValid() {
		return fmt.Errorf("floor status %d is not a known status", status)
	}
	return s.update(func(txn *badger.Txn) error {
		var record floorRecord
		if _, err := get(txn, floorKey(participantID), &record); err != nil {
			return err
		}
		record.ParticipantID = participantID
		record.Status = int(status)
		if status == domain.OnTheFloor {
			record.OnFloorAt = at.UnixNano()
		}
		return set(txn, floorKey(participantID), record)
	})
}

func (s *BadgerStore) GetFloorRecord(participantID string) (*domain.FloorRecord, error) {
	var floor *domain.FloorRecord
	err := s.db.View(func(txn *badger.Txn) error {
		var record floorRecord
		found, err := get(txn, floorKey(participantID), &record)
		if err != nil || !found {
			return err
		}
		floor = lo.ToPtr(toFloorRecord(record))
		return nil
	})
	return floor, err
}

func (s *BadgerStore) ListFloorRecords() ([]domain.FloorRecord, error) {
	var records []domain.FloorRecord
	err := s.db.View(func(txn *badger.Txn) error {
		return scan(txn, "floor:", func(val []byte) error {
			var record floorRecord
			if err := unmarshal(val, &record); err != nil {
				return err
			}
			records = append(records, toFloorRecord(record))
			return nil
		})
	})
	return records, err
}

func toFloorRecord(r floorRecord) domain.FloorRecord {
	record := domain.FloorRecord{
		ParticipantID: r.ParticipantID,
		Status:        domain.FloorStatus(r.Status),
	}
	if r.OnFloorAt != 0 {
		record.OnFloorAt = lo.ToPtr(time.Unix(0, r.OnFloorAt).UTC())
	}
	return record
}
