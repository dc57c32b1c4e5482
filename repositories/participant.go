package repositories

import (
	"dcbot/domain"

	"github.com/dgraph-io/badger/v4"
)

type participantRecord struct {
	ID          string `cbor:"id"`
	Handle      string `cbor:"handle"`
	DisplayName string `cbor:"display_name"`
	RealName    string `cbor:"real_name"`
}

func participantKey(id string) string { return "participant:" + id }

func handleKey(handle string) string { return "idx:handle:" + handle }

// UpsertParticipant creates or refreshes a participant and keeps the handle index in sync.
func (s *BadgerStore) UpsertParticipant(participant domain.Participant) error {
	return s.update(func(txn *badger.Txn) error {
		var previous participantRecord
		found, err := get(txn, participantKey(participant.ID), &previous)
		if err != nil {
			return err
		}
		if found && previous.Handle != participant.Handle {
			// Only drop the old index entry if it still points to this participant
			owner, ok, err := getString(txn, handleKey(previous.Handle))
			if err != nil {
				return err
			}
			if ok && owner == participant.ID {
				if err = txn.Delete([]byte(handleKey(previous.Handle))); err != nil {
					return err
				}
			}
		}
		if err = set(txn, participantKey(participant.ID), fromParticipant(participant)); err != nil {
			return err
		}
		return txn.Set([]byte(handleKey(participant.Handle)), []byte(participant.ID))
	})
}

func (s *BadgerStore) GetParticipantByID(id string) (*domain.Participant, error) {
	var participant *domain.Participant
	err := s.db.View(func(txn *badger.Txn) error {
		var record participantRecord
		found, err := get(txn, participantKey(id), &record)
		if err != nil || !found {
			return err
		}
		participant = toParticipant(record)
		return nil
	})
	return participant, err
}

func (s *BadgerStore) GetParticipantByHandle(handle string) (*domain.Participant, error) {
	var participant *domain.Participant
	err := s.db.View(func(txn *badger.Txn) error {
		id, ok, err := getString(txn, handleKey(handle))
		if err != nil || !ok {
			return err
		}
		var record participantRecord
		found, err := get(txn, participantKey(id), &record)
		if err != nil || !found {
			return err
		}
		participant = toParticipant(record)
		return nil
	})
	return participant, err
}

func (s *BadgerStore) ListParticipants() ([]domain.Participant, error) {
	var participants []domain.Participant
	err := s.db.View(func(txn *badger.Txn) error {
		return scan(txn, "participant:", func(val []byte) error {
			var record participantRecord
			if err := unmarshal(val, &record); err != nil {
				return err
			}
			participants = append(participants, *toParticipant(record))
			return nil
		})
	})
	return participants, err
}

func fromParticipant(p domain.Participant) participantRecord {
	return participantRecord{
		ID:          p.ID,
		Handle:      p.Handle,
		DisplayName: p.DisplayName,
		RealName:    p.RealName,
	}
}

func toParticipant(r participantRecord) *domain.Participant {
	return &domain.Participant{
		ID:          r.ID,
		Handle:      r.Handle,
		DisplayName: r.DisplayName,
		RealName:    r.RealName,
	}
}
