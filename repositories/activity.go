package repositories

import (
	"dcbot/domain"
	"encoding/binary"
	"time"

	"github.com/dgraph-io/badger/v4"
)

func activityPrefix(channelID string) string { return "activity:" + channelID + ":" }

// RecordPost overwrites the last post time of a participant in a channel.
func (s *BadgerStore) RecordPost(participantID, channelID string, at time.Time) error {
	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, uint64(at.UnixNano()))
	return s.update(func(txn *badger.Txn) error {
		return txn.Set([]byte(activityPrefix(channelID)+participantID), value)
	})
}

func (s *BadgerStore) ListRecentPosts(channelID string) ([]domain.RecentActivity, error) {
	var activities []domain.RecentActivity
	prefix := []byte(activityPrefix(channelID))
	err := s.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			participantID := string(item.Key()[len(prefix):])
			err := item.Value(func(val []byte) error {
				activities = append(activities, domain.RecentActivity{
					ParticipantID: participantID,
					ChannelID:     channelID,
					LastPostAt:    time.Unix(0, int64(binary.BigEndian.Uint64(val))).UTC(),
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return activities, err
}
