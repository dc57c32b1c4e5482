package repositories

import (
	"dcbot/domain"
	"dcbot/errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

type serviceChannelRecord struct {
	ID       string `cbor:"id"`
	Name     string `cbor:"name"`
	Archived bool   `cbor:"archived"`
	HostID   string `cbor:"host_id,omitempty"`
	// HostConfirmedAt is a unix nano timestamp, zero when unset
	HostConfirmedAt int64 `cbor:"host_confirmed_at,omitempty"`
}

const serviceChannelPrefix = "service:"

func serviceChannelKey(id string) string { return serviceChannelPrefix + id }

func serviceNameKey(name string) string { return "idx:service:" + name }

// UpsertServiceChannel refreshes name and archived flag coming from the chat
// platform. Host fields are owned by the hosting logic and survive the upsert.
func (s *BadgerStore) UpsertServiceChannel(channel domain.ServiceChannel) (domain.ServiceChannel, error) {
	var stored serviceChannelRecord
	err := s.update(func(txn *badger.Txn) error {
		var previous serviceChannelRecord
		found, err := get(txn, serviceChannelKey(channel.ID), &previous)
		if err != nil {
			return err
		}
		stored = serviceChannelRecord{ID: channel.ID, Name: channel.Name, Archived: channel.Archived}
		if found {
			stored.HostID = previous.HostID
			stored.HostConfirmedAt = previous.HostConfirmedAt
			if previous.Name != channel.Name {
				owner, ok, err := getString(txn, serviceNameKey(previous.Name))
				if err != nil {
					return err
				}
				if ok && owner == channel.ID {
					if err = txn.Delete([]byte(serviceNameKey(previous.Name))); err != nil {
						return err
					}
				}
			}
		}
		if err = set(txn, serviceChannelKey(channel.ID), stored); err != nil {
			return err
		}
		return claimServiceName(txn, stored)
	})
	if err != nil {
		return domain.ServiceChannel{}, err
	}
	return toServiceChannel(stored), nil
}

func (s *BadgerStore) GetServiceChannelByID(id string) (*domain.ServiceChannel, error) {
	var channel *domain.ServiceChannel
	err := s.db.View(func(txn *badger.Txn) error {
		var record serviceChannelRecord
		found, err := get(txn, serviceChannelKey(id), &record)
		if err != nil || !found {
			return err
		}
		channel = lo.ToPtr(toServiceChannel(record))
		return nil
	})
	return channel, err
}

// claimServiceName points the name index at record unless the current owner
// outranks it.
func claimServiceName(txn *badger.Txn, record serviceChannelRecord) error {
	key := serviceNameKey(record.Name)
	owner, ok, err := getString(txn, key)
	if err != nil {
		return err
	}
	if ok && owner != record.ID {
		var current serviceChannelRecord
		found, err := get(txn, serviceChannelKey(owner), &current)
		if err != nil {
			return err
		}
		if found && current.Name == record.Name && !outranks(record, current) {
			return nil
		}
	}
	return txn.Set([]byte(key), []byte(record.ID))
}

// outranks orders channels sharing a name: live before archived, then the
// greatest ID.
func outranks(a, b serviceChannelRecord) bool {
	if a.Archived != b.Archived {
		return !a.Archived
	}
	return a.ID > b.ID
}

// GetServiceChannelByName answers from the name index while it points at a
// live channel. Otherwise the owner was archived or renamed since, and the
// channels are scanned for the best namesake.
func (s *BadgerStore) GetServiceChannelByName(name string) (*domain.ServiceChannel, error) {
	var channel *domain.ServiceChannel
	err := s.db.View(func(txn *badger.Txn) error {
		id, ok, err := getString(txn, serviceNameKey(name))
		if err != nil {
			return err
		}
		if ok {
			var record serviceChannelRecord
			found, err := get(txn, serviceChannelKey(id), &record)
			if err != nil {
				return err
			}
			if found && record.Name == name && !record.Archived {
				channel = lo.ToPtr(toServiceChannel(record))
				return nil
			}
		}

		var best *serviceChannelRecord
		err = scanServiceChannels(txn, func(record serviceChannelRecord) bool {
			if record.Name == name && (best == nil || outranks(record, *best)) {
				best = lo.ToPtr(record)
			}
			return true
		})
		if err != nil || best == nil {
			return err
		}
		channel = lo.ToPtr(toServiceChannel(*best))
		return nil
	})
	return channel, err
}

func (s *BadgerStore) ListServiceChannels() ([]domain.ServiceChannel, error) {
	var channels []domain.ServiceChannel
	err := s.db.View(func(txn *badger.Txn) error {
		return scanServiceChannels(txn, func(record serviceChannelRecord) bool {
			channels = append(channels, toServiceChannel(record))
			return true
		})
	})
	return channels, err
}

func (s *BadgerStore) SetHost(channelID string, hostID *string, at time.Time) error {
	return s.update(func(txn *badger.Txn) error {
		var record serviceChannelRecord
		found, err := get(txn, serviceChannelKey(channelID), &record)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("service channel %s: %w", channelID, errors.ErrNotFound)
		}
		if hostID == nil || *hostID == "" {
			record.HostID = ""
			record.HostConfirmedAt = 0
		} else {
			record.HostID = *hostID
			record.HostConfirmedAt = at.UnixNano()
		}
		return set(txn, serviceChannelKey(channelID), record)
	})
}

// AssignHost checks and writes in the same transaction: two concurrent
// assignments of one participant to two channels cannot both commit, badger
// rejects the second with ErrConflict and the replay then sees the first.
func (s *BadgerStore) AssignHost(channelID, hostID string, at time.Time) (*string, error) {
	var previous *string
	err := s.update(func(txn *badger.Txn) error {
		previous = nil
		var record serviceChannelRecord
		found, err := get(txn, serviceChannelKey(channelID), &record)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("service channel %s: %w", channelID, errors.ErrNotFound)
		}

		var hosted *serviceChannelRecord
		err = scanServiceChannels(txn, func(other serviceChannelRecord) bool {
			if other.ID != channelID && other.HostID == hostID {
				hosted = &other
				return false
			}
			return true
		})
		if err != nil {
			return err
		}
		if hosted != nil {
			return &errors.AlreadyHostingError{Service: hosted.Name}
		}

		if record.HostID != "" {
			previous = lo.ToPtr(record.HostID)
		}
		record.HostID = hostID
		record.HostConfirmedAt = at.UnixNano()
		return set(txn, serviceChannelKey(channelID), record)
	})
	if err != nil {
		return nil, err
	}
	return previous, nil
}

func (s *BadgerStore) ClearHost(channelID, hostID string) (bool, error) {
	var cleared bool
	err := s.update(func(txn *badger.Txn) error {
		cleared = false
		var record serviceChannelRecord
		found, err := get(txn, serviceChannelKey(channelID), &record)
		if err != nil || !found || record.HostID != hostID {
			return err
		}
		record.HostID = ""
		record.HostConfirmedAt = 0
		cleared = true
		return set(txn, serviceChannelKey(channelID), record)
	})
	if err != nil {
		return false, err
	}
	return cleared, nil
}

func (s *BadgerStore) GetHostedChannel(hostID string) (*domain.ServiceChannel, error) {
	var channel *domain.ServiceChannel
	err := s.db.View(func(txn *badger.Txn) error {
		return scanServiceChannels(txn, func(record serviceChannelRecord) bool {
			if record.HostID == hostID {
				channel = lo.ToPtr(toServiceChannel(record))
				return false
			}
			return true
		})
	})
	return channel, err
}

// scanServiceChannels iterates the service channels until fn returns false.
func scanServiceChannels(txn *badger.Txn, fn func(record serviceChannelRecord) bool) error {
	options := badger.DefaultIteratorOptions
	options.Prefix = []byte(serviceChannelPrefix)
	it := txn.NewIterator(options)
	defer it.Close()

	for it.Seek(options.Prefix); it.ValidForPrefix(options.Prefix); it.Next() {
		var record serviceChannelRecord
		if err := it.Item().Value(func(val []byte) error {
			return unmarshal(val, &record)
		}); err != nil {
			return err
		}
		if !fn(record) {
			return nil
		}
	}
	return nil
}

func toServiceChannel(r serviceChannelRecord) domain.ServiceChannel {
	channel := domain.ServiceChannel{
		ID:       r.ID,
		Name:     r.Name,
		Archived: r.Archived,
	}
	if r.HostID != "" {
		channel.HostID = lo.ToPtr(r.HostID)
	}
	if r.HostConfirmedAt != 0 {
		channel.HostConfirmedAt = lo.ToPtr(time.Unix(0, r.HostConfirmedAt).UTC())
	}
	return channel
}
