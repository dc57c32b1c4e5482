package main

import (
	"dcbot/domain"
	"dcbot/repositories"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// Dumps the bot state kept in badger, e.g.
//
//	go run ./tools -db ./data/badger -view floor
func main() {
	dbPath := flag.String("db", "./data/badger", "Path to badger DB")
	view := flag.String("view", "floor", "What to show: floor, services or raw")
	prefix := flag.String("prefix", "", "Key prefix scanned by the raw view")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()
	store := repositories.NewBadgerStore(db, slog.Default())

	table := newTable()
	switch *view {
	case "floor":
		err = floorView(store, table)
	case "services":
		err = servicesView(store, table)
	case "raw":
		err = rawView(db, *prefix, table)
	default:
		err = fmt.Errorf("unknown view %q", *view)
	}
	if err != nil {
		log.Fatal(err)
	}
	table.Render()
}

func newTable() *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

// floorView lists every player with a floor status, players who never asked
// for anything are Neutral.
func floorView(store *repositories.BadgerStore, table *tablewriter.Table) error {
	participants, err := store.ListParticipants()
	if err != nil {
		return err
	}
	records, err := store.ListFloorRecords()
	if err != nil {
		return err
	}
	byID := lo.KeyBy(records, func(r domain.FloorRecord) string { return r.ParticipantID })

	table.SetHeader([]string{"ID", "Handle", "Name", "Status", "On floor since"})
	for _, p := range participants {
		record, ok := byID[p.ID]
		status, since := domain.Neutral, "-"
		if ok {
			status = record.Status
			if record.OnFloorAt != nil && status == domain.OnTheFloor {
				since = record.OnFloorAt.Local().Format("15:04:05")
			}
		}
		table.Append([]string{p.ID, "@" + p.Handle, p.RealName, colorStatus(status), since})
	}
	return nil
}

func colorStatus(status domain.FloorStatus) string {
	switch status {
	case domain.WantsToGo:
		return color.Yellow.Render(status.String())
	case domain.OnTheFloor:
		return color.Green.Render(status.String())
	default:
		return color.Gray.Render(status.String())
	}
}

func servicesView(store *repositories.BadgerStore, table *tablewriter.Table) error {
	channels, err := store.ListServiceChannels()
	if err != nil {
		return err
	}

	table.SetHeader([]string{"Channel ID", "Service", "Archived", "Host", "Confirmed at"})
	for _, c := range channels {
		host, confirmed := color.Red.Render("wanted"), "-"
		if c.HasHost() {
			host = *c.HostID
		}
		if c.HostConfirmedAt != nil && c.HasHost() {
			confirmed = c.HostConfirmedAt.Local().Format("15:04:05")
		}
		table.Append([]string{c.ID, c.Name, fmt.Sprint(c.Archived), host, confirmed})
	}
	return nil
}

func rawView(db *badger.DB, prefix string, table *tablewriter.Table) error {
	table.SetHeader([]string{"Key", "Type", "Detail"})
	return db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())
			err := item.Value(func(v []byte) error {
				kind, detail := repositories.DescribeRecord(key, v)
				table.Append([]string{key, kind, detail})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil {
		// A store that was not closed cleanly must be opened once in write mode to truncate its log.
		if strings.Contains(err.Error(), "Log truncate required") {
			fmt.Println("⚠️  Store was not closed cleanly, repairing")

			repairOpts := badger.DefaultOptions(path).
				WithLogger(nil).WithBypassLockGuard(true)
			db, err = badger.Open(repairOpts)
			if err != nil {
				return nil, fmt.Errorf("repair failed: %w", err)
			}
			_ = db.Close()
			return badger.Open(opts)
		}
		return nil, err
	}
	return db, nil
}
