package repositories

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// DescribeRecord renders a raw store entry for humans: the kind of record
// its key holds and the decoded value.
func DescribeRecord(key string, value []byte) (kind, detail string) {
	kind, _, _ = strings.Cut(key, ":")
	switch kind {
	case "idx":
		return kind, string(value)
	case "activity":
		if len(value) != 8 {
			return kind, "corrupted timestamp"
		}
		at := time.Unix(0, int64(binary.BigEndian.Uint64(value))).UTC()
		return kind, at.Format(time.RFC3339)
	default:
		diagnostic, err := cbor.Diagnose(value)
		if err != nil {
			return kind, "undecodable: " + err.Error()
		}
		return kind, diagnostic
	}
}
