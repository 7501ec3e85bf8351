package log

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// logEncMode is the CBOR encoder mode for log entries.
// Configured for nanosecond-precision timestamps and deterministic encoding.
var logEncMode cbor.EncMode

// logDecMode is the CBOR decoder mode for log entries.
var logDecMode cbor.DecMode

func init() {
	var err error

	// Timestamps keep nanoseconds as RFC 3339 text; map keys are sorted so
	// equal entries encode to equal bytes.
	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}
	logEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create log CBOR encoder mode: %v", err))
	}

	// Duplicate keys and indefinite lengths are accepted.
	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	logDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create log CBOR decoder mode: %v", err))
	}
}

// EncodeEntry encodes an Entry to CBOR bytes using integer keys for compactness.
func EncodeEntry(entry Entry) ([]byte, error) {
	return logEncMode.Marshal(entry)
}

// DecodeEntry decodes CBOR bytes into an Entry.
func DecodeEntry(data []byte) (Entry, error) {
	var entry Entry
	if err := logDecMode.Unmarshal(data, &entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// NewEncoder creates a CBOR encoder for log entries that writes to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return logEncMode.NewEncoder(w)
}

// NewDecoder creates a CBOR decoder for log entries that reads from r.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return logDecMode.NewDecoder(r)
}
