package domain

import (
	"encoding/binary"
	"fmt"
	"time"
)

// RecordVersion is the current layout version byte of the encoded record
const RecordVersion = 1

// RecordSize is the fixed footprint of an encoded policy record:
// three 32-byte identities, five 8-byte scalars, five optional 8-byte
// values each with a 1-byte present flag, a status byte and a version byte.
const RecordSize = 3*32 + 5*8 + 5*9 + 2

// EncodeRecord serializes a policy into the fixed-width record layout.
// All integers are big-endian; timestamps are Unix seconds. The layout has
// no variable-length fields, so the output is always RecordSize bytes.
func EncodeRecord(p *Policy) ([]byte, error) {
	if !p.Authority.Valid() || !p.PolicyHolder.Valid() || !p.OracleFeedID.Valid() {
		return nil, fmt.Errorf("encode policy record: malformed identity")
	}
	code, ok := statusCodes[p.Status]
	if !ok {
		return nil, fmt.Errorf("encode policy record: unknown status %q", p.Status)
	}

	buf := make([]byte, 0, RecordSize)
	for _, id := range []Identity{p.Authority, p.PolicyHolder, p.OracleFeedID} {
		b := id.Bytes()
		buf = append(buf, b[:]...)
	}
	buf = binary.BigEndian.AppendUint64(buf, uint64(p.TriggerThreshold))
	buf = binary.BigEndian.AppendUint64(buf, p.CoverageAmount)
	buf = binary.BigEndian.AppendUint64(buf, p.PremiumAmount)
	buf = binary.BigEndian.AppendUint64(buf, uint64(p.ExpiryTime.Unix()))
	buf = binary.BigEndian.AppendUint64(buf, uint64(p.CreatedTime.Unix()))

	for _, ts := range []*time.Time{p.PurchasedTime, p.TriggeredTime, p.PayoutTime, p.CancelledTime} {
		buf = appendOptionalInt64(buf, optionalUnix(ts))
	}
	var price *int64
	if p.TriggerPrice != nil {
		v := *p.TriggerPrice
		price = &v
	}
	buf = appendOptionalInt64(buf, price)

	buf = append(buf, code, RecordVersion)
	return buf, nil
}

// DecodeRecord parses a fixed-width record back into a policy
func DecodeRecord(data []byte) (*Policy, error) {
	if len(data) != RecordSize {
		return nil, fmt.Errorf("decode policy record: want %d bytes, got %d", RecordSize, len(data))
	}
	if version := data[RecordSize-1]; version != RecordVersion {
		return nil, fmt.Errorf("decode policy record: unsupported layout version %d", version)
	}
	status, ok := statusFromCode[data[RecordSize-2]]
	if !ok {
		return nil, fmt.Errorf("decode policy record: unknown status byte %d", data[RecordSize-2])
	}

	p := &Policy{Status: status}
	off := 0
	ids := make([]Identity, 3)
	for i := range ids {
		var b [32]byte
		copy(b[:], data[off:off+32])
		ids[i] = IdentityFromBytes(b)
		off += 32
	}
	p.Authority, p.PolicyHolder, p.OracleFeedID = ids[0], ids[1], ids[2]

	p.TriggerThreshold = int64(binary.BigEndian.Uint64(data[off:]))
	p.CoverageAmount = binary.BigEndian.Uint64(data[off+8:])
	p.PremiumAmount = binary.BigEndian.Uint64(data[off+16:])
	p.ExpiryTime = time.Unix(int64(binary.BigEndian.Uint64(data[off+24:])), 0).UTC()
	p.CreatedTime = time.Unix(int64(binary.BigEndian.Uint64(data[off+32:])), 0).UTC()
	off += 40

	for _, dst := range []**time.Time{&p.PurchasedTime, &p.TriggeredTime, &p.PayoutTime, &p.CancelledTime} {
		v, next, err := readOptionalInt64(data, off)
		if err != nil {
			return nil, err
		}
		if v != nil {
			t := time.Unix(*v, 0).UTC()
			*dst = &t
		}
		off = next
	}
	v, _, err := readOptionalInt64(data, off)
	if err != nil {
		return nil, err
	}
	p.TriggerPrice = v

	return p, nil
}

func optionalUnix(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	v := t.Unix()
	return &v
}

func appendOptionalInt64(buf []byte, v *int64) []byte {
	if v == nil {
		buf = append(buf, 0)
		return binary.BigEndian.AppendUint64(buf, 0)
	}
	buf = append(buf, 1)
	return binary.BigEndian.AppendUint64(buf, uint64(*v))
}

func readOptionalInt64(data []byte, off int) (*int64, int, error) {
	flag := data[off]
	raw := int64(binary.BigEndian.Uint64(data[off+1:]))
	switch flag {
	case 0:
		return nil, off + 9, nil
	case 1:
		return &raw, off + 9, nil
	default:
		return nil, 0, fmt.Errorf("decode policy record: invalid present flag %d at offset %d", flag, off)
	}
}
