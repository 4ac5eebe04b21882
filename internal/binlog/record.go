package binlog

import (
	"encoding/binary"
	"hash/crc32"
)

// Frame encoding: payload | crc32c(payload). Record boundaries come from the
// store's value boundaries, so only integrity needs to travel in-band.

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

func encodeFrame(payload []byte) []byte {
	out := make([]byte, 0, len(payload)+4)
	out = append(out, payload...)
	var crc [4]byte
	binary.BigEndian.PutUint32(crc[:], crc32.Checksum(payload, castagnoli))
	return append(out, crc[:]...)
}

func decodeFrame(b []byte) ([]byte, bool) {
	if len(b) < 4 {
		return nil, false
	}
	payload := b[:len(b)-4]
	if crc32.Checksum(payload, castagnoli) != binary.BigEndian.Uint32(b[len(b)-4:]) {
		return nil, false
	}
	return append([]byte(nil), payload...), true
}
