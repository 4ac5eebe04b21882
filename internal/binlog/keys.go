package binlog

import "encoding/binary"

// Keyspace helpers. Layout (byte-wise, lexicographically sortable):
// - bl/{name}/m
// - bl/{name}/e/{seq_be8}

var (
	blPrefix   = []byte("bl/")
	metaSuffix = []byte("/m")
	entrySeg   = []byte("/e/")
)

func appendBE8(dst []byte, v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return append(dst, b[:]...)
}

// keyMeta builds the metadata key carrying the last appended sequence.
func keyMeta(name string) []byte {
	k := make([]byte, 0, len(blPrefix)+len(name)+len(metaSuffix))
	k = append(k, blPrefix...)
	k = append(k, name...)
	k = append(k, metaSuffix...)
	return k
}

// keyEntry builds a record key with a big-endian sequence for scan ordering.
func keyEntry(name string, seq uint64) []byte {
	k := make([]byte, 0, len(blPrefix)+len(name)+len(entrySeg)+8)
	k = append(k, blPrefix...)
	k = append(k, name...)
	k = append(k, entrySeg...)
	k = appendBE8(k, seq)
	return k
}
