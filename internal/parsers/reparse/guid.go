package reparse

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// putGUID writes id in the Windows GUID layout: Data1, Data2 and Data3 are
// little-endian, Data4 is stored as is.
func putGUID(b []byte, id uuid.UUID) {
	binary.LittleEndian.PutUint32(b[0:4], binary.BigEndian.Uint32(id[0:4]))
	binary.LittleEndian.PutUint16(b[4:6], binary.BigEndian.Uint16(id[4:6]))
	binary.LittleEndian.PutUint16(b[6:8], binary.BigEndian.Uint16(id[6:8]))
	copy(b[8:16], id[8:16])
}

// readGUID is the inverse of putGUID.
func readGUID(b []byte) uuid.UUID {
	var id uuid.UUID
	binary.BigEndian.PutUint32(id[0:4], binary.LittleEndian.Uint32(b[0:4]))
	binary.BigEndian.PutUint16(id[4:6], binary.LittleEndian.Uint16(b[4:6]))
	binary.BigEndian.PutUint16(id[6:8], binary.LittleEndian.Uint16(b[6:8]))
	copy(id[8:16], b[8:16])
	return id
}
