package elfsum

import (
	"encoding/binary"
	"io/ioutil"

	"github.com/pkg/errors"
)

// Checksum sums the first VectorWords little-endian words of the vector
// table at off and negates the sum modulo 2^32, so that the 8-word window
// (data words plus checksum slot) sums to zero once patched. Bounds are
// guaranteed by VectorSection.
func (t *TargetELF) Checksum(off uint32) uint32 {
	var sum uint32
	for i := 0; i < VectorWords; i++ {
		sum += binary.LittleEndian.Uint32(t.Contents[int(off)+i*wordSize:])
	}
	return -sum
}

// PatchChecksum writes crc into the 8th word slot of the vector table,
// little-endian. No other bytes are touched.
func (t *TargetELF) PatchChecksum(off uint32, crc uint32) {
	binary.LittleEndian.PutUint32(t.Contents[int(off)+checksumOff:], crc)
}

// Commit overwrites path with the patched buffer. The rewrite is a plain
// truncating write of the same path, not a temp-file rename.
func (t *TargetELF) Commit(path string) error {
	if err := ioutil.WriteFile(path, t.Contents, 0644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}
