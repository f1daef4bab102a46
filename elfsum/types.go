package elfsum

import (
	"debug/elf"
	"os"
)

const (
	// VectorWords is the number of words at the start of the vector table
	// that feed the checksum.
	VectorWords = 7

	// ChecksumWindow is the byte length of the full 8-word window: the
	// summed words plus the checksum slot that follows them.
	ChecksumWindow = (VectorWords + 1) * wordSize

	wordSize    = 4
	checksumOff = VectorWords * wordSize

	ehdrSize = 52 //sizeof(elf.Header32)
	shdrSize = 40 //sizeof(elf.Section32)
)

type TargetELF struct {
	Filesz   int64
	Contents []byte
	Ident    []byte
	Hdr      *elf.Header32
	Shdrs    []elf.Section32
	Fh       *os.File
}
