package elfsum

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

var elfMagic = []byte{'\x7f', 'E', 'L', 'F'}

func (t *TargetELF) GetFileContents() error {
	fStat, err := t.Fh.Stat()
	if err != nil {
		return ErrNoFile
	}

	t.Filesz = fStat.Size()
	if t.Filesz == 0 {
		return ErrNoFile
	}
	t.Contents = make([]byte, t.Filesz)

	if _, err := io.ReadFull(t.Fh, t.Contents); err != nil {
		return ErrNoFile
	}
	return nil
}

func (t *TargetELF) IsElf() bool {
	if len(t.Contents) < len(elfMagic) {
		return false
	}
	t.Ident = t.Contents[:len(elfMagic)]
	return bytes.Equal(t.Ident, elfMagic)
}

// MapHeader decodes the 32-bit ELF header. The tool only understands the
// ELFCLASS32 little-endian layout, so the header is decoded as such without
// consulting the class or data bytes of e_ident.
func (t *TargetELF) MapHeader() error {
	if len(t.Contents) < ehdrSize {
		return ErrHeaderTooSmall
	}

	h := bytes.NewReader(t.Contents)
	t.Hdr = new(elf.Header32)
	if err := binary.Read(h, binary.LittleEndian, t.Hdr); err != nil {
		return errors.Wrap(err, "decoding elf header")
	}
	return nil
}

// GetSectionHeaders decodes the full section header table. The size check
// uses the fixed 40-byte entry size, not e_shentsize, and the declared count
// must cover the reserved null entry plus at least one real section.
func (t *TargetELF) GetSectionHeaders() error {
	h := t.Hdr

	if h.Shnum < 2 {
		return ErrNotEnoughSections
	}

	end := uint64(h.Shoff) + uint64(h.Shnum)*shdrSize
	if uint64(len(t.Contents)) < end {
		return ErrSectionsTooSmall
	}

	sr := bytes.NewBuffer(t.Contents[h.Shoff:end])
	t.Shdrs = make([]elf.Section32, h.Shnum)

	if err := binary.Read(sr, binary.LittleEndian, t.Shdrs); err != nil {
		return errors.Wrap(err, "decoding section header table")
	}
	return nil
}

// VectorSection validates and returns the section at index 1, the first
// section after the reserved null entry, which is expected to hold the
// vector table. Its file region must be progbits and leave room for the
// 8-word checksum window.
func (t *TargetELF) VectorSection() (*elf.Section32, error) {
	vectors := &t.Shdrs[1]

	if elf.SectionType(vectors.Type) != elf.SHT_PROGBITS {
		return nil, ErrNotProgbits
	}

	if uint64(len(t.Contents)) < uint64(vectors.Off)+ChecksumWindow {
		return nil, ErrVectorsTooSmall
	}
	return vectors, nil
}
