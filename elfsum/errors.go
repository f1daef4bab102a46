package elfsum

import (
	"github.com/pkg/errors"
)

// One sentinel per terminal failure. Every failure aborts the run before
// anything is written back, so the input file is never left half-patched.
var (
	ErrNoArgument        = errors.New("argument expected")
	ErrNoFile            = errors.New("could not open file")
	ErrNoHeader          = errors.New("invalid elf file, no header")
	ErrHeaderTooSmall    = errors.New("file too small, header")
	ErrNotEnoughSections = errors.New("not enough sections")
	ErrSectionsTooSmall  = errors.New("file too small, sections")
	ErrNotProgbits       = errors.New("first section does not have the progbits flag set")
	ErrVectorsTooSmall   = errors.New("file too small, vectors")
)
