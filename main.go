package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sad0p/elfdwt/elfsum"
)

func fail(err error) {
	color.Red("Error: %v", err)
	os.Exit(1)
}

func main() {
	fmt.Println("ELFdwt for little endian")

	if len(os.Args) < 2 {
		fail(elfsum.ErrNoArgument)
	}
	path := os.Args[1]

	t := new(elfsum.TargetELF)

	fh, err := os.Open(path)
	if err != nil {
		fail(elfsum.ErrNoFile)
	}
	t.Fh = fh

	err = t.GetFileContents()
	fh.Close()
	if err != nil {
		fail(err)
	}

	if !t.IsElf() {
		fail(elfsum.ErrNoHeader)
	}

	if err := t.MapHeader(); err != nil {
		fail(err)
	}

	if err := t.GetSectionHeaders(); err != nil {
		fail(err)
	}

	vectors, err := t.VectorSection()
	if err != nil {
		fail(err)
	}

	crc := t.Checksum(vectors.Off)

	fmt.Printf("Signature over range: 0x%08x - %08x: %08x = %08x\n",
		0, (elfsum.VectorWords-1)*4, elfsum.VectorWords*4, crc)

	t.PatchChecksum(vectors.Off, crc)

	if err := t.Commit(path); err != nil {
		fail(err)
	}

	color.Green("Processing completed, success")
}
