// printdic memory-maps a dictionary image and reports its header and
// per-section sizes, without running any trie or array query logic.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/kuromoji-go/sysdicbuilder/codec"
	"github.com/kuromoji-go/sysdicbuilder/dictionary"
	"github.com/kuromoji-go/sysdicbuilder/internal/mmap"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage of %s:
	%s file
`, os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if len(flag.Args()) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	if err := printDic(flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printDic(path string) error {
	fd, err := os.OpenFile(path, os.O_RDONLY, 0o644)
	if err != nil {
		return err
	}
	defer fd.Close()

	finfo, err := fd.Stat()
	if err != nil {
		return err
	}

	data, err := mmap.Mmap(fd, false, 0, finfo.Size())
	if err != nil {
		return err
	}
	defer mmap.Munmap(data)

	if len(data) < dictionary.HeaderStorageSize {
		return fmt.Errorf("%s: truncated header", path)
	}
	header, err := dictionary.ParseHeader(data)
	if err != nil {
		return err
	}

	fmt.Println("filename:", path)
	switch header.Version {
	case dictionary.SystemDictVersion:
		fmt.Println("type: system dictionary")
	default:
		return fmt.Errorf("%s: unrecognized dictionary version %#x", path, header.Version)
	}

	ctime := time.Unix(header.CreateTime, 0)
	zone, _ := ctime.Zone()
	fmt.Printf("createTime: %s[%s]\n", ctime.Format(time.RFC3339), zone)
	fmt.Println("description:", header.Description)

	sections, err := codec.ReadSections(bytes.NewReader(data[dictionary.HeaderStorageSize:]))
	if err != nil {
		return err
	}
	for _, s := range sections {
		fmt.Printf("section %-8s %d bytes\n", s.Name, len(s.Data))
	}

	if freqPos := findSection(sections, codec.SectionFreqPos); freqPos != nil {
		n := countNonZeroU32(freqPos.Data)
		fmt.Printf("frequent POS entries in use: %d\n", n)
	}

	return nil
}

func findSection(sections []codec.Section, name string) *codec.Section {
	for i := range sections {
		if sections[i].Name == name {
			return &sections[i]
		}
	}
	return nil
}

func countNonZeroU32(data []byte) int {
	n := 0
	for i := 0; i+4 <= len(data); i += 4 {
		if data[i] != 0 || data[i+1] != 0 || data[i+2] != 0 || data[i+3] != 0 {
			n++
		}
	}
	return n
}
