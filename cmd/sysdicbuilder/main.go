// sysdicbuilder builds a system dictionary image from one or more
// lexicon source files.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/kuromoji-go/sysdicbuilder/dictionary"
	"github.com/kuromoji-go/sysdicbuilder/lexicon"
	"github.com/kuromoji-go/sysdicbuilder/louds"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage of %s:
	%s -o file [-d description] [-t minKeyLength] [-j] [-preserve] [-config file] file1 [file2 ...]

Options:
`, os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}

	var (
		outputPath  string
		description string
		minKeyLen   int
		preserve    bool
		utf16       bool
		configPath  string
	)
	flag.StringVar(&outputPath, "o", "", "output to file")
	flag.StringVar(&description, "d", "", "comment")
	flag.IntVar(&minKeyLen, "t", dictionary.DefaultMinKeyLengthToUseSmallCostEncoding,
		"minimum key length (in runes) to use small cost encoding")
	flag.BoolVar(&preserve, "preserve", false, "also write per-section debug files")
	flag.BoolVar(&utf16, "j", false, "lexicon source files are UTF-16 text, not UTF-8")
	flag.StringVar(&configPath, "config", "", "JSON file whose fields override the above flags")

	flag.Parse()

	if outputPath == "" || len(flag.Args()) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	config := dictionary.NewConfig()
	config.MinKeyLengthToUseSmallCostEncoding = minKeyLen
	config.PreserveIntermediateDictionary = preserve
	config.Description = description
	config.UTF16String = utf16

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			os.Exit(1)
		}
		if err := config.ApplyJSONOverlay(data); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", configPath, err)
			os.Exit(1)
		}
	}

	if err := run(outputPath, config, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func run(outputPath string, config dictionary.Config, lexiconPaths []string) error {
	p := message.NewPrinter(language.English)

	fmt.Fprint(os.Stderr, "reading the source files...")
	var tokens []*dictionary.Token
	for _, path := range lexiconPaths {
		ts, err := readLexicon(path, config.UTF16String)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		tokens = append(tokens, ts...)
	}
	p.Fprintf(os.Stderr, " %d words\n", len(tokens))

	builder := dictionary.NewBuilder(config, newTrieBuilder, newPackedArrayBuilder)

	fmt.Fprint(os.Stderr, "building the dictionary...")
	img, err := builder.Build(tokens)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}
	p.Fprintf(os.Stderr, " %d keys, %d values, %d frequent POS\n",
		img.Stats.NumKeys, img.Stats.NumValues, img.Stats.NumFrequentPos)
	p.Fprintf(os.Stderr, "value trie: %d bytes, key trie: %d bytes, token array: %d bytes\n",
		img.Stats.ValueTrieBytes, img.Stats.KeyTrieBytes, img.Stats.TokenArrayBytes)

	header := dictionary.NewHeader(dictionary.SystemDictVersion, time.Now().Unix(), config.Description)

	out, err := os.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%s: %w", outputPath, err)
	}
	defer out.Close()

	bufout := bufio.NewWriter(out)
	fmt.Fprint(os.Stderr, "writing the image...")
	if err := dictionary.WriteImage(bufout, header, img); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	if err := bufout.Flush(); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	fmt.Fprintln(os.Stderr, " done")

	if config.PreserveIntermediateDictionary {
		if err := dictionary.WriteDebugSections(outputPath, img); err != nil {
			return err
		}
	}

	return nil
}

func readLexicon(path string, utf16 bool) ([]*dictionary.Token, error) {
	f, err := os.OpenFile(path, os.O_RDONLY, 0o644)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if utf16 {
		return lexicon.NewUTF16Reader(f).ReadAll()
	}
	return lexicon.NewReader(f).ReadAll()
}

func newTrieBuilder() dictionary.TrieBuilder {
	return louds.NewTrie()
}

func newPackedArrayBuilder() dictionary.PackedArrayBuilder {
	return louds.NewPackedArray()
}
