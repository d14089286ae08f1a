/*
Copyright (c) 2019-2021 Andreas T Jonsson

This software is provided 'as-is', without any express or implied
warranty. In no event will the authors be held liable for any damages
arising from the use of this software.

Permission is granted to anyone to use this software for any purpose,
including commercial applications, and to alter it and redistribute it
freely, subject to the following restrictions:

1. The origin of this software must not be misrepresented; you must not
   claim that you wrote the original software. If you use this software
   in a product, an acknowledgment in the product documentation would be
   appreciated but is not required.
2. Altered source versions must be plainly marked as such, and must not be
   misrepresented as being the original software.
3. This notice may not be removed or altered from any source distribution.
*/

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/andreas-jonsson/lcdencode/charset"
	"github.com/andreas-jonsson/lcdencode/preview"
	"github.com/andreas-jonsson/lcdencode/version"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

type options struct {
	input, output, miss string
	width               int
	list, preview       bool
}

var (
	opt options
	ver bool
)

func init() {
	pflag.StringVarP(&opt.input, "input", "i", "-", "Read UTF-8 text from file")
	pflag.StringVarP(&opt.output, "output", "o", "-", "Write encoded bytes to file")
	pflag.StringVarP(&opt.miss, "miss", "m", "keep", "Unmapped characters: keep, skip, sub or error")
	pflag.IntVarP(&opt.width, "width", "w", 20, "Number of display columns in preview")
	pflag.BoolVarP(&opt.list, "list", "l", false, "Print the character table")
	pflag.BoolVarP(&opt.preview, "preview", "p", false, "Show the encoded text in the terminal")
	pflag.BoolVarP(&ver, "version", "v", false, "Print version information")
}

var showPreview = func(p *preview.Page, data []byte) error {
	return p.Show(data)
}

func main() {
	pflag.Parse()

	if ver {
		fmt.Printf("%s (%s)\n", version.Current.FullString(), version.Hash)
		return
	}

	if err := run(afero.NewOsFs(), opt, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(fs afero.Fs, opt options, stdin io.Reader, stdout io.Writer) error {
	table := charset.New()

	if opt.list {
		for _, e := range table.Entries() {
			if _, err := fmt.Fprintf(stdout, "0x%02X\t%c\n", e.Byte, e.Char); err != nil {
				return err
			}
		}
		return nil
	}

	policy, err := charset.ParseMissPolicy(opt.miss)
	if err != nil {
		return err
	}

	src, err := readInput(fs, opt.input, stdin)
	if err != nil {
		return err
	}

	data, err := charset.NewEncoding(table, policy).Bytes(src)
	if err != nil {
		return fmt.Errorf("could not encode %s: %w", opt.input, err)
	}

	if opt.preview {
		return showPreview(preview.New(table, opt.width), data)
	}
	return writeOutput(fs, opt.output, stdout, data)
}

func readInput(fs afero.Fs, name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return afero.ReadFile(fs, name)
}

func writeOutput(fs afero.Fs, name string, stdout io.Writer, data []byte) error {
	if name == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := fs.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return err
	}
	if err := afero.WriteFile(fs, name, data, 0644); err != nil {
		return err
	}
	log.Printf("Wrote %d bytes to %s", len(data), name)
	return nil
}
