// seehuhn.de/go/pdfgraph - a library for writing PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.
// Mkpdf writes a PDF file with one page for every content stream file
// given on the command line.
//
// Usage:
//
//	mkpdf [options] [page.txt ...]
//
// Each argument is read as a raw PDF content stream.  If no files are
// given, a single empty page is written.
package main

import (
	"compress/zlib"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	pdf "seehuhn.de/go/pdfgraph"
	"seehuhn.de/go/pdfgraph/filter"
	"seehuhn.de/go/pdfgraph/metadata"
	"seehuhn.de/go/pdfgraph/pages"
)

var (
	outFile   = flag.String("o", "out.pdf", "name of the output file")
	paperName = flag.String("paper", "A4", "paper size (A4, A5, letter or legal)")
	version   = flag.String("version", "1.4", "PDF version")
	title     = flag.String("title", "", "document title")
	author    = flag.String("author", "", "document author")
	withXMP   = flag.Bool("xmp", false, "include an XMP metadata stream")
	compress  = flag.Bool("compress", false, "compress the content streams")
	encrypt   = flag.Bool("encrypt", false, "encrypt the output file")
	userPwd   = flag.String("user", "", "user password (implies -encrypt)")
	ownerPwd  = flag.String("owner", "", "owner password (implies -encrypt)")
	deny      = flag.String("deny", "", "comma-separated list of permissions to deny (implies -encrypt)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [options] [page.txt ...]\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(flag.CommandLine.Output(),
			"\nValid permissions: %s\n", strings.Join(pdf.PermissionNames(), ", "))
	}
	flag.Parse()

	err := run(flag.Args())
	if err != nil {
		log.Fatal(err)
	}
}

func run(files []string) error {
	ver, err := pdf.ParseVersion(*version)
	if err != nil {
		return fmt.Errorf("%q: %w", *version, err)
	}
	paper, ok := pages.PaperSize(*paperName)
	if !ok {
		return fmt.Errorf("unknown paper size %q", *paperName)
	}

	doc := pdf.NewDocument(&pdf.Options{Version: ver})

	if *encrypt || *userPwd != "" || *ownerPwd != "" || *deny != "" {
		opt, err := encryptOptions()
		if err != nil {
			return err
		}
		err = doc.EnableEncryption(opt)
		if err != nil {
			return err
		}
	}

	tree, err := pages.NewTree(doc, paper)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		_, err = tree.AddPage(nil)
		if err != nil {
			return err
		}
	}
	var filters []filter.Filter
	if *compress {
		filters = append(filters, filter.Flate{Level: zlib.BestCompression})
	}
	for _, fname := range files {
		body, err := os.ReadFile(fname)
		if err != nil {
			return err
		}
		_, err = tree.AddPage(&pages.Attributes{
			Contents: body,
			Filters:  filters,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", fname, err)
		}
	}
	err = tree.Close()
	if err != nil {
		return err
	}

	now := time.Now()
	info := &pdf.Info{
		Title:        *title,
		Author:       *author,
		Producer:     "seehuhn.de/go/pdfgraph/cmd/mkpdf",
		CreationDate: now,
		ModDate:      now,
	}
	doc.SetInfo(info)

	catalog := &pdf.Catalog{
		Pages: tree.Root(),
	}
	if *withXMP {
		packet, err := metadata.FromInfo(info, ver)
		if err != nil {
			return err
		}
		catalog.Metadata, err = metadata.Embed(doc, packet)
		if err != nil {
			return err
		}
	}
	doc.SetCatalog(catalog)

	err = doc.WriteFile(*outFile)
	if err != nil {
		return err
	}
	log.Printf("wrote %d pages to %s", tree.NumPages(), *outFile)
	return nil
}

func encryptOptions() (*pdf.EncryptOptions, error) {
	opt := &pdf.EncryptOptions{
		UserPassword:  *userPwd,
		OwnerPassword: *ownerPwd,
		Permissions:   map[string]bool{},
	}
	for _, name := range strings.Split(*deny, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			opt.Permissions[name] = false
		}
	}

	if opt.OwnerPassword == "" && term.IsTerminal(int(syscall.Stdin)) {
		passwd, err := readPassword("owner password: ")
		if err != nil {
			return nil, err
		}
		opt.OwnerPassword = passwd
	}
	return opt, nil
}

func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	passwd, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println("***")
	if err != nil {
		return "", err
	}
	return string(passwd), nil
}
