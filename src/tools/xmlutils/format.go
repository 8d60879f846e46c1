// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package xmlutils

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
)

// XMLDeclaration is the canonical declaration prepended to every
// formatted XML file.
const XMLDeclaration = `<?xml version="1.0" encoding="utf-8"?>`

// indentSpaces is the number of spaces of one indentation level in
// formatted XML files.
const indentSpaces = 4

// FormatDocument serializes the given document in the canonical format:
// 4-space indentation, no blank lines, and a single XML declaration.
// Any declaration already present in the document is discarded.
func FormatDocument(doc *etree.Document) ([]byte, error) {
	doc = doc.Copy()
	var decls []etree.Token
	for _, tok := range doc.Child {
		if pi, ok := tok.(*etree.ProcInst); ok && strings.ToLower(pi.Target) == "xml" {
			decls = append(decls, pi)
		}
	}
	for _, pi := range decls {
		doc.RemoveChild(pi)
	}
	doc.Indent(indentSpaces)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(err, "unable to marshal document")
	}

	var buf bytes.Buffer
	buf.WriteString(XMLDeclaration)
	buf.WriteByte('\n')
	for _, line := range bytes.Split(out, []byte("\n")) {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// FormatFile reformats the XML file given by fileName in place.
// If the file cannot be read or parsed, it is left untouched and an
// error is returned.
func FormatFile(fileName string) error {
	fi, err := os.Stat(fileName)
	if err != nil {
		return errors.Wrapf(err, "unable to stat %s", fileName)
	}
	content, err := ioutil.ReadFile(fileName)
	if err != nil {
		return errors.Wrapf(err, "unable to read %s", fileName)
	}
	doc := etree.NewDocument()
	// Files may carry a declaration naming another encoding. They are
	// decoded accordingly and rewritten as UTF-8.
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if err = doc.ReadFromBytes(content); err != nil {
		return errors.Wrapf(err, "unable to parse %s", fileName)
	}
	if doc.Root() == nil {
		return errors.Errorf("unable to parse %s: no root element", fileName)
	}
	formatted, err := FormatDocument(doc)
	if err != nil {
		return errors.Wrapf(err, "unable to format %s", fileName)
	}
	if err = ioutil.WriteFile(fileName, formatted, fi.Mode()); err != nil {
		return errors.Wrapf(err, "unable to write %s", fileName)
	}
	return nil
}

// FormatFiles reformats in place all the XML files of the given paths.
// Files with a '.csv' extension are silently skipped, as are files with
// any other non-XML extension. A failure on one file does not prevent
// the processing of the following ones.
//
// The returned slice holds one error per file that failed.
func FormatFiles(fileNames []string) []error {
	var errs []error
	for _, fileName := range fileNames {
		switch strings.ToLower(filepath.Ext(fileName)) {
		case ".xml":
			if err := FormatFile(fileName); err != nil {
				errs = append(errs, err)
			}
		default:
			// .csv and other extensions are not ours to handle
		}
	}
	return errs
}
