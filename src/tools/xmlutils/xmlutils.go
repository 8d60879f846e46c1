// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package xmlutils provides utilities for working with XML in the
// context of hexya-starter: parsing helpers for resource files and
// the canonical formatter used by the format-xml command.
package xmlutils

import (
	"github.com/beevik/etree"
	"github.com/pkg/errors"
)

// XMLToDocument parses the given xml string and returns an etree.Document
func XMLToDocument(xmlStr string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(xmlStr); err != nil {
		return nil, errors.Wrap(err, "unable to parse XML")
	}
	return doc, nil
}

// XMLToElement parses the given xml string and returns the root node
func XMLToElement(xmlStr string) (*etree.Element, error) {
	doc, err := XMLToDocument(xmlStr)
	if err != nil {
		return nil, err
	}
	return doc.Root(), nil
}

// ElementToXML returns the XML bytes of the given element and
// all its children.
func ElementToXML(element *etree.Element) ([]byte, error) {
	doc := etree.NewDocument()
	doc.SetRoot(element.Copy())
	doc.Indent(4)
	xml, err := doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(err, "unable to marshal element")
	}
	return xml, nil
}

// HasParentTag returns true if this element has at least
// one ancestor node with the given parent tag name
func HasParentTag(element *etree.Element, parent string) bool {
	for e := element.Parent(); e != nil; e = e.Parent() {
		if e.Tag == parent {
			return true
		}
	}
	return false
}
