package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

func readElementText(decoder *xml.Decoder) (string, error) {
	var text strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text.String(), err
		}
		switch t := token.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text.String(), nil
}

func attrValue(se xml.StartElement, local string) string {
	for _, attr := range se.Attr {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}

// resolveRelativePath turns a relationship target into a package path.
// Relative targets resolve against baseDir; "../x" resolves to "xl/x".
func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	if strings.HasPrefix(target, "../") {
		clean := target
		for strings.HasPrefix(clean, "../") {
			clean = strings.TrimPrefix(clean, "../")
		}
		return "xl/" + clean
	}
	return baseDir + "/" + target
}

// relsPath returns the relationships part of a package part,
// e.g. xl/worksheets/sheet1.xml -> xl/worksheets/_rels/sheet1.xml.rels.
func relsPath(part string) string {
	i := strings.LastIndex(part, "/")
	return part[:i+1] + "_rels/" + part[i+1:] + ".rels"
}

// relationships returns rId -> target for relationships of the given
// type, e.g. "chart" or "drawing".
func relationships(data []byte, kind string) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "Relationship" {
			continue
		}
		if strings.HasSuffix(attrValue(se, "Type"), "/"+kind) {
			result[attrValue(se, "Id")] = attrValue(se, "Target")
		}
	}

	return result
}

// sheetParts returns sheet name -> worksheet part path.
func sheetParts(r *zip.Reader) (map[string]string, error) {
	result := make(map[string]string)

	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil || workbookXML == nil {
		return result, err
	}
	relsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels")
	if err != nil || relsXML == nil {
		return result, err
	}
	targets := relationships(relsXML, "worksheet")

	decoder := xml.NewDecoder(bytes.NewReader(workbookXML))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "sheet" {
			continue
		}
		if target, ok := targets[attrValue(se, "id")]; ok {
			result[attrValue(se, "name")] = resolveRelativePath(target, "xl")
		}
	}

	return result, nil
}
