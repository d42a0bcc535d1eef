package profile

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// ParseTranscriptText extracts plain text from an uploaded academic document
// (marksheet, transcript). Supports .pdf and .docx. The result is fed to
// NormalizeGPA, which scans it for a score or percentage.
func ParseTranscriptText(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return extractTextFromPDF(data)
	case ".docx":
		return extractTextFromDocx(data)
	default:
		return "", errors.New("unsupported file format: only pdf and docx are allowed")
	}
}

func extractTextFromPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	r, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return normalizeWhitespace(buf.String()), nil
}

func extractTextFromDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", err
			}
			defer rc.Close()
			docXML, err = io.ReadAll(rc)
			if err != nil {
				return "", err
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", errors.New("no document.xml found in docx")
	}
	xml := string(docXML)
	// Paragraph boundaries become newlines so score lines stay separate.
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	reTags := regexp.MustCompile(`<[^>]+>`)
	txt := reTags.ReplaceAllString(xml, " ")
	return normalizeWhitespace(txt), nil
}

func normalizeWhitespace(s string) string {
	re := regexp.MustCompile(`[ \t\r\f\v]+`)
	s = re.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "\u00a0", " ")
	reN := regexp.MustCompile(`\n+`)
	s = reN.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
