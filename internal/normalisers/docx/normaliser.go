package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/custodia-labs/specxtract/internal/core/domain"
	"github.com/custodia-labs/specxtract/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// MIMEType is the WordprocessingML package content type.
const MIMEType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// wordNS is the WordprocessingML main namespace.
const wordNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// textParts matches the package parts that carry document text.
var textParts = regexp.MustCompile(`^word/(header|document|footer)[0-9]*\.xml$`)

// Normaliser handles DOCX documents.
type Normaliser struct{}

// New creates a new DOCX normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{MIMEType}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50 // Generic MIME normaliser
}

// Normalise returns one text part per header, body and footer part,
// in archive order.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) ([]domain.TextPart, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	reader, err := zip.NewReader(bytes.NewReader(raw.Content), int64(len(raw.Content)))
	if err != nil {
		return nil, fmt.Errorf("open package %s: %w", raw.URI, errors.Join(domain.ErrSourceUnavailable, err))
	}

	var parts []domain.TextPart
	for _, file := range reader.File {
		if !textParts.MatchString(file.Name) {
			continue
		}

		content, err := readPart(file)
		if err != nil {
			return nil, fmt.Errorf("read %s in %s: %w", file.Name, raw.URI, errors.Join(domain.ErrSourceUnavailable, err))
		}

		text, err := Linearise(content)
		if err != nil {
			return nil, fmt.Errorf("parse %s in %s: %w", file.Name, raw.URI, errors.Join(domain.ErrSourceUnavailable, err))
		}

		parts = append(parts, domain.TextPart{
			DocumentID: raw.ID,
			Part:       file.Name,
			Text:       text,
		})
	}
	return parts, nil
}

func readPart(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// Linearise converts a WordprocessingML part to plain text.
// Run text is copied verbatim, tabs and carriage returns become "\t",
// breaks become "\n" and every paragraph starts with "\n\n".
func Linearise(content []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(content))

	var b strings.Builder
	inText := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space != wordNS {
				continue
			}
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab", "cr":
				b.WriteByte('\t')
			case "br":
				b.WriteByte('\n')
			case "p":
				b.WriteString("\n\n")
			}
		case xml.EndElement:
			if t.Name.Space == wordNS && t.Name.Local == "t" {
				inText = false
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}
