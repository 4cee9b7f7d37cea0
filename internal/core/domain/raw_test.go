package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRawDocument_Fields(t *testing.T) {
	doc := RawDocument{
		ID:       "catalogue.docx",
		URI:      "/docs/catalogue.docx",
		MIMEType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		Content:  []byte("PK\x03\x04"),
	}

	assert.Equal(t, "catalogue.docx", doc.ID)
	assert.Equal(t, "/docs/catalogue.docx", doc.URI)
	assert.Equal(t, []byte("PK\x03\x04"), doc.Content)
}

func TestRawDocument_ZeroValue(t *testing.T) {
	var doc RawDocument

	assert.Empty(t, doc.ID)
	assert.Empty(t, doc.MIMEType)
	assert.Nil(t, doc.Content)
	assert.NoError(t, doc.Err)
}

func TestRawDocument_ReadError(t *testing.T) {
	doc := RawDocument{
		ID:  "locked.docx",
		Err: fmt.Errorf("read /docs/locked.docx: %w", ErrSourceUnavailable),
	}

	assert.Nil(t, doc.Content)
	assert.True(t, errors.Is(doc.Err, ErrSourceUnavailable))
}

func TestTextPart(t *testing.T) {
	tests := []struct {
		name string
		part TextPart
	}{
		{
			name: "docx body part",
			part: TextPart{DocumentID: "a.docx", Part: "word/document.xml", Text: "Brand: Acme"},
		},
		{
			name: "single-part source",
			part: TextPart{DocumentID: "a.txt", Text: "Brand: Acme"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.part.DocumentID)
			assert.Equal(t, "Brand: Acme", tt.part.Text)
		})
	}
}
