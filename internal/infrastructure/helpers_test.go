package infrastructure

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/DRSN-tech/billing-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseImageDataURI(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("\x89PNG fake"))

	img, err := ParseImageDataURI("data:image/png;base64,"+payload, MaxImageSize)
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.MimeType)
	assert.Equal(t, []byte("\x89PNG fake"), img.Data)
}

func TestParseImageDataURIErrors(t *testing.T) {
	small := base64.StdEncoding.EncodeToString([]byte("abc"))

	tests := []struct {
		name string
		uri  string
		want error
	}{
		{"not a data uri", "https://example.com/a.png", e.ErrInvalidImage},
		{"missing comma", "data:image/png;base64", e.ErrInvalidImage},
		{"not base64", "data:image/png," + small, e.ErrInvalidImage},
		{"bad payload", "data:image/png;base64,%%%", e.ErrInvalidImage},
		{"not an image", "data:application/pdf;base64," + small, e.ErrUnsupportedMediaType},
		{"empty subtype", "data:image/;base64," + small, e.ErrUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseImageDataURI(tt.uri, MaxImageSize)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseImageDataURITooLarge(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte(strings.Repeat("x", 64)))

	_, err := ParseImageDataURI("data:image/jpeg;base64,"+payload, 32)
	assert.ErrorIs(t, err, e.ErrImageTooLarge)

	_, err = ParseImageDataURI("data:image/jpeg;base64,"+payload, 64)
	assert.NoError(t, err)
}
