package infrastructure

import (
	"encoding/base64"
	"strings"

	"github.com/DRSN-tech/billing-backend/pkg/e"
)

// MaxImageSize — максимальный размер изображения продукта после декодирования
const MaxImageSize = 5 << 20

// ImageDataURI — разобранный data URI изображения
type ImageDataURI struct {
	MimeType string
	Data     []byte
}

// ParseImageDataURI разбирает строку вида data:image/png;base64,....
// Возвращает e.ErrInvalidImage для неверного формата, e.ErrUnsupportedMediaType для
// типов кроме image/* и e.ErrImageTooLarge, если данные больше maxSize байт.
func ParseImageDataURI(uri string, maxSize int) (*ImageDataURI, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return nil, e.ErrInvalidImage
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, e.ErrInvalidImage
	}

	meta, ok = strings.CutSuffix(meta, ";base64")
	if !ok {
		return nil, e.ErrInvalidImage
	}

	mimeType, _, _ := strings.Cut(meta, ";")
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	if !strings.HasPrefix(mimeType, "image/") || len(mimeType) == len("image/") {
		return nil, e.ErrUnsupportedMediaType
	}

	// Грубая проверка до декодирования, чтобы не выделять память под заведомо большой файл
	if base64.StdEncoding.DecodedLen(len(payload)) > maxSize+2 {
		return nil, e.ErrImageTooLarge
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, e.Generic(e.ErrInvalidImage, err)
	}

	if len(data) > maxSize {
		return nil, e.ErrImageTooLarge
	}

	return &ImageDataURI{MimeType: mimeType, Data: data}, nil
}
