package domain

// Document описывает файл, который хранится в S3
type Document struct {
	ObjectKey   string
	Bytes       []byte
	ContentType string
}

func NewDocument(objectKey string, data []byte, contentType string) *Document {
	return &Document{
		ObjectKey:   objectKey,
		Bytes:       data,
		ContentType: contentType,
	}
}
