package utils

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// LoadJSONRecords decodes a JSON array file and validates every record.
// A missing file yields no records.
func LoadJSONRecords[T any](path string) ([]T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return DecodeJSONRecords[T](raw, path)
}

func DecodeJSONRecords[T any](raw []byte, source string) ([]T, error) {
	var records []T
	if err := sonic.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", source, err)
	}
	for i := range records {
		if err := validate.Struct(&records[i]); err != nil {
			return nil, fmt.Errorf("%s record %d: %w", source, i, err)
		}
	}
	return records, nil
}
