package database

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// IsDuplicateKey kiểm tra lỗi vi phạm unique index (E11000)
func IsDuplicateKey(err error) bool {
	return err != nil && mongo.IsDuplicateKeyError(err)
}

// IsNotFound kiểm tra lỗi không tìm thấy document
func IsNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
