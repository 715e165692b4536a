package utils

import (
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

func GetUUID() string {
	return uuid.New().String()
}

// GenerateID returns a short random id for user-facing references such as
// order numbers. It falls back to a uuid if the nanoid source fails.
func GenerateID(n int) string {
	id, err := gonanoid.Generate(idAlphabet, n)
	if err != nil {
		return GetUUID()
	}
	return id
}

// Slugify turns a display name into a url-safe id.
func Slugify(name string) string {
	return slug.Make(name)
}
