package storage

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	keyPattern := regexp.MustCompile(`^articles/\d{13}_[0-9a-f]{8}\.[a-z0-9]+$`)

	t.Run("generates key with prefix, timestamp and extension", func(t *testing.T) {
		key := ObjectKey(ArticleImagePrefix, "photo.jpg")
		assert.Regexp(t, keyPattern, key)
		assert.Regexp(t, `\.jpg$`, key)
	})

	t.Run("lowercases extension", func(t *testing.T) {
		key := ObjectKey(ArticleImagePrefix, "SCAN.PNG")
		assert.Regexp(t, `\.png$`, key)
	})

	t.Run("falls back to bin when filename has no extension", func(t *testing.T) {
		key := ObjectKey(ArticleImagePrefix, "rawupload")
		assert.Regexp(t, `\.bin$`, key)
	})

	t.Run("consecutive keys do not collide", func(t *testing.T) {
		a := ObjectKey(ArticleImagePrefix, "a.jpg")
		b := ObjectKey(ArticleImagePrefix, "a.jpg")
		assert.NotEqual(t, a, b)
	})
}
