package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyFromURL(t *testing.T) {
	client := &Client{bucket: "avatars"}

	key := client.KeyFromURL("https://avatars.s3.us-east-1.amazonaws.com/user-1_1700000000000.jpg")
	assert.Equal(t, "user-1_1700000000000.jpg", key)
}

func TestKeyFromURL_StripsQuery(t *testing.T) {
	client := &Client{bucket: "avatars"}

	key := client.KeyFromURL("http://localhost:9000/avatars/user-1_1700000000000.jpg?token=abc")
	assert.Equal(t, "user-1_1700000000000.jpg", key)
}

func TestKeyFromURL_UnrecognizedShape(t *testing.T) {
	client := &Client{bucket: "avatars"}

	assert.Equal(t, "", client.KeyFromURL("https://example.com/some/other/path.jpg"))
	assert.Equal(t, "", client.KeyFromURL(""))
}
