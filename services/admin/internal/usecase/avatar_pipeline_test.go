package usecase

import (
	"bytes"
	"image/color"
	"image/png"
	"regexp"
	"strings"
	"testing"

	"backoffice/pkg/logger"
	"backoffice/services/admin/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, solidImage(width, height, color.White)))
	return &buf
}

func TestAvatarPipeline_Upload(t *testing.T) {
	log := &eventLog{}
	storage := newStubStorage(log)
	pipeline := NewAvatarPipeline(storage, logger.New())

	url, err := pipeline.Upload("user-1", encodePNG(t, 1200, 800), "")

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`/avatars/user-1_\d+\.jpg$`), url)
	assert.Len(t, storage.objects, 1)

	events := log.all()
	require.Len(t, events, 2)
	assert.True(t, strings.HasPrefix(events[0], "upload:user-1_"))
	assert.True(t, strings.HasPrefix(events[1], "resolve:user-1_"))
}

func TestAvatarPipeline_Upload_DeletesPreviousFirst(t *testing.T) {
	log := &eventLog{}
	storage := newStubStorage(log)
	storage.objects["user-1_100.jpg"] = []byte("old")
	pipeline := NewAvatarPipeline(storage, logger.New())

	_, err := pipeline.Upload("user-1", encodePNG(t, 100, 100), "http://localhost:9000/avatars/user-1_100.jpg")

	require.NoError(t, err)

	events := log.all()
	require.Len(t, events, 3)
	assert.Equal(t, "delete:user-1_100.jpg", events[0])
	assert.True(t, strings.HasPrefix(events[1], "upload:"))
	assert.True(t, strings.HasPrefix(events[2], "resolve:"))
}

func TestAvatarPipeline_Upload_PreviousDeleteFailureIgnored(t *testing.T) {
	log := &eventLog{}
	storage := newStubStorage(log)
	storage.failDelete = true
	pipeline := NewAvatarPipeline(storage, logger.New())

	url, err := pipeline.Upload("user-1", encodePNG(t, 100, 100), "http://localhost:9000/avatars/user-1_100.jpg")

	// Best-effort: the failed removal does not abort the pipeline
	require.NoError(t, err)
	assert.NotEmpty(t, url)
}

func TestAvatarPipeline_Upload_DecodeFailure(t *testing.T) {
	log := &eventLog{}
	storage := newStubStorage(log)
	pipeline := NewAvatarPipeline(storage, logger.New())

	_, err := pipeline.Upload("user-1", strings.NewReader("not an image"), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrAssetPipeline)
	// Nothing was uploaded
	assert.Empty(t, storage.objects)
}

func TestAvatarPipeline_Upload_StorageFailure(t *testing.T) {
	log := &eventLog{}
	storage := newStubStorage(log)
	storage.failUpload = true
	pipeline := NewAvatarPipeline(storage, logger.New())

	_, err := pipeline.Upload("user-1", encodePNG(t, 100, 100), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrAssetPipeline)
}

func TestAvatarPipeline_DeleteFromStorage(t *testing.T) {
	log := &eventLog{}
	storage := newStubStorage(log)
	storage.objects["user-1_100.jpg"] = []byte("old")
	pipeline := NewAvatarPipeline(storage, logger.New())

	err := pipeline.DeleteFromStorage("http://localhost:9000/avatars/user-1_100.jpg?token=abc")

	require.NoError(t, err)
	assert.Empty(t, storage.objects)
}

func TestAvatarPipeline_DeleteFromStorage_UnrecognizedURL(t *testing.T) {
	log := &eventLog{}
	storage := newStubStorage(log)
	pipeline := NewAvatarPipeline(storage, logger.New())

	// Treated as already absent, not an error
	err := pipeline.DeleteFromStorage("https://example.com/elsewhere.jpg")

	require.NoError(t, err)
	assert.Empty(t, log.all())
}
