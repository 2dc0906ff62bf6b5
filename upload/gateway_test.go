package upload

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/princinho/estudiobackend/models"
	"github.com/princinho/estudiobackend/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallest valid PNG header is enough for sniffing
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func newGateway() (*Gateway, *storage.Memory) {
	mem := storage.NewMemory("http://test/media")
	g := NewGateway(mem)
	g.now = func() time.Time { return time.Unix(1700000000, 0) }
	return g, mem
}

func TestStoreMediaKinds(t *testing.T) {
	g, mem := newGateway()
	ctx := context.Background()

	video, err := g.Store(ctx, strings.NewReader("...."), "Clip Final.MP4", "video/mp4", "laser", false)
	require.NoError(t, err)
	assert.Equal(t, models.MediaVideo, video.MediaType)
	assert.True(t, strings.HasPrefix(video.Key, "laser/1700000000-"))
	assert.True(t, strings.HasSuffix(video.Key, "-clip-final.mp4"))
	assert.Equal(t, "http://test/media/"+video.Key, video.URL)

	img, err := g.Store(ctx, strings.NewReader("...."), "logo.png", "image/png", "Diseño Gráfico/Portada", false)
	require.NoError(t, err)
	assert.Equal(t, models.MediaImage, img.MediaType)
	assert.True(t, strings.HasPrefix(img.Key, "diseno-grafico/portada/"))

	assert.Equal(t, 2, mem.Len())
}

func TestStoreSniffsGenericType(t *testing.T) {
	g, mem := newGateway()
	res, err := g.Store(context.Background(), bytes.NewReader(pngHeader), "x", "application/octet-stream", "", false)
	require.NoError(t, err)
	assert.Equal(t, models.MediaImage, res.MediaType)
	assert.True(t, strings.HasPrefix(res.Key, "uploads/"))

	_, ct, err := mem.Open(context.Background(), res.Key)
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)
}

func TestStoreRejects(t *testing.T) {
	g, mem := newGateway()
	ctx := context.Background()

	_, err := g.Store(ctx, strings.NewReader("%PDF-1.4"), "doc.pdf", "application/pdf", "docs", false)
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = g.Store(ctx, strings.NewReader("...."), "clip.mp4", "video/mp4", "hero", true)
	assert.ErrorIs(t, err, ErrImageOnly)

	assert.Equal(t, 0, mem.Len())
}

func TestKeysNeverRepeat(t *testing.T) {
	g, _ := newGateway()
	assert.NotEqual(t, g.ObjectKey("a", "same.png"), g.ObjectKey("a", "same.png"))
}

func TestRemoveAndList(t *testing.T) {
	g, mem := newGateway()
	ctx := context.Background()
	res, err := g.Store(ctx, strings.NewReader("...."), "a.png", "image/png", "portfolio", false)
	require.NoError(t, err)

	objs, err := g.List(ctx, "portfolio")
	require.NoError(t, err)
	require.Len(t, objs, 1)
	assert.Equal(t, res.Key, objs[0].Key)

	assert.ErrorIs(t, g.Remove(ctx, "https://elsewhere.example/a.png"), storage.ErrForeignURL)
	require.NoError(t, g.Remove(ctx, res.URL))
	assert.Equal(t, 0, mem.Len())
}
