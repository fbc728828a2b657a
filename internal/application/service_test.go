package application

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateusmacedo/go-eventing/internal/infrastructure"
	pkgDomain "github.com/mateusmacedo/go-eventing/pkg/domain"
	pkgInfra "github.com/mateusmacedo/go-eventing/pkg/infrastructure"
)

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, map[string]interface{})  {}
func (nopLogger) Debug(context.Context, string, map[string]interface{}) {}
func (nopLogger) Error(context.Context, string, map[string]interface{}) {}
func (nopLogger) Trace(context.Context, string, map[string]interface{}) {}

type stubGenerator struct {
	mu        sync.Mutex
	generated [][]string
}

func (g *stubGenerator) Generate(_ context.Context, ids ...string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.generated = append(g.generated, ids)
	return nil
}

type recordingHandler struct {
	mu   sync.Mutex
	seen []pkgDomain.Type
}

func (h *recordingHandler) Handle(_ context.Context, event pkgDomain.FiredEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seen = append(h.seen, event.Type())
	return nil
}

type mediaFixture struct {
	service   *MediaService
	repo      *infrastructure.InMemoryMediaRepository
	generator *stubGenerator
	recorder  *recordingHandler
}

func newMediaFixture(t *testing.T) *mediaFixture {
	t.Helper()

	gb := pkgDomain.NewGraphBuilder()
	RegisterEventTypes(gb)
	graph, err := gb.Build()
	require.NoError(t, err)

	registry := pkgInfra.NewInMemoryHandlerRegistry()
	dispatcher := pkgInfra.NewSequentialDispatcher(registry, nopLogger{})
	factory := pkgInfra.NewUnitOfWorkFactory(pkgDomain.NewResolver(graph), dispatcher, nopLogger{})

	repo := infrastructure.NewInMemoryMediaRepository()
	generator := &stubGenerator{}
	recorder := &recordingHandler{}

	registry.RegisterHandler(TypeMediaSaved, NewThumbnailHandler(generator, nopLogger{}))
	registry.RegisterHandler(TypeMediaSaved, recorder)
	registry.RegisterHandler(TypeMediaCacheRefreshed, recorder)

	counter := 0
	idGenerator := func() string {
		counter++
		return "media-" + string(rune('0'+counter))
	}

	service := NewMediaService(repo, factory, idGenerator, nopLogger{})
	return &mediaFixture{service: service, repo: repo, generator: generator, recorder: recorder}
}

func TestMediaUploadGeneratesThumbnails(t *testing.T) {
	f := newMediaFixture(t)

	asset, err := f.service.Upload(context.Background(), UploadMediaData{
		FileName:  "capa.png",
		MimeType:  "image/png",
		SizeBytes: 2048,
	})
	require.NoError(t, err)
	require.NotEmpty(t, asset.ID)

	stored, err := f.repo.FindByID(context.Background(), asset.ID)
	require.NoError(t, err)
	assert.Equal(t, "capa.png", stored.FileName)

	assert.Equal(t, [][]string{{asset.ID}}, f.generator.generated)
}

func TestMediaUploadSuppressesCacheRefresh(t *testing.T) {
	f := newMediaFixture(t)

	asset, err := f.service.Upload(context.Background(), UploadMediaData{FileName: "audio.mp3", MimeType: "audio/mpeg"})
	require.NoError(t, err)
	require.NotEmpty(t, asset.ID)

	// O refresh de cache disparado junto com o upload é coberto pelo Saved.
	assert.Equal(t, []pkgDomain.Type{TypeMediaSaved}, f.recorder.seen)
}

func TestMediaGet(t *testing.T) {
	f := newMediaFixture(t)

	asset, err := f.service.Upload(context.Background(), UploadMediaData{FileName: "video.mp4", MimeType: "video/mp4"})
	require.NoError(t, err)

	found, err := f.service.Get(context.Background(), asset.ID)
	require.NoError(t, err)
	assert.Equal(t, asset.ID, found.ID)

	_, err = f.service.Get(context.Background(), "inexistente")
	require.Error(t, err)
}
