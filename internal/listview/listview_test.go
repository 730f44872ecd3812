package listview

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jotarsh7/Assignment-3/internal/model"
)

// fakeLoader serves scripted bytes per URL and fails for unknown ones.
type fakeLoader struct{ images map[string][]byte }

func (f *fakeLoader) Load(_ context.Context, url string) ([]byte, error) {
	if data, ok := f.images[url]; ok {
		return data, nil
	}
	return nil, errors.New("no such image")
}

// fakeTarget collects what was loaded into the row's image slot.
type fakeTarget struct{ set chan []byte }

func newFakeTarget() *fakeTarget { return &fakeTarget{set: make(chan []byte, 1)} }

func (f *fakeTarget) SetImage(data []byte) { f.set <- data }

func testMovies() []model.Movie {
	return []model.Movie{
		{ID: "id-1", Title: "Heat", Studio: "Warner Bros", Description: "heist", CriticsRating: 8.3, ImageURL: "https://posters.example/heat.jpg"},
		{ID: "id-2", Title: "Alien", Studio: "20th Century", Description: "space horror", CriticsRating: 8.5, ImageURL: "https://posters.example/alien.jpg"},
		{ID: "id-3", Title: "Spirited Away", Studio: "Studio Ghibli", Description: "a girl in the spirit world", CriticsRating: 8.6, ImageURL: "https://posters.example/spirited.jpg"},
	}
}

func TestUpdateListReplacesRows(t *testing.T) {
	invalidated := 0
	v := New(&fakeLoader{}, Handlers{}, func() { invalidated++ })

	v.UpdateList(testMovies())
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 1, invalidated)

	v.UpdateList(testMovies()[:1])
	// only the second sequence remains
	assert.Equal(t, 1, v.Len())
	assert.Equal(t, "Heat", v.Row(0).Title)
	assert.Equal(t, 2, invalidated)
}

func TestRowRendersTitleStudioRating(t *testing.T) {
	v := New(&fakeLoader{}, Handlers{}, nil)
	v.UpdateList(testMovies())

	row := v.Row(1)
	assert.Equal(t, "Alien", row.Title)
	assert.Equal(t, "20th Century", row.Studio)
	assert.Equal(t, "8.5", row.Rating)
}

func TestFilterEmptyQueryShowsAll(t *testing.T) {
	v := New(&fakeLoader{}, Handlers{}, nil)
	v.UpdateList(testMovies())

	v.Filter("")
	assert.Equal(t, 3, v.Len())
	assert.False(t, v.Empty())
}

func TestFilterMatchesTitleStudioDescriptionCaseInsensitive(t *testing.T) {
	v := New(&fakeLoader{}, Handlers{}, nil)
	v.UpdateList(testMovies())

	v.Filter("ALIEN") // title
	require.Equal(t, 1, v.Len())
	assert.Equal(t, "Alien", v.Row(0).Title)

	v.Filter("ghibli") // studio
	require.Equal(t, 1, v.Len())
	assert.Equal(t, "Spirited Away", v.Row(0).Title)

	v.Filter("Heist") // description
	require.Equal(t, 1, v.Len())
	assert.Equal(t, "Heat", v.Row(0).Title)
}

func TestFilterNoMatchShowsEmptyState(t *testing.T) {
	v := New(&fakeLoader{}, Handlers{}, nil)
	v.UpdateList(testMovies())

	v.Filter("no such movie anywhere")
	assert.Equal(t, 0, v.Len())
	assert.True(t, v.Empty())

	// clearing the query restores the full list
	v.Filter("")
	assert.Equal(t, 3, v.Len())
}

func TestFilterSurvivesUpdateList(t *testing.T) {
	v := New(&fakeLoader{}, Handlers{}, nil)
	v.UpdateList(testMovies())
	v.Filter("alien")
	require.Equal(t, 1, v.Len())

	// a refresh delivering a new sequence keeps the active query
	v.UpdateList(testMovies()[:1])
	assert.Equal(t, 0, v.Len())
	assert.True(t, v.Empty())
}

func TestEditAndDeleteDispatchRowMovie(t *testing.T) {
	var edited, deleted []model.Movie
	v := New(&fakeLoader{}, Handlers{
		OnEdit:   func(m model.Movie) { edited = append(edited, m) },
		OnDelete: func(m model.Movie) { deleted = append(deleted, m) },
	}, nil)
	v.UpdateList(testMovies())
	v.Filter("alien")

	v.EditAt(0)
	v.DeleteAt(0)
	require.Len(t, edited, 1)
	require.Len(t, deleted, 1)
	assert.Equal(t, "id-2", edited[0].ID)
	assert.Equal(t, "id-2", deleted[0].ID)
}

func TestBindImageLoadsIntoTarget(t *testing.T) {
	loader := &fakeLoader{images: map[string][]byte{
		"https://posters.example/heat.jpg": []byte("poster-bytes"),
	}}
	v := New(loader, Handlers{}, nil)
	v.UpdateList(testMovies())

	target := newFakeTarget()
	v.BindImage(context.Background(), 0, target)

	select {
	case data := <-target.set:
		assert.Equal(t, []byte("poster-bytes"), data)
	case <-time.After(2 * time.Second):
		t.Fatal("image was never set")
	}
}

func TestBindImageFailureLeavesSlotBlank(t *testing.T) {
	v := New(&fakeLoader{}, Handlers{}, nil) // loader knows no URLs
	v.UpdateList(testMovies())

	target := newFakeTarget()
	v.BindImage(context.Background(), 0, target)

	select {
	case <-target.set:
		t.Fatal("image must not be set on a failed load")
	case <-time.After(100 * time.Millisecond):
	}
}
