// Package listview projects a movie sequence into renderable rows. It keeps
// no state of its own beyond the last sequence it was given and the current
// filter query: UpdateList is a wholesale replacement followed by a coarse
// invalidate-all, never a positional diff.
package listview

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/jotarsh7/Assignment-3/internal/model"
)

// ImageTarget is the display slot a row's poster is loaded into.
type ImageTarget interface {
	SetImage(data []byte)
}

// Handlers carries the caller-supplied per-row actions. Nil handlers are
// allowed; the corresponding trigger is then ignored.
type Handlers struct {
	OnEdit   func(model.Movie)
	OnDelete func(model.Movie)
}

// RowView is the rendered text content of one row.
type RowView struct {
	Title  string
	Studio string
	Rating string
}

// ListView binds an ordered movie sequence to a row-based view.
type ListView struct {
	images   ImageLoader
	handlers Handlers
	// onInvalidate signals the owning view that every row must be
	// re-rendered. May be nil.
	onInvalidate func()

	mu      sync.Mutex
	all     []model.Movie // the full sequence from the last UpdateList
	visible []model.Movie // all, narrowed by the current query
	query   string
}

// New constructs a ListView. The image loader resolves poster URLs for
// BindImage; onInvalidate is called after every change that requires a full
// re-render.
func New(images ImageLoader, handlers Handlers, onInvalidate func()) *ListView {
	return &ListView{images: images, handlers: handlers, onInvalidate: onInvalidate}
}

// UpdateList replaces the entire backing sequence. The current filter query
// is re-applied to the new sequence.
func (v *ListView) UpdateList(movies []model.Movie) {
	v.mu.Lock()
	v.all = movies
	v.applyFilter()
	v.mu.Unlock()
	v.invalidate()
}

// Filter narrows the visible rows to movies whose title, studio or
// description contains the query, case-insensitively. An empty query shows
// the unfiltered sequence.
func (v *ListView) Filter(query string) {
	v.mu.Lock()
	v.query = query
	v.applyFilter()
	v.mu.Unlock()
	v.invalidate()
}

// Len reports the number of visible rows.
func (v *ListView) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.visible)
}

// Empty reports whether the view should show its empty-state indicator,
// i.e. no rows are visible (empty list or a query matching nothing).
func (v *ListView) Empty() bool {
	return v.Len() == 0
}

// Row renders the text content of the i-th visible row.
func (v *ListView) Row(i int) RowView {
	v.mu.Lock()
	m := v.visible[i]
	v.mu.Unlock()
	return RowView{
		Title:  m.Title,
		Studio: m.Studio,
		Rating: strconv.FormatFloat(m.CriticsRating, 'f', 1, 64),
	}
}

// BindImage resolves the i-th row's poster into the given target. The fetch
// runs off the caller's goroutine and a failure leaves the slot untouched.
func (v *ListView) BindImage(ctx context.Context, i int, target ImageTarget) {
	v.mu.Lock()
	url := v.visible[i].ImageURL
	v.mu.Unlock()

	go func() {
		data, err := v.images.Load(ctx, url)
		if err != nil {
			return
		}
		target.SetImage(data)
	}()
}

// EditAt fires the edit action for the i-th visible row.
func (v *ListView) EditAt(i int) {
	v.dispatch(i, v.handlers.OnEdit)
}

// DeleteAt fires the delete action for the i-th visible row.
func (v *ListView) DeleteAt(i int) {
	v.dispatch(i, v.handlers.OnDelete)
}

func (v *ListView) dispatch(i int, fn func(model.Movie)) {
	if fn == nil {
		return
	}
	v.mu.Lock()
	m := v.visible[i]
	v.mu.Unlock()
	fn(m)
}

// applyFilter rebuilds visible from all; callers hold v.mu.
func (v *ListView) applyFilter() {
	q := strings.ToLower(strings.TrimSpace(v.query))
	if q == "" {
		v.visible = v.all
		return
	}
	out := make([]model.Movie, 0, len(v.all))
	for _, m := range v.all {
		if strings.Contains(strings.ToLower(m.Title), q) ||
			strings.Contains(strings.ToLower(m.Studio), q) ||
			strings.Contains(strings.ToLower(m.Description), q) {
			out = append(out, m)
		}
	}
	v.visible = out
}

func (v *ListView) invalidate() {
	if v.onInvalidate != nil {
		v.onInvalidate()
	}
}
