package prefabs

import (
	"context"
	"errors"
	"testing"
)

func TestLoaderDeliversResults(t *testing.T) {
	fetch := func(_ context.Context, name string) (*Recipe, error) {
		if name == "broken" {
			return nil, errors.New("boom")
		}
		return &Recipe{Name: name, Parts: []RecipePart{{ID: "a"}}}, nil
	}
	l := NewLoader(context.Background(), fetch)

	l.Request(Request{Name: "ok", Tag: 1})
	l.Request(Request{Name: "broken", Tag: 2})
	l.Wait()

	if l.Pending() != 2 {
		t.Fatalf("expected 2 pending before drain, got %d", l.Pending())
	}

	results := l.Drain()
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if l.Pending() != 0 {
		t.Fatalf("expected nothing pending after drain, got %d", l.Pending())
	}

	for _, r := range results {
		switch r.Name {
		case "ok":
			if r.Err != nil || r.Recipe == nil || r.Tag != 1 {
				t.Fatalf("unexpected ok result %+v", r)
			}
		case "broken":
			var loadErr *AssetLoadError
			if !errors.As(r.Err, &loadErr) || r.Recipe != nil || r.Tag != 2 {
				t.Fatalf("unexpected broken result %+v", r)
			}
		default:
			t.Fatalf("unexpected result %q", r.Name)
		}
	}

	if more := l.Drain(); len(more) != 0 {
		t.Fatalf("second drain returned %d results", len(more))
	}
}

func TestLoaderDefaultFetchUsesEmbeddedRecipes(t *testing.T) {
	l := NewLoader(context.Background(), nil)
	l.Request(Request{Name: "grey_wolf"})
	l.Wait()

	results := l.Drain()
	if len(results) != 1 || results[0].Err != nil {
		t.Fatalf("unexpected results %+v", results)
	}
	if results[0].Recipe.Name != "grey_wolf" {
		t.Fatalf("unexpected recipe name %q", results[0].Recipe.Name)
	}
}

func TestNilLoader(t *testing.T) {
	var l *Loader
	l.Request(Request{Name: "x"})
	l.Wait()
	if l.Drain() != nil || l.Pending() != 0 {
		t.Fatalf("nil loader should be inert")
	}
}
