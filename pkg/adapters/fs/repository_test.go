package fs_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/drills/pkg/adapters/fs"
	"github.com/aretw0/drills/pkg/core"
	"github.com/google/go-cmp/cmp"
)

// setupRepo creates a repository rooted in a fresh temp dir.
// It returns the repository and the path of its notes file.
func setupRepo(t *testing.T, name string, opts ...func(*fs.Config)) (*fs.Repository, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "notes", name)
	cfg := fs.Config{Path: path}
	for _, opt := range opts {
		opt(&cfg)
	}
	return fs.NewRepository(cfg), path
}

func TestLoad(t *testing.T) {
	t.Run("Missing File Yields No Notes", func(t *testing.T) {
		repo, _ := setupRepo(t, "notes.json")

		notes, err := repo.Load(context.Background())
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(notes) != 0 {
			t.Errorf("expected no notes, got %d", len(notes))
		}
	})

	t.Run("Blank File Yields No Notes", func(t *testing.T) {
		repo, path := setupRepo(t, "notes.json")
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("  \n"), 0644); err != nil {
			t.Fatal(err)
		}

		notes, err := repo.Load(context.Background())
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(notes) != 0 {
			t.Errorf("expected no notes, got %d", len(notes))
		}
	})

	t.Run("Reads Existing Document", func(t *testing.T) {
		repo, path := setupRepo(t, "notes.json")
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		doc := `{"notes":[{"title":"HELLO","body":"world","date":"14 Oct 2026"}]}`
		if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
			t.Fatal(err)
		}

		notes, err := repo.Load(context.Background())
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		want := []core.Note{{Title: "HELLO", Body: "world", Date: "14 Oct 2026"}}
		if diff := cmp.Diff(want, notes); diff != "" {
			t.Errorf("unexpected notes (-want +got):\n%s", diff)
		}
	})

	t.Run("Malformed Document", func(t *testing.T) {
		repo, path := setupRepo(t, "notes.json")
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
			t.Fatal(err)
		}

		_, err := repo.Load(context.Background())
		if !errors.Is(err, core.ErrMalformed) {
			t.Errorf("expected ErrMalformed, got %v", err)
		}
	})
}

func TestStore(t *testing.T) {
	t.Run("Creates Parent Directory", func(t *testing.T) {
		repo, path := setupRepo(t, "notes.json")

		if err := repo.Store(context.Background(), sampleNotes); err != nil {
			t.Fatalf("Store failed: %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected notes file at %s: %v", path, err)
		}
	})

	t.Run("Read Only", func(t *testing.T) {
		repo, path := setupRepo(t, "notes.json", func(c *fs.Config) {
			c.ReadOnly = true
		})

		err := repo.Store(context.Background(), sampleNotes)
		if !errors.Is(err, core.ErrReadOnly) {
			t.Errorf("expected ErrReadOnly, got %v", err)
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Error("read-only store should not create the file")
		}
	})
}

func TestRoundTrip(t *testing.T) {
	for _, name := range []string{"notes.json", "notes.yaml", "notes.yml", "notes.txt"} {
		t.Run(name, func(t *testing.T) {
			repo, _ := setupRepo(t, name)
			ctx := context.Background()

			if err := repo.Store(ctx, sampleNotes); err != nil {
				t.Fatalf("Store failed: %v", err)
			}
			got, err := repo.Load(ctx)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if diff := cmp.Diff(sampleNotes, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNotebookRoundTrip(t *testing.T) {
	repo, _ := setupRepo(t, "notes.json")
	ctx := context.Background()

	nb := core.NewNotebook(repo)
	if err := nb.Open(ctx); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	for _, title := range []string{"one", "two", "three"} {
		if _, _, err := nb.Create(title, "body of "+title); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}
	if err := nb.Save(ctx); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reopened := core.NewNotebook(repo)
	if err := reopened.Open(ctx); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if diff := cmp.Diff(nb.List(), reopened.List()); diff != "" {
		t.Errorf("notebook mismatch after reload (-want +got):\n%s", diff)
	}
}

func TestState(t *testing.T) {
	repo, _ := setupRepo(t, "notes.yaml")

	state := repo.State().(fs.RepositoryState)
	if state.Format != ".yaml" {
		t.Errorf("expected format .yaml, got %s", state.Format)
	}
	if state.Exists {
		t.Error("expected file to not exist yet")
	}

	if err := repo.Store(context.Background(), nil); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if !repo.State().(fs.RepositoryState).Exists {
		t.Error("expected file to exist after Store")
	}
	if repo.ComponentType() != "fs" {
		t.Errorf("unexpected component type %s", repo.ComponentType())
	}
}
