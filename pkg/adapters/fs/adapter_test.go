package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/neuronex/notekeep/pkg/adapters/fs"
	"github.com/neuronex/notekeep/pkg/core"
)

// setupAdapter helps create a file-backed adapter rooted in a temp dir.
func setupAdapter(t *testing.T, opts ...func(*fs.Config)) (*fs.Adapter, string) {
	t.Helper()

	storePath := filepath.Join(t.TempDir(), "store", "notebooks.json")

	cfg := fs.Config{
		Path:     storePath,
		AutoInit: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	adapter, err := fs.NewAdapter(cfg)
	if err != nil {
		t.Fatalf("NewAdapter failed: %v", err)
	}
	return adapter, storePath
}

func sampleCollection() []core.Notebook {
	return []core.Notebook{
		{
			ID:           "n1",
			Title:        "A",
			Content:      "B",
			Tags:         []string{"x", "y"},
			LastModified: time.Date(2025, 4, 12, 9, 15, 30, 123456789, time.UTC),
		},
		{
			ID:           "n2",
			Title:        "",
			Content:      "",
			Tags:         []string{},
			LastModified: time.Date(2025, 4, 11, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestInitialize(t *testing.T) {
	t.Run("Creates Directory if Missing", func(t *testing.T) {
		adapter, storePath := setupAdapter(t)

		if err := adapter.Initialize(context.Background()); err != nil {
			t.Fatalf("Initialize failed: %v", err)
		}
		if _, err := os.Stat(filepath.Dir(storePath)); os.IsNotExist(err) {
			t.Errorf("expected directory to be created at %s", filepath.Dir(storePath))
		}
	})

	t.Run("Fails if MustExist and Missing", func(t *testing.T) {
		adapter, _ := setupAdapter(t, func(c *fs.Config) {
			c.MustExist = true
			c.AutoInit = false
		})

		if err := adapter.Initialize(context.Background()); err == nil {
			t.Error("expected Initialize to fail when directory is missing and MustExist=true")
		}
	})
}

func TestLoad_FirstRun(t *testing.T) {
	adapter, _ := setupAdapter(t)

	notebooks, ok, err := adapter.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if ok {
		t.Error("expected ok=false when no store file exists")
	}
	if notebooks != nil {
		t.Errorf("expected nil collection on first run, got %v", notebooks)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	for _, format := range []string{"json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			adapter, _ := setupAdapter(t, func(c *fs.Config) { c.Format = format })
			ctx := context.Background()

			want := sampleCollection()
			if err := adapter.Initialize(ctx); err != nil {
				t.Fatalf("Initialize failed: %v", err)
			}
			if err := adapter.Save(ctx, want); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			got, ok, err := adapter.Load(ctx)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if !ok {
				t.Fatal("expected ok=true after save")
			}
			if len(got) != len(want) {
				t.Fatalf("expected %d notebooks, got %d", len(want), len(got))
			}

			for i := range want {
				if got[i].ID != want[i].ID || got[i].Title != want[i].Title || got[i].Content != want[i].Content {
					t.Errorf("notebook %d field mismatch: got %+v, want %+v", i, got[i], want[i])
				}
				if !got[i].LastModified.Equal(want[i].LastModified) {
					t.Errorf("notebook %d lastModified mismatch: got %v, want %v",
						i, got[i].LastModified, want[i].LastModified)
				}
				if len(got[i].Tags) != len(want[i].Tags) {
					t.Fatalf("notebook %d tag count mismatch: got %v, want %v", i, got[i].Tags, want[i].Tags)
				}
				for j := range want[i].Tags {
					if got[i].Tags[j] != want[i].Tags[j] {
						t.Errorf("notebook %d tag order mismatch: got %v, want %v", i, got[i].Tags, want[i].Tags)
					}
				}
			}
		})
	}
}

func TestSave_ReplacesPreviousState(t *testing.T) {
	adapter, _ := setupAdapter(t)
	ctx := context.Background()

	if err := adapter.Save(ctx, sampleCollection()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := adapter.Save(ctx, sampleCollection()[:1]); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	got, _, err := adapter.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected save to replace state, got %d notebooks", len(got))
	}
}

func TestLoad_MalformedTimestamp(t *testing.T) {
	adapter, storePath := setupAdapter(t)
	ctx := context.Background()

	if err := adapter.Initialize(ctx); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	blob := `[{"id":"n1","title":"A","content":"B","tags":[],"lastModified":"yesterday-ish"}]`
	if err := os.WriteFile(storePath, []byte(blob), 0644); err != nil {
		t.Fatal(err)
	}

	_, _, err := adapter.Load(ctx)
	if err == nil {
		t.Fatal("expected error for malformed lastModified")
	}
	if !strings.Contains(err.Error(), "lastModified") {
		t.Errorf("error should name the malformed field, got: %v", err)
	}
}

func TestLoad_MalformedBlob(t *testing.T) {
	adapter, storePath := setupAdapter(t)
	ctx := context.Background()

	if err := adapter.Initialize(ctx); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if err := os.WriteFile(storePath, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := adapter.Load(ctx); err == nil {
		t.Fatal("expected error for undecodable store file")
	}
}

func TestNewAdapter_UnknownFormat(t *testing.T) {
	_, err := fs.NewAdapter(fs.Config{Path: "x.bin", Format: "protobuf"})
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	adapter, storePath := setupAdapter(t)
	ctx := context.Background()

	if err := adapter.Save(ctx, sampleCollection()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := os.ReadDir(filepath.Dir(storePath))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), fs.TempFilePrefix) {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}
