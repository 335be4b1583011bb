package platform_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/neuronex/notekeep/internal/platform"
	"github.com/neuronex/notekeep/pkg/core"
)

func TestOpen_FSAdapter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notebooks.json")

	store, err := platform.Open(context.Background(), path,
		platform.WithAdapter("fs"),
		platform.WithAutoInit(true),
	)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	// A fresh store is seeded with the starter notebooks.
	if store.Len() == 0 {
		t.Fatal("fresh store should be seeded")
	}

	nb, err := store.Create(context.Background(), "Platform Test")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Reopen against the same file and check the mutation survived.
	again, err := platform.Open(context.Background(), path,
		platform.WithAdapter("fs"),
		platform.WithAutoInit(true),
	)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if _, ok := again.Get(nb.ID); !ok {
		t.Fatal("notebook lost across reopen")
	}
}

func TestOpen_BadgerInMemory(t *testing.T) {
	store, err := platform.Open(context.Background(), "",
		platform.WithAdapter("badger"),
		platform.WithInMemory(true),
	)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if store.Len() == 0 {
		t.Fatal("fresh store should be seeded")
	}
}

func TestOpen_YAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notebooks.yaml")

	store, err := platform.Open(context.Background(), path,
		platform.WithAutoInit(true),
		platform.WithFormat("yaml"),
	)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if store.Len() == 0 {
		t.Fatal("fresh store should be seeded")
	}
}

func TestInit_UnknownAdapter(t *testing.T) {
	_, err := platform.Init("whatever", platform.WithAdapter("redis"))
	if err == nil {
		t.Fatal("expected error for unknown adapter")
	}
	if !strings.Contains(err.Error(), "unknown adapter") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestInit_InjectedRepository(t *testing.T) {
	injected := &nopAdapter{}

	adapter, err := platform.Init("ignored", platform.WithRepository(injected))
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if adapter != core.Adapter(injected) {
		t.Error("injected adapter should be returned as-is")
	}
}

type nopAdapter struct{}

func (*nopAdapter) Initialize(context.Context) error { return nil }

func (*nopAdapter) Load(context.Context) ([]core.Notebook, bool, error) { return nil, false, nil }

func (*nopAdapter) Save(context.Context, []core.Notebook) error { return nil }
