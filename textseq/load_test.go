package textseq

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func writeTempText(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lorem.txt")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSmallFile(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	content := "Lorem ipsum dolor sit amet, consectetur adipiscing elit."
	path := writeTempText(t, content)
	fs, err := Load(path, 10)
	if err != nil {
		t.Fatal(err)
	}
	seq, err := fs.Seq()
	if err != nil {
		t.Fatal(err)
	}
	if seq.IsVoid() {
		t.Fatalf("loaded sequence is void, should not be")
	}
	var sb strings.Builder
	for frag := range seq.Values() {
		sb.WriteString(frag)
	}
	if sb.String() != content {
		t.Errorf("reassembled text differs from file content")
	}
	wantFrags := (len(content) + 9) / 10
	if seq.Len() != wantFrags {
		t.Errorf("expected %d fragments, have %d", wantFrags, seq.Len())
	}
}

func TestLoadWatchProgress(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	path := writeTempText(t, strings.Repeat("abcdefghij", 50))
	fs, err := Load(path, 100)
	if err != nil {
		t.Fatal(err)
	}
	// loading may already have finished; drain whatever progress we catch
	if ch, ok := fs.Watch(context.Background()); ok {
		for m := range ch {
			frag, isFrag := m.(Fragment)
			if !isFrag {
				t.Errorf("broadcast message is not a Fragment: %v", m)
				continue
			}
			if len(frag.Text) == 0 {
				t.Errorf("fragment %d is empty", frag.Index)
			}
		}
	}
	seq, err := fs.Seq()
	if err != nil {
		t.Fatal(err)
	}
	if seq.Len() != 5 {
		t.Errorf("expected 5 fragments, have %d", seq.Len())
	}
}

func TestLoadRejectsDirectory(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	if _, err := Load(t.TempDir(), 0); !errors.Is(err, ErrNotRegularFile) {
		t.Errorf("expected ErrNotRegularFile for a directory, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	if _, err := Load(filepath.Join(t.TempDir(), "no-such-file"), 0); err == nil {
		t.Errorf("expected error for missing file, got none")
	}
}
