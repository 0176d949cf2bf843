package ops

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hpungsan/polish/internal/config"
	"github.com/hpungsan/polish/internal/errors"
	"github.com/hpungsan/polish/internal/prompt"
)

func unsafeConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.AllowUnsafePaths = true
	return cfg
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open export file: %v", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	return lines
}

func TestExport_HappyPath(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	ids := seed(t, s, "a cat", "a dog")
	s.ToggleFavorite(ctx, ids[0])

	exportPath := filepath.Join(t.TempDir(), "export.jsonl")
	out, err := Export(ctx, s, unsafeConfig(), ExportInput{Path: exportPath})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	if out.Path != exportPath {
		t.Errorf("Path = %q, want %q", out.Path, exportPath)
	}
	if out.History != 2 || out.Favorites != 1 {
		t.Errorf("History=%d Favorites=%d, want 2/1", out.History, out.Favorites)
	}
	if out.ExportedAt == 0 {
		t.Error("ExportedAt should be set")
	}

	lines := readLines(t, exportPath)
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4 (header + 2 history + 1 favorite)", len(lines))
	}

	var header prompt.ExportHeader
	if err := json.Unmarshal([]byte(lines[0]), &header); err != nil {
		t.Fatalf("Failed to parse header: %v", err)
	}
	if !header.PolishExport {
		t.Error("_polish_export should be true")
	}
	if header.SchemaVersion != ExportSchemaVersion {
		t.Errorf("SchemaVersion = %q, want %q", header.SchemaVersion, ExportSchemaVersion)
	}
	if header.ExportedAt != out.ExportedAt {
		t.Errorf("header ExportedAt = %d, want %d", header.ExportedAt, out.ExportedAt)
	}

	want := []struct {
		list prompt.List
		id   string
	}{
		{prompt.ListHistory, ids[1]},
		{prompt.ListHistory, ids[0]},
		{prompt.ListFavorites, ids[0]},
	}
	for i, w := range want {
		var rec prompt.ExportRecord
		if err := json.Unmarshal([]byte(lines[i+1]), &rec); err != nil {
			t.Fatalf("Failed to parse line %d: %v", i+1, err)
		}
		if rec.List != w.list || rec.ID != w.id {
			t.Errorf("line %d = %s/%s, want %s/%s", i+1, rec.List, rec.ID, w.list, w.id)
		}
	}
}

func TestExport_RecordLayout(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seed(t, s, "a <cat> & dog")

	exportPath := filepath.Join(t.TempDir(), "export.jsonl")
	if _, err := Export(ctx, s, unsafeConfig(), ExportInput{Path: exportPath}); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	line := readLines(t, exportPath)[1]
	for _, key := range []string{`"list":"history"`, `"promptType":"image"`, `"originalPrompt":"a <cat> & dog"`, `"enhancedPrompt"`, `"favorite":false`, `"createdAt"`} {
		if !strings.Contains(line, key) {
			t.Errorf("record line missing %s: %s", key, line)
		}
	}
}

func TestExport_Empty(t *testing.T) {
	exportPath := filepath.Join(t.TempDir(), "empty.jsonl")
	out, err := Export(context.Background(), newTestStore(t), unsafeConfig(), ExportInput{Path: exportPath})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if out.History != 0 || out.Favorites != 0 {
		t.Errorf("counts = %d/%d, want 0/0", out.History, out.Favorites)
	}
	if lines := readLines(t, exportPath); len(lines) != 1 {
		t.Errorf("lines = %d, want header only", len(lines))
	}
}

func TestExport_FilePermissions(t *testing.T) {
	exportPath := filepath.Join(t.TempDir(), "perm.jsonl")
	if _, err := Export(context.Background(), newTestStore(t), unsafeConfig(), ExportInput{Path: exportPath}); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	info, err := os.Stat(exportPath)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("permissions = %o, want 0600", perm)
	}
}

func TestExport_OverwritesAndLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	exportPath := filepath.Join(dir, "export.jsonl")
	if err := os.WriteFile(exportPath, []byte("old\n"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := Export(ctx, newTestStore(t), unsafeConfig(), ExportInput{Path: exportPath}); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if lines := readLines(t, exportPath); lines[0] == "old" {
		t.Error("existing export should be replaced")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("dir entries = %d, want 1 (no leftover temp files)", len(entries))
	}
}

func TestExport_DefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	out, err := Export(context.Background(), newTestStore(t), config.DefaultConfig(), ExportInput{})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	wantDir := filepath.Join(home, config.DirName, "exports")
	if filepath.Dir(out.Path) != wantDir {
		t.Errorf("Path dir = %q, want %q", filepath.Dir(out.Path), wantDir)
	}
	base := filepath.Base(out.Path)
	if !strings.HasPrefix(base, "polish-") || !strings.HasSuffix(base, ".jsonl") {
		t.Errorf("Path base = %q, want polish-<timestamp>.jsonl", base)
	}
	if _, err := os.Stat(out.Path); err != nil {
		t.Errorf("export file missing: %v", err)
	}
}

func TestExport_PathRejected(t *testing.T) {
	s := newTestStore(t)
	tests := []struct {
		name string
		path string
		cfg  *config.Config
	}{
		{"traversal", "../escape.jsonl", unsafeConfig()},
		{"extension", filepath.Join(t.TempDir(), "export.json"), unsafeConfig()},
		{"outside allowed dirs", filepath.Join(t.TempDir(), "export.jsonl"), config.DefaultConfig()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Export(context.Background(), s, tc.cfg, ExportInput{Path: tc.path})
			if !errors.Is(err, errors.ErrInvalidRequest) {
				t.Errorf("error = %v, want ErrInvalidRequest", err)
			}
		})
	}
}

func TestExport_Cancelled(t *testing.T) {
	s := newTestStore(t)
	seed(t, s, "a cat")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	_, err := Export(ctx, s, unsafeConfig(), ExportInput{Path: filepath.Join(dir, "export.jsonl")})
	if !errors.Is(err, errors.ErrCancelled) {
		t.Errorf("error = %v, want ErrCancelled", err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("dir entries = %d, want 0 after cancelled export", len(entries))
	}
}
