package config

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTestFile writes content to name inside dir and returns the full path.
func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file %s: %v", path, err)
	}
	return path
}

// mustParse parses src or fails the test.
func mustParse(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return doc
}

// mustTable returns the table stored under key.
func mustTable(t *testing.T, doc *Document, key string) *Document {
	t.Helper()
	v, ok := doc.Get(key)
	if !ok {
		t.Fatalf("key %q not found", key)
	}
	table, ok := v.(*Document)
	if !ok {
		t.Fatalf("key %q is %T, want *Document", key, v)
	}
	return table
}
