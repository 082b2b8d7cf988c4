package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func readTestdata(t testing.TB, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("reading testdata %s: %v", name, err)
	}
	return data
}

func TestDecodeObject_PreservesOrder(t *testing.T) {
	doc, err := DecodeObject(readTestdata(t, "valid.json"))
	if err != nil {
		t.Fatalf("DecodeObject error: %v", err)
	}

	want := []string{
		"manifest_version", "name", "version", "description", "applications",
		"permissions", "browser_action", "background", "offline_enabled",
		"minimum_chrome_version", "lock_after_seconds",
	}
	if diff := cmp.Diff(want, doc.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}

	lock, _ := doc.Get("lock_after_seconds")
	if lock.Kind() != KindNumber || lock.Text() != "3.50e2" {
		t.Errorf("lock_after_seconds = %s %q, want number %q", lock.Kind(), lock.Text(), "3.50e2")
	}
	chrome, _ := doc.Get("minimum_chrome_version")
	if chrome.Kind() != KindNull {
		t.Errorf("minimum_chrome_version kind = %s, want null", chrome.Kind())
	}
}

func TestDecode_MatchesEncodingJSON(t *testing.T) {
	data := readTestdata(t, "valid.json")

	v, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}

	var want any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&want); err != nil {
		t.Fatalf("encoding/json decode: %v", err)
	}

	if diff := cmp.Diff(want, v.Interface()); diff != "" {
		t.Errorf("Decode mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_DuplicateKeyLastWins(t *testing.T) {
	doc, err := DecodeObject([]byte(`{"a":1,"b":2,"a":3}`))
	if err != nil {
		t.Fatalf("DecodeObject error: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, doc.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
	if v, _ := doc.Get("a"); v.Text() != "3" {
		t.Errorf("a = %q, want %q", v.Text(), "3")
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"trailing comma", readTestdata(t, "trailing-comma.json")},
		{"unquoted key", readTestdata(t, "unquoted-key.json")},
		{"trailing data", []byte(`{} {}`)},
		{"empty", []byte(``)},
		{"truncated", []byte(`{"name": "Ext"`)},
		{"invalid utf-8", []byte("{\"name\": \"\xff\"}")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.data); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestDecode_SyntaxErrorOffset(t *testing.T) {
	_, err := Decode([]byte(`{"a": 1,}`))
	var syn *json.SyntaxError
	if !errors.As(err, &syn) {
		t.Fatalf("error = %v (%T), want *json.SyntaxError", err, err)
	}
	if syn.Offset == 0 {
		t.Error("SyntaxError.Offset = 0, want position of the closing brace")
	}
}

func TestDecodeObject_RejectsNonObject(t *testing.T) {
	for _, data := range []string{`["applications"]`, `"manifest"`, `42`, `null`} {
		t.Run(data, func(t *testing.T) {
			_, err := DecodeObject([]byte(data))
			if !errors.Is(err, errNotAnObject) {
				t.Errorf("DecodeObject(%s) error = %v, want errNotAnObject", data, err)
			}
		})
	}
}
