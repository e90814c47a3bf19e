package embedded

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"
)

func withFS(t *testing.T, data fs.FS) {
	t.Helper()
	Init(data)
	t.Cleanup(func() {
		dataFS = nil
		initialized = false
	})
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	initialized = false
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	withFS(t, fstest.MapFS{})
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

func TestInitNil(t *testing.T) {
	withFS(t, nil)
	if IsInitialized() {
		t.Error("Init(nil) must not mark the package initialized")
	}
}

// TestNotInitialized 测试未初始化时的调用
func TestNotInitialized(t *testing.T) {
	initialized = false

	if _, err := Open("data/config.yaml"); err == nil {
		t.Error("Expected error when calling Open() before Init()")
	}
	if _, err := ReadFile("data/config.yaml"); err == nil {
		t.Error("Expected error when calling ReadFile() before Init()")
	}
	if Exists("data/config.yaml") {
		t.Error("Exists() should be false before Init()")
	}
}

func TestReadFile(t *testing.T) {
	withFS(t, fstest.MapFS{
		"data/config.yaml": {Data: []byte("field:\n  maxParticles: 10\n")},
	})

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"plain", "data/config.yaml", false},
		{"dot prefix", "./data/config.yaml", false},
		{"wrong prefix", "assets/config.yaml", true},
		{"missing", "data/missing.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && len(data) == 0 {
				t.Error("expected file content")
			}
		})
	}
}

func TestMissingFileIsNotExist(t *testing.T) {
	withFS(t, fstest.MapFS{})
	_, err := ReadFile("data/config.yaml")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want fs.ErrNotExist", err)
	}
}

func TestExists(t *testing.T) {
	withFS(t, fstest.MapFS{
		"data/config.yaml": {Data: []byte("{}")},
	})

	if !Exists("data/config.yaml") {
		t.Error("Exists(data/config.yaml) = false")
	}
	if Exists("data/other.yaml") {
		t.Error("Exists(data/other.yaml) = true")
	}
}
