package log

import (
	"errors"
	"testing"
	"time"
)

func TestFieldConstructors(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		key   string
		value interface{}
	}{
		{"string", String("k", "v"), "k", "v"},
		{"int", Int("n", 7), "n", 7},
		{"int64", Int64("n", int64(-9)), "n", int64(-9)},
		{"uint64", Uint64("n", uint64(9)), "n", uint64(9)},
		{"float64", Float64("f", 1.5), "f", 1.5},
		{"bool", Bool("b", true), "b", true},
		{"duration", Duration("d", time.Second), "d", time.Second},
		{"any", Any("a", 3), "a", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Key != tt.key {
				t.Errorf("Key = %q, want %q", tt.field.Key, tt.key)
			}
			if tt.field.Value != tt.value {
				t.Errorf("Value = %v, want %v", tt.field.Value, tt.value)
			}
		})
	}
}

func TestErrField(t *testing.T) {
	err := errors.New("boom")
	f := Err(err)
	if f.Key != "error" {
		t.Errorf("Key = %q, want error", f.Key)
	}
	if f.Value != err {
		t.Errorf("Value = %v, want %v", f.Value, err)
	}
}

func TestBytesField(t *testing.T) {
	f := Bytes("raw", []byte{0, 1, 2})
	if f.Key != "raw" {
		t.Errorf("Key = %q, want raw", f.Key)
	}
	if _, ok := f.Value.([]byte); !ok {
		t.Errorf("Value type = %T, want []byte", f.Value)
	}
}

func TestNoopLogger(t *testing.T) {
	// Must not panic, whatever it is fed.
	l := NewNoopLogger()
	l.Trace("t")
	l.Debug("d")
	l.Info("i", String("k", "v"))
	l.Warn("w")
	l.Error("e", Err(errors.New("x")))
}

func TestPackagePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"example.com/a/b.Func", "example.com/a/b"},
		{"example.com/a/b.(*T).Method", "example.com/a/b"},
		{"main.main", "main"},
		{"noslashnodot", "noslashnodot"},
	}
	for _, tt := range tests {
		if got := packagePath(tt.in); got != tt.want {
			t.Errorf("packagePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
