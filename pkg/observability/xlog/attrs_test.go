package xlog

import (
	"errors"
	"log/slog"
	"testing"
	"time"
)

func TestErr(t *testing.T) {
	attr := Err(errors.New("test error"))
	if attr.Key != KeyError || attr.Value.String() != "test error" {
		t.Errorf("Err() = %v", attr)
	}

	if attr := Err(nil); attr.Key != "" {
		t.Errorf("Err(nil) should return empty attr, got key=%q", attr.Key)
	}
}

func TestAttrHelpers(t *testing.T) {
	tests := []struct {
		name     string
		attr     slog.Attr
		wantKey  string
		wantKind slog.Kind
		wantStr  string
	}{
		{"duration", Duration(1500 * time.Millisecond), KeyDuration, slog.KindString, "1.5s"},
		{"component", Component("scan"), KeyComponent, slog.KindString, "scan"},
		{"operation", Operation("parse"), KeyOperation, slog.KindString, "parse"},
		{"count", Count(7), KeyCount, slog.KindInt64, "7"},
		{"input", Input("55:EE:75:BF:9C"), KeyInput, slog.KindString, "55:EE:75:BF:9C"},
		{"file", File("macs.txt"), KeyFile, slog.KindString, "macs.txt"},
		{"line", Line(12), KeyLine, slog.KindInt64, "12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", tt.attr.Key, tt.wantKey)
			}
			if tt.attr.Value.Kind() != tt.wantKind {
				t.Errorf("Kind = %v, want %v", tt.attr.Value.Kind(), tt.wantKind)
			}
			if tt.attr.Value.String() != tt.wantStr {
				t.Errorf("Value = %q, want %q", tt.attr.Value.String(), tt.wantStr)
			}
		})
	}
}
