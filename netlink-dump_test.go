package main

import (
	"testing"

	"golang.org/x/sys/unix"
)

func TestParseFamily(t *testing.T) {
	tables := []struct {
		name     string
		expected uint8
		wantErr  bool
	}{
		{"", unix.AF_UNSPEC, false},
		{"inet", unix.AF_INET, false},
		{"inet6", unix.AF_INET6, false},
		{"bridge", unix.AF_BRIDGE, false},
		{"ipx", 0, true},
	}

	for _, table := range tables {
		got, err := parseFamily(table.name)
		if table.wantErr {
			if err == nil {
				t.Errorf("parseFamily(%q) expected error, got nil", table.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseFamily(%q): %v", table.name, err)
			continue
		}
		if got != table.expected {
			t.Errorf("parseFamily(%q) was incorrect, got: %d, expected: %d.", table.name, got, table.expected)
		}
	}
}
