package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var contract = []string{
	"CARGO_LLVM_COV",
	"CARGO_CRATE_NAME",
	"CARGO_PKG_NAME",
	"CARGO_PRIMARY_PACKAGE",
	"CARGO_LLVM_COV_TARGET_ONLY",
	"TARGET",
	"CARGO_LLVM_COV_FLAGS",
	"CARGO_LLVM_COV_WRAPPER_DEBUG",
}

func TestMatcher_FindBest(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"exact match excluded", "CARGO_LLVM_COV", ""},
		{"dropped letter", "CARGO_CRAT_NAME", "CARGO_CRATE_NAME"},
		{"swapped letters", "CARGO_LLVM_COV_FALGS", "CARGO_LLVM_COV_FLAGS"},
		{"case insensitive", "cargo_pkg_nme", "CARGO_PKG_NAME"},
		{"plural", "TARGETS", "TARGET"},
		{"unrelated", "PATH", ""},
		{"too short", "TA", ""},
	}
	m := NewMatcher(2)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, m.FindBest(tt.input, contract))
		})
	}
}

func TestMatcher_Ordering(t *testing.T) {
	m := NewMatcher(2)
	got := m.FindMatches("CARGO_LLVM_CO", contract)
	if assert.NotEmpty(t, got) {
		assert.Equal(t, "CARGO_LLVM_COV", got[0].Value)
		assert.Equal(t, 1, got[0].Distance)
	}
}

func TestMatcher_Distance(t *testing.T) {
	m := NewMatcher(3)
	assert.Equal(t, 0, m.distance("ABC", "ABC"))
	assert.Equal(t, 1, m.distance("ABC", "ABD"))
	assert.Equal(t, 3, m.distance("KITTEN", "SITTING"))
	assert.Equal(t, 4, m.distance("A", "ABCDEF"), "cut short past the limit")
}

func TestFindBestName(t *testing.T) {
	assert.Equal(t, "CARGO_LLVM_COV_WRAPPER_DEBUG", FindBestName("CARGO_LLVM_COV_WRAPER_DEBUG", contract, 2))
	assert.Equal(t, "", FindBestName("CARGO_LLVM_COV_WRAPER_DEBUG", contract, 0))
}
