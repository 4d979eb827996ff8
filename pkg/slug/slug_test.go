// Copyright (c) 2026 CineVault. All rights reserved.

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danghoanh/cinevault/pkg/slug"
)

/*
TestFrom covers the normalization pipeline end to end.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple_title", "The Last Monsoon", "the-last-monsoon"},
		{"accents_stripped", "Café Au Lait", "cafe-au-lait"},
		{"punctuation", "Night & Day: Part II", "night-day-part-ii"},
		{"multiple_spaces", "A   Long    Take", "a-long-take"},
		{"leading_trailing", "  Edges  ", "edges"},
		{"digits_kept", "Studio 54", "studio-54"},
		{"already_slug", "already-a-slug", "already-a-slug"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
