package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLabels(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"trims whitespace", "a, b, c", []string{"a", "b", "c"}},
		{"no comma is one label", "single", []string{"single"}},
		{"keeps empty elements", "a,,b", []string{"a", "", "b"}},
		{"blank string", "  ", []string{""}},
		{"more labels than columns", "0,1,2,3,4,5,6,7,8,9,10", []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseLabels(tc.raw))
		})
	}
}

func TestSnapshotLabelLookup(t *testing.T) {
	snap := Snapshot{XLabels: []string{"a", "b"}, YLabels: DefaultLabels(3)}

	assert.Equal(t, "b", snap.XLabel(1))
	assert.Equal(t, "", snap.XLabel(5), "缺失的标签渲染为空")
	assert.Equal(t, "", snap.XLabel(-1))
	assert.Equal(t, "2", snap.YLabel(2))
	assert.Equal(t, "", snap.YLabel(3))
}

func TestSettingsUpdateIsEmpty(t *testing.T) {
	assert.True(t, SettingsUpdate{}.IsEmpty())
	assert.False(t, SettingsUpdate{YLabels: "x"}.IsEmpty())
}
