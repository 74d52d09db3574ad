package main

import (
	"testing"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortcutsUnique(t *testing.T) {
	seen := make(map[imgui.KeyChord]bool)
	for _, s := range shortcuts {
		require.NotNil(t, s.run)
		assert.False(t, seen[s.chord], "chord %d bound twice", s.chord)
		seen[s.chord] = true
	}
}

func TestCtrlChordDiffersFromKey(t *testing.T) {
	assert.NotEqual(t, key(imgui.KeyE), ctrl(imgui.KeyE))
	assert.NotEqual(t, key(imgui.KeyD), ctrl(imgui.KeyD))
}
