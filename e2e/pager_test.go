//go:build e2e && unix

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelpPager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	fc := newCollection(t)
	startBrowser(t, tf, fc)
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.OpenHelp())
	require.True(t, tf.SeePlain("pokebrowse Help"), "Should show help content in pager")
	require.True(t, tf.SeePlain("Previous/next page"), "Help should list paging keys")

	// Quit pager and ensure TUI again
	require.NoError(t, tf.Quit())
	require.True(t, tf.SeePlain("bulbasaur"), "Should return to main TUI after closing pager")
}

func TestDetailPager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	fc := newCollection(t)
	startBrowser(t, tf, fc)
	require.True(t, tf.Ready(), "Should receive ready signal")

	// beedrill is the first row sorted by name
	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlain("http://img/15.png"), "Detail should show the image address")
	require.True(t, tf.SeePlain("295"), "Detail should show the weight")

	require.NoError(t, tf.Quit())
	require.True(t, tf.SeePlain("pokebrowse"), "Should return to main TUI after closing pager")
}
