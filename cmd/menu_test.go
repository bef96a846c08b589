package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/huangsam/speedcheck/internal/contract"
)

func TestRunMenuExit(t *testing.T) {
	err := runMenu(strings.NewReader("5\n"), &contract.Config{})
	require.NoError(t, err)
}

func TestRunMenuInvalidChoiceThenExit(t *testing.T) {
	// Invalid choices re-prompt instead of failing
	err := runMenu(strings.NewReader("0\nabc\n5\n"), &contract.Config{})
	require.NoError(t, err)
}

func TestRunMenuEOF(t *testing.T) {
	// EOF terminates the loop cleanly
	err := runMenu(strings.NewReader(""), &contract.Config{})
	require.NoError(t, err)
}
