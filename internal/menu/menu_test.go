package menu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daryltucker/client-data/internal/input"
)

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf)
	out := buf.String()

	require.Contains(t, out, "Main Menu Screen")
	for i, want := range []string{
		"[1] Show Client List.",
		"[2] Add New Client.",
		"[3] Delete Client.",
		"[4] Update Client Info.",
		"[5] Find Client.",
		"[6] Exit.",
	} {
		require.Contains(t, out, want, "option %d", i+1)
	}
}

func TestChoose(t *testing.T) {
	var out bytes.Buffer
	p := input.NewPrompter(strings.NewReader("0\nseven\n5\n"), &out)

	c, ok := Choose(p)

	require.True(t, ok)
	require.Equal(t, FindClient, c)
	require.Contains(t, out.String(), "Please enter a number within the range 1 to 6")
	require.Contains(t, out.String(), "Please enter a valid number from 1 to 6")
}

func TestChoose_EndOfInput(t *testing.T) {
	p := input.NewPrompter(strings.NewReader("99\n"), &bytes.Buffer{})

	_, ok := Choose(p)

	require.False(t, ok)
}

func TestChoice_Values(t *testing.T) {
	require.Equal(t, Choice(1), ShowClientList)
	require.Equal(t, Choice(6), Exit)
	require.Len(t, Choices, 6)
	require.Equal(t, "Update Client Info", UpdateClientInfo.String())
	require.Equal(t, "Choice(9)", Choice(9).String())
}
