package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-terminal/internal/core"
	"github.com/vovakirdan/tui-terminal/internal/display"
)

func TestLine_EditSequence(t *testing.T) {
	port := display.NewBuffer()
	var l Line

	for _, v := range []string{"h", "i", "x", core.Delete, "!", "\x1b[D", "\t"} {
		l.Edit(port, v)
	}

	assert.Equal(t, "hi!", l.String())
	assert.Equal(t, "hix\b \b!", port.Output())
}

func TestLine_AppendFiltersPerCharacter(t *testing.T) {
	port := display.NewBuffer()
	var l Line

	l.Append(port, "a\x02b\x7fc")
	assert.Equal(t, "abc", l.String())
	assert.Equal(t, "abc", port.Output())
}

func TestLine_TakeEmpties(t *testing.T) {
	port := display.NewBuffer()
	var l Line
	l.Append(port, "clear")

	assert.Equal(t, "clear", l.Take())
	assert.Zero(t, l.Len())
	assert.False(t, l.Backspace(port))
}
