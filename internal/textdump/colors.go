package textdump

import (
	"fmt"

	"github.com/fatih/color"
)

// Attr is a role in the dump that can be colored.
type Attr int

const (
	FieldAttr Attr = iota
	ValueAttr
	HeaderAttr
	ButtonAttr
	DisabledAttr
	EditAttr
	InsertAttr
	DeleteAttr
	numAttrs
)

// Colors maps roles to formatting functions.
type Colors struct {
	Map [numAttrs]func(format string, a ...any) string
}

func (c *Colors) Color(a Attr, format string, args ...any) string {
	if c == nil || c.Map[a] == nil {
		return fmt.Sprintf(format, args...)
	}
	return c.Map[a](format, args...)
}

func forced(c *color.Color) func(string, ...any) string {
	c.EnableColor()
	return c.SprintfFunc()
}

// NewColors returns the terminal color scheme. Colors are emitted even when
// the output is not a terminal, so callers decide with a flag.
func NewColors() *Colors {
	c := &Colors{}
	c.Map[FieldAttr] = forced(color.RGB(128, 168, 196))
	c.Map[ValueAttr] = forced(color.RGB(196, 168, 128))
	c.Map[HeaderAttr] = forced(color.New(color.FgCyan, color.Bold))
	c.Map[ButtonAttr] = forced(color.RGB(168, 0, 196))
	c.Map[DisabledAttr] = forced(color.RGB(96, 96, 96))
	c.Map[EditAttr] = forced(color.RGB(198, 198, 46))
	c.Map[InsertAttr] = forced(color.RGB(8, 196, 16))
	c.Map[DeleteAttr] = forced(color.RGB(196, 32, 32))
	return c
}
