package encode

import (
	"strings"

	"github.com/signadot/domref/dom"

	"github.com/fatih/color"
)

type Colorable struct {
	Type dom.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	NameColor ColorAttr = iota
	ValueColor
	AttrKeyColor
	AttrValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range dom.Types() {
		able := Colorable{
			Type: t,
			Attr: SepColor,
		}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Type: dom.ElementType, Attr: NameColor}
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	able.Attr = AttrKeyColor
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	able.Attr = AttrValueColor
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able = Colorable{Type: dom.TextType, Attr: NameColor}
	colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()
	able.Attr = ValueColor
	colors.Map[able] = color.RGB(88, 158, 86).SprintfFunc()

	able = Colorable{Type: dom.CommentType, Attr: NameColor}
	colors.Map[able] = color.BlueString
	able.Attr = ValueColor
	colors.Map[able] = color.BlueString

	colors.Map[Colorable{Type: dom.DoctypeType, Attr: NameColor}] = color.RGB(168, 0, 196).SprintfFunc()
	colors.Map[Colorable{Type: dom.DocumentType, Attr: NameColor}] = color.CyanString

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t dom.Type, a ColorAttr, s string) string {
	res := c.Get(t, a)(s)
	return res
}

func (c *Colors) Get(t dom.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
