// Attribute helpers for the element DSL.
package el

import (
	"strings"

	"github.com/vuego-dev/vuego/pkg/vdom"
)

func ID(id string) Attr {
	return Attr{Key: "id", Value: id}
}

func Class(classes ...string) Attr {
	return Attr{Key: "class", Value: strings.Join(classes, " ")}
}

// Classes builds a class attribute from mixed values following the
// class normalization rules: strings, lists, and map[string]bool.
func Classes(classes ...any) Attr {
	return Attr{Key: "class", Value: vdom.NormalizeClass(classes)}
}

// ClassIf adds a class only when condition holds.
func ClassIf(condition bool, class string) Attr {
	if !condition {
		return Attr{}
	}
	return Attr{Key: "class", Value: class}
}

// AttrIf keeps a only when condition holds.
func AttrIf(condition bool, a Attr) Attr {
	if !condition {
		return Attr{}
	}
	return a
}

// StyleAttr sets the style attribute from a CSS string.
func StyleAttr(style string) Attr {
	return Attr{Key: "style", Value: style}
}

// Style sets one style property; repeated Style attrs merge.
func Style(prop, value string) Attr {
	return Attr{Key: "style", Value: map[string]string{prop: value}}
}

// Key sets the diffing key.
func Key(key any) Attr {
	return Attr{Key: "key", Value: key}
}

func Data(key, value string) Attr {
	return Attr{Key: "data-" + key, Value: value}
}

func Role(role string) Attr {
	return Attr{Key: "role", Value: role}
}

func AriaLabel(label string) Attr {
	return Attr{Key: "aria-label", Value: label}
}

func AriaHidden(hidden bool) Attr {
	return Attr{Key: "aria-hidden", Value: boolString(hidden)}
}

func AriaExpanded(expanded bool) Attr {
	return Attr{Key: "aria-expanded", Value: boolString(expanded)}
}

func TabIndex(index int) Attr {
	return Attr{Key: "tabindex", Value: index}
}

func TitleAttr(title string) Attr {
	return Attr{Key: "title", Value: title}
}

func Lang(lang string) Attr {
	return Attr{Key: "lang", Value: lang}
}

func Href(url string) Attr {
	return Attr{Key: "href", Value: url}
}

func Target(target string) Attr {
	return Attr{Key: "target", Value: target}
}

func Rel(rel string) Attr {
	return Attr{Key: "rel", Value: rel}
}

func Name(name string) Attr {
	return Attr{Key: "name", Value: name}
}

func Value(value string) Attr {
	return Attr{Key: "value", Value: value}
}

func Type(t string) Attr {
	return Attr{Key: "type", Value: t}
}

func Placeholder(text string) Attr {
	return Attr{Key: "placeholder", Value: text}
}

func Disabled() Attr {
	return Attr{Key: "disabled", Value: true}
}

func Readonly() Attr {
	return Attr{Key: "readonly", Value: true}
}

func Required() Attr {
	return Attr{Key: "required", Value: true}
}

func Checked() Attr {
	return Attr{Key: "checked", Value: true}
}

func Selected() Attr {
	return Attr{Key: "selected", Value: true}
}

func Multiple() Attr {
	return Attr{Key: "multiple", Value: true}
}

func Autofocus() Attr {
	return Attr{Key: "autofocus", Value: true}
}

func For(id string) Attr {
	return Attr{Key: "for", Value: id}
}

func Src(url string) Attr {
	return Attr{Key: "src", Value: url}
}

func Alt(text string) Attr {
	return Attr{Key: "alt", Value: text}
}

func Width(w int) Attr {
	return Attr{Key: "width", Value: w}
}

func Height(h int) Attr {
	return Attr{Key: "height", Value: h}
}

func Colspan(n int) Attr {
	return Attr{Key: "colspan", Value: n}
}

func Rowspan(n int) Attr {
	return Attr{Key: "rowspan", Value: n}
}

func Charset(charset string) Attr {
	return Attr{Key: "charset", Value: charset}
}

func Content(content string) Attr {
	return Attr{Key: "content", Value: content}
}

func Min(value string) Attr {
	return Attr{Key: "min", Value: value}
}

func Max(value string) Attr {
	return Attr{Key: "max", Value: value}
}

func Step(value string) Attr {
	return Attr{Key: "step", Value: value}
}

func Rows(n int) Attr {
	return Attr{Key: "rows", Value: n}
}

func Cols(n int) Attr {
	return Attr{Key: "cols", Value: n}
}

func Action(url string) Attr {
	return Attr{Key: "action", Value: url}
}

func Method(method string) Attr {
	return Attr{Key: "method", Value: method}
}

func Open() Attr {
	return Attr{Key: "open", Value: true}
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
