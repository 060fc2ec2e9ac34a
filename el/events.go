// Event helpers for the element DSL. Handlers land in props under the
// "on"-prefixed key; repeated handlers for the same event accumulate.
package el

// On attaches a handler for an arbitrary event name.
func On(event string, handler any) Attr {
	return Attr{Key: "on" + capitalize(event), Value: handler}
}

func OnClick(handler any) Attr     { return Attr{Key: "onClick", Value: handler} }
func OnDblClick(handler any) Attr  { return Attr{Key: "onDblclick", Value: handler} }
func OnInput(handler any) Attr     { return Attr{Key: "onInput", Value: handler} }
func OnChange(handler any) Attr    { return Attr{Key: "onChange", Value: handler} }
func OnSubmit(handler any) Attr    { return Attr{Key: "onSubmit", Value: handler} }
func OnFocus(handler any) Attr     { return Attr{Key: "onFocus", Value: handler} }
func OnBlur(handler any) Attr      { return Attr{Key: "onBlur", Value: handler} }
func OnKeyDown(handler any) Attr   { return Attr{Key: "onKeydown", Value: handler} }
func OnKeyUp(handler any) Attr     { return Attr{Key: "onKeyup", Value: handler} }
func OnMouseDown(handler any) Attr { return Attr{Key: "onMousedown", Value: handler} }
func OnMouseUp(handler any) Attr   { return Attr{Key: "onMouseup", Value: handler} }
func OnMouseEnter(handler any) Attr { return Attr{Key: "onMouseenter", Value: handler} }
func OnMouseLeave(handler any) Attr { return Attr{Key: "onMouseleave", Value: handler} }
func OnScroll(handler any) Attr    { return Attr{Key: "onScroll", Value: handler} }
func OnToggle(handler any) Attr    { return Attr{Key: "onToggle", Value: handler} }

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
