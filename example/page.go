package main

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/a-h/templ"

	"github.com/pthm/domcmp"
	"github.com/pthm/domcmp/example/components"
)

// renderPage writes the server-rendered page the components bind to.
func renderPage(ctx context.Context, store *Store, enc *domcmp.Encoder) (string, error) {
	var sb strings.Builder
	sb.WriteString("<!doctype html>\n<html><body>\n")

	sb.WriteString(`<nav id="sidebar">`)
	for _, status := range []components.Status{"", components.StatusPending, components.StatusCompleted} {
		label := string(status)
		if label == "" {
			label = "all"
		}
		fmt.Fprintf(&sb, `<input type="radio" name="status" id="filter-%s"`, label)
		if err := templ.RenderAttributes(ctx, &sb, components.FilterAttrs(status)); err != nil {
			return "", err
		}
		sb.WriteString(">")
	}
	sb.WriteString("</nav>\n")

	sb.WriteString(`<ul id="todos">`)
	for _, todo := range store.List(nil) {
		toggle, err := components.ToggleAttrs(enc, todo.ID)
		if err != nil {
			return "", err
		}
		del, err := components.DeleteAttrs(enc, todo.ID)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, `<li class="todo">%s `, html.EscapeString(todo.Title))
		if err := button(ctx, &sb, "toggle-"+todo.ID, "Done", toggle); err != nil {
			return "", err
		}
		if err := button(ctx, &sb, "delete-"+todo.ID, "Delete", del); err != nil {
			return "", err
		}
		sb.WriteString("</li>")
	}
	sb.WriteString("</ul>\n")

	add, err := components.AddAttrs(enc, "Ship the example")
	if err != nil {
		return "", err
	}
	sb.WriteString(`<form id="add">`)
	if err := button(ctx, &sb, "add-todo", "Add", add); err != nil {
		return "", err
	}
	sb.WriteString("</form>\n")

	sb.WriteString(`<p id="stats"></p>`)
	sb.WriteString("\n</body></html>\n")
	return sb.String(), nil
}

func button(ctx context.Context, sb *strings.Builder, id, label string, attrs templ.Attributes) error {
	fmt.Fprintf(sb, `<button id="%s"`, id)
	if err := templ.RenderAttributes(ctx, sb, attrs); err != nil {
		return err
	}
	fmt.Fprintf(sb, ">%s</button>", html.EscapeString(label))
	return nil
}
