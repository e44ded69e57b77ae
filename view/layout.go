package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Page(title string, content ...g.Node) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(title)),
				Link(Rel("stylesheet"), Href(StylesheetPath)),
			),
			Body(
				Class("bg-base-100 text-base-content"),
				Div(
					Class("container mx-auto py-12"),
					g.Group(content),
				),
			),
		),
	})
}

// ErrorNotice replaces a widget's output when the estimator rejects the state.
func ErrorNotice(message string) g.Node {
	return Div(
		Class("alert alert-warning"),
		g.Attr("role", "alert"),
		g.Text(message),
	)
}

func slider(label, name string, r SliderRange, value float64, display string) g.Node {
	return Div(
		Class("form-control gap-2"),
		Label(
			Class("flex justify-between text-sm"),
			g.Attr("for", name),
			Span(g.Text(label)),
			Span(Class("font-semibold"), g.Text(display)),
		),
		Input(
			Type("range"),
			ID(name),
			Name(name),
			Class("range range-primary"),
			g.Attr("min", sliderValue(r.Min)),
			g.Attr("max", sliderValue(r.Max)),
			g.Attr("step", sliderValue(r.Step)),
			Value(sliderValue(value)),
			g.Attr("onchange", "this.form.submit()"),
		),
	)
}

func stat(label, value string) g.Node {
	return Div(
		Class("stat"),
		Div(Class("stat-title"), g.Text(label)),
		Div(Class("stat-value"), g.Text(value)),
	)
}
