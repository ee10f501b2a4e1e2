package server

import (
	"io"
	"net/url"
	"strings"

	"github.com/sw33tLie/catalogo/pkg/browse"
	"github.com/sw33tLie/catalogo/pkg/catalog"
	"github.com/sw33tLie/catalogo/pkg/taxonomy"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func renderPage(w io.Writer, controls []catalog.Control, st browse.State, view browse.View) error {
	return pageLayout("Catálogo",
		pageHeader(controls, st),
		Main(ID("content-grid"), pageContent(view)),
	).Render(w)
}

func pageLayout(title string, header, content g.Node) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(Lang("pt-BR"),
			Head(
				Meta(Charset("UTF-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(title)),
				StyleEl(g.Raw(paletteCSS()+pageCSS)),
			),
			Body(
				header,
				content,
				// An emptied search field resets the view without waiting for submit.
				Script(g.Raw(`document.getElementById('caixa-busca').addEventListener('input',function(e){if(e.target.value.trim()===''){window.location.href='/';}});`)),
			),
		),
	})
}

func pageHeader(controls []catalog.Control, st browse.State) g.Node {
	return Header(
		H1(g.Text("Catálogo")),
		Nav(Class("filter-buttons-container"),
			A(classes("filter-btn", st.AllActive, "active"), Href("/?all"), g.Text(catalog.AllControl)),
			g.Map(controls, controlButton),
		),
		Form(Class("search-bar"), Method("get"), Action("/"),
			Input(Type("search"), ID("caixa-busca"), Name("q"), Placeholder("Search name, description or tag..."), Value(st.Query)),
			Button(Type("submit"), ID("botao-busca"), g.Text("Search")),
		),
	)
}

// controlButton opens a modal listing the sub-categories of one super-category.
func controlButton(c catalog.Control) g.Node {
	return Details(Class("filter-btn"), Style("--category-color: "+cssColor(c.Color)),
		Summary(g.Text(c.SuperCategory)),
		Div(Class("modal-content"),
			H2(g.Text(c.SuperCategory)),
			Ul(Class("modal-category-list"),
				g.Map(c.Subcategories, func(sub string) g.Node {
					return Li(A(Href("/?category="+url.QueryEscape(sub)), g.Attr("data-category", sub), g.Text(sub)))
				}),
			),
		),
	)
}

func pageContent(view browse.View) g.Node {
	switch {
	case view.Failed:
		return P(Class("load-error"), g.Text(view.Message))
	case view.Empty:
		return P(Class("no-results"), g.Text(view.Message))
	}
	return g.Map(view.Groups, groupSection)
}

func groupSection(gr catalog.DisplayGroup) g.Node {
	return Div(Class("category-wrapper"), Style("--category-color: "+cssColor(gr.Color)),
		H2(Class("category-title"), g.Text(gr.Category)),
		Div(Class("articles-grid"), g.Map(gr.Items, itemArticle)),
	)
}

func itemArticle(it catalog.Item) g.Node {
	return Article(
		H3(g.Text(it.Name)),
		g.If(it.CreationYear != "", P(Class("year"), Strong(g.Text("Year: ")), g.Text(it.CreationYear))),
		P(g.Text(it.Description)),
		Div(Class("tags-container"),
			g.Map(it.Tags, func(tag string) g.Node { return Span(Class("tag"), g.Text(tag)) }),
		),
		g.If(it.Link != "", A(Class("saiba-mais"), Href(it.Link), Target("_blank"), Rel("noopener"), g.Text(learnMore(it.Link)))),
	)
}

func learnMore(link string) string {
	if site := catalog.LinkSite(link); site != "" {
		return "Learn more on " + site
	}
	return "Learn more"
}

func classes(base string, cond bool, extra string) g.Node {
	if cond {
		return Class(base + " " + extra)
	}
	return Class(base)
}

func cssColor(token string) string {
	if strings.HasPrefix(token, "#") {
		return token
	}
	return "var(--" + token + ")"
}

func paletteCSS() string {
	var b strings.Builder
	b.WriteString(":root {")
	for _, t := range taxonomy.PaletteTokens() {
		b.WriteString(" --" + t + ": " + taxonomy.Hex(t) + ";")
	}
	b.WriteString(" }\n")
	return b.String()
}

const pageCSS = `
body { font-family: system-ui, sans-serif; background: #0f172a; color: #cbd5e1; margin: 0; padding: 0 1.5rem 3rem; }
header { padding: 1.5rem 0; }
.filter-buttons-container { display: flex; flex-wrap: wrap; gap: .5rem; margin-bottom: 1rem; }
.filter-btn { border: 1px solid var(--category-color, #475569); border-radius: .5rem; padding: .4rem .8rem; color: inherit; text-decoration: none; position: relative; }
.filter-btn.active { background: #06b6d4; color: #0f172a; }
.filter-btn summary { cursor: pointer; list-style: none; }
.modal-content { position: absolute; z-index: 10; background: #1e293b; border-radius: .5rem; padding: 1rem; min-width: 14rem; }
.modal-category-list a { color: var(--category-color); }
.search-bar input { padding: .4rem; width: 18rem; }
.category-wrapper { border-left: 4px solid var(--category-color); padding-left: 1rem; margin: 2rem 0; }
.category-title { color: var(--category-color); }
.articles-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(16rem, 1fr)); gap: 1rem; }
article { background: #1e293b; border-radius: .75rem; padding: 1rem; }
.tag { display: inline-block; background: #334155; border-radius: 999px; padding: .1rem .6rem; margin: .1rem; font-size: .8rem; }
.saiba-mais { color: var(--category-color); }
.no-results, .load-error { font-size: 1.2rem; }
`
