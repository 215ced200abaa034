package render

import (
	"html/template"
	"io"
	"net/url"
	"strconv"

	"github.com/microcosm-cc/bluemonday"
	"github.com/supakorn-kn/go-catalog/objects"
)

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Book Catalog</title>
</head>
<body>
<form class="search" method="get" action="">
<input type="text" name="title" value="{{.Query.Title}}" placeholder="Title">
<select name="author">
<option value="any">All Authors</option>
{{- range .Authors}}
<option value="{{.ID}}"{{if eq .ID $.Query.Author}} selected{{end}}>{{.Name}}</option>
{{- end}}
</select>
<select name="genre">
<option value="any">All Genres</option>
{{- range .Genres}}
<option value="{{.ID}}"{{if eq .ID $.Query.Genre}} selected{{end}}>{{.Name}}</option>
{{- end}}
</select>
<button type="submit">Search</button>
</form>
{{- if .Empty}}
<p class="message">No results found. Your filters might be too narrow.</p>
{{- else}}
<ul class="list">
{{- range .Cards}}
<li class="preview" data-preview="{{.BookID}}">
<img class="preview__image" src="{{.Image}}" alt="">
<div class="preview__info">
<h3 class="preview__title">{{.Title}}</h3>
<div class="preview__author">{{.Author}} ({{.Year}})</div>
<div class="preview__genres">{{join .Genres}}</div>
<div class="preview__description">{{.Description}}</div>
</div>
</li>
{{- end}}
</ul>
{{- end}}
{{- if gt .Remaining 0}}
<a class="list__button" href="{{.NextURL}}">Show more ({{.Remaining}})</a>
{{- end}}
</body>
</html>
`

// HTML renders a full page. Book descriptions are sanitised and may keep basic formatting.
type HTML struct {
	tmpl   *template.Template
	policy *bluemonday.Policy
}

type htmlCard struct {
	Card
	Description template.HTML
}

type htmlPage struct {
	View
	Cards   []htmlCard
	NextURL string
}

func NewHTML() HTML {

	tmpl := template.Must(template.New("page").Funcs(template.FuncMap{
		"join": joinNames,
	}).Parse(pageTemplate))

	return HTML{tmpl: tmpl, policy: bluemonday.UGCPolicy()}
}

func (HTML) ContentType() string {
	return "text/html; charset=utf-8"
}

func (h HTML) Render(w io.Writer, view View) error {

	cards := view.Cards()
	page := htmlPage{View: view, Cards: make([]htmlCard, 0, len(cards))}

	for _, card := range cards {
		page.Cards = append(page.Cards, htmlCard{
			Card:        card,
			Description: template.HTML(h.policy.Sanitize(card.Description)),
		})
	}

	if view.Remaining > 0 {
		page.NextURL = "?" + nextQuery(view).Encode()
	}

	return h.tmpl.Execute(w, page)
}

func (p htmlPage) Authors() []objects.Entry {
	return p.Directory.AuthorEntries()
}

func (p htmlPage) Genres() []objects.Entry {
	return p.Directory.GenreEntries()
}

func nextQuery(view View) url.Values {

	values := url.Values{}
	if view.Query.Title != "" {
		values.Set("title", view.Query.Title)
	}
	if view.Query.Author != "" {
		values.Set("author", view.Query.Author)
	}
	if view.Query.Genre != "" {
		values.Set("genre", view.Query.Genre)
	}
	if view.Query.SortBy != "" {
		values.Set("sort", view.Query.SortBy)
	}
	if view.Query.PageSize > 0 {
		values.Set("page_size", strconv.Itoa(view.Query.PageSize))
	}
	values.Set("page", strconv.Itoa(view.Page+1))

	return values
}
