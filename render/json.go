package render

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSON renders the page as a single document.
type JSON struct{}

type jsonPage struct {
	Page       int    `json:"page"`
	TotalPages int    `json:"total_pages"`
	Count      int    `json:"count"`
	Remaining  int    `json:"remaining"`
	Data       []Card `json:"data"`
}

func (JSON) ContentType() string {
	return "application/json; charset=utf-8"
}

func (JSON) Render(w io.Writer, view View) error {

	return json.NewEncoder(w).Encode(jsonPage{
		Page:       view.Page,
		TotalPages: view.TotalPages,
		Count:      view.Count,
		Remaining:  view.Remaining,
		Data:       view.Cards(),
	})
}
