package domain

import "encoding/json"

// Rect is one rectangle-fill instruction on the pixel matrix. It serializes
// in the display firmware's wire shape: {"df":[x,y,width,height,"RRGGBB"]}.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
	Color  string
}

func (r Rect) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		DF [5]any `json:"df"`
	}{DF: [5]any{r.X, r.Y, r.Width, r.Height, r.Color}})
}

// TextFragment is one colored piece of the scrolling text line.
type TextFragment struct {
	Text  string `json:"t"`
	Color string `json:"c"`
}

// Packet is the message sent to the display. The fallback packet carries only
// a text layer, so draw and textOffset are omitted when unset.
type Packet struct {
	// Draw is dropped from the JSON entirely when the layer is empty rather
	// than encoded as []. The firmware treats a missing layer and an empty
	// one the same, and the fallback packet depends on the omission.
	Draw       []Rect         `json:"draw,omitempty"`
	Text       []TextFragment `json:"text"`
	TextOffset int            `json:"textOffset,omitempty"`
}
