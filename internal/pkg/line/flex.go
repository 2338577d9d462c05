package line

// Typed subset of the LINE flex message schema. Components marshal straight
// into the wire format, so field names and omitempty tags follow the API.

type FlexMessage struct {
	AltText  string
	Contents Bubble
}

// Component is a node inside a flex container.
type Component interface {
	flexComponent()
}

type Bubble struct {
	Type   string `json:"type"`
	Size   string `json:"size,omitempty"`
	Header *Box   `json:"header,omitempty"`
	Body   *Box   `json:"body,omitempty"`
	Footer *Box   `json:"footer,omitempty"`
}

func NewBubble(size string) Bubble {
	return Bubble{Type: "bubble", Size: size}
}

type Box struct {
	Type            string      `json:"type"`
	Layout          string      `json:"layout"`
	Contents        []Component `json:"contents"`
	Spacing         string      `json:"spacing,omitempty"`
	Margin          string      `json:"margin,omitempty"`
	PaddingAll      string      `json:"paddingAll,omitempty"`
	BackgroundColor string      `json:"backgroundColor,omitempty"`
	Flex            *int        `json:"flex,omitempty"`
}

func (*Box) flexComponent() {}

func VerticalBox(contents ...Component) *Box {
	return &Box{Type: "box", Layout: "vertical", Contents: contents}
}

func BaselineBox(contents ...Component) *Box {
	return &Box{Type: "box", Layout: "baseline", Contents: contents}
}

type Text struct {
	Type   string `json:"type"`
	Text   string `json:"text"`
	Color  string `json:"color,omitempty"`
	Size   string `json:"size,omitempty"`
	Weight string `json:"weight,omitempty"`
	Margin string `json:"margin,omitempty"`
	Align  string `json:"align,omitempty"`
	Wrap   bool   `json:"wrap,omitempty"`
	Flex   int    `json:"flex,omitempty"`
}

func (*Text) flexComponent() {}

func NewText(text string) *Text {
	return &Text{Type: "text", Text: text}
}

// Int returns a pointer for optional numeric flex fields where zero is a
// meaningful value.
func Int(v int) *int {
	return &v
}
