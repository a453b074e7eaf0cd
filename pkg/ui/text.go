package ui

// Segment is a string with a style.
type Segment struct {
	Style
	Text string
}

// Text is a sequence of styled segments.
type Text []*Segment

// T returns a Text of one segment, styled with styles merged in order.
func T(s string, styles ...Style) Text {
	var st Style
	for _, style := range styles {
		st = st.Merge(style)
	}
	return Text{&Segment{Style: st, Text: s}}
}
