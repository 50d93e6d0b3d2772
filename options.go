package textedit

// Options configures a layout.
type Options struct {
	// FontSize is the pixel size of one em. Default: 16
	FontSize float64

	// LineSpacing multiplies the font's line height. Default: 1.0
	LineSpacing float64

	// TextWidth is the wrap width in pixels. 0 means unconstrained.
	TextWidth float64

	// Wrap selects the line breaking policy.
	Wrap WrapMode

	// Alignment selects horizontal line alignment.
	Alignment Alignment
}

// DefaultOptions returns sensible default layout options.
func DefaultOptions() Options {
	return Options{
		FontSize:    16,
		LineSpacing: 1.0,
		TextWidth:   0, // No wrapping
		Wrap:        WrapWord,
		Alignment:   AlignLeft,
	}
}

// normalized replaces out-of-range values with defaults.
func (o Options) normalized() Options {
	if o.FontSize <= 0 {
		o.FontSize = 16
	}
	if o.LineSpacing <= 0 {
		o.LineSpacing = 1.0
	}
	if o.TextWidth < 0 {
		o.TextWidth = 0
	}
	return o
}

// constrained reports whether lines wrap at TextWidth.
func (o Options) constrained() bool {
	return o.Wrap != WrapSingleLine && o.TextWidth > 0
}

// widthEm returns the wrap width in em units, 0 when unconstrained.
func (o Options) widthEm() float64 {
	if !o.constrained() {
		return 0
	}
	return o.TextWidth / o.FontSize
}

// rewraps reports whether switching from o to n changes line breaks.
// A font size change alone only rescales unless the width is constrained.
func (o Options) rewraps(n Options) bool {
	return o.Wrap != n.Wrap ||
		o.LineSpacing != n.LineSpacing ||
		o.widthEm() != n.widthEm()
}
