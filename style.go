package ggplot

// Style constants in points, following matplotlib's default rcParams.
const (
	fontSize      = 10.0 // font.size
	titleSize     = 12.0 // axes.titlesize "large"
	suptitleSize  = 12.0 // figure.titlesize "large"
	legendSize    = 10.0 // legend.fontsize "medium"
	titlePad      = 6.0  // axes.titlepad
	labelPad      = 4.0  // axes.labelpad
	tickLength    = 3.5  // xtick.major.size
	tickWidth     = 0.8  // xtick.major.width
	tickPad       = 3.5  // xtick.major.pad
	spineWidth    = 0.8  // axes.linewidth
	gridWidth     = 0.8  // grid.linewidth
	lineWidth     = 1.5  // lines.linewidth
	markerSize    = 6.0  // lines.markersize
	barWidth      = 0.8  // default bar width in data units
	suptitleY     = 0.98 // figure.suptitle y
	legendBorder  = 0.5  // legend.borderaxespad, in font sizes
	legendPadding = 0.4  // legend.borderpad
	legendHandle  = 2.0  // legend.handlelength
	legendSpacing = 0.5  // legend.labelspacing
	legendTextPad = 0.8  // legend.handletextpad
	autoMargin    = 0.05 // axes.xmargin / axes.ymargin
)

// tinyMagnitude is where data is too close to zero to widen relatively.
const tinyMagnitude = 1e-280

var (
	gridColor         = Hex("#b0b0b0")
	legendEdgeColor   = Hex("#cccccc")
	legendFrameColor  = White.WithAlpha(0.8)
	defaultFontFamily = "sans-serif"
)
