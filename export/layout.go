package export

// Line is one styled paragraph. The renderer wraps it to the content width.
type Line struct {
	Text   string
	Size   float64 // font size in points
	Bold   bool
	Color  string // #rrggbb
	Indent float64
}

// Block is a unit of content that is kept on one page whenever it fits.
type Block struct {
	Kind       string // summary, heading, governorate, day
	Lines      []Line
	SpaceAfter float64
}

// Page is the content placed on one output page.
type Page struct {
	Blocks []Block
}

// Geometry describes the printable area in millimetres.
type Geometry struct {
	PageHeight   float64
	Margin       float64
	FirstPageTop float64 // first page starts lower, below the banner
}

// A4 matches the portrait A4 page used by the PDF renderer.
var A4 = Geometry{PageHeight: 297, Margin: 20, FirstPageTop: 60}

// Measure reports the vertical space a line takes once wrapped.
type Measure func(Line) float64

func (b Block) height(measure Measure) float64 {
	h := b.SpaceAfter
	for _, l := range b.Lines {
		h += measure(l)
	}
	return h
}

// Paginate distributes blocks over pages. A new page starts when the
// next block would run past the bottom margin. A block taller than a
// whole page is split line by line.
func Paginate(blocks []Block, g Geometry, measure Measure) []Page {
	bottom := g.PageHeight - g.Margin
	top := g.FirstPageTop
	if top <= 0 {
		top = g.Margin
	}

	var pages []Page
	page := Page{}
	y := top
	fresh := true

	newPage := func() {
		pages = append(pages, page)
		page = Page{}
		y = g.Margin
		fresh = true
	}

	for _, b := range blocks {
		h := b.height(measure)
		if !fresh && y+h > bottom {
			newPage()
		}
		if y+h <= bottom {
			page.Blocks = append(page.Blocks, b)
			y += h
			fresh = false
			continue
		}

		part := Block{Kind: b.Kind}
		for _, l := range b.Lines {
			lh := measure(l)
			if !fresh && y+lh > bottom {
				page.Blocks = append(page.Blocks, part)
				newPage()
				part = Block{Kind: b.Kind}
			}
			part.Lines = append(part.Lines, l)
			y += lh
			fresh = false
		}
		part.SpaceAfter = b.SpaceAfter
		page.Blocks = append(page.Blocks, part)
		y += b.SpaceAfter
	}

	if len(page.Blocks) > 0 || len(pages) == 0 {
		pages = append(pages, page)
	}
	return pages
}
