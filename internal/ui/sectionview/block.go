// Package sectionview renders page sections in the terminal and owns the
// carousel and marquee engines that drive their animated ones.
package sectionview

import (
	"github.com/llehouerou/showcase/internal/carousel"
	"github.com/llehouerou/showcase/internal/sched"
	"github.com/llehouerou/showcase/internal/sections"
	"github.com/llehouerou/showcase/internal/viewport"
)

// Engines carries the shared inputs every block of a page is built from.
type Engines struct {
	Sched      sched.Scheduler // nil renders a static page
	Classifier *viewport.Classifier
	Carousel   carousel.Config        // timing and threshold defaults
	Marquee    carousel.MarqueeConfig // velocity, frame interval, item width
	CellWidth  int                    // px per terminal column
}

// Block is one section bound to the engine that animates it, if any.
type Block struct {
	Section  sections.Section
	Carousel *carousel.Carousel // windowed and paginated sections
	Marquee  *carousel.Marquee  // scrolling sections

	cellWidth int
}

// NewBlock creates the block for s. Sliding and paged sections get a carousel
// subscribed to the classifier; scrolling sections get a marquee.
func NewBlock(s sections.Section, e Engines) *Block {
	b := &Block{Section: s, cellWidth: max(e.CellWidth, 1)}
	if cfg, ok := sections.CarouselConfig(s, e.Carousel); ok {
		class := viewport.Wide
		if e.Classifier != nil {
			class = e.Classifier.Class()
		}
		b.Carousel = carousel.New(cfg, e.Sched, class)
		if e.Classifier != nil {
			b.Carousel.Attach(e.Classifier)
		}
	}
	if cfg, ok := sections.MarqueeConfig(s, e.Marquee); ok {
		b.Marquee = carousel.NewMarquee(cfg, e.Sched)
	}
	return b
}

// Interactive reports whether the block reacts to arrows and swipes.
func (b *Block) Interactive() bool {
	return b.Carousel != nil && b.Carousel.TotalDots() > 1
}

// Next advances the block's carousel, if it has one.
func (b *Block) Next() {
	if b.Carousel != nil {
		b.Carousel.Next()
	}
}

// Prev moves the block's carousel back, if it has one.
func (b *Block) Prev() {
	if b.Carousel != nil {
		b.Carousel.Prev()
	}
}

// Close stops every timer the block owns and drops its viewport subscription.
func (b *Block) Close() {
	if b.Carousel != nil {
		b.Carousel.Close()
	}
	if b.Marquee != nil {
		b.Marquee.Close()
	}
}

// Page is the ordered set of blocks for one record.
type Page struct {
	blocks []*Block
}

// NewPage builds a block for every section.
func NewPage(secs []sections.Section, e Engines) *Page {
	p := &Page{blocks: make([]*Block, 0, len(secs))}
	for _, s := range secs {
		p.blocks = append(p.blocks, NewBlock(s, e))
	}
	return p
}

// Blocks returns the page's blocks in display order.
func (p *Page) Blocks() []*Block {
	if p == nil {
		return nil
	}
	return p.blocks
}

// Len returns the number of blocks.
func (p *Page) Len() int {
	return len(p.Blocks())
}

// Block returns block i, or nil when out of range.
func (p *Page) Block(i int) *Block {
	if i < 0 || i >= p.Len() {
		return nil
	}
	return p.blocks[i]
}

// Close tears down every block. Safe to call more than once.
func (p *Page) Close() {
	for _, b := range p.Blocks() {
		b.Close()
	}
}
