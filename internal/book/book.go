// Package book implements the storybook reader: an ordered sequence of
// pages behind a synthesized cover, with clamped forward/back navigation.
package book

import "strings"

// ImagePosition hints where a page's illustration sits relative to the text.
type ImagePosition string

const (
	ImageTop    ImagePosition = "top"
	ImageBottom ImagePosition = "bottom"
	ImageFull   ImagePosition = "full"
)

type Page struct {
	Title         string        `json:"title,omitempty"`
	Content       string        `json:"content,omitempty"`
	Image         string        `json:"image,omitempty"`
	ImagePosition ImagePosition `json:"imagePosition,omitempty"`
}

type Book struct {
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	CoverImage string `json:"coverImage"`
	Pages      []Page `json:"-"`
}

// PageCount includes the synthesized cover at index 0.
func (b Book) PageCount() int { return len(b.Pages) + 1 }

// PageAt returns the page at the given index, where index 0 is the cover.
// Out-of-range indices are clamped.
func (b Book) PageAt(i int) (Page, bool) {
	i = b.Clamp(i)
	if i == 0 {
		return Page{Title: b.Title, Content: "by " + b.Author, Image: b.CoverImage, ImagePosition: ImageFull}, true
	}
	return b.Pages[i-1], false
}

// Clamp bounds an index to [0, PageCount-1].
func (b Book) Clamp(i int) int {
	if i < 0 {
		return 0
	}
	if last := b.PageCount() - 1; i > last {
		return last
	}
	return i
}

// Paragraphs splits page content on blank-line boundaries. Each paragraph
// renders as its own block; the first gets the drop-cap treatment. This is
// a styling contract only, not a parsing contract for other consumers.
func Paragraphs(content string) []string {
	out := []string{}
	for _, p := range strings.Split(content, "\n\n") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
