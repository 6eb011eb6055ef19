// Package gallery holds the car pictures shown on the result screen.
package gallery

import (
	"math/rand/v2"

	"github.com/abhisek/porschequiz/internal/quiz"
)

// Image is a named piece of terminal art.
type Image struct {
	Name    string
	Caption string
	Art     string
}

// Gallery is a fixed set of interchangeable images.
type Gallery struct {
	images []Image
	intN   func(n int) int
}

var _ quiz.ImagePicker = (*Gallery)(nil)

// New creates a gallery over images. Picks are uniform and unseeded.
func New(images []Image) *Gallery {
	return &Gallery{images: images, intN: rand.IntN}
}

// Default returns the four Porsche pictures.
func Default() *Gallery {
	return New(Cars())
}

// Len returns the number of images.
func (g *Gallery) Len() int {
	return len(g.images)
}

// PickImage returns the name of a uniformly chosen image, or "" for an
// empty gallery.
func (g *Gallery) PickImage() string {
	if len(g.images) == 0 {
		return ""
	}
	return g.images[g.intN(len(g.images))].Name
}

// Lookup finds an image by name.
func (g *Gallery) Lookup(name string) (Image, bool) {
	for _, img := range g.images {
		if img.Name == name {
			return img, true
		}
	}
	return Image{}, false
}
