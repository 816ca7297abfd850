package purrboard

import (
	"errors"
	"fmt"
	"net/url"
)

const (
	defaultTitle   = "Discover the World of Cats"
	defaultTagline = "Explore fascinating facts and popular breeds of our feline friends"
)

// Image is one carousel entry.
//
// Image is immutable after creation via [NewImage].
type Image struct {
	url     string
	caption string
}

// URL returns the image location. It is only ever loaded by a browser.
func (i Image) URL() string {
	return i.url
}

// Caption returns the text shown under the image.
func (i Image) Caption() string {
	return i.caption
}

// NewImage creates an [Image]. rawURL must be an absolute http or https URL.
//
// Example:
//
//	img, err := purrboard.NewImage("https://example.com/cat.jpg", "A sleepy cat")
func NewImage(rawURL, caption string) (Image, error) {
	if rawURL == "" {
		return Image{}, errors.New("image URL cannot be empty")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return Image{}, errors.New("invalid image URL: " + err.Error())
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Image{}, errors.New("image URL must have a scheme (http:// or https://)")
	}
	if u.Host == "" {
		return Image{}, errors.New("image URL must have a host")
	}
	return Image{url: rawURL, caption: caption}, nil
}

// Breed is one entry of the popular breeds panel.
type Breed struct {
	Name        string
	Description string
}

// Content is the static part of the page: everything that does not change
// while a page is mounted.
type Content struct {
	Title   string
	Tagline string
	Images  []Image
	Facts   []string
	Breeds  []Breed
}

// Validate reports whether c can be rendered.
func (c Content) Validate() error {
	if len(c.Images) == 0 {
		return errors.New("at least one image is required")
	}
	for i, img := range c.Images {
		if img.url == "" {
			return fmt.Errorf("images[%d]: use NewImage to create images", i)
		}
	}
	for i, f := range c.Facts {
		if f == "" {
			return fmt.Errorf("facts[%d]: fact cannot be empty", i)
		}
	}
	for i, b := range c.Breeds {
		if b.Name == "" {
			return fmt.Errorf("breeds[%d]: name cannot be empty", i)
		}
	}
	return nil
}

// clone returns a deep copy of c with default title and tagline applied.
func (c Content) clone() Content {
	out := Content{
		Title:   c.Title,
		Tagline: c.Tagline,
		Images:  append([]Image(nil), c.Images...),
		Facts:   append([]string(nil), c.Facts...),
		Breeds:  append([]Breed(nil), c.Breeds...),
	}
	if out.Title == "" {
		out.Title = defaultTitle
	}
	if out.Tagline == "" {
		out.Tagline = defaultTagline
	}
	return out
}

// DefaultContent returns the stock cat page: five captioned images, five
// facts and five breeds.
func DefaultContent() Content {
	return Content{
		Title:   defaultTitle,
		Tagline: defaultTagline,
		Images: []Image{
			{
				url:     "https://upload.wikimedia.org/wikipedia/commons/thumb/3/3a/Cat03.jpg/1200px-Cat03.jpg",
				caption: "A curious tabby keeping watch",
			},
			{
				url:     "https://upload.wikimedia.org/wikipedia/commons/thumb/4/4d/Cat_November_2010-1a.jpg/1200px-Cat_November_2010-1a.jpg",
				caption: "Striking a pose in the autumn light",
			},
			{
				url:     "https://upload.wikimedia.org/wikipedia/commons/thumb/b/bb/Kittyply_edit1.jpg/1200px-Kittyply_edit1.jpg",
				caption: "A kitten discovering the world",
			},
			{
				url:     "https://upload.wikimedia.org/wikipedia/commons/thumb/1/15/Cat_August_2010-4.jpg/1200px-Cat_August_2010-4.jpg",
				caption: "Whiskers, alert and ready",
			},
			{
				url:     "https://upload.wikimedia.org/wikipedia/commons/thumb/6/68/Orange_tabby_cat_sitting_on_fallen_leaves-Hisashi-01A.jpg/1200px-Orange_tabby_cat_sitting_on_fallen_leaves-Hisashi-01A.jpg",
				caption: "An orange tabby among fallen leaves",
			},
		},
		Facts: []string{
			"Cats have been domesticated for over 4,000 years.",
			"An adult cat has 30 teeth.",
			"Cats can jump up to six times their length.",
			"A group of cats is called a 'clowder'.",
			"Cats spend 70% of their lives sleeping.",
		},
		Breeds: []Breed{
			{Name: "Siamese", Description: "Known for their distinctive coloring and vocal nature."},
			{Name: "Maine Coon", Description: "One of the largest domestic cat breeds with a friendly personality."},
			{Name: "Persian", Description: "Recognized for their long fur and flat faces."},
			{Name: "Bengal", Description: "Wild-looking cats with leopard-like spots."},
			{Name: "Scottish Fold", Description: "Famous for their folded ears and round faces."},
		},
	}
}
