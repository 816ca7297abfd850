package purrboard

import (
	"strings"
	"testing"
)

func TestNewImage(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr string
	}{
		{"https", "https://example.com/cat.jpg", ""},
		{"http", "http://example.com/cat.jpg", ""},
		{"empty", "", "cannot be empty"},
		{"no scheme", "example.com/cat.jpg", "scheme"},
		{"ftp", "ftp://example.com/cat.jpg", "scheme"},
		{"no host", "https:///cat.jpg", "host"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := NewImage(tt.url, "caption")
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("NewImage() error = %v", err)
				}
				if img.URL() != tt.url || img.Caption() != "caption" {
					t.Errorf("NewImage() = %+v", img)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("NewImage() error = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestContent_Validate(t *testing.T) {
	img, _ := NewImage("https://example.com/cat.jpg", "")

	tests := []struct {
		name    string
		content Content
		wantErr string
	}{
		{"default", DefaultContent(), ""},
		{"image only", Content{Images: []Image{img}}, ""},
		{"no images", Content{Facts: []string{"fact"}}, "at least one image"},
		{"zero image", Content{Images: []Image{img, {}}}, "images[1]"},
		{"empty fact", Content{Images: []Image{img}, Facts: []string{"a", ""}}, "facts[1]"},
		{"nameless breed", Content{Images: []Image{img}, Breeds: []Breed{{Description: "x"}}}, "breeds[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.content.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestContent_CloneIsDeep(t *testing.T) {
	b, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	c := b.Content()
	c.Facts[0] = "modified"
	c.Breeds[0].Name = "modified"
	c.Images = c.Images[:1]

	again := b.Content()
	if again.Facts[0] == "modified" {
		t.Error("mutating returned facts affected the board")
	}
	if again.Breeds[0].Name == "modified" {
		t.Error("mutating returned breeds affected the board")
	}
	if len(again.Images) != 5 {
		t.Errorf("len(Images) = %d, want 5", len(again.Images))
	}
}

func TestDefaultContent_Valid(t *testing.T) {
	c := DefaultContent()
	if err := c.Validate(); err != nil {
		t.Fatalf("DefaultContent().Validate() error = %v", err)
	}
	for i, img := range c.Images {
		if _, err := NewImage(img.URL(), img.Caption()); err != nil {
			t.Errorf("Images[%d] invalid: %v", i, err)
		}
		if img.Caption() == "" {
			t.Errorf("Images[%d] has no caption", i)
		}
	}
}

func TestTab_String(t *testing.T) {
	if TabFacts.String() != "facts" {
		t.Errorf("TabFacts.String() = %q", TabFacts.String())
	}
	if TabBreeds.String() != "breeds" {
		t.Errorf("TabBreeds.String() = %q", TabBreeds.String())
	}
}
