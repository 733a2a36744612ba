// Command comicgen draws a synthetic comic-panel grid image: solid
// color cells separated by dark gutter lines. Useful as a regression
// input for the panel splitter and for threshold tuning.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

var palette = []color.RGBA{
	{235, 94, 94, 255},
	{94, 155, 235, 255},
	{112, 201, 120, 255},
	{240, 204, 92, 255},
	{186, 124, 224, 255},
	{240, 154, 88, 255},
	{98, 205, 201, 255},
	{222, 128, 166, 255},
}

func main() {
	width := flag.Int("width", 1024, "Image width in pixels")
	height := flag.Int("height", 1536, "Image height in pixels")
	cols := flag.Int("cols", 2, "Panel columns")
	rows := flag.Int("rows", 2, "Panel rows")
	gutter := flag.Int("gutter", 10, "Gutter line thickness in pixels")
	output := flag.String("o", "comic_grid.png", "Output file")
	flag.Parse()

	if *cols < 1 || *rows < 1 || *width < *cols || *height < *rows {
		fmt.Fprintln(os.Stderr, "Invalid grid geometry")
		os.Exit(1)
	}

	img := image.NewRGBA(image.Rect(0, 0, *width, *height))
	// Gutter color everywhere first; panels are painted on top.
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{15, 15, 15, 255}), image.Point{}, draw.Src)

	cellW := *width / *cols
	cellH := *height / *rows

	for row := 0; row < *rows; row++ {
		for col := 0; col < *cols; col++ {
			cell := image.Rect(
				col*cellW+*gutter,
				row*cellH+*gutter,
				(col+1)*cellW-*gutter,
				(row+1)*cellH-*gutter,
			)
			fill := palette[(row**cols+col)%len(palette)]
			draw.Draw(img, cell, image.NewUniform(fill), image.Point{}, draw.Src)
		}
	}

	f, err := os.Create(*output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create %s: %v\n", *output, err)
		os.Exit(1)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %dx%d grid (%dx%d panels, %dpx gutter) to %s\n",
		*width, *height, *cols, *rows, *gutter, *output)
}
