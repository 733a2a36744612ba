package segment

import (
	"fmt"
	"image"
	"image/color"
	stddraw "image/draw"
	"image/png"
	"math"
	"os"

	"gocv.io/x/gocv"
	"golang.org/x/image/draw"
)

const (
	sheetCellHeight = 240
	sheetGap        = 8
)

// WriteContactSheet renders the final panels as a row-major overview
// grid, scaled to uniform cell height, for quick visual verification of
// a split. Panels are re-cropped from src so the sheet reflects the
// pre-upscale geometry.
func WriteContactSheet(src gocv.Mat, panels []Panel, path string) error {
	if len(panels) == 0 {
		return fmt.Errorf("no panels to compose")
	}

	cells := make([]image.Image, 0, len(panels))
	cellW := 0
	for _, p := range panels {
		region := src.Region(p.Box.ToRect())
		crop := region.Clone()
		region.Close()

		img, err := crop.ToImage()
		crop.Close()
		if err != nil {
			return fmt.Errorf("panel %d conversion failed: %w", p.Index, err)
		}

		w := scaledWidth(img.Bounds(), sheetCellHeight)
		if w > cellW {
			cellW = w
		}
		cells = append(cells, img)
	}

	cols := int(math.Ceil(math.Sqrt(float64(len(cells)))))
	rows := (len(cells) + cols - 1) / cols

	sheet := image.NewRGBA(image.Rect(0, 0,
		cols*(cellW+sheetGap)+sheetGap,
		rows*(sheetCellHeight+sheetGap)+sheetGap))
	stddraw.Draw(sheet, sheet.Bounds(),
		image.NewUniform(color.RGBA{40, 40, 40, 255}), image.Point{}, stddraw.Src)

	for i, img := range cells {
		col, row := i%cols, i/cols
		w := scaledWidth(img.Bounds(), sheetCellHeight)

		x := sheetGap + col*(cellW+sheetGap) + (cellW-w)/2
		y := sheetGap + row*(sheetCellHeight+sheetGap)
		dst := image.Rect(x, y, x+w, y+sheetCellHeight)

		draw.ApproxBiLinear.Scale(sheet, dst, img, img.Bounds(), draw.Src, nil)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, sheet)
}

func scaledWidth(bounds image.Rectangle, targetHeight int) int {
	if bounds.Dy() == 0 {
		return targetHeight
	}
	w := bounds.Dx() * targetHeight / bounds.Dy()
	if w < 1 {
		w = 1
	}
	return w
}
