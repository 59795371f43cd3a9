// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Memchart overlays per-crate memory profiles as a single line chart.
//
// Usage:
//
//	memchart [-o file] [-title text] [-ext extension]
//
// Each input file in the current directory is a two-column text file
// of "length,bytes" pairs, one pair per line, written by the memory
// test harness. There is one file per crate, with the crate's name as
// the file base name. Memchart plots every file as one line and writes
// the combined chart as a PNG.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var (
	flagOut   = flag.String("o", "memchart.png", "write the chart to `file`")
	flagTitle = flag.String("title", "String Memory Comparison", "chart `title`")
	flagExt   = flag.String("ext", ".csv", "read input files with `extension`")
)

// palette is cycled across series lines.
var palette = []color.Color{
	color.RGBA{R: 0x66, G: 0xc2, B: 0xa5, A: 0xff},
	color.RGBA{R: 0xfc, G: 0x8d, B: 0x62, A: 0xff},
	color.RGBA{R: 0x8d, G: 0xa0, B: 0xcb, A: 0xff},
	color.RGBA{R: 0xe7, G: 0x8a, B: 0xc3, A: 0xff},
	color.RGBA{R: 0xa6, G: 0xd8, B: 0x54, A: 0xff},
	color.RGBA{R: 0xff, G: 0xd9, B: 0x2f, A: 0xff},
	color.RGBA{R: 0xe5, G: 0xc4, B: 0x94, A: 0xff},
	color.RGBA{R: 0xb3, G: 0xb3, B: 0xb3, A: 0xff},
}

func main() {
	log.SetPrefix("memchart: ")
	log.SetFlags(0)
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	files, err := filepath.Glob("*" + *flagExt)
	if err != nil {
		log.Fatal(err)
	}
	if len(files) == 0 {
		log.Fatalf("no %s files in current directory", *flagExt)
	}
	sort.Strings(files)

	pl := plot.New()
	pl.Title.Text = *flagTitle
	pl.X.Label.Text = "String Length"
	pl.Y.Label.Text = "Memory Usage (bytes)"
	pl.Legend.Top = true
	pl.Legend.Left = true
	pl.Add(plotter.NewGrid())

	for i, file := range files {
		xys, err := readSeries(file)
		if err != nil {
			log.Fatal(err)
		}
		ln, err := plotter.NewLine(xys)
		if err != nil {
			log.Fatal(err)
		}
		ln.LineStyle.Width = vg.Points(3.5)
		ln.LineStyle.Color = palette[i%len(palette)]
		pl.Add(ln)
		pl.Legend.Add(strings.TrimSuffix(filepath.Base(file), *flagExt), ln)
	}

	can := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(10*vg.Inch, 6*vg.Inch),
		vgimg.UseBackgroundColor(color.White),
	)}
	pl.Draw(draw.New(can))

	f, err := os.Create(*flagOut)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := can.WriteTo(f); err != nil {
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
}

// readSeries reads one length,bytes file into plot coordinates. Blank
// lines are skipped; anything else that is not two comma-separated
// numbers is an error.
func readSeries(path string) (plotter.XYs, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var xys plotter.XYs
	sc := bufio.NewScanner(f)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		xs, ys, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("%s:%d: want length,bytes", path, n)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %v", path, n, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %v", path, n, err)
		}
		xys = append(xys, plotter.XY{X: x, Y: y})
	}
	return xys, sc.Err()
}
