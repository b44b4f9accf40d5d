package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/image/draw"

	"github.com/jdeng/gogif/internal/source"
	gif "github.com/jdeng/gogif/pkg/gif"
)

func main() {
	var inputFile = flag.String("input", "", "Input GIF file (may be zstd compressed)")
	var outputFile = flag.String("output", "", "Output PNG file (optional, defaults to input filename with .png extension)")
	var frameIndex = flag.Int("frame", 0, "Index of the image to convert")
	var scale = flag.Int("scale", 1, "Integer upscaling factor (nearest neighbour)")
	var deinterlace = flag.Bool("deinterlace", true, "Reorder interlaced rows before writing")
	var verbose = flag.Bool("v", false, "Log skipped blocks to stderr")
	flag.Parse()

	if *inputFile == "" {
		log.Fatal("Input file is required. Use -input flag.")
	}
	if *scale < 1 {
		log.Fatalf("Invalid scale %d", *scale)
	}

	data, err := source.Load(*inputFile)
	if err != nil {
		log.Fatalf("Failed to read input file: %v", err)
	}

	opts := gif.Options{SrcData: data}
	if *verbose {
		opts.Logger = log.New(os.Stderr, "", 0)
	}
	decoder, err := gif.New(opts)
	if err != nil {
		log.Fatalf("Failed to create GIF decoder: %v", err)
	}
	doc, err := decoder.Decode()
	if err != nil {
		log.Fatalf("Failed to decode GIF: %v", err)
	}

	header := color.New(color.FgCyan).SprintFunc()
	warn := color.New(color.FgYellow).SprintFunc()

	fmt.Printf("%s %q, canvas %dx%d, %d global colours\n",
		header("GIF"), string(doc.Header()), doc.Width(), doc.Height(), len(doc.GlobalColorTable()))
	if !doc.Header().Valid() {
		fmt.Println(warn("  header is not a known GIF signature"))
	}

	blocks := doc.Blocks()
	fmt.Printf("Found %d blocks:\n", len(blocks))
	for i, blk := range blocks {
		fmt.Printf("  Block %d: Kind=%s, Extension=%s, Label=0x%02x, Index=%d, Offset=%d\n",
			i, blk.Kind, blk.Extension, blk.Label, blk.Index, blk.Offset)
	}
	for _, c := range doc.Comments() {
		fmt.Printf("  Comment: %s\n", c)
	}
	for _, a := range doc.ApplicationBlocks() {
		fmt.Printf("  Application: %s\n", a)
	}

	if *verbose {
		fmt.Printf("Raw file data (first 64 bytes):\n")
		debugData := data
		if len(debugData) > 64 {
			debugData = debugData[:64]
		}
		for i := 0; i < len(debugData); i += 16 {
			fmt.Printf("  %04x: ", i)
			for j := 0; j < 16 && i+j < len(debugData); j++ {
				fmt.Printf("%02x ", debugData[i+j])
			}
			fmt.Println()
		}
	}

	if doc.NumImages() == 0 {
		log.Fatal("No images found in GIF file")
	}
	img := doc.Image(*frameIndex)
	if img == nil {
		log.Fatalf("Frame %d out of range, file has %d images", *frameIndex, doc.NumImages())
	}
	if !img.Complete() {
		fmt.Println(warn(fmt.Sprintf("  frame %d has %d of %d pixels", *frameIndex, len(img.Indices()), img.Width()*img.Height())))
	}
	if gc, ok := doc.GraphicControlFor(*frameIndex); ok {
		fmt.Printf("  Graphic control: delay=%d disposal=%s transparent=%v\n",
			gc.DelayTime, gc.Fields.DisposalMethod, gc.Fields.TransparentColorFlag)
	}

	canvas := renderFrame(doc, *frameIndex, *deinterlace)
	out := scaleImage(canvas, *scale)

	output := *outputFile
	if output == "" {
		output = strings.TrimSuffix(*inputFile, source.ZstdExt)
		ext := filepath.Ext(output)
		output = output[:len(output)-len(ext)] + ".png"
	}

	file, err := os.Create(output)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer file.Close()

	if err := png.Encode(file, out); err != nil {
		log.Fatalf("Failed to encode PNG: %v", err)
	}

	fmt.Printf("%s %s to %s\n", color.GreenString("Successfully converted"), *inputFile, output)
	fmt.Printf("Image size: %dx%d pixels\n", out.Bounds().Dx(), out.Bounds().Dy())
}

// renderFrame draws image i onto a transparent canvas the size of the
// logical screen. A canvas smaller than the frame grows to contain it.
func renderFrame(doc *gif.Document, i int, deinterlace bool) *image.RGBA {
	frame := doc.Frame(i, deinterlace)
	bounds := image.Rect(0, 0, doc.Width(), doc.Height()).Union(frame.Bounds())
	canvas := image.NewRGBA(bounds)
	draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
	return canvas
}

func scaleImage(src *image.RGBA, factor int) image.Image {
	if factor == 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
