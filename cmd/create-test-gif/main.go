package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/jdeng/gogif/internal/source"
)

// minimalGIF returns a 4x4 GIF with a comment, a graphic control and one
// image whose code stream exercises dictionary growth.
func minimalGIF() []byte {
	header := []byte{
		'G', 'I', 'F', '8', '9', 'a',
	}

	// Logical screen: 4x4, global colour table of 4 entries
	screen := []byte{
		0x04, 0x00, 0x04, 0x00,
		0x81,
		0x00, // background index
		0x00, // aspect ratio
		0x00, 0x00, 0x00,
		0xff, 0x00, 0x00,
		0x00, 0xff, 0x00,
		0xff, 0xff, 0xff,
	}

	comment := []byte{
		0x21, 0xfe, 0x0b,
		'c', 'r', 'e', 'a', 't', 'e', '-', 't', 'e', 's', 't',
		0x00,
	}

	// Graphic control: keep, 0.1s delay, no transparency
	control := []byte{
		0x21, 0xf9, 0x04, 0x04, 0x0a, 0x00, 0x00, 0x00,
	}

	// Image descriptor at 0,0 sized 4x4, then code stream
	// Codes: clear 0 1 2 3 6 8 10 9 7 3 eoi, rows 0 1 2 3 repeated
	image := []byte{
		0x2c, 0x00, 0x00, 0x00, 0x00, 0x04, 0x00, 0x04, 0x00, 0x00,
		0x02,
		0x06, 0x44, 0x34, 0x86, 0x9a, 0x37, 0x05,
		0x00,
	}

	var out []byte
	out = append(out, header...)
	out = append(out, screen...)
	out = append(out, comment...)
	out = append(out, control...)
	out = append(out, image...)
	return append(out, 0x3b)
}

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: create-test-gif <output-file>")
		os.Exit(1)
	}

	filename := os.Args[1]
	if err := source.Store(filename, minimalGIF()); err != nil {
		color.Red("Error creating test GIF file: %v", err)
		os.Exit(1)
	}

	color.Green("Created test GIF file: %s", filename)
}
