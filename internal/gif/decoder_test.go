package gif

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	stdgif "image/gif"
	"log"
	"math/rand"
	"reflect"
	"testing"
)

func TestDecoderCreation(t *testing.T) {
	tests := []struct {
		name    string
		opts    DecoderOptions
		wantErr bool
	}{
		{
			name:    "empty data",
			opts:    DecoderOptions{SrcData: []byte{}},
			wantErr: true,
		},
		{
			name:    "nil data",
			opts:    DecoderOptions{},
			wantErr: true,
		},
		{
			name:    "minimal gif",
			opts:    DecoderOptions{SrcData: minimalGIF()},
			wantErr: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			decoder, err := NewDecoder(test.opts)
			if test.wantErr {
				if err == nil {
					t.Error("Expected error but got none")
				}
				if !errors.Is(err, ErrOutOfData) {
					t.Errorf("Expected ErrOutOfData, got %v", err)
				}
				var de *DecodeError
				if !errors.As(err, &de) || de.Kind != KindOutOfData || de.Offset != 0 {
					t.Errorf("Expected *DecodeError of kind OutOfData at offset 0, got %#v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if decoder == nil {
				t.Fatal("Decoder is nil")
			}
		})
	}
}

func TestDecodeMinimalGIF(t *testing.T) {
	doc, err := Decode(minimalGIF())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if doc.Header != "GIF89a" || !doc.Header.Valid() {
		t.Errorf("Unexpected header %q", doc.Header)
	}
	if doc.LogicalScreen.Width != 2 || doc.LogicalScreen.Height != 2 {
		t.Errorf("Unexpected canvas %dx%d", doc.LogicalScreen.Width, doc.LogicalScreen.Height)
	}
	wantTable := ColorTable{{0, 0, 0}, {0xff, 0xff, 0xff}}
	if !reflect.DeepEqual(doc.GlobalColorTable, wantTable) {
		t.Errorf("Unexpected global colour table %v", doc.GlobalColorTable)
	}
	if len(doc.Images) != 1 {
		t.Fatalf("Expected 1 image, got %d", len(doc.Images))
	}
	img := doc.Images[0]
	if want := []uint8{0, 1, 0, 1}; !bytes.Equal(img.Indices, want) {
		t.Errorf("Expected indices %v, got %v", want, img.Indices)
	}
	if !img.Complete() {
		t.Error("Expected image to be complete")
	}
	if len(doc.Comments) != 0 || len(doc.ApplicationBlocks) != 0 || len(doc.GraphicControls) != 0 || len(doc.PlainTextBlocks) != 0 {
		t.Errorf("Expected no extensions, got %+v", doc)
	}
	if len(doc.Blocks) != 1 || doc.Blocks[0].Kind != BlockKindImage || doc.Blocks[0].Offset != 19 {
		t.Errorf("Unexpected block records %+v", doc.Blocks)
	}
}

func TestDecodeIsRepeatable(t *testing.T) {
	data := newGIFBuilder("GIF89a").screen(4, 1, 0x81, 0, 0).colors(4).
		comment("one").
		graphicControl(0x04, 5, 0).
		descriptor(0, 0, 4, 1, 0).
		imageData(2, packLSB(code{4, 3}, code{3, 3}, code{3, 3}, code{7, 3}, code{5, 4})).
		trailer().
		bytes()
	decoder, err := NewDecoder(DecoderOptions{SrcData: data})
	if err != nil {
		t.Fatalf("NewDecoder failed: %v", err)
	}
	first, err := decoder.Decode()
	if err != nil {
		t.Fatalf("first Decode failed: %v", err)
	}
	second, err := decoder.Decode()
	if err != nil {
		t.Fatalf("second Decode failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Decoding twice gave different documents:\n%+v\n%+v", first, second)
	}
	if want := []uint8{3, 3, 3, 3}; !bytes.Equal(first.Images[0].Indices, want) {
		t.Errorf("Expected indices %v, got %v", want, first.Images[0].Indices)
	}
}

func TestDecodeErrorCarriesKindAndOffset(t *testing.T) {
	tests := []struct {
		name       string
		data       []byte
		wantErr    error
		wantKind   ErrorKind
		wantOffset uint32
	}{
		{
			name:       "empty",
			data:       nil,
			wantErr:    ErrOutOfData,
			wantKind:   KindOutOfData,
			wantOffset: 0,
		},
		{
			name:       "truncated descriptor",
			data:       minimalGIF()[:20],
			wantErr:    ErrOutOfData,
			wantKind:   KindOutOfData,
			wantOffset: 20,
		},
		{
			name: "bad terminator",
			data: newGIFBuilder("GIF89a").screen(1, 1, 0, 0, 0).
				comment("x").raw(introducerExtension, labelComment, 0x00, 0x07).
				bytes(),
			wantErr:    ErrMalformedExtensionTerminator,
			wantKind:   KindMalformedExtensionTerminator,
			wantOffset: 22,
		},
		{
			name: "code size",
			data: newGIFBuilder("GIF89a").screen(1, 1, 0, 0, 0).
				descriptor(0, 0, 1, 1, 0).
				imageData(9, []byte{0x00}).
				bytes(),
			wantErr:    ErrInvalidCodeSize,
			wantKind:   KindInvalidCodeSize,
			wantOffset: 24,
		},
		{
			name: "first code",
			data: newGIFBuilder("GIF89a").screen(1, 1, 0, 0, 0).
				descriptor(0, 0, 1, 1, 0).
				imageData(2, packLSB(code{4, 3}, code{6, 3})).
				bytes(),
			wantErr:    ErrInvalidCode,
			wantKind:   KindInvalidCode,
			wantOffset: 26,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			doc, err := Decode(test.data)
			if doc != nil {
				t.Error("Expected no document on failure")
			}
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("Expected %v, got %v", test.wantErr, err)
			}
			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("Expected *DecodeError, got %T", err)
			}
			if de.Kind != test.wantKind {
				t.Errorf("Expected kind %v, got %v", test.wantKind, de.Kind)
			}
			if de.Offset != test.wantOffset {
				t.Errorf("Expected offset %d, got %d", test.wantOffset, de.Offset)
			}
		})
	}
}

func TestDecoderLogsSkippedBlocks(t *testing.T) {
	var logs bytes.Buffer
	data := append(minimalGIF(), 0x00)
	decoder, err := NewDecoder(DecoderOptions{SrcData: data, Logger: log.New(&logs, "", 0)})
	if err != nil {
		t.Fatalf("NewDecoder failed: %v", err)
	}
	if _, err := decoder.Decode(); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	// The trailer at 35 is skipped silently, the stray zero at 36 is not.
	want := "gif: skipping block introducer 0x00 at offset 36\n"
	if logs.String() != want {
		t.Errorf("Unexpected log output:\n%s", logs.String())
	}
}

func TestDecodeConfig(t *testing.T) {
	decoder, err := NewDecoder(DecoderOptions{SrcData: minimalGIF()[:19]})
	if err != nil {
		t.Fatalf("NewDecoder failed: %v", err)
	}
	doc, err := decoder.DecodeConfig()
	if err != nil {
		t.Fatalf("DecodeConfig failed: %v", err)
	}
	if doc.LogicalScreen.Width != 2 || len(doc.GlobalColorTable) != 2 {
		t.Errorf("Unexpected config %+v", doc)
	}
	if len(doc.Images) != 0 || len(doc.Blocks) != 0 {
		t.Error("Expected DecodeConfig to stop before the first block")
	}

	decoder, _ = NewDecoder(DecoderOptions{SrcData: minimalGIF()[:15]})
	if _, err := decoder.DecodeConfig(); !errors.Is(err, ErrOutOfData) {
		t.Errorf("Expected ErrOutOfData for a cut colour table, got %v", err)
	}

	var de *DecodeError
	if _, err := DecodeConfig(nil); !errors.As(err, &de) || de.Kind != KindOutOfData {
		t.Errorf("Expected *DecodeError of kind OutOfData for empty input, got %v", err)
	}
}

func randomPaletted(r *rand.Rand, rect image.Rectangle, pal color.Palette) *image.Paletted {
	m := image.NewPaletted(rect, pal)
	for i := range m.Pix {
		m.Pix[i] = uint8(r.Intn(len(pal)))
	}
	return m
}

func encodeStd(t *testing.T, g *stdgif.GIF) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := stdgif.EncodeAll(&buf, g); err != nil {
		t.Fatalf("EncodeAll failed: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeMatchesStandardEncoderAnimation(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	opaque := color.Palette{
		color.RGBA{0x10, 0x20, 0x30, 0xff},
		color.RGBA{0xff, 0x00, 0x00, 0xff},
		color.RGBA{0x00, 0xff, 0x00, 0xff},
		color.RGBA{0x00, 0x00, 0xff, 0xff},
	}
	withAlpha := color.Palette{
		color.RGBA{0x00, 0x00, 0x00, 0x00},
		color.RGBA{0xaa, 0xbb, 0xcc, 0xff},
		color.RGBA{0x01, 0x02, 0x03, 0xff},
	}
	frames := []*image.Paletted{
		randomPaletted(r, image.Rect(0, 0, 40, 30), opaque),
		randomPaletted(r, image.Rect(4, 3, 20, 13), withAlpha),
	}
	data := encodeStd(t, &stdgif.GIF{
		Image:    frames,
		Delay:    []int{10, 25},
		Disposal: []byte{stdgif.DisposalNone, stdgif.DisposalBackground},
	})

	doc, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if doc.Header != "GIF89a" {
		t.Errorf("Unexpected header %q", doc.Header)
	}
	if doc.LogicalScreen.Width != 40 || doc.LogicalScreen.Height != 30 {
		t.Errorf("Unexpected canvas %dx%d", doc.LogicalScreen.Width, doc.LogicalScreen.Height)
	}
	if doc.GlobalColorTable != nil {
		t.Errorf("Expected no global colour table, got %d entries", len(doc.GlobalColorTable))
	}
	if !reflect.DeepEqual(doc.ApplicationBlocks, []string{"NETSCAPE2.0"}) {
		t.Errorf("Unexpected application blocks %q", doc.ApplicationBlocks)
	}
	if len(doc.Images) != len(frames) {
		t.Fatalf("Expected %d images, got %d", len(frames), len(doc.Images))
	}

	wantControls := []struct {
		delay       uint16
		disposal    DisposalMethod
		transparent bool
	}{
		{10, DisposalKeep, false},
		{25, DisposalBackground, true},
	}
	for i, frame := range frames {
		img := doc.Images[i]
		b := frame.Bounds()
		desc := img.Descriptor
		if int(desc.Left) != b.Min.X || int(desc.Top) != b.Min.Y || int(desc.Width) != b.Dx() || int(desc.Height) != b.Dy() {
			t.Errorf("image %d: descriptor %+v does not match bounds %v", i, desc, b)
		}
		if !desc.Fields.LocalColorTableFlag {
			t.Errorf("image %d: expected a local colour table", i)
		}
		if !bytes.Equal(img.Indices, frame.Pix) {
			t.Errorf("image %d: indices differ from the encoded pixels", i)
		}
		pal := img.Palette(doc.GlobalColorTable)
		for k, c := range frame.Palette {
			cr, cg, cb, _ := c.RGBA()
			want := RGB{uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8)}
			if pal[k] != want {
				t.Errorf("image %d: palette entry %d is %+v, want %+v", i, k, pal[k], want)
			}
		}

		gc, ok := doc.GraphicControlFor(i)
		if !ok {
			t.Fatalf("image %d: expected a graphic control", i)
		}
		want := wantControls[i]
		if gc.DelayTime != want.delay || gc.Fields.DisposalMethod != want.disposal || gc.Fields.TransparentColorFlag != want.transparent {
			t.Errorf("image %d: unexpected graphic control %+v", i, gc)
		}
		if want.transparent && gc.TransparentColorIndex != 0 {
			t.Errorf("image %d: expected transparent index 0, got %d", i, gc.TransparentColorIndex)
		}
	}
}

func TestDecodeMatchesStandardEncoderLargeFrame(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	tests := []struct {
		name   string
		colors int
	}{
		{"four colours", 4},
		{"full palette", 256},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			pal := make(color.Palette, test.colors)
			for i := range pal {
				pal[i] = color.Gray{Y: uint8(i)}
			}
			frame := randomPaletted(r, image.Rect(0, 0, 300, 200), pal)
			data := encodeStd(t, &stdgif.GIF{
				Image:  []*image.Paletted{frame},
				Delay:  []int{0},
				Config: image.Config{ColorModel: pal, Width: 300, Height: 200},
			})

			doc, err := Decode(data)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if len(doc.Images) != 1 {
				t.Fatalf("Expected 1 image, got %d", len(doc.Images))
			}
			if !bytes.Equal(doc.Images[0].Indices, frame.Pix) {
				t.Error("Indices differ from the encoded pixels")
			}
			if len(doc.GlobalColorTable) != test.colors {
				t.Errorf("Expected %d global entries, got %d", test.colors, len(doc.GlobalColorTable))
			}

			ref, err := stdgif.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("reference decode failed: %v", err)
			}
			if !bytes.Equal(doc.Images[0].Indices, ref.(*image.Paletted).Pix) {
				t.Error("Indices differ from the reference decoder")
			}
		})
	}
}
