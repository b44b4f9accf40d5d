// Package source loads and stores GIF bytes, transparently handling files
// wrapped in a zstd frame.
package source

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// ZstdExt is the file suffix that selects zstd compression on Store.
const ZstdExt = ".zst"

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

func mustNewZstdEncoder() *zstd.Encoder {
	enc, err := zstd.NewWriter(
		nil,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
		zstd.WithLowerEncoderMem(true),
	)
	if err != nil {
		panic(err)
	}
	return enc
}

func mustNewZstdDecoder() *zstd.Decoder {
	dec, err := zstd.NewReader(
		nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(true),
	)
	if err != nil {
		panic(err)
	}
	return dec
}

var zstdEncPool = sync.Pool{
	New: func() any {
		return mustNewZstdEncoder()
	},
}

var zstdDecPool = sync.Pool{
	New: func() any {
		return mustNewZstdDecoder()
	},
}

// IsZstd reports whether data starts with a zstd frame magic number.
func IsZstd(data []byte) bool {
	return bytes.HasPrefix(data, zstdMagic)
}

// Compress wraps data in a zstd frame.
func Compress(data []byte) []byte {
	enc := zstdEncPool.Get().(*zstd.Encoder)
	out := enc.EncodeAll(data, nil)
	zstdEncPool.Put(enc)
	return out
}

// Decompress unwraps data when it is zstd compressed and returns it
// unchanged otherwise.
func Decompress(data []byte) ([]byte, error) {
	if !IsZstd(data) {
		return data, nil
	}
	dec := zstdDecPool.Get().(*zstd.Decoder)
	out, err := dec.DecodeAll(data, nil)
	zstdDecPool.Put(dec)
	if err != nil {
		return nil, fmt.Errorf("zstd decode: %w", err)
	}
	return out, nil
}

// Load reads path and decompresses it if needed.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decompress(data)
}

// Store writes data to path, compressing it when path ends in ZstdExt.
func Store(path string, data []byte) error {
	if strings.HasSuffix(path, ZstdExt) {
		data = Compress(data)
	}
	return os.WriteFile(path, data, 0644)
}
