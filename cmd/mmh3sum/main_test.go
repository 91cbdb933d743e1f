package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashReaderVariants(t *testing.T) {
	tests := []struct {
		name string
		cfg  config
		want string
	}{
		{"32", config{algo: "32"}, "36c7e0df"}, // 919068895
		{"32 decimal", config{algo: "32", bigOut: true}, "919068895"},
		{"128 x86", config{algo: "128"}, "fb7d440936aed30a48ad1d9b572b3bfd"},
		{"128 x64", config{algo: "128x64"}, "4be06d94cf4ad1a787c35b5c63a708da"},
		{"128 x64 decimal", config{algo: "128x64", bigOut: true}, "100857396752749189608428389911914547418"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hashReader(tt.cfg, strings.NewReader("0123456789abcdef"))

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHashReaderSeed(t *testing.T) {
	got, err := hashReader(config{algo: "32", seed: 1, bigOut: true}, strings.NewReader(""))

	require.NoError(t, err)
	assert.Equal(t, "1364076727", got)
}

func TestWrapDecompressorGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte("0123456789abcdef"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	r, err := wrapDecompressor(&buf, "input.gz")
	require.NoError(t, err)

	got, err := hashReader(config{algo: "128x64"}, r)
	require.NoError(t, err)
	assert.Equal(t, "4be06d94cf4ad1a787c35b5c63a708da", got)
}

func TestWrapDecompressorLZ4(t *testing.T) {
	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	_, err := zw.Write([]byte("0123456789abcdef"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	r, err := wrapDecompressor(&buf, "input.lz4")
	require.NoError(t, err)

	got, err := hashReader(config{algo: "128x64"}, r)
	require.NoError(t, err)
	assert.Equal(t, "4be06d94cf4ad1a787c35b5c63a708da", got)
}

func TestWrapDecompressorPassthrough(t *testing.T) {
	r, err := wrapDecompressor(strings.NewReader("plain"), "input.txt")
	require.NoError(t, err)

	got, err := hashReader(config{algo: "32"}, r)
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}
