package hdcgo_test

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/hupe1980/hdcgo"
)

// Example_textSimilarity demonstrates encoding text and comparing the results.
func Example_textSimilarity() {
	enc, err := hdcgo.NewBinarySpatterEncoder(hdcgo.DefaultDimension, hdcgo.DefaultNGramSize, 42)
	if err != nil {
		log.Fatal(err)
	}

	mat := enc.Encode("the cat sat on the mat")
	rug := enc.Encode("the cat sat on the rug")
	fox := enc.Encode("a quick brown fox jumps over fences")

	// Overlapping sentences stay measurably closer than unrelated ones.
	fmt.Println(enc.Similarity(mat, rug) > enc.Similarity(mat, fox))
	// Output: true
}

// Example_ternaryPipeline demonstrates the full embedding compression round trip.
func Example_ternaryPipeline() {
	enc, err := hdcgo.NewTernaryEncoder(hdcgo.DefaultDimension, hdcgo.DefaultSparsity, 42, hdcgo.DefaultInputDim)
	if err != nil {
		log.Fatal(err)
	}

	// Stand-in for a real sentence embedding.
	embedding := make([]float32, hdcgo.DefaultInputDim)
	for i := range embedding {
		embedding[i] = float32(math.Sin(float64(i + 1)))
	}

	ternary, err := enc.EncodeEmbedding(embedding)
	if err != nil {
		log.Fatal(err)
	}

	packed, err := enc.Pack(ternary)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(packed))

	restored, err := enc.Unpack(packed)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(enc.Similarity(ternary, restored))
	// Output:
	// 2500
	// 1
}

// ExampleBinarySpatterEncoder_EncodeBatch demonstrates bounded concurrent encoding.
func ExampleBinarySpatterEncoder_EncodeBatch() {
	enc, err := hdcgo.NewBinarySpatterEncoder(4096, 3, 7, hdcgo.WithMaxConcurrency(2))
	if err != nil {
		log.Fatal(err)
	}

	vectors, err := enc.EncodeBatch(context.Background(), []string{
		"first document",
		"second document",
		"third document",
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(len(vectors), vectors[0].Dims())
	// Output: 3 4096
}

// ExampleTernaryEncoder_VectorSizes demonstrates the storage accounting report.
func ExampleTernaryEncoder_VectorSizes() {
	enc, err := hdcgo.NewTernaryEncoder(10000, 0.7, 1, 384)
	if err != nil {
		log.Fatal(err)
	}

	sizes := enc.VectorSizes()
	fmt.Printf("float32: %d bytes\n", sizes.Float32Bytes)
	fmt.Printf("packed ternary: %d bytes\n", sizes.PackedTernaryBytes)
	fmt.Printf("compression: %.0fx\n", sizes.CompressionRatio)
	// Output:
	// float32: 40000 bytes
	// packed ternary: 2500 bytes
	// compression: 16x
}
