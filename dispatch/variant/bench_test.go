package variant

import (
	"fmt"
	"testing"
)

// The sweep used for every strategy: 8 through 8<<15 in steps of 8x.
var benchCounts = []int{8, 64, 512, 4096, 32768, 8 << 15}

var (
	sinkCollection Collection
	sinkPerimeter  float64
)

func BenchmarkPopulate(b *testing.B) {
	for _, count := range benchCounts {
		b.Run(fmt.Sprint(count), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sinkCollection = Populate(count)
			}
		})
	}
}

func BenchmarkIterate(b *testing.B) {
	for _, count := range benchCounts {
		b.Run(fmt.Sprint(count), func(b *testing.B) {
			c := Populate(count)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkPerimeter = TotalPerimeter(c)
			}
		})
	}
}

func BenchmarkBoth(b *testing.B) {
	for _, count := range benchCounts {
		b.Run(fmt.Sprint(count), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sinkPerimeter = TotalPerimeter(Populate(count))
			}
		})
	}
}
