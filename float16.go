package blazepose

import "github.com/x448/float16"

// f16LookupTable holds the float32 value of every float16 bit pattern
var f16LookupTable [65536]float32

func init() {
	for i := range f16LookupTable {
		f16LookupTable[i] = float16.Frombits(uint16(i)).Float32()
	}
}

// float16ToFloat32 converts a buffer of raw float16 values to float32 as Go
// has no native FP16 type
func float16ToFloat32(buf []uint16) []float32 {

	out := make([]float32, len(buf))

	for i, v := range buf {
		out[i] = f16LookupTable[v]
	}

	return out
}
