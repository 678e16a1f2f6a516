package octave_test

import (
	"fmt"

	"github.com/pjazdzyk/sound-dampening-analyzer/octave"
)

func ExampleLogAdd() {
	fmt.Printf("%.2f\n", octave.LogAdd(60, 60))
	fmt.Printf("%.2f\n", octave.LogAdd(60, 0))
	fmt.Printf("%.2f\n", octave.LogSum(50, 50, 50, 50))

	// Output:
	// 63.01
	// 60.00
	// 56.02
}

func ExampleSpectrum_LogAdd() {
	duct := octave.Spectrum{51, 63, 65, 62, 75, 81, 84, 78}
	fan := octave.Flat(60)

	fmt.Println(duct.LogAdd(fan))

	// Output:
	// [60.5  64.8  66.2  64.1  75.1  81.0  84.0  78.1]
}
