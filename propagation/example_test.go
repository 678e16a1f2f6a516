package propagation_test

import (
	"fmt"

	"github.com/pjazdzyk/sound-dampening-analyzer/octave"
	"github.com/pjazdzyk/sound-dampening-analyzer/propagation"
	"github.com/pjazdzyk/sound-dampening-analyzer/signal"
)

func ExampleChain() {
	fan := signal.MustNew(
		signal.WithName("fan"),
		signal.WithIncoming(octave.Flat(10)),
		signal.WithGenerated(octave.Spectrum{85, 84, 82, 79, 76, 72, 67, 61}),
	)
	silencer := signal.MustNew(
		signal.WithName("silencer"),
		signal.WithAttenuation(octave.Spectrum{4, 9, 17, 28, 35, 34, 25, 19}),
	)

	chain, err := propagation.New(fan, silencer)
	if err != nil {
		panic(err)
	}

	fmt.Println(chain.Output())

	// Output:
	// [81.0  75.0  65.0  51.0  41.0  38.0  42.0  42.0]
}
