package signal_test

import (
	"fmt"

	"github.com/pjazdzyk/sound-dampening-analyzer/octave"
	"github.com/pjazdzyk/sound-dampening-analyzer/signal"
)

func ExampleNew() {
	damper, err := signal.New(
		signal.WithName("damper"),
		signal.WithIncoming(octave.Spectrum{92, 90, 88, 84, 79, 74, 67, 60}),
		signal.WithGenerated(octave.Spectrum{58, 54, 49, 45, 41, 37, 34, 31}),
		signal.WithAttenuation(octave.Spectrum{6, 17, 34, 36, 38, 29, 19, 15}),
	)
	if err != nil {
		panic(err)
	}

	fmt.Print(damper)

	// Output:
	// damper:
	// Incoming    [92.0  90.0  88.0  84.0  79.0  74.0  67.0  60.0]
	// Generated   [58.0  54.0  49.0  45.0  41.0  37.0  34.0  31.0]
	// Attenuation [6.0  17.0  34.0  36.0  38.0  29.0  19.0  15.0]
	// Outgoing    [86.0  73.1  55.2  49.8  44.0  45.6  48.2  45.2]
}
