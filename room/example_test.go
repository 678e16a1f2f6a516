package room_test

import (
	"fmt"

	"github.com/pjazdzyk/sound-dampening-analyzer/catalog"
	"github.com/pjazdzyk/sound-dampening-analyzer/octave"
	"github.com/pjazdzyk/sound-dampening-analyzer/room"
	"github.com/pjazdzyk/sound-dampening-analyzer/signal"
)

func ExampleModel() {
	materials := catalog.Materials()

	carpet, _ := materials.Lookup("carpetFlooring")
	glass, _ := materials.Lookup("glassElements")

	floor, _ := room.NewPart("floor", carpet, 266.3)
	partitions, _ := room.NewPart("partitions", glass, 100)
	finish, _ := room.NewItem("finish", floor, partitions)

	outlet := signal.MustNew(signal.WithName("outlet"), signal.WithIncoming(octave.Spectrum{
		51.051136242385965, 62.78693271550494, 64.78277976530185, 61.71697296333068,
		74.67300432076078, 80.67300024435974, 83.67300002734734, 77.673,
	}))

	terminal, err := room.NewAdapter(outlet, room.Placement{Location: room.Corner, GrossArea: 0.048})
	if err != nil {
		panic(err)
	}

	office, err := room.NewModel(
		room.WithName("office"),
		room.WithAbsorbers(finish),
		room.WithTerminals(terminal),
	)
	if err != nil {
		panic(err)
	}

	fmt.Println(office.Pressure())
	fmt.Printf("%.1f dB\n", office.Total())

	// Output:
	// [51.1  56.0  60.6  57.3  67.9  72.5  75.6  69.5]
	// 78.5 dB
}

func ExampleDiffuseFieldPressure() {
	lp, _ := room.DiffuseFieldPressure(80, 40)
	fmt.Printf("%.1f\n", lp)

	// Output:
	// 70.0
}
