// Command polybench measures how the three shape storage strategies compare
// when populating a collection and totalling its perimeter.
//
//	polybench run [--config sweep.yaml] [--strategy variant ...] [--phase iterate ...]
//	polybench check [--count 1000]
//	polybench draw --out pattern.png
//
// Patterns can be given as SVG (every <polygon> element) or as text: newline
// separated points in the form "x y", with each polygon separated by an extra
// newline.
package main

import (
	"os"

	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	app := kingpin.New("polybench", "Measure polymorphic dispatch over collections of polygons.")
	app.HelpFlag.Short('h')
	c := newCLI(os.Stdout)
	c.register(app)
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	app.FatalIfError(c.dispatch(command), "%s", command)
}
