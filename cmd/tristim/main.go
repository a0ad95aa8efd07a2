// tristim - colour conversion and chromatic adaptation
//
// tristim converts colours between sRGB, CIE XYZ and CIELAB and adapts them
// between standard illuminants.
package main

import "github.com/jmylchreest/tristim/internal/cli"

func main() {
	cli.Execute()
}
