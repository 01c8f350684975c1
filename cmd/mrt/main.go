package main

import (
	"go.brendoncarroll.net/star"

	"mercurylang.org/mrt/mrtcmd"
)

func main() {
	star.Main(mrtcmd.Root())
}
