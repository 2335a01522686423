package main

import (
	"flag"
	"fmt"

	"binshrink/internal/shrink"
)

func printTable(name string, words [4]uint64) {
	fmt.Printf("%s = [4]uint64{\n", name)
	for _, w := range words {
		fmt.Printf("\t0x%016x,\n", w)
	}
	fmt.Println("}")
}

// printCode draws the window for one neighbour code, centre set.
func printCode(c shrink.Code) {
	w := c.Window()
	cond, uncond := " ", " "
	if shrink.IsConditional(c) {
		cond = "C"
	}
	if shrink.IsUnconditional(c) {
		uncond = "U"
	}
	for row := 0; row < 3; row++ {
		line := ""
		for col := 0; col < 3; col++ {
			if w[row*3+col] {
				line += "#"
			} else {
				line += "."
			}
		}
		switch row {
		case 0:
			fmt.Printf("  %s  0x%02x\n", line, uint8(c))
		case 1:
			fmt.Printf("  %s  %s%s\n", line, cond, uncond)
		default:
			fmt.Printf("  %s\n", line)
		}
	}
}

func main() {
	list := flag.Bool("list", false, "Draw every neighbour code with its classification")
	flag.Parse()

	cond, uncond := shrink.TemplateCounts()
	fmt.Printf("Templates: %d conditional, %d unconditional\n", cond, uncond)
	fmt.Println("Bit order: NW N NE W E SW S SE (bit 0 first), centre set")
	fmt.Println()

	printTable("conditional", shrink.ConditionalTable())
	printTable("unconditional", shrink.UnconditionalTable())

	if !*list {
		return
	}

	fmt.Println()
	for c := 0; c < 256; c++ {
		printCode(shrink.Code(c))
	}
}
