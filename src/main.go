package main

import (
	"os"

	"bubblesort/src/cmd"
	"bubblesort/src/utils"
)

var logger = utils.GetLogger("bubblesort")

func main() {
	if err := cmd.Main(os.Args); err != nil {
		logger.Fatal(err)
	}
}
