package main

import (
	"github.com/sosanka7-alt/habit-progress-hub/cmd"
)

func main() {
	cmd.Execute()
}
