package main

import (
	"github.com/javax0/use/src/cmd"

	// Import runtime providers to register them
	_ "github.com/javax0/use/src/runtimes/graal"
	_ "github.com/javax0/use/src/runtimes/java"
	_ "github.com/javax0/use/src/runtimes/python"
)

func main() {
	cmd.Execute()
}
