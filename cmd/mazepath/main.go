// Command mazepath finds a path through a grid maze.
//
//	mazepath                       solve input.txt with BFS, write output.txt
//	mazepath solve maze.txt -s astar -o path.txt
//	mazepath bench maze.txt        compare every solver
//	mazepath serve --addr :8080    HTTP API
//
// Settings come from MAZEPATH_* environment variables (optionally a .env
// file); flags override them.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
