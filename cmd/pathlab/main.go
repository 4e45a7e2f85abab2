// Command pathlab runs the BFS/DFS path-search study on random graphs of
// controlled density.
//
//	pathlab -n 1000 -d 0.01,0.1,0.9 -g 10 -s 10 --log results.txt --err errors.txt
//	pathlab 1000 0.1 10 10
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
