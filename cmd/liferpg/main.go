package main

import "github.com/girgvliani/usefulAPP/cmd/liferpg/root"

func main() {
	root.Execute()
}
