// cmd/seqlab-orf/main.go
package main

import (
	"seqlab/internal/appshell"
	"seqlab/internal/orfapp"
)

func main() { appshell.Main(orfapp.RunContext) }
