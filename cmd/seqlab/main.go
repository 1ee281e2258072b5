// cmd/seqlab/main.go
package main

import (
	"seqlab/internal/app"
	"seqlab/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
