package main

import (
	"fmt"
	"os"

	"github.com/harrison/zgrep/internal/cmd"
	"github.com/harrison/zgrep/internal/config"
	"github.com/harrison/zgrep/internal/grepcore"
	"github.com/harrison/zgrep/internal/style"
)

func main() {
	cfg := config.DefaultConfig()

	if err := cmd.Execute(cfg, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, grepcore.Render(err, style.Auto(os.Stderr)))
		if grepcore.IsFatal(err) {
			os.Exit(1)
		}
	}
}
