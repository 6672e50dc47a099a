//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of skyplayer requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/sky` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "The headless track service is available as ./cmd/tracksd.")
	os.Exit(2)
}
