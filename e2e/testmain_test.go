//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"testing"
)

// serveBinPath is the collection service the browser is tested against
var serveBinPath = "pokeserve_e2e"

func TestMain(m *testing.M) {
	e2eDir, err := os.Getwd()
	if err != nil {
		fmt.Printf("Failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	binPath = e2eDir + "/pokebrowse_e2e"
	serveBinPath = e2eDir + "/pokeserve_e2e"

	// Both binaries come from the main module in the parent directory
	fmt.Println("Building test binaries from main project...")
	for _, b := range []struct{ out, pkg string }{
		{binPath, "."},
		{serveBinPath, "./cmd/pokeserve"},
	} {
		cmd := exec.Command("go", "build", "-o", b.out, b.pkg)
		cmd.Dir = ".."
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			fmt.Printf("Failed to build %s: %v\n", b.pkg, err)
			os.Exit(1)
		}
	}

	code := m.Run()

	os.Remove(binPath)
	os.Remove(serveBinPath)
	os.Exit(code)
}
