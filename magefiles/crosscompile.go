// See https://magefile.org/

//go:build mage

// Cross-compilation check for httpdir:
package main

import (
	"log"
	"os"

	"github.com/magefile/mage/sh"
)

// tests the module for the host OS and builds it for the other one: Windows
// with its default architecture, Linux on both amd64 and i386
func CrossCompile() error {
	win := "build"
	linux := "test"
	if os.Getenv("GOOS") == "windows" {
		win = "test"
		linux = "build"
	}
	log.Printf("Running go %s on Windows\n", win)
	if err := sh.RunWithV(map[string]string{"GOOS": "windows"}, "go", win, "./..."); err != nil {
		return err
	}
	for _, arch := range []string{"amd64", "386"} {
		log.Printf("Running go %s on Linux/%s\n", linux, arch)
		env := map[string]string{"GOOS": "linux", "GOARCH": arch}
		if _, err := sh.Exec(env, os.Stdout, os.Stderr, "go", linux, "./..."); err != nil {
			return err
		}
	}
	return nil
}
