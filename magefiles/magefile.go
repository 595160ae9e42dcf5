//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Build compiles the demo binary.
func Build() error {
	return sh.RunV("go", "build", "-o", "bin/prisma", ".")
}

// Run starts the headless demo for a fixed number of frames.
func Run() error {
	mg.Deps(Build)
	return sh.RunV("./bin/prisma", "-frames", "600")
}

// Test runs all package tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet reports suspicious constructs.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm("bin")
}
