// Package main starts the Green Givers Nursery backend.
package main

import "github.com/greengivers/nursery/pkg/cmd"

func main() {
	if err := cmd.Execute(); err != nil {
		panic(err)
	}
}
