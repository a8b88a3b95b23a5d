//go:build headless

package main

import "errors"

func runGUI(*workbench) error {
	return errors.New("gui: not available in headless builds")
}
