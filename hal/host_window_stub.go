//go:build !tinygo && !cgo

package hal

import "errors"

var errNoWindow = errors.New("hal: window mode needs the ebiten backend (CGO_ENABLED=1); use -headless")

func RunWindow(func(HAL) func() error) error {
	return errNoWindow
}
