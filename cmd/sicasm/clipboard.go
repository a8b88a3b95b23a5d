package main

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

// maxPaste bounds a single paste into the source buffer.
const maxPaste = 64 * 1024

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

func initClipboard() error {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		return fmt.Errorf("clipboard unavailable: %w", clipboardErr)
	}
	return nil
}

func readClipboard() (string, error) {
	if err := initClipboard(); err != nil {
		return "", err
	}
	data := clipboard.Read(clipboard.FmtText)
	return string(capPasteText(normalizePasteText(data), maxPaste)), nil
}

func writeClipboard(text string) error {
	if err := initClipboard(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// normalizePasteText turns CRLF and lone CR line endings into LF.
func normalizePasteText(raw []byte) []byte {
	norm := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\r' {
			if i+1 < len(raw) && raw[i+1] == '\n' {
				i++
			}
			norm = append(norm, '\n')
			continue
		}
		norm = append(norm, raw[i])
	}
	return norm
}

func capPasteText(raw []byte, max int) []byte {
	if len(raw) <= max {
		return raw
	}
	return raw[:max]
}
