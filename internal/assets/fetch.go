package assets

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"git.lost.host/meutraa/funkin/internal/game"
)

var client = &http.Client{Timeout: 30 * time.Second}

func isURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Fetch reads a local file or downloads an http(s) location. Any failure,
// including a non 2xx response, is a *game.LoadError.
func Fetch(location string) ([]byte, error) {
	if !isURL(location) {
		data, err := os.ReadFile(location)
		if nil != err {
			return nil, &game.LoadError{Location: location, Err: err}
		}
		return data, nil
	}

	resp, err := client.Get(location)
	if nil != err {
		return nil, &game.LoadError{Location: location, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &game.LoadError{Location: location, Err: fmt.Errorf("unexpected status %v", resp.Status)}
	}

	data, err := io.ReadAll(resp.Body)
	if nil != err {
		return nil, &game.LoadError{Location: location, Err: err}
	}
	return data, nil
}
