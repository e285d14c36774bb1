package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// fetch reads a local file or downloads a URL. Every failure is a *FetchError.
func fetch(ctx context.Context, location string, client HTTPDoer) ([]byte, error) {
	if !IsURL(location) {
		data, err := os.ReadFile(location)
		if err != nil {
			return nil, &FetchError{Location: location, Err: err}
		}
		return data, nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, &FetchError{Location: location, Err: err}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{Location: location, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			return nil, &FetchError{Location: location, Err: fmt.Errorf("status %d", resp.StatusCode)}
		}
		return nil, &FetchError{Location: location, Err: fmt.Errorf("status %d: %s", resp.StatusCode, msg)}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Location: location, Err: err}
	}
	return data, nil
}

// decodeText strips a UTF-8 byte order mark.
func decodeText(data []byte) string {
	return strings.TrimPrefix(string(data), "\ufeff")
}
