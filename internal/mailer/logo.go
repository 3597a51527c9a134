package mailer

import (
	"io"
	"net/http"
	"time"
)

// FetchLogo downloads the logo once per batch. Any failure returns empty
// bytes; the HTML part then falls back to referencing the URL directly.
func FetchLogo(url string) []byte {
	if url == "" {
		return nil
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return nil
	}
	return data
}
