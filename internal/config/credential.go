package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const defaultAPIKeyFile = "/run/secrets/weather_api_key"

// ResolveAPIKey resolves the weather API credential: a mounted secrets file
// first, then the WEATHER_API_KEY environment variable, then an interactive
// prompt written to out and read from in. An empty return means no credential
// could be obtained and the caller must halt before touching the fetcher.
func ResolveAPIKey(in io.Reader, out io.Writer) string {
	path := getenvDefault("WEATHER_API_KEY_FILE", defaultAPIKeyFile)
	if data, err := os.ReadFile(path); err == nil {
		if key := strings.TrimSpace(string(data)); key != "" {
			return key
		}
	}

	if key := strings.TrimSpace(os.Getenv("WEATHER_API_KEY")); key != "" {
		return key
	}

	fmt.Fprint(out, "Visual Crossing API key: ")
	scanner := bufio.NewScanner(in)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text())
	}
	return ""
}
