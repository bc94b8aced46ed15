// Package ruc resolves a Peruvian RUC tax identifier to the registered
// company name and address through the apisperu public API.
package ruc

import (
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

const defaultBaseURL = "https://dniruc.apisperu.com/api/v1"

// A RUC is 11 digits.
var rucPattern = regexp.MustCompile(`^\d{11}$`)

// Info is the registry data behind a RUC.
type Info struct {
	Name    string // registered company name (razón social)
	Address string
}

// Client queries the RUC registry. The zero value is not usable; use New.
type Client struct {
	HTTP    *http.Client
	BaseURL string
	Token   string
}

// New creates a registry client with a bounded request timeout.
func New(token string) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: 20 * time.Second},
		BaseURL: defaultBaseURL,
		Token:   token,
	}
}

// Lookup fetches the registry record for the given RUC.
func (c *Client) Lookup(taxID string) (*Info, error) {
	if !rucPattern.MatchString(taxID) {
		return nil, fmt.Errorf("invalid RUC %q: expected 11 digits", taxID)
	}
	if c.Token == "" {
		return nil, fmt.Errorf("no API token configured for RUC lookup")
	}

	addr := fmt.Sprintf("%s/ruc/%s?token=%s", c.BaseURL, taxID, url.QueryEscape(c.Token))
	var jobj any
	if err := jwget(c.HTTP, addr, &jobj); err != nil {
		return nil, fmt.Errorf("error retrieving RUC %s: %w", taxID, err)
	}

	name, err := jstring(jobj, "$.razonSocial")
	if err != nil {
		return nil, fmt.Errorf("RUC %s: %w", taxID, err)
	}
	// The address is often missing for small businesses; tolerate that.
	address, _ := jstring(jobj, "$.direccion")

	return &Info{Name: name, Address: address}, nil
}

// jstring extracts a single string value at path.
func jstring(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("cannot read %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("cannot read %q: not a string (%v)", path, jval)
	}
	return s, nil
}
