package stockmarket

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

// This file refreshes the current market prices of tracked assets from a
// JSON quote document served over HTTP. The expected shape is:
//
//	{
//	    "quotes": [
//	        {"ticker": "AAPL", "last": 150.25},
//	        {"ticker": "GLD", "last": 95.0}
//	    ]
//	}
//
// Quotes for tickers the portfolio does not track are ignored.

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}

// fetchQuotes downloads and extracts the (ticker, last price) pairs from a
// quote document.
func fetchQuotes(client *http.Client, addr string) (map[string]float64, error) {
	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("error in wget %q: %w", addr, err)
	}

	jval, err := jsonpath.Get("$.quotes[*]", jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing quote document: %w", err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("error parsing quote document: $.quotes is not a list")
	}

	quotes := make(map[string]float64, len(jlist))
	for i, jquote := range jlist {
		ticker, err := jsonpath.Get("$.ticker", jquote)
		if err != nil {
			return nil, fmt.Errorf("error parsing quote %d: %w", i, err)
		}
		last, err := jsonpath.Get("$.last", jquote)
		if err != nil {
			return nil, fmt.Errorf("error parsing quote %d: %w", i, err)
		}
		name, ok := ticker.(string)
		if !ok {
			return nil, fmt.Errorf("error parsing quote %d: ticker is not a string", i)
		}
		val, ok := last.(float64)
		if !ok {
			return nil, fmt.Errorf("error parsing quote %d: last is not a number", i)
		}
		quotes[name] = val
	}
	return quotes, nil
}

// UpdateQuotes fetches the latest quotes from addr and applies them to the
// tracked assets. It returns the number of assets whose price was updated.
func UpdateQuotes(p *Portfolio, client *http.Client, addr string) (int, error) {
	quotes, err := fetchQuotes(client, addr)
	if err != nil {
		return 0, err
	}

	updated := 0
	for ticker, last := range quotes {
		asset := p.Asset(ticker)
		if asset == nil {
			continue
		}
		asset.SetPrice(M(last, p.Currency()))
		updated++
	}
	return updated, nil
}
