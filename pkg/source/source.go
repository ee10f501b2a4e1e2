// Package source performs the one-time load of a catalog collection from a
// file, an http(s) URL or a sqlite snapshot.
package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/sw33tLie/catalogo/pkg/catalog"
	"github.com/sw33tLie/catalogo/pkg/storage"
	"github.com/sw33tLie/catalogo/pkg/whttp"
)

const (
	SQLitePrefix = "sqlite://"
	filePrefix   = "file://"

	defaultTimeout   = 30 * time.Second
	defaultRetryWait = time.Second
)

// ErrLoadFailure matches every error returned by Load.
var ErrLoadFailure = errors.New("catalog load failed")

// LoadError reports a failed load. Loads are not retried by callers: the
// collection stays empty for the lifetime of the process.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("could not load catalog from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool { return target == ErrLoadFailure }

// Logger abstracts logging so callers can use logrus or anything with the
// same printf-style methods.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Debugf(string, ...interface{}) {}

// Options tunes Load. The zero value is usable.
type Options struct {
	// Timeout bounds a single HTTP attempt. Defaults to 30s.
	Timeout time.Duration
	// Retries is the number of extra HTTP attempts on transient failures.
	// The default of 0 makes a single attempt.
	Retries int
	// RetryWait is the minimum back-off between HTTP attempts.
	RetryWait time.Duration
	Log       Logger
}

// Load reads and decodes the collection found at location.
func Load(ctx context.Context, location string, opts Options) ([]catalog.Item, error) {
	log := opts.Log
	if log == nil {
		log = nopLogger{}
	}
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, &LoadError{Source: "<empty>", Err: errors.New("no source configured")}
	}

	var (
		items []catalog.Item
		err   error
	)
	switch {
	case strings.HasPrefix(location, SQLitePrefix):
		items, err = loadSQLite(ctx, strings.TrimPrefix(location, SQLitePrefix))
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		var data []byte
		if data, err = fetchHTTP(ctx, location, opts, log); err == nil {
			items, err = catalog.Decode(data)
		}
	default:
		var data []byte
		if data, err = os.ReadFile(strings.TrimPrefix(location, filePrefix)); err == nil {
			items, err = catalog.Decode(data)
		}
	}
	if err != nil {
		log.Errorf("Loading catalog from %s failed: %v", location, err)
		return nil, &LoadError{Source: location, Err: err}
	}

	log.Debugf("Loaded %d items from %s", len(items), location)
	return items, nil
}

func loadSQLite(ctx context.Context, path string) ([]catalog.Item, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	db, err := storage.Open(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return db.ListItems(ctx)
}

func fetchHTTP(ctx context.Context, url string, opts Options, log Logger) ([]byte, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	wait := opts.RetryWait
	if wait <= 0 {
		wait = defaultRetryWait
	}

	client := whttp.NewClient(whttp.ClientOptions{
		Timeout:   timeout,
		Retries:   opts.Retries,
		RetryWait: wait,
		Log:       log,
	})
	res, err := whttp.SendHTTPRequest(ctx, &whttp.WHTTPReq{
		URL:     url,
		Method:  http.MethodGet,
		Headers: []whttp.WHTTPHeader{{Name: "Accept", Value: "application/json"}},
	}, client)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", res.StatusCode)
	}
	if res.HTTPTitle != "" {
		return nil, fmt.Errorf("expected a JSON collection, got the HTML page %q", res.HTTPTitle)
	}
	return res.Body, nil
}
