// Package whttp wraps go-retryablehttp for the one-shot fetches catalogo
// makes: a bounded body read and detection of HTML pages served where a
// JSON document was expected.
package whttp

import (
	"context"
	"fmt"
	"io"
	"mime"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/net/html"
)

const (
	UserAgent   = "catalogo/1.0"
	MaxBodySize = 32 << 20
)

type WHTTPHeader struct {
	Name  string
	Value string
}

type WHTTPReq struct {
	URL     string
	Method  string
	Headers []WHTTPHeader
}

type WHTTPRes struct {
	StatusCode  int
	ContentType string
	Body        []byte
	// HTTPTitle is the <title> of an HTML response, empty otherwise.
	HTTPTitle string
}

// Logger is the subset of a leveled logger the client reports through.
type Logger interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type ClientOptions struct {
	Timeout time.Duration
	// Retries is the number of extra attempts; 0 makes a single attempt.
	Retries   int
	RetryWait time.Duration
	Log       Logger
}

func NewClient(opts ClientOptions) *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.RetryMax = opts.Retries
	if client.RetryMax < 0 {
		client.RetryMax = 0
	}
	if opts.RetryWait > 0 {
		client.RetryWaitMin = opts.RetryWait
		client.RetryWaitMax = 10 * opts.RetryWait
	}
	if opts.Timeout > 0 {
		client.HTTPClient.Timeout = opts.Timeout
	}
	if opts.Log != nil {
		client.Logger = leveledLogger{opts.Log}
	} else {
		client.Logger = nil
	}
	return client
}

func SendHTTPRequest(ctx context.Context, wReq *WHTTPReq, client *retryablehttp.Client) (*WHTTPRes, error) {
	method := wReq.Method
	if method == "" {
		method = "GET"
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, wReq.URL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", UserAgent)
	for _, h := range wReq.Headers {
		req.Header.Set(h.Name, h.Value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, err
	}
	if len(body) > MaxBodySize {
		return nil, fmt.Errorf("response body exceeds %d bytes", MaxBodySize)
	}

	wRes := &WHTTPRes{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}
	if isHTML(wRes.ContentType) {
		if title, ok := getHTMLTitle(body); ok {
			wRes.HTTPTitle = strings.ToValidUTF8(strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(title, "\n", ""), "\r", "")), "")
		}
	}
	return wRes, nil
}

func isHTML(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "text/html"
}

func isTitleElement(n *html.Node) bool {
	return n.Type == html.ElementNode && n.Data == "title"
}

func traverse(n *html.Node) (string, bool) {
	if isTitleElement(n) {
		if n.FirstChild != nil {
			return n.FirstChild.Data, true
		}
		return "", true
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		result, ok := traverse(c)
		if ok {
			return result, ok
		}
	}

	return "", false
}

func getHTMLTitle(body []byte) (string, bool) {
	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return "", false
	}
	return traverse(doc)
}

// leveledLogger bridges retryablehttp's key/value logger onto Logger.
type leveledLogger struct{ log Logger }

func (l leveledLogger) Error(msg string, kv ...interface{}) { l.log.Errorf("%s%s", msg, formatKV(kv)) }
func (l leveledLogger) Info(msg string, kv ...interface{})  { l.log.Debugf("%s%s", msg, formatKV(kv)) }
func (l leveledLogger) Debug(msg string, kv ...interface{}) { l.log.Debugf("%s%s", msg, formatKV(kv)) }
func (l leveledLogger) Warn(msg string, kv ...interface{})  { l.log.Warnf("%s%s", msg, formatKV(kv)) }

func formatKV(kv []interface{}) string {
	var sb strings.Builder
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&sb, " %v=%v", kv[i], kv[i+1])
	}
	return sb.String()
}
