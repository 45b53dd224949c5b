package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/klwxsrx/store-dashboard/pkg/log"
	"github.com/klwxsrx/store-dashboard/pkg/metric"
	"github.com/klwxsrx/store-dashboard/pkg/observability"
)

const DefaultRequestIDHeader = "X-Request-ID"

type (
	Destination string

	Route struct {
		Method string
		URL    string
	}

	ClientOption func(*ClientImpl)

	Client interface {
		NewRequest(ctx context.Context, route Route) Request
		With(opts ...ClientOption) Client
	}

	Request interface {
		SetPathParam(name, value string) Request
		SetQueryParams(url.Values) Request
		SetHeader(key, value string) Request
		SetBody(body any) Request
		Send() (Response, error)
	}

	// Response body stays unread until parsed, callers must Close it.
	Response interface {
		StatusCode() int
		Header() http.Header
		RawResponse() *http.Response
		Close()
	}

	ClientImpl struct {
		DestinationName string
		RESTClient      *resty.Client
		opts            []ClientOption
	}

	request struct {
		route Route
		impl  *resty.Request
	}

	response struct {
		impl *resty.Response
	}
)

func NewClient(opts ...ClientOption) Client {
	client := ClientImpl{
		DestinationName: "",
		RESTClient:      resty.New().SetDoNotParseResponse(true),
		opts:            opts,
	}

	for _, opt := range opts {
		opt(&client)
	}

	return client
}

func (c ClientImpl) NewRequest(ctx context.Context, route Route) Request {
	return request{
		route: route,
		impl:  c.RESTClient.NewRequest().SetContext(ctx),
	}
}

func (c ClientImpl) With(opts ...ClientOption) Client {
	mergedOpts := make([]ClientOption, 0, len(c.opts)+len(opts))
	mergedOpts = append(mergedOpts, c.opts...)
	mergedOpts = append(mergedOpts, opts...)
	return NewClient(mergedOpts...)
}

func (r request) SetPathParam(name, value string) Request {
	r.impl.SetPathParam(name, value)
	return r
}

func (r request) SetQueryParams(values url.Values) Request {
	r.impl.SetQueryParamsFromValues(values)
	return r
}

func (r request) SetHeader(key, value string) Request {
	r.impl.SetHeader(key, value)
	return r
}

func (r request) SetBody(body any) Request {
	r.impl.SetBody(body)
	return r
}

func (r request) Send() (Response, error) {
	resp, err := r.impl.Execute(r.route.Method, r.route.URL)
	if err != nil {
		if resp != nil && resp.RawBody() != nil {
			_ = resp.RawBody().Close()
		}
		return nil, err
	}

	return response{impl: resp}, nil
}

func (r response) StatusCode() int {
	return r.impl.StatusCode()
}

func (r response) Header() http.Header {
	return r.impl.Header()
}

func (r response) RawResponse() *http.Response {
	return r.impl.RawResponse
}

func (r response) Close() {
	body := r.impl.RawBody()
	if body == nil {
		return
	}

	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}

func WithClientDestination(name, url string) ClientOption {
	return func(c *ClientImpl) {
		c.DestinationName = name
		c.RESTClient.SetBaseURL(url)
	}
}

func WithRequestTimeout(timeout time.Duration) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.SetTimeout(timeout)
	}
}

func WithRequestHeader(key, value string) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.SetHeader(key, value)
	}
}

func WithRequestObservability(observer observability.Observer, requestIDHeaderName string) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			id, ok := observer.RequestID(req.Context())
			if !ok {
				return nil
			}

			req.SetHeader(requestIDHeaderName, id)
			return nil
		})
	}
}

func WithRequestLogging(logger log.Logger, infoLevel, errorLevel log.Level) ClientOption {
	const destinationNameLogField = "destinationName"
	return func(c *ClientImpl) {
		c.RESTClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			respLogger := getRequestResponseFieldsLogger(resp.Request.RawRequest, resp.StatusCode(), logger)
			respLogger = respLogger.With(wrapFieldsWithRequestLogEntry(log.Fields{
				destinationNameLogField: getDestinationNameForLogging(c),
			}))

			if resp.StatusCode() >= http.StatusInternalServerError {
				respLogger.Log(resp.Request.Context(), errorLevel, "http call completed with internal error")
			} else {
				respLogger.Log(resp.Request.Context(), infoLevel, "http call completed")
			}

			return nil
		})

		c.RESTClient.OnError(func(req *resty.Request, err error) {
			errLogger := logger
			if req.RawRequest != nil {
				errLogger = getRequestFieldsLogger(req.RawRequest, errLogger)
			}
			errLogger = errLogger.With(wrapFieldsWithRequestLogEntry(log.Fields{
				destinationNameLogField: getDestinationNameForLogging(c),
			}))

			errLogger.
				WithError(err).
				Log(req.Context(), errorLevel, "http call completed with error")
		})
	}
}

func WithRequestMetrics(metrics metric.Metrics) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			metrics.With(metric.Labels{
				"destination": getDestinationNameForLogging(c),
				"method":      resp.Request.Method,
				"path":        resp.Request.RawRequest.URL.Path,
				"code":        fmt.Sprintf("%d", resp.StatusCode()),
			}).Duration("http_client_request_duration_seconds", resp.Time())
			return nil
		})
	}
}

type ClientFactory struct {
	baseOpts []ClientOption
}

func NewClientFactory(opts ...ClientOption) ClientFactory {
	return ClientFactory{
		baseOpts: opts,
	}
}

func (f ClientFactory) InitClient(dest Destination, baseURL string, extraOpts ...ClientOption) Client {
	opts := make([]ClientOption, 0, len(extraOpts)+1)
	opts = append(opts, WithClientDestination(string(dest), baseURL))
	opts = append(opts, extraOpts...)

	return f.httpClient(opts...)
}

func (f ClientFactory) httpClient(extraOpts ...ClientOption) Client {
	opts := make([]ClientOption, 0, len(f.baseOpts)+len(extraOpts))
	opts = append(opts, f.baseOpts...)
	opts = append(opts, extraOpts...)

	return NewClient(opts...)
}

func getDestinationNameForLogging(c *ClientImpl) string {
	if c.DestinationName != "" {
		return c.DestinationName
	}
	return "-"
}
