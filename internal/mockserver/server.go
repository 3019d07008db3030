// Package mockserver is a scripted fake of the remote services, used by the
// service client tests. Query-protocol calls are matched on their Action form
// field, REST calls on method and escaped path.
package mockserver

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"

	gmw "github.com/Laisky/gin-middlewares/v6"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"

	"github.com/Laisky/cloudsdk/common/logger"
	"github.com/Laisky/cloudsdk/common/random"
)

// RequestIDHeader is set on every response.
const RequestIDHeader = "X-Amzn-Requestid"

// Recorded is a request as received by the server.
type Recorded struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
	// Form holds the parsed body of form-encoded requests.
	Form url.Values
}

// Route is one scripted response.
type Route struct {
	method string
	path   string
	action string
	status int
	body   string
	header http.Header
	// remaining is the number of uses left; negative means unlimited.
	remaining int
}

// WithHeader adds a response header.
func (r *Route) WithHeader(key, value string) *Route {
	r.header.Add(key, value)
	return r
}

// Times limits the route to n uses, after which later routes can match.
func (r *Route) Times(n int) *Route {
	r.remaining = n
	return r
}

// Server is a gin engine served by httptest.
type Server struct {
	URL string

	srv      *httptest.Server
	mu       sync.Mutex
	routes   []*Route
	requests []Recorded
}

// New starts a server. Callers must Close it.
func New() *Server {
	gin.SetMode(gin.TestMode)
	s := &Server{}

	engine := gin.New()
	engine.RedirectTrailingSlash = false
	engine.Use(
		gin.Recovery(),
		gmw.NewLoggerMiddleware(
			gmw.WithLevel("debug"),
			gmw.WithLogger(logger.Logger.Named("mockserver")),
		),
		requestID(),
	)
	engine.NoRoute(s.handle)
	engine.NoMethod(s.handle)

	s.srv = httptest.NewServer(engine)
	s.URL = s.srv.URL
	return s
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header(RequestIDHeader, random.GetUUID())
		c.Next()
	}
}

// Close shuts the server down.
func (s *Server) Close() { s.srv.Close() }

// Client returns an HTTP client bound to the server.
func (s *Server) Client() *http.Client { return s.srv.Client() }

// Expect scripts a REST response for method and escaped path.
func (s *Server) Expect(method, path string, status int, body string) *Route {
	return s.add(&Route{method: method, path: path, status: status, body: body})
}

// ExpectAction scripts a query-protocol response for action.
func (s *Server) ExpectAction(action string, status int, body string) *Route {
	return s.add(&Route{method: http.MethodPost, action: action, status: status, body: body})
}

func (s *Server) add(r *Route) *Route {
	r.header = http.Header{}
	r.remaining = -1
	s.mu.Lock()
	s.routes = append(s.routes, r)
	s.mu.Unlock()
	return r
}

// Requests returns a copy of the requests received so far.
func (s *Server) Requests() []Recorded {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Recorded(nil), s.requests...)
}

// Reset drops scripted routes and recorded requests.
func (s *Server) Reset() {
	s.mu.Lock()
	s.routes = nil
	s.requests = nil
	s.mu.Unlock()
}

func (s *Server) handle(c *gin.Context) {
	lg := gmw.GetLogger(c)
	body, err := c.GetRawData()
	if err != nil {
		c.String(http.StatusBadRequest, "read body: %v", err)
		return
	}

	rec := Recorded{
		Method:   c.Request.Method,
		Path:     c.Request.URL.EscapedPath(),
		RawQuery: c.Request.URL.RawQuery,
		Header:   c.Request.Header.Clone(),
		Body:     body,
	}
	if strings.HasPrefix(c.ContentType(), "application/x-www-form-urlencoded") {
		if rec.Form, err = url.ParseQuery(string(body)); err != nil {
			c.String(http.StatusBadRequest, "parse form: %v", err)
			return
		}
	}
	action := rec.Form.Get("Action")

	s.mu.Lock()
	s.requests = append(s.requests, rec)
	route := s.match(rec.Method, rec.Path, action)
	s.mu.Unlock()

	if route == nil {
		lg.Warn("unexpected request",
			zap.String("method", rec.Method),
			zap.String("path", rec.Path),
			zap.String("action", action))
		if action != "" {
			c.Data(http.StatusNotFound, "text/xml", []byte(QueryError("Sender", "UnexpectedRequest",
				fmt.Sprintf("no response scripted for %s", action))))
			return
		}
		c.Header("X-Amzn-Errortype", "NotFoundException")
		c.JSON(http.StatusNotFound, gin.H{
			"message": fmt.Sprintf("no response scripted for %s %s", rec.Method, rec.Path),
		})
		return
	}

	for k, vs := range route.header {
		for _, v := range vs {
			c.Writer.Header().Add(k, v)
		}
	}
	contentType := "application/json"
	if route.action != "" {
		contentType = "text/xml"
	}
	c.Data(route.status, contentType, []byte(route.body))
}

// match must be called with s.mu held.
func (s *Server) match(method, path, action string) *Route {
	for _, r := range s.routes {
		if r.remaining == 0 {
			continue
		}
		if r.action != "" {
			if r.action != action {
				continue
			}
		} else if r.method != method || r.path != path {
			continue
		}
		if r.remaining > 0 {
			r.remaining--
		}
		return r
	}
	return nil
}

// QueryResult wraps inner in the query-protocol response envelope of action.
func QueryResult(action, inner, requestID string) string {
	return fmt.Sprintf(`<%[1]sResponse xmlns="http://elasticache.amazonaws.com/doc/2015-02-02/">`+
		`<%[1]sResult>%[2]s</%[1]sResult>`+
		`<ResponseMetadata><RequestId>%[3]s</RequestId></ResponseMetadata>`+
		`</%[1]sResponse>`, action, inner, requestID)
}

// QueryError renders a query-protocol error document.
func QueryError(faultType, code, message string) string {
	return fmt.Sprintf(`<ErrorResponse><Error><Type>%s</Type><Code>%s</Code><Message>%s</Message></Error>`+
		`<RequestId>%s</RequestId></ErrorResponse>`, faultType, code, message, random.GetUUID())
}
