package funpay

import (
	"context"
	"net/url"
	"sync"
	"time"

	"funpaygo/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/time/rate"
)

var tracer = otel.Tracer("scrapers/funpay")

const DefaultBaseUrl = "https://funpay.com"

// Client talks to the marketplace over its html pages and ajax endpoints.
// Reads work unauthenticated; authenticated calls additionally need the
// account's golden key and, for state-changing calls, a csrf token + session
// id pair the client maintains on its own.
type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client

	goldenKey string
	limiter   *rate.Limiter

	mu      sync.Mutex
	session Session
}

type ClientOptions struct {
	// defaults to DefaultBaseUrl
	BaseUrl string
	// the long-lived account credential; leave empty for read-only use
	GoldenKey string
	// politeness cap on outgoing requests; 0 disables the limiter
	RequestsPerSecond float64
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(time.Second * 30)

	c := &Client{
		BaseUrl:   baseUrl,
		Http:      client,
		goldenKey: opts.GoldenKey,
	}
	if opts.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
		client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			return c.limiter.Wait(req.Context())
		})
	}

	telemetry.InstrumentResty(client, "scrapers/funpay/http")

	return c, nil
}

// Session cookies are attached to each request by hand instead of through a
// cookie jar, so that the pair held here is always exactly what the next
// request will send.

// RefreshSession fetches a new csrf token + session id pair and installs it
// on the client. Any page response carries both; this path stays cheap
// because the server renders its smallest page for it.
func (c *Client) RefreshSession(ctx context.Context) (Session, error) {
	ctx, span := tracer.Start(ctx, "client:RefreshSession")
	defer span.End()

	res, err := c.Http.R().
		SetContext(ctx).
		SetHeader("Cookie", "golden_key="+c.goldenKey).
		Get("/unknown/")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch session page")
		return Session{}, err
	}

	session, err := extractSession(res.Body(), res.Header().Values("Set-Cookie"))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract session")
		return Session{}, err
	}

	c.mu.Lock()
	c.session = session
	c.mu.Unlock()

	return session, nil
}

// ensureSession yields the installed session pair, refreshing first when the
// client has none yet.
func (c *Client) ensureSession(ctx context.Context) (Session, error) {
	c.mu.Lock()
	session := c.session
	c.mu.Unlock()
	if session != (Session{}) {
		return session, nil
	}
	return c.RefreshSession(ctx)
}

func (c *Client) authCookie(session Session) string {
	return "golden_key=" + c.goldenKey + "; PHPSESSID=" + session.PHPSessionID
}
