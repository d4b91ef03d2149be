package semflo

import (
	"bytes"
	"context"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"carnet-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/semflo")

var ErrLoginFailed = fmt.Errorf("Failed to login to your account.")

const (
	loginPath   = "/login"
	coursesPath = "/carnet-de-notes"

	csrfTokenField = "_csrf_token"

	// present in the page header of every authenticated page,
	// its absence after a login POST means rejected credentials
	loggedInMarker = "Se déconnecter"
)

// Client doubles as the authenticated session: the cookie jar holds
// the portal session cookie after a successful login.
type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client
}

type ClientOptions struct {
	BaseUrl string
}

func NewClient(ctx context.Context, opts ClientOptions) (*Client, error) {
	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "scrapers/semflo/http")

	c := &Client{
		BaseUrl: baseUrl,
		Http:    client,
	}
	return c, nil
}

// FetchLoginToken pulls the anti-forgery token off the login form.
// A missing token is a normal outcome (the portal may be offline or
// its markup may have moved), not a panic.
func (c *Client) FetchLoginToken(ctx context.Context) (string, error) {
	ctx, span := tracer.Start(ctx, "client:FetchLoginToken")
	defer span.End()

	res, err := c.Http.R().
		SetContext(ctx).
		Get(loginPath)
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch login page")
		return "", err
	}
	if res.StatusCode() != 200 {
		span.SetStatus(codes.Error, "login page returned non-200")
		return "", fmt.Errorf("login page returned status %d", res.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.SetStatus(codes.Error, "failed to parse login page html")
		return "", err
	}

	token := doc.Find("input[name=" + csrfTokenField + "]").AttrOr("value", "")
	if token == "" {
		span.SetStatus(codes.Error, "failed to find csrf token")
		return "", fmt.Errorf("could not find csrf token on login page")
	}
	return token, nil
}

// LoginEmailPassword authenticates the client against the portal.
// Rejected credentials and network trouble are deliberately collapsed
// into the same failure, the portal gives no way to tell them apart.
func (c *Client) LoginEmailPassword(ctx context.Context, email, password string) error {
	ctx, span := tracer.Start(ctx, "client:LoginEmailPassword")
	defer span.End()

	token, err := c.FetchLoginToken(ctx)
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch login token")
		return err
	}

	res, err := c.Http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"email":        email,
			"password":     password,
			csrfTokenField: token,
			"_remember_me": "on",
		}).
		Post(loginPath)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to make login request")
		return err
	}

	if res.StatusCode() != 200 || !strings.Contains(string(res.Body()), loggedInMarker) {
		span.SetStatus(codes.Error, ErrLoginFailed.Error())
		return ErrLoginFailed
	}
	return nil
}

// Logout drops the session cookies, invalidating the handle.
func (c *Client) Logout() {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return
	}
	c.Http.SetCookieJar(jar)
}
