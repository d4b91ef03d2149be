package semflo

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// FetchCourseList downloads the page carrying the course table.
func (c *Client) FetchCourseList(ctx context.Context) (string, error) {
	return c.fetchPage(ctx, coursesPath)
}

// FetchGradebook downloads the gradebook page for a course, `link`
// may carry a /pN period segment.
func (c *Client) FetchGradebook(ctx context.Context, link string) (string, error) {
	return c.fetchPage(ctx, link)
}

func (c *Client) fetchPage(ctx context.Context, link string) (string, error) {
	ctx, span := tracer.Start(ctx, "client:fetchPage")
	defer span.End()
	span.SetAttributes(attribute.String("url", link))

	res, err := c.Http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return "", err
	}
	if res.StatusCode() != 200 {
		span.SetStatus(codes.Error, "non-200 response")
		return "", fmt.Errorf("fetching %q returned status %d", link, res.StatusCode())
	}

	return string(res.Body()), nil
}
