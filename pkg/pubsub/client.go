package pubsub

import (
	"context"
	"errors"
	"fmt"
	"strings"

	pubsub "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/autonovo/autonovo-backend/pkg/config"
	"github.com/autonovo/autonovo-backend/pkg/logger"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Client wraps the Pub/Sub v2 client for the analytics event stream.
type Client struct {
	base      *pubsub.Client
	projectID string
	cfg       config.PubSubConfig
}

var errProjectIDRequired = errors.New("gcp project id is required")

// NewClient builds a Pub/Sub v2 client and verifies the analytics
// subscription exists before handing it out.
func NewClient(ctx context.Context, gcp config.GCPConfig, cfg config.PubSubConfig, logg *logger.Logger) (*Client, error) {
	if strings.TrimSpace(gcp.ProjectID) == "" {
		return nil, errProjectIDRequired
	}

	base, err := pubsub.NewClient(ctx, gcp.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("creating pubsub client: %w", err)
	}

	c := &Client{base: base, projectID: gcp.ProjectID, cfg: cfg}

	if err := c.ensureSubscriptionExists(ctx, cfg.AnalyticsSubscription); err != nil {
		_ = base.Close()
		return nil, err
	}

	if logg != nil {
		logg.Info(ctx, "pubsub client initialized")
	}

	return c, nil
}

func (c *Client) ensureSubscriptionExists(ctx context.Context, name string) error {
	resource := c.resourceName("subscriptions", name)
	if resource == "" {
		return fmt.Errorf("subscription %q not configured", name)
	}

	_, err := c.base.SubscriptionAdminClient.GetSubscription(
		ctx,
		&pubsubpb.GetSubscriptionRequest{Subscription: resource},
	)
	if err != nil {
		// v2 surfaces gRPC errors; NotFound means the subscription is missing.
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("subscription %q does not exist", name)
		}
		return fmt.Errorf("checking subscription %q: %w", name, err)
	}

	return nil
}

// AnalyticsSubscription returns the configured page-event subscriber.
func (c *Client) AnalyticsSubscription() *pubsub.Subscriber {
	if c == nil || c.base == nil {
		return nil
	}
	resource := c.resourceName("subscriptions", c.cfg.AnalyticsSubscription)
	if resource == "" {
		return nil
	}
	return c.base.Subscriber(resource)
}

// AnalyticsPublisher returns the configured page-event publisher.
func (c *Client) AnalyticsPublisher() *pubsub.Publisher {
	if c == nil || c.base == nil {
		return nil
	}
	resource := c.resourceName("topics", c.cfg.AnalyticsTopic)
	if resource == "" {
		return nil
	}
	return c.base.Publisher(resource)
}

// Ping verifies connectivity by looking up the analytics subscription.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil {
		return errors.New("pubsub client not initialized")
	}
	return c.ensureSubscriptionExists(ctx, c.cfg.AnalyticsSubscription)
}

// Close releases the underlying client resources.
func (c *Client) Close() error {
	if c == nil || c.base == nil {
		return nil
	}
	return c.base.Close()
}

// resourceName expands a short name into a fully qualified Pub/Sub
// resource path. Names that already carry a projects/ prefix pass
// through untouched.
func (c *Client) resourceName(kind, name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "projects/") && strings.Contains(trimmed, "/"+kind+"/") {
		return trimmed
	}
	project := strings.TrimSpace(c.projectID)
	if project == "" {
		return ""
	}
	return fmt.Sprintf("projects/%s/%s/%s", project, kind, trimmed)
}
