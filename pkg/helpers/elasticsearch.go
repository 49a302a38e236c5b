package helpers

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
)

// ESOptions configures the search cluster client.
type ESOptions struct {
	Addrs      []string
	Username   string
	Password   string
	MaxRetries int // defaults to 3
}

// NewESClient builds a client that retries on gateway and throttling responses.
func NewESClient(opts ESOptions) (*elasticsearch.Client, error) {
	if len(opts.Addrs) == 0 {
		return nil, errors.New("elasticsearch: no addresses configured")
	}
	retries := opts.MaxRetries
	if retries <= 0 {
		retries = 3
	}
	return elasticsearch.NewClient(elasticsearch.Config{
		Addresses:           opts.Addrs,
		Username:            opts.Username,
		Password:            opts.Password,
		RetryOnStatus:       []int{http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout},
		MaxRetries:          retries,
		CompressRequestBody: true,
		Transport: &http.Transport{
			MaxIdleConnsPerHost:   10,
			ResponseHeaderTimeout: 5 * time.Second,
			TLSClientConfig:       &tls.Config{MinVersion: tls.VersionTLS12},
			DialContext:           (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
		},
	})
}

// PingES returns an error unless the cluster answers the ping with a success status.
func PingES(ctx context.Context, es *elasticsearch.Client) error {
	res, err := es.Ping(es.Ping.WithContext(ctx))
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("elasticsearch ping: %s", res.Status())
	}
	return nil
}
