package config

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Value is a setting that is either known up front or produced on demand at the point of use.
type Value[T any] interface {
	Resolve(ctx context.Context) (T, error)
}

// Static is a Value fixed at load time.
type Static[T any] struct {
	V T
}

func (s Static[T]) Resolve(context.Context) (T, error) {
	return s.V, nil
}

// Provider is a Value computed every time it is resolved.
type Provider[T any] func(ctx context.Context) (T, error)

func (p Provider[T]) Resolve(ctx context.Context) (T, error) {
	return p(ctx)
}

// FileProvider reads a secret from path on each resolve, so rotated secrets are picked up without restart.
func FileProvider(path string) Provider[string] {
	return func(ctx context.Context) (string, error) {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read secret file %s: %w", path, err)
		}
		return strings.TrimSpace(string(b)), nil
	}
}

// SlackToken returns the bot token source, the token file wins over a literal token.
func (c *Config) SlackToken() Value[string] {
	if c.Slack.TokenFile != "" {
		return FileProvider(c.Slack.TokenFile)
	}
	return Static[string]{V: c.Slack.Token}
}
