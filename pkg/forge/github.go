package forge

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/lerenn/project-sync/pkg/logger"
)

const (
	// GitHubDomain is the GitHub domain.
	GitHubDomain = "github.com"

	// ProtocolHTTPS selects the https clone URL.
	ProtocolHTTPS = "https"
	// ProtocolSSH selects the ssh clone URL.
	ProtocolSSH = "ssh"

	requestTimeout = 10 * time.Second
)

// GitHub resolves repositories through the GitHub REST API.
type GitHub struct {
	client   *github.Client
	protocol string
	logger   logger.Logger
}

// NewGitHubParams contains parameters for NewGitHub.
type NewGitHubParams struct {
	// Protocol is ProtocolHTTPS or ProtocolSSH, defaulting to https.
	Protocol string
	Logger   logger.Logger
	// Token authenticates requests. GITHUB_TOKEN is used when empty.
	Token string
}

// NewGitHub creates a new GitHub resolver.
func NewGitHub(params NewGitHubParams) (*GitHub, error) {
	protocol := params.Protocol
	if protocol == "" {
		protocol = ProtocolHTTPS
	}
	if protocol != ProtocolHTTPS && protocol != ProtocolSSH {
		return nil, fmt.Errorf("%w: %s", ErrInvalidProtocol, protocol)
	}

	l := params.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}

	token := params.Token
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}

	var client *github.Client
	if token != "" {
		client = github.NewTokenClient(context.Background(), token)
	} else {
		client = github.NewClient(nil)
	}

	return &GitHub{client: client, protocol: protocol, logger: l}, nil
}

// Resolve fetches owner/repo from GitHub.
func (g *GitHub) Resolve(ctx context.Context, ref string) (*Repository, error) {
	parsed, err := ParseShorthand(ref)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	g.logger.Debugf("Resolving %s on GitHub", parsed)
	repo, resp, err := g.client.Repositories.Get(ctx, parsed.Owner, parsed.Name)
	if err != nil {
		return nil, g.handleGitHubError(err, resp, parsed)
	}

	cloneURL := repo.GetCloneURL()
	if g.protocol == ProtocolSSH {
		cloneURL = repo.GetSSHURL()
	}
	if cloneURL == "" {
		cloneURL = g.fallbackURL(parsed)
	}

	return &Repository{
		Owner:         repo.GetOwner().GetLogin(),
		Name:          repo.GetName(),
		CloneURL:      cloneURL,
		DefaultBranch: repo.GetDefaultBranch(),
	}, nil
}

func (g *GitHub) fallbackURL(ref Reference) string {
	if g.protocol == ProtocolSSH {
		return fmt.Sprintf("git@%s:%s.git", GitHubDomain, ref)
	}
	return fmt.Sprintf("https://%s/%s.git", GitHubDomain, ref)
}

// handleGitHubError maps GitHub API errors to forge errors.
func (g *GitHub) handleGitHubError(err error, resp *github.Response, ref Reference) error {
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
		return fmt.Errorf("%w: GitHub API rate limit exceeded: %w", ErrRateLimited, err)
	}

	if resp != nil {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrRepositoryNotFound, ref)
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: check GITHUB_TOKEN environment variable", ErrUnauthorized)
		case http.StatusForbidden:
			if resp.Header.Get("X-RateLimit-Remaining") == "0" {
				return fmt.Errorf("%w: GitHub API rate limit exceeded", ErrRateLimited)
			}
			return fmt.Errorf("%w: access forbidden", ErrUnauthorized)
		}
	}
	return fmt.Errorf("failed to fetch repository %s: %w", ref, err)
}
