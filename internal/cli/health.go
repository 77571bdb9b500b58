package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// EndpointCheck is the result of one health endpoint request
type EndpointCheck struct {
	URL        string `json:"url"`
	Status     int    `json:"status"`
	DurationMS int64  `json:"duration_ms"`
	OK         bool   `json:"ok"`
	Error      string `json:"error,omitempty"`
}

// NewHealthCommand creates the health command.
func NewHealthCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		baseURL string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check a running server's health endpoints",
		Long: `Request /healthz and /readyz from a running server.

Defaults to the local server on PORT. Exits with status 1 when an endpoint
does not answer 200.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if baseURL == "" {
				baseURL = fmt.Sprintf(LocalURLPattern, rootOpts.Config.Port)
			}
			return runHealth(rootOpts, baseURL, timeout, cmd)
		},
	}

	cmd.Flags().StringVar(&baseURL, FlagURL, "", "server base URL (default http://localhost:$PORT)")
	cmd.Flags().DurationVar(&timeout, FlagTimeout, DefaultHealthTimeout, "per-request timeout")

	return cmd
}

func runHealth(opts *RootOptions, baseURL string, timeout time.Duration, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)
	client := &http.Client{Timeout: timeout}
	baseURL = strings.TrimRight(baseURL, "/")

	checks := make([]EndpointCheck, 0, len(HealthPaths))
	healthy := true
	for _, path := range HealthPaths {
		check := checkEndpoint(cmd.Context(), client, baseURL+path)
		healthy = healthy && check.OK
		checks = append(checks, check)
	}

	render := func(p *Printer) {
		p.Header(fmt.Sprintf("Health Check (%s)", baseURL))
		for _, check := range checks {
			duration := time.Duration(check.DurationMS) * time.Millisecond
			switch {
			case !check.OK:
				p.Error("%s: %s", check.URL, check.Error)
			case duration > SlowResponseAfter:
				p.Warning("%s: slow response time (%v)", check.URL, duration)
			default:
				p.Success("%s: ok (response time: %v)", check.URL, duration)
			}
		}
	}

	if !healthy {
		if opts.Format == FormatText {
			render(NewPrinter(cmd.OutOrStdout()))
		}
		return formatter.Fail(ExitFailure, ErrMsgHealthFailed, nil, checks)
	}
	return formatter.Result(checks, render)
}

func checkEndpoint(ctx context.Context, client *http.Client, url string) (check EndpointCheck) {
	check.URL = url
	start := time.Now()
	defer func() { check.DurationMS = time.Since(start).Milliseconds() }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		check.Error = err.Error()
		return check
	}
	resp, err := client.Do(req)
	if err != nil {
		check.Error = err.Error()
		return check
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	check.Status = resp.StatusCode
	if resp.StatusCode != http.StatusOK {
		check.Error = fmt.Sprintf("%s %d", ErrMsgUnexpectedStatus, resp.StatusCode)
		return check
	}
	check.OK = true
	return check
}
