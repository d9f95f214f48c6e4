// Command evefetch calls an EVE API method, converts the XML response into a
// nested key-value document, and prints it as JSON. It can also persist a
// rowset from the response into SQL storage.
//
// Example usage:
//
//	# Server status, pretty-printed.
//	evefetch -method server/ServerStatus -pretty
//
//	# Account characters with credentials, storing the characters rowset.
//	evefetch -config profile.json -method account/Characters \
//	    -store eveapi.result.characters
//
//	# Any method by raw path, keeping the original XML.
//	evefetch -method /eve/CharacterInfo -param characterID=499939401 \
//	    -raw-out response.xml
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"eveapi/internal/config"
	"eveapi/internal/convert"
	"eveapi/internal/evetime"
	"eveapi/internal/metrics"
	"eveapi/internal/metrics/datadog"
	"eveapi/internal/metrics/prompush"
	"eveapi/internal/storage"
	"eveapi/internal/transport"

	// register all backends with the storage factory.
	_ "eveapi/internal/storage/all"
)

const jobName = "evefetch"

// paramFlags collects repeated -param key=value flags.
type paramFlags map[string]string

func (p paramFlags) String() string {
	parts := make([]string, 0, len(p))
	for k, v := range p {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

func (p paramFlags) Set(s string) error {
	k, v, ok := strings.Cut(s, "=")
	if !ok || k == "" {
		return fmt.Errorf("expected key=value, got %q", s)
	}
	p[k] = v
	return nil
}

func main() {
	var (
		methodFlg  string
		cfgPath    string
		hostFlg    string
		plainHTTP  bool
		timeoutFlg time.Duration
		pretty     bool
		rawOut     string
		storePath  string
		tableFlg   string

		metricsBackendFlg string
		pushGatewayURLFlg string
		statsdAddrFlg     string

		params = paramFlags{}
	)

	flag.StringVar(&methodFlg, "method", "", `method catalog name (e.g. "server/ServerStatus") or raw path (e.g. "/server/ServerStatus")`)
	flag.Var(params, "param", "request parameter key=value (repeatable; overrides profile params)")
	flag.StringVar(&cfgPath, "config", "", "profile JSON path (optional)")
	flag.StringVar(&hostFlg, "host", "", "API host (overrides profile)")
	flag.BoolVar(&plainHTTP, "http", false, "use plain HTTP instead of HTTPS")
	flag.DurationVar(&timeoutFlg, "timeout", 0, "per-request timeout (overrides profile)")
	flag.BoolVar(&pretty, "pretty", false, "pretty-print JSON output")
	flag.StringVar(&rawOut, "raw-out", "", "also write the raw XML response to this file")
	flag.StringVar(&storePath, "store", "", `dotted rowset path to persist (e.g. "eveapi.result.characters")`)
	flag.StringVar(&tableFlg, "table", "", "destination table name (defaults to the rowset name)")
	flag.StringVar(&metricsBackendFlg, "metrics-backend", "", "metrics backend (none, pushgateway, datadog; overrides profile)")
	flag.StringVar(&pushGatewayURLFlg, "pushgateway-url", "", "Pushgateway base URL (overrides profile)")
	flag.StringVar(&statsdAddrFlg, "statsd-addr", "", "DogStatsD address (overrides profile)")
	verbose := flag.Bool("v", false, "enable verbose logs")
	flag.Parse()

	if methodFlg == "" {
		fatalf("missing -method")
	}

	profile := config.Profile{Params: map[string]string{}}
	if cfgPath != "" {
		p, err := config.Load(cfgPath)
		if err != nil {
			fatalf("%v", err)
		}
		profile = p

		hasError := false
		for _, iss := range config.Validate(profile) {
			fmt.Fprintf(os.Stderr, "%s: %s: %s\n", iss.Severity, iss.Path, iss.Message)
			if iss.Severity == config.SeverityError {
				hasError = true
			}
		}
		if hasError {
			log.Printf("profile is invalid: %v", cfgPath)
			os.Exit(1)
		}
	}

	setupMetrics(profile, metricsBackendFlg, pushGatewayURLFlg, statsdAddrFlg, *verbose)
	defer func() {
		if err := metrics.Flush(); err != nil {
			log.Printf("metrics: flush error: %v", err)
		}
	}()

	method, err := resolveMethod(methodFlg)
	if err != nil {
		fatalf("%v", err)
	}

	values := url.Values{}
	for k, v := range profile.Params {
		values.Set(k, v)
	}
	for k, v := range params {
		values.Set(k, v)
	}

	client := transport.NewClient(transport.Config{
		Host:      firstNonEmpty(hostFlg, profile.API.Host),
		PlainHTTP: plainHTTP || profile.API.PlainHTTP,
		Timeout:   resolveTimeout(timeoutFlg, profile.API.TimeoutSeconds),
		Job:       jobName,
	})

	ctx := context.Background()
	start := time.Now()

	doc, raw, err := client.FetchRaw(ctx, method, values)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if *verbose {
		log.Printf("fetched %s in %s (%d bytes)", method.Path, time.Since(start).Truncate(time.Millisecond), len(raw))
		logCacheWindow(doc)
	}

	if rawOut != "" {
		if err := os.WriteFile(rawOut, raw, 0o644); err != nil {
			fatalf("write raw XML: %v", err)
		}
	}

	if storePath != "" {
		if err := storeRowset(ctx, profile, doc, storePath, tableFlg, *verbose); err != nil {
			log.Fatalf("%v", err)
		}
	}

	out, err := marshalDoc(doc, pretty)
	if err != nil {
		fatalf("encode result: %v", err)
	}
	fmt.Println(string(out))
}

// resolveMethod accepts either a catalog name ("server/ServerStatus") or a
// raw method path ("/server/ServerStatus").
func resolveMethod(s string) (transport.Method, error) {
	if strings.HasPrefix(s, "/") {
		return transport.Method{Path: s}, nil
	}
	m, ok := transport.Lookup(s)
	if !ok {
		return transport.Method{}, fmt.Errorf("unknown method %q; pass a raw /group/Name path for methods outside the catalog", s)
	}
	return m, nil
}

func resolveTimeout(flagValue time.Duration, profileSeconds int) time.Duration {
	if flagValue > 0 {
		return flagValue
	}
	if profileSeconds > 0 {
		return time.Duration(profileSeconds) * time.Second
	}
	return 0 // client default
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func marshalDoc(doc any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

// setupMetrics installs the metrics backend selected by flags, then profile,
// then default (none). The nop backend stays installed on any failure.
func setupMetrics(p config.Profile, backendFlg, gwURLFlg, statsdFlg string, verbose bool) {
	backendName := firstNonEmpty(backendFlg, p.Metrics.Backend)
	switch backendName {
	case "pushgateway":
		gwURL := firstNonEmpty(gwURLFlg, p.Metrics.PushgatewayURL, "http://localhost:9091")
		b, err := prompush.NewBackend(jobName, gwURL)
		if err != nil {
			log.Printf("metrics: failed to init prom push backend: %v; using nop", err)
			return
		}
		if verbose {
			log.Printf("metrics: backend=pushgateway url=%v", gwURL)
		}
		metrics.SetBackend(b)

	case "datadog":
		addr := firstNonEmpty(statsdFlg, p.Metrics.StatsdAddr)
		b, err := datadog.NewBackend(datadog.Config{Addr: addr, Namespace: "eveapi."})
		if err != nil {
			log.Printf("metrics: failed to init datadog backend: %v; using nop", err)
			return
		}
		if verbose {
			log.Printf("metrics: backend=datadog addr=%v", addr)
		}
		metrics.SetBackend(b)

	case "", "none":
		// metrics disabled; nop backend remains

	default:
		log.Printf("metrics: unknown backend %q; metrics disabled", backendName)
	}
}

// logCacheWindow logs the response's cache window when both timestamps are
// present and parseable.
func logCacheWindow(doc convert.Map) {
	currentRaw, ok1 := doc.Text("eveapi", "currentTime")
	cachedRaw, ok2 := doc.Text("eveapi", "cachedUntil")
	if !ok1 || !ok2 {
		return
	}
	current, ok, err := evetime.Parse(currentRaw)
	if !ok || err != nil {
		return
	}
	cached, ok, err := evetime.Parse(cachedRaw)
	if !ok || err != nil {
		return
	}
	log.Printf("cached until %s (%s)", cachedRaw, cached.Sub(current))
}

// storeRowset extracts the rowset at dotted path from doc and upserts it via
// the profile's storage backend.
func storeRowset(ctx context.Context, p config.Profile, doc convert.Map, path, tableOverride string, verbose bool) error {
	if p.Storage.Kind == "" {
		return fmt.Errorf("-store requires a profile with a storage block")
	}

	rs, err := storage.ExtractRowset(doc, strings.Split(path, ".")...)
	if err != nil {
		return err
	}
	metrics.RecordRows(jobName, "converted", int64(len(rs.Rows)))

	table := firstNonEmpty(tableOverride, p.Storage.Table, rs.Name)
	repo, closeFn, err := storage.Open(ctx, p.Storage.Kind, storage.Config{
		DSN:     p.Storage.DSN,
		Table:   table,
		Columns: rs.Columns,
		Key:     rs.KeyAttr,
	})
	if err != nil {
		return err
	}
	defer closeFn()

	if err := repo.EnsureTable(ctx); err != nil {
		return err
	}
	n, err := repo.UpsertRows(ctx, rs.Rows)
	if err != nil {
		return err
	}
	metrics.RecordRows(jobName, "stored", n)
	if verbose {
		log.Printf("stored %d rows into %s.%s (key=%s)", n, p.Storage.Kind, table, rs.KeyAttr)
	}
	return nil
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
