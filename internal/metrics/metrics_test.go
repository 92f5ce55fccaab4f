package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCountersAppearInExposition(t *testing.T) {
	MulOps.WithLabelValues("basic").Inc()
	MulOps.WithLabelValues("karatsuba").Inc()
	DivOps.WithLabelValues("knuth").Inc()
	KernelImpl.WithLabelValues("portable").Set(1)

	srv := httptest.NewServer(Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("scrape failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("scrape status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}

	for _, metric := range []string{
		"mpint_multiplications_total",
		"mpint_divisions_total",
		"mpint_kernel_implementation",
	} {
		if !strings.Contains(string(body), metric) {
			t.Errorf("exposition is missing %s", metric)
		}
	}
}

func TestCounterIncrements(t *testing.T) {
	before := testutil.ToFloat64(DivOps.WithLabelValues("single_word"))
	DivOps.WithLabelValues("single_word").Inc()
	after := testutil.ToFloat64(DivOps.WithLabelValues("single_word"))
	if after != before+1 {
		t.Errorf("counter went from %v to %v", before, after)
	}
}
