package obs

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"
)

func TestTimeLogsRequestIDAndError(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)

	ctx := WithRequestID(context.Background(), "abc-123")

	err := errors.New("boom")
	Time(ctx, "optimizer.Submit")(&err)

	out := buf.String()
	if !strings.Contains(out, "req_id=abc-123") {
		t.Fatalf("missing request id in %q", out)
	}
	if !strings.Contains(out, "op=optimizer.Submit") {
		t.Fatalf("missing op in %q", out)
	}
	if !strings.Contains(out, "err=boom") {
		t.Fatalf("missing error in %q", out)
	}
}

func TestRequestIDMissing(t *testing.T) {
	if got := RequestID(context.Background()); got != "" {
		t.Fatalf("request id = %q, want empty", got)
	}
}
