package stream

import "testing"

func TestHandleTradePayload(t *testing.T) {
	payload := []byte(`[{"T":"t","S":"AAPL","i":1,"x":"V","p":187.23,"s":100,"t":"2024-01-05T15:04:05Z"},` +
		`{"T":"t","S":"MSFT","i":2,"x":"V","p":402.11,"s":50,"t":"2024-01-05T15:04:05Z"}]`)

	prices := make(chan float64, 10)
	handle(payload, "AAPL", prices)

	select {
	case p := <-prices:
		if p != 187.23 {
			t.Errorf("price = %v, want 187.23", p)
		}
	default:
		t.Fatal("expected one trade price for AAPL")
	}

	select {
	case p := <-prices:
		t.Errorf("unexpected extra price %v, other symbols must be skipped", p)
	default:
	}
}

func TestHandleIgnoresControlMessages(t *testing.T) {
	payloads := [][]byte{
		[]byte(`[{"T":"success","msg":"connected"}]`),
		[]byte(`[{"T":"subscription","trades":["AAPL"]}]`),
		[]byte(`[{"T":"q","S":"AAPL","bp":187.22,"ap":187.24}]`),
		[]byte(`not json at all`),
	}

	prices := make(chan float64, 10)
	for _, payload := range payloads {
		handle(payload, "AAPL", prices)
	}

	select {
	case p := <-prices:
		t.Errorf("unexpected price %v from control payloads", p)
	default:
	}
}

func TestSubscribeMessages(t *testing.T) {
	msgs := subscribeMessages("AAPL")
	if len(msgs) != 2 {
		t.Fatalf("expected auth + subscribe, got %d messages", len(msgs))
	}
	if got := string(msgs[1]); got != `{"action":"subscribe","trades":["AAPL"]}` {
		t.Errorf("subscribe payload = %s", got)
	}
}
