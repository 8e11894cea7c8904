package bench

import (
	"context"
	"time"

	"github.com/samber/lo"

	lipi "github.com/jamesainslie/go-lipi"
	"github.com/jamesainslie/go-lipi/translit"
)

// Metrics holds evaluation results for one table.
type Metrics struct {
	Lines           int
	RoundTripLines  int // lines where T(T(x)) equals the normalized x
	Tokens          int
	MappedTokens    int // tokens found in the table
	RoundTripTokens int // tokens whose mapping maps back, unmapped tokens included
	Bytes           int
	Duration        time.Duration
}

// Add accumulates o into m.
func (m *Metrics) Add(o Metrics) {
	m.Lines += o.Lines
	m.RoundTripLines += o.RoundTripLines
	m.Tokens += o.Tokens
	m.MappedTokens += o.MappedTokens
	m.RoundTripTokens += o.RoundTripTokens
	m.Bytes += o.Bytes
	m.Duration += o.Duration
}

// Coverage is the share of tokens that hit the table.
func (m Metrics) Coverage() float64 {
	return ratio(m.MappedTokens, m.Tokens)
}

// LineFidelity is the share of lines that survive a round trip.
func (m Metrics) LineFidelity() float64 {
	return ratio(m.RoundTripLines, m.Lines)
}

// TokenFidelity is the share of tokens that survive a round trip.
func (m Metrics) TokenFidelity() float64 {
	return ratio(m.RoundTripTokens, m.Tokens)
}

// Throughput returns input bytes per second over both passes.
func (m Metrics) Throughput() float64 {
	if m.Duration <= 0 {
		return 0
	}
	return float64(m.Bytes) / m.Duration.Seconds()
}

func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}

// EvaluateTokens counts the tokens of text and how many of them are mapped
// and survive a round trip through table.
func EvaluateTokens(table *translit.Table, text string) (tokens, mapped, roundTrip int) {
	for tok := range table.Tokens(table.Normalize(text)) {
		tokens++
		out, ok := table.Lookup(tok.Text)
		if !ok {
			roundTrip++
			continue
		}
		mapped++
		if back, ok := table.Lookup(out); ok && back == tok.Text {
			roundTrip++
		}
	}
	return tokens, mapped, roundTrip
}

// EvaluateDocument transliterates every line of doc forward and back and
// reports how much survived.
func EvaluateDocument(ctx context.Context, tr *lipi.Transliterator, doc *Document) (Metrics, error) {
	texts := doc.Texts()
	table := tr.Table()

	start := time.Now()
	forward, err := tr.TransliterateAll(ctx, texts)
	if err != nil {
		return Metrics{}, err
	}
	back, err := tr.TransliterateAll(ctx, forward)
	if err != nil {
		return Metrics{}, err
	}

	m := Metrics{
		Lines:    len(texts),
		Bytes:    lo.SumBy(texts, func(s string) int { return len(s) }),
		Duration: time.Since(start),
	}

	for i, text := range texts {
		if back[i] == table.Normalize(text) {
			m.RoundTripLines++
		}
		tokens, mapped, roundTrip := EvaluateTokens(table, text)
		m.Tokens += tokens
		m.MappedTokens += mapped
		m.RoundTripTokens += roundTrip
	}

	return m, nil
}
