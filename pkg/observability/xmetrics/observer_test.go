package xmetrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recordingObserver 记录收到的决策，用于验证 Observe 的分发行为。
type recordingObserver struct {
	decisions []Decision
	ctxs      []context.Context
}

func (r *recordingObserver) ObserveDecision(ctx context.Context, d Decision) {
	r.ctxs = append(r.ctxs, ctx)
	r.decisions = append(r.decisions, d)
}

func TestObserve_NilObserverIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		Observe(context.Background(), nil, Decision{Verdict: VerdictAllowed})
	})
}

func TestObserve_NilContextNormalized(t *testing.T) {
	rec := &recordingObserver{}
	Observe(nil, rec, Decision{Verdict: VerdictDenied, Reason: "unsafe_reserved"}) //nolint:staticcheck // 有意传入 nil ctx 验证兜底

	assert.Len(t, rec.ctxs, 1)
	assert.NotNil(t, rec.ctxs[0])
	assert.Equal(t, VerdictDenied, rec.decisions[0].Verdict)
}

func TestObserve_Delegates(t *testing.T) {
	rec := &recordingObserver{}
	d := Decision{
		Verdict:  VerdictAllowed,
		Scheme:   "https",
		Duration: 3 * time.Millisecond,
	}
	Observe(context.Background(), rec, d)

	assert.Equal(t, []Decision{d}, rec.decisions)
}

func TestNoopObserver(t *testing.T) {
	assert.NotPanics(t, func() {
		NoopObserver{}.ObserveDecision(context.Background(), Decision{})
	})
}
