//go:build unit

package feed

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compras-service/tests/common/builder"
)

type fakeWriter struct {
	written chan kafka.Message
	err     error
}

func newFakeWriter() *fakeWriter {
	return &fakeWriter{written: make(chan kafka.Message, 4)}
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	for _, msg := range msgs {
		f.written <- msg
	}
	return f.err
}

func (f *fakeWriter) Close() error { return nil }

func awaitMessage(t *testing.T, w *fakeWriter) kafka.Message {
	t.Helper()
	select {
	case msg := <-w.written:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("no message was published")
		return kafka.Message{}
	}
}

func TestPublishInsert(t *testing.T) {
	writer := newFakeWriter()
	p := &Publisher{writer: writer, timeout: time.Second, logger: discardLogger()}

	snap := builder.NewCompraBuilder().BuildSnapshot()
	p.PublishInsert(context.Background(), snap)

	msg := awaitMessage(t, writer)
	assert.Equal(t, "tenant-a#maria", string(msg.Key), "partition key follows the store's composite key")

	ev, err := decodeEvent(msg.Value)
	require.NoError(t, err)
	assert.Equal(t, EventInsert, ev.Kind)
	assert.Nil(t, ev.Before)
	assert.False(t, ev.OccurredAt.IsZero())

	if diff := cmp.Diff(snapshotFrom(snap), ev.After); diff != "" {
		t.Errorf("published snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestPublishInsert_SurvivesCanceledRequest(t *testing.T) {
	writer := newFakeWriter()
	p := &Publisher{writer: writer, timeout: time.Second, logger: discardLogger()}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The record is already committed; a dead request context must not
	// drop the event.
	p.PublishInsert(ctx, builder.NewCompraBuilder().BuildSnapshot())
	awaitMessage(t, writer)
}

func TestPublishInsert_WriteFailureIsSwallowed(t *testing.T) {
	writer := newFakeWriter()
	writer.err = assert.AnError
	p := &Publisher{writer: writer, timeout: time.Second, logger: discardLogger()}

	p.PublishInsert(context.Background(), builder.NewCompraBuilder().BuildSnapshot())
	awaitMessage(t, writer)
}
