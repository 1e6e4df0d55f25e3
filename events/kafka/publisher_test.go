package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/payment-ledger/events"
)

func TestPublish_BoundedByTimeout(t *testing.T) {
	// 10.255.255.1 is unroutable, so the write can only end via the
	// publisher's deadline.
	publisher := NewPublisherWithTimeout([]string{"10.255.255.1:9092"}, 100*time.Millisecond)

	start := time.Now()
	err := publisher.Publish(events.TopicTransferCompleted, events.TransferCompleted{TransactionID: "txn-1"})

	assert.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second, "publish returns once the deadline expires")
}

func TestPublish_UnencodableEvent(t *testing.T) {
	publisher := NewPublisher([]string{"localhost:9092"})

	err := publisher.Publish(events.TopicTransferCompleted, make(chan int))

	assert.Error(t, err)
}
