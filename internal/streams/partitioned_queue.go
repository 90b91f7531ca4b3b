package streams

import (
	"context"
	"encoding/binary"
	"hash/fnv"
)

// PartitionedQueue fans messages out to a fixed set of buffered lanes. Messages with the
// same partition key always share a lane.
type PartitionedQueue[T any] struct {
	partitions []chan T
}

const (
	defaultNumPartitions = 4
	defaultBuffer        = 64
)

func newPartitionedQueue[T any](numPartitions, buffer int) *PartitionedQueue[T] {
	if numPartitions < 1 {
		numPartitions = 1
	}
	channels := make([]chan T, numPartitions)
	for i := range channels {
		channels[i] = make(chan T, buffer)
	}
	return &PartitionedQueue[T]{partitions: channels}
}

func NewPartitionedQueue[T any]() *PartitionedQueue[T] {
	return newPartitionedQueue[T](defaultNumPartitions, defaultBuffer)
}

func (queue *PartitionedQueue[T]) PartitionCount() int { return len(queue.partitions) }

// Publish blocks while the target lane is full, until ctx is done.
func (queue *PartitionedQueue[T]) Publish(ctx context.Context, partitionKey string, msg T) error {
	idx := partitionIndex(partitionKey, len(queue.partitions))
	select {
	case queue.partitions[idx] <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (queue *PartitionedQueue[T]) partition(idx int) <-chan T {
	return queue.partitions[idx]
}

func partitionIndex(key string, n int) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(key))
	sum := hash.Sum(nil)
	v := binary.BigEndian.Uint32(sum)
	return int(v % uint32(n))
}
