// Implements the PulseQueue, which holds the pulses of one press that are
// still in flight. Pulses are enqueued when a module emits and delivered in
// the order they were emitted.

package sim

// PulseQueue is a FIFO queue of pending pulses.
// Delivery order is breadth-first: a conjunction's view of its inputs within a
// press depends on it, so the queue must never be reordered.
type PulseQueue struct {
	queue []Pulse
	head  int
}

// Enqueue adds a pulse to the back of the queue.
func (pq *PulseQueue) Enqueue(p Pulse) {
	pq.queue = append(pq.queue, p)
}

// Len returns the number of pulses in the queue.
func (pq *PulseQueue) Len() int {
	return len(pq.queue) - pq.head
}

// Dequeue removes and returns the pulse at the front of the queue.
// The second result is false if the queue is empty.
func (pq *PulseQueue) Dequeue() (Pulse, bool) {
	if pq.head == len(pq.queue) {
		return Pulse{}, false
	}
	p := pq.queue[pq.head]
	pq.head++
	if pq.head == len(pq.queue) {
		// Drained: reuse the backing array for the next press.
		pq.queue = pq.queue[:0]
		pq.head = 0
	}
	return p, true
}
