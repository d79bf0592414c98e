package cpu

// Queue is an unbounded FIFO of machine words. The engine drains the input
// queue and fills the output queue; clients do the reverse.
type Queue struct {
	Data []int64
}

func (q *Queue) Push(value int64) {
	q.Data = append(q.Data, value)
}

func (q *Queue) Pop() (value int64, ok bool) {
	value, ok = q.Peek()
	if ok {
		q.Data = q.Data[1:]
	}
	return
}

// PopN removes and returns the oldest count values, or nothing at all when
// fewer are queued. Fixed-size record protocols rely on the all-or-nothing
// behavior.
func (q *Queue) PopN(count int) (values []int64, ok bool) {
	if len(q.Data) < count {
		return
	}

	values = append(values, q.Data[:count]...)
	q.Data = q.Data[count:]
	ok = true

	return
}

func (q *Queue) Empty() bool {
	return len(q.Data) == 0
}

func (q *Queue) Len() int {
	return len(q.Data)
}

func (q *Queue) Peek() (value int64, ok bool) {
	if q.Empty() {
		return
	}

	return q.Data[0], true
}

func (q *Queue) Reset() {
	if len(q.Data) > 0 {
		q.Data = q.Data[:0]
	}
}
