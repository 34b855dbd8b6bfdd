// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package robot

// CallStack holds the return pointers of pending band calls.
type CallStack struct {
	Data []Pointer
}

func (s *CallStack) Push(ip Pointer) {
	s.Data = append(s.Data, ip)
}

func (s *CallStack) Pop() (ip Pointer, ok bool) {
	ip, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *CallStack) Empty() bool {
	return len(s.Data) == 0
}

func (s *CallStack) Depth() int {
	return len(s.Data)
}

func (s *CallStack) Peek() (ip Pointer, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

// Reset empties the stack, keeping its storage for the next run.
func (s *CallStack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
