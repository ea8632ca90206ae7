package ui

import (
	"testing"
	"time"
)

func TestScheduler_FireAndCancel(t *testing.T) {
	s := NewScheduler()
	var ran []int

	s.Schedule(time.Second, func() { ran = append(ran, 0) })
	cancel := s.Schedule(time.Second, func() { ran = append(ran, 1) })
	cancel()

	s.Fire(0)
	s.Fire(1)
	s.Fire(0) // already ran

	if len(ran) != 1 || ran[0] != 0 {
		t.Errorf("Expected only task 0 to run once, got %v", ran)
	}
}

func TestScheduler_Flush(t *testing.T) {
	s := NewScheduler()
	if s.Flush() != nil {
		t.Error("Flush with nothing scheduled should return nil")
	}

	s.Schedule(time.Millisecond, func() {})
	if s.Flush() == nil {
		t.Error("Expected a command for the scheduled task")
	}
	if s.Flush() != nil {
		t.Error("Flush should drain the queue")
	}
}

func TestScheduler_TickDeliversID(t *testing.T) {
	s := NewScheduler()
	s.Schedule(time.Millisecond, func() {})
	s.Schedule(time.Millisecond, func() {})
	s.Flush()

	s.Schedule(time.Millisecond, func() {})
	cmd := s.Flush()
	msg, ok := cmd().(fireMsg)
	if !ok {
		t.Fatalf("Expected fireMsg, got %T", cmd())
	}
	if msg.id != 2 {
		t.Errorf("Expected id 2, got %d", msg.id)
	}
}
