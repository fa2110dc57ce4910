package todo

import (
	"fmt"
	"testing"
	"time"
)

func benchList(n int) List {
	l := make(List, 0, n)
	for i := 0; i < n; i++ {
		task, _ := NewTask(fmt.Sprintf("Task %d", i), t0.Add(time.Duration(i)*time.Minute))
		task.Done = i%3 == 0
		l = append(l, task)
	}
	return l
}

// BenchmarkEncode benchmarks serializing 100 tasks.
func BenchmarkEncode(b *testing.B) {
	l := benchList(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Encode(l); err != nil {
			b.Fatalf("Encode failed: %v", err)
		}
	}
}

// BenchmarkDecode benchmarks parsing and validating 100 tasks.
func BenchmarkDecode(b *testing.B) {
	raw, err := Encode(benchList(100))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(raw); err != nil {
			b.Fatalf("Decode failed: %v", err)
		}
	}
}
