package tapes

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tape := New(Options{})
	if tape.Pointer() != 15_000 {
		t.Fatalf("got %v", tape.Pointer())
	}
	if tape.Len() != 30_000 {
		t.Fatalf("got %v", tape.Len())
	}
	if !tape.IsZero() {
		t.Fatal()
	}
}

func TestNewOptions(t *testing.T) {
	tape := New(Options{
		Size:   10,
		Origin: 3,
		Growth: 2,
	})
	if tape.Pointer() != 3 || tape.Origin() != 3 {
		t.Fatalf("got %v", tape.Pointer())
	}
	for range 6 {
		tape.MoveRight()
	}
	if tape.Len() != 10 {
		t.Fatalf("got %v", tape.Len())
	}
	tape.MoveRight()
	if tape.Len() != 12 {
		t.Fatalf("got %v", tape.Len())
	}
}

func TestNewBadOrigin(t *testing.T) {
	defer func() {
		if p := recover(); p == nil {
			t.Fatal("should panic")
		}
	}()
	New(Options{
		Size:   10,
		Origin: 10,
	})
}

func TestIncrementDecrement(t *testing.T) {
	tape := New(Options{})
	for range 50 {
		tape.Increment()
	}
	if tape.Read() != '2' {
		t.Fatalf("got %v", tape.Read())
	}
	for range 16 {
		tape.Increment()
	}
	if tape.Read() != 'B' {
		t.Fatalf("got %v", tape.Read())
	}
	for range 5 {
		tape.Decrement()
	}
	if tape.Read() != '=' {
		t.Fatalf("got %v", tape.Read())
	}
}

func TestWraparound(t *testing.T) {
	tape := New(Options{})
	for v := range 256 {
		tape.Write(byte(v))
		for range 256 {
			tape.Increment()
		}
		if tape.Read() != byte(v) {
			t.Fatalf("increment: got %v, want %v", tape.Read(), v)
		}
		for range 256 {
			tape.Decrement()
		}
		if tape.Read() != byte(v) {
			t.Fatalf("decrement: got %v, want %v", tape.Read(), v)
		}
	}

	tape.Write(255)
	tape.Increment()
	if !tape.IsZero() {
		t.Fatalf("got %v", tape.Read())
	}
	tape.Decrement()
	if tape.Read() != 255 {
		t.Fatalf("got %v", tape.Read())
	}
}

func TestMove(t *testing.T) {
	tape := New(Options{})
	for range 50 {
		tape.Increment()
	}
	tape.MoveRight()
	if !tape.IsZero() {
		t.Fatal()
	}
	for range 66 {
		tape.Increment()
	}
	if err := tape.MoveLeft(); err != nil {
		t.Fatal(err)
	}
	if tape.Read() != '2' {
		t.Fatalf("got %v", tape.Read())
	}
	tape.MoveRight()
	if tape.Read() != 'B' {
		t.Fatalf("got %v", tape.Read())
	}
	tape.MoveRight()
	if !tape.IsZero() {
		t.Fatal()
	}
}

func TestWrite(t *testing.T) {
	tape := New(Options{})
	tape.Write(',')
	for range 44 {
		tape.Decrement()
	}
	if !tape.IsZero() {
		t.Fatalf("got %v", tape.Read())
	}
}

func TestExtend(t *testing.T) {
	tape := New(Options{})
	for range 15_001 {
		tape.MoveRight()
	}
	if tape.Len() != 35_000 {
		t.Fatalf("got %v", tape.Len())
	}
	if tape.Pointer() != 30_001 {
		t.Fatalf("got %v", tape.Pointer())
	}
}

func TestExtendFromRightmostCell(t *testing.T) {
	tape := New(Options{})
	for tape.Pointer() < tape.Len()-1 {
		tape.MoveRight()
	}
	if tape.Len() != 30_000 {
		t.Fatalf("got %v", tape.Len())
	}
	tape.Write(7)
	tape.MoveRight()
	if tape.Len() != 35_000 {
		t.Fatalf("got %v", tape.Len())
	}
	for i := 30_000; i < 35_000; i++ {
		if v, ok := tape.Peek(i - tape.Pointer()); !ok || v != 0 {
			t.Fatalf("cell %d: got %v %v", i, v, ok)
		}
	}
	if err := tape.MoveLeft(); err != nil {
		t.Fatal(err)
	}
	if tape.Read() != 7 {
		t.Fatalf("got %v", tape.Read())
	}
}

func TestMoveLeftBound(t *testing.T) {
	tape := New(Options{
		Size:   4,
		Origin: 1,
	})
	if err := tape.MoveLeft(); err != nil {
		t.Fatal(err)
	}
	err := tape.MoveLeft()
	if !errors.Is(err, ErrLeftBoundExceeded) {
		t.Fatalf("got %v", err)
	}
	if tape.Pointer() != 0 {
		t.Fatalf("got %v", tape.Pointer())
	}
}

func TestPeek(t *testing.T) {
	tape := New(Options{
		Size:   4,
		Origin: 1,
	})
	tape.MoveRight()
	tape.Write(9)
	if err := tape.MoveLeft(); err != nil {
		t.Fatal(err)
	}
	if v, ok := tape.Peek(1); !ok || v != 9 {
		t.Fatalf("got %v %v", v, ok)
	}
	if _, ok := tape.Peek(-2); ok {
		t.Fatal()
	}
	if _, ok := tape.Peek(3); ok {
		t.Fatal()
	}
}
