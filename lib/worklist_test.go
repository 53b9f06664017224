package lib

import "testing"

func TestWorklistPushPop(t *testing.T) {
	w := worklist{}
	if !w.Empty() {
		t.Errorf("Expected worklist to be initially empty")
	}
	w.Push(1)
	w.Push(3)
	w.Push(5)
	output := []triangleIndex{w.Pop(), w.Pop()}
	w.Push(7)
	w.Push(9)
	output = append(output, w.Pop(), w.Pop(), w.Pop())
	expected := []triangleIndex{5, 3, 9, 7, 1}
	for i := range expected {
		if output[i] != expected[i] {
			t.Errorf("Expected %d-th value to be %d, got %d", i, expected[i], output[i])
		}
	}
	if !w.Empty() {
		t.Errorf("Expected worklist to be empty at the end")
	}
	w.Push(2)
	w.Reset()
	if !w.Empty() {
		t.Errorf("Expected worklist to be empty after reset")
	}
}

func TestWorklistEmpty(t *testing.T) {
	w := worklist{}
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Excepted Pop on empty worklist to cause panic")
		}
	}()
	w.Pop()
}
