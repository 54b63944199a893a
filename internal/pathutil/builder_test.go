package pathutil

import "testing"

func TestPointerBuilder_Basic(t *testing.T) {
	p := &PointerBuilder{}
	p.Push("users")
	p.Push("name")

	got := p.String()
	want := "/users/name"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPointerBuilder_WithIndex(t *testing.T) {
	p := &PointerBuilder{}
	p.Push("items")
	p.PushIndex(0)
	p.Push("tags")

	got := p.String()
	want := "/items/0/tags"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPointerBuilder_Escapes(t *testing.T) {
	p := &PointerBuilder{}
	p.Push("a/b")
	p.Push("m~n")

	got := p.String()
	want := "/a~1b/m~0n"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if len(got) != p.length {
		t.Errorf("precomputed length = %d, want %d", p.length, len(got))
	}
}

func TestPointerBuilder_PushPop(t *testing.T) {
	p := &PointerBuilder{}
	p.Push("a")
	p.Push("b~c")
	p.Pop()
	p.Push("c")

	got := p.String()
	want := "/a/c"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
}

func TestPointerBuilder_EmptySegment(t *testing.T) {
	p := &PointerBuilder{}
	p.Push("")
	if got := p.String(); got != "/" {
		t.Errorf("String() = %q, want %q", got, "/")
	}
}

func TestPointerBuilder_PopEmpty(t *testing.T) {
	p := &PointerBuilder{}
	p.Pop() // Should not panic
	if got := p.String(); got != "" {
		t.Errorf("String() after Pop on empty = %q, want empty", got)
	}
}

func TestPointerBuilder_Reset(t *testing.T) {
	p := &PointerBuilder{}
	p.Push("a")
	p.Push("b")
	p.Reset()

	if got := p.String(); got != "" {
		t.Errorf("String() after Reset = %q, want empty", got)
	}

	p.Push("c")
	if got := p.String(); got != "/c" {
		t.Errorf("String() after Reset+Push = %q, want %q", got, "/c")
	}
}

func TestPool_GetPut(t *testing.T) {
	p := Get()
	if p == nil {
		t.Fatal("Get() returned nil")
	}

	p.Push("test")
	Put(p)

	// Get another - may or may not be same instance
	p2 := Get()
	if p2 == nil {
		t.Fatal("Get() returned nil after Put")
	}
	if p2.String() != "" {
		t.Errorf("Get() returned non-empty PointerBuilder: %q", p2.String())
	}
	Put(p2)
	Put(nil) // Should not panic
}
