package recording

import (
	"errors"
	"testing"

	"github.com/gogpu/ggplot/paint"
)

// mockBackend is a backend that logs every call for testing.
type mockBackend struct {
	name       string
	beginCalls int
	endCalls   int
	width      float64
	height     float64
	calls      []string
	texts      []string
	groups     []string
}

func newMockBackend(name string) *mockBackend {
	return &mockBackend{name: name}
}

func (b *mockBackend) Begin(width, height float64) error {
	b.beginCalls++
	b.width = width
	b.height = height
	return nil
}

func (b *mockBackend) End() error {
	b.endCalls++
	return nil
}

func (b *mockBackend) Save()    { b.calls = append(b.calls, "Save") }
func (b *mockBackend) Restore() { b.calls = append(b.calls, "Restore") }

func (b *mockBackend) SetClip(_ *paint.Path, _ FillRule) { b.calls = append(b.calls, "SetClip") }
func (b *mockBackend) ClearClip()                        { b.calls = append(b.calls, "ClearClip") }

func (b *mockBackend) BeginGroup(id string) {
	b.calls = append(b.calls, "BeginGroup")
	b.groups = append(b.groups, id)
}

func (b *mockBackend) EndGroup() { b.calls = append(b.calls, "EndGroup") }

func (b *mockBackend) FillPath(_ *paint.Path, _ Brush, _ FillRule) {
	b.calls = append(b.calls, "FillPath")
}

func (b *mockBackend) StrokePath(_ *paint.Path, _ Brush, _ Stroke) {
	b.calls = append(b.calls, "StrokePath")
}

func (b *mockBackend) DrawText(s string, _, _ float64, _ TextStyle, _ Brush) {
	b.calls = append(b.calls, "DrawText")
	b.texts = append(b.texts, s)
}

// isolate gives the test an empty registry and puts the real one back
// when it finishes.
func isolate(t *testing.T) {
	t.Helper()
	saved := formats
	formats = &registry{byName: make(map[string]Format)}
	t.Cleanup(func() { formats = saved })
}

func testFormat(name string, exts ...string) Format {
	return Format{
		Name:       name,
		Extensions: exts,
		New:        func() Backend { return newMockBackend(name) },
	}
}

func TestRegisterAndNewBackend(t *testing.T) {
	isolate(t)

	Register(testFormat("test"))

	backend, err := NewBackend("test")
	if err != nil {
		t.Fatalf("NewBackend failed: %v", err)
	}

	mock, ok := backend.(*mockBackend)
	if !ok {
		t.Fatal("backend is not a mockBackend")
	}
	if mock.name != "test" {
		t.Errorf("got name %q, want %q", mock.name, "test")
	}
}

func TestNewBackendUnknown(t *testing.T) {
	isolate(t)

	_, err := NewBackend("unknown")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name string
		f    Format
	}{
		{"nil factory", Format{Name: "nil"}},
		{"empty name", Format{New: func() Backend { return newMockBackend("") }}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			defer func() {
				if r := recover(); r == nil {
					t.Error("expected panic")
				}
			}()
			Register(tt.f)
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	isolate(t)

	Register(testFormat("dup"))

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for duplicate registration")
		}
	}()

	Register(testFormat("dup"))
}

func TestUnregister(t *testing.T) {
	isolate(t)

	Register(testFormat("temp"))
	if !IsRegistered("temp") {
		t.Fatal("temp should be registered")
	}

	Unregister("temp")
	if IsRegistered("temp") {
		t.Error("temp should not be registered after Unregister")
	}

	// Unregistering an unknown name is a no-op.
	Unregister("nonexistent")
}

func TestBackendsSorted(t *testing.T) {
	isolate(t)

	Register(testFormat("zeta"))
	Register(testFormat("alpha"))
	Register(testFormat("mid"))

	got := Backends()
	want := []string{"alpha", "mid", "zeta"}
	if len(got) != len(want) {
		t.Fatalf("Backends() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Backends()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if Count() != 3 {
		t.Errorf("Count() = %d, want 3", Count())
	}
}

func TestLookupPath(t *testing.T) {
	isolate(t)

	Register(testFormat("vec", ".vec"))
	Register(testFormat("img", ".img", ".image"))

	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"out.vec", "vec", false},
		{"/tmp/OUT.IMG", "img", false},
		{"a.b.image", "img", false},
		{"noext", "", true},
		{"file.txt", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			f, err := LookupPath(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("err = %v, want ErrUnknownFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("LookupPath: %v", err)
			}
			if f.Name != tt.want {
				t.Errorf("format = %q, want %q", f.Name, tt.want)
			}
		})
	}
}

func TestMustBackendPanics(t *testing.T) {
	isolate(t)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for unknown backend")
		}
	}()
	MustBackend("missing")
}
