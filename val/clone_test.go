package val

import "testing"

func TestClone_DepthZeroIsIdentity(t *testing.T) {
	v := strct("a", list(FromInt(1)))
	if got := Clone(v, 0); got != v {
		t.Error("Clone(v, 0) != v")
	}
	if got := Clone(v, -1); got != v {
		t.Error("Clone(v, -1) != v")
	}
}

func TestClone_DeepIndependence(t *testing.T) {
	src := strct("a", list(FromInt(1), FromInt(2)), "b", FromString("x"))
	dst := DeepClone(src)

	if dst == src {
		t.Fatal("DeepClone returned the source")
	}
	if !StrictEqual(dst, src) {
		t.Fatal("DeepClone not StrictEqual to source")
	}

	Set(dst, kp("a[0]"), FromInt(99), ListKind)
	if got := Get(src, kp("a[0]")).Int(); got != 1 {
		t.Errorf("mutating clone changed source: %d", got)
	}
	Unset(src, kp("b"))
	if !Exists(dst, kp("b")) {
		t.Error("mutating source changed clone")
	}
}

func TestClone_DepthBound(t *testing.T) {
	inner := list(FromInt(1))
	src := strct("a", strct("b", inner))

	dst := Clone(src, 2)
	if dst == src || Get(dst, kp("a")) == Get(src, kp("a")) {
		t.Error("levels within depth were not copied")
	}
	// the level past the bound is shared
	if Get(dst, kp("a.b")) != inner {
		t.Error("level past depth bound was copied, want shared")
	}
}

func TestClone_ScalarsShared(t *testing.T) {
	leaf := FromString("x")
	src := list(leaf)
	dst := DeepClone(src)
	if dst.Entries()[0].Value != leaf {
		t.Error("scalar leaf was copied, want shared")
	}
}

func TestClone_HostCapability(t *testing.T) {
	r := &replica{N: 7}
	v := NewOpaque(r)
	got := Clone(v, 1)

	if got == v {
		t.Fatal("Clone of cloning host returned the source")
	}
	copied, ok := got.Host().(*replica)
	if !ok || copied == r {
		t.Fatalf("Host() = %T %v, want a distinct *replica", got.Host(), got.Host())
	}
	if copied.N != 7 {
		t.Errorf("clone payload N = %d, want 7", copied.N)
	}
	if got.ID() == v.ID() {
		t.Error("clone shares the source identity")
	}
	if !got.Can(CapClone) {
		t.Error("clone lost its capabilities, want re-detection")
	}

	// hosts without the capability stay shared
	plain := NewOpaque(struct{ A int }{1})
	if Clone(plain, 5) != plain {
		t.Error("Clone of plain opaque copied, want same reference")
	}
}
