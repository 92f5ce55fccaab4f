package mpint

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// natFromUint64s builds a magnitude from big-endian 64-bit chunks. Going
// through lsh/add keeps the helper correct on 32-bit words too.
func natFromUint64s(chunks []uint64) nat {
	var z nat
	for _, c := range chunks {
		z = z.lsh(z, 64)
		z = z.add(z, nat(nil).setUint64(c))
	}
	return z
}

func bigFromNat(x nat) *big.Int {
	bits := make([]big.Word, len(x))
	for i, w := range x {
		bits[i] = big.Word(w)
	}
	return new(big.Int).SetBits(bits)
}

func natFromBig(b *big.Int) nat {
	bits := b.Bits()
	z := make(nat, len(bits))
	for i, w := range bits {
		z[i] = Word(w)
	}
	return z.norm()
}

func bigFromInt(x Int) *big.Int {
	b := bigFromNat(x.abs)
	if x.neg {
		b.Neg(b)
	}
	return b
}

func intFromBig(b *big.Int) Int {
	return makeInt(b.Sign() < 0, natFromBig(new(big.Int).Abs(b)))
}

// genNat generates magnitudes up to maxWords64 64-bit chunks.
func genNat(maxWords64 int) gopter.Gen {
	return gen.SliceOf(gen.UInt64()).Map(func(chunks []uint64) nat {
		if len(chunks) > maxWords64 {
			chunks = chunks[:maxWords64]
		}
		return natFromUint64s(chunks)
	})
}

// genInt generates signed integers with magnitudes from genNat.
func genInt(maxWords64 int) gopter.Gen {
	return gopter.CombineGens(gen.Bool(), genNat(maxWords64)).Map(func(vs []interface{}) Int {
		return makeInt(vs[0].(bool), vs[1].(nat))
	})
}

func TestNatNorm(t *testing.T) {
	cases := []struct {
		in   nat
		want int
	}{
		{nil, 0},
		{nat{}, 0},
		{nat{0}, 0},
		{nat{0, 0, 0}, 0},
		{nat{1, 0}, 1},
		{nat{0, 1}, 2},
		{nat{1, 2, 3}, 3},
	}
	for _, c := range cases {
		got := c.in.norm()
		if len(got) != c.want {
			t.Errorf("norm(%v): got length %d, want %d", c.in, len(got), c.want)
		}
		if len(got) > 0 && got[len(got)-1] == 0 {
			t.Errorf("norm(%v) left a high zero word", c.in)
		}
	}
}

func TestNatAddSub_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("(x+y)-y == x", prop.ForAll(
		func(x, y nat) bool {
			sum := nat(nil).add(x, y)
			diff := nat(nil).sub(sum, y)
			return diff.cmp(x) == 0
		},
		genNat(32), genNat(32),
	))
	properties.Property("add agrees with math/big", prop.ForAll(
		func(x, y nat) bool {
			got := bigFromNat(nat(nil).add(x, y))
			want := new(big.Int).Add(bigFromNat(x), bigFromNat(y))
			return got.Cmp(want) == 0
		},
		genNat(32), genNat(32),
	))
	properties.Property("sub agrees with math/big when x >= y", prop.ForAll(
		func(x, y nat) bool {
			if x.cmp(y) < 0 {
				x, y = y, x
			}
			got := bigFromNat(nat(nil).sub(x, y))
			want := new(big.Int).Sub(bigFromNat(x), bigFromNat(y))
			return got.Cmp(want) == 0
		},
		genNat(32), genNat(32),
	))

	properties.TestingRun(t)
}

func TestNatSubPanicsOnUnderflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("sub with x < y did not panic")
		}
	}()
	nat(nil).sub(nat{1}, nat{2})
}

func TestNatCmp(t *testing.T) {
	cases := []struct {
		x, y nat
		want int
	}{
		{nil, nil, 0},
		{nat{1}, nil, 1},
		{nil, nat{1}, -1},
		{nat{1}, nat{2}, -1},
		{nat{0, 1}, nat{^Word(0)}, 1},
		{nat{5, 7}, nat{5, 7}, 0},
		{nat{9, 7}, nat{5, 8}, -1},
	}
	for _, c := range cases {
		if got := c.x.cmp(c.y); got != c.want {
			t.Errorf("cmp(%v, %v) = %d, want %d", c.x, c.y, got, c.want)
		}
	}
}

func TestNatShift_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("rsh(lsh(x, s), s) == x", prop.ForAll(
		func(x nat, s uint8) bool {
			shift := uint(s) % 200
			up := nat(nil).lsh(x, shift)
			down := nat(nil).rsh(up, shift)
			return down.cmp(x) == 0
		},
		genNat(16), gen.UInt8(),
	))
	properties.Property("lsh agrees with math/big", prop.ForAll(
		func(x nat, s uint8) bool {
			shift := uint(s) % 200
			got := bigFromNat(nat(nil).lsh(x, shift))
			want := new(big.Int).Lsh(bigFromNat(x), shift)
			return got.Cmp(want) == 0
		},
		genNat(16), gen.UInt8(),
	))

	properties.TestingRun(t)
}

func TestNatBitLen(t *testing.T) {
	cases := []struct {
		x    nat
		want int
	}{
		{nil, 0},
		{nat{1}, 1},
		{nat{2}, 2},
		{nat{^Word(0)}, wordBits},
		{nat{0, 1}, wordBits + 1},
	}
	for _, c := range cases {
		if got := c.x.bitLen(); got != c.want {
			t.Errorf("bitLen(%v) = %d, want %d", c.x, got, c.want)
		}
	}
}

func TestNatDivW_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("divW agrees with math/big", prop.ForAll(
		func(x nat, d uint64) bool {
			w := Word(d)
			if w == 0 {
				w = 1
			}
			q, r := nat(nil).divW(x, w)
			bq, br := new(big.Int).QuoRem(bigFromNat(x), new(big.Int).SetUint64(uint64(w)), new(big.Int))
			return bigFromNat(q).Cmp(bq) == 0 && new(big.Int).SetUint64(uint64(r)).Cmp(br) == 0
		},
		genNat(24), gen.UInt64(),
	))

	properties.TestingRun(t)
}

func TestNatModW(t *testing.T) {
	x := natFromUint64s([]uint64{0x0123456789abcdef, 0xfedcba9876543210})
	want := new(big.Int).Mod(bigFromNat(x), big.NewInt(9973)).Uint64()
	if got := x.modW(9973); uint64(got) != want {
		t.Errorf("modW = %d, want %d", got, want)
	}
}

func TestNatSetUint64(t *testing.T) {
	for _, v := range []uint64{0, 1, 1 << 32, ^uint64(0)} {
		z := nat(nil).setUint64(v)
		if got := z.low64(); got != v {
			t.Errorf("setUint64(%#x).low64() = %#x", v, got)
		}
	}
}
