package blend

// Mode identifies one of the twelve Porter-Duff compositing operators.
type Mode uint8

const (
	Clear Mode = iota
	Src
	Dst
	SrcOver
	DstOver
	SrcIn
	DstIn
	SrcOut
	DstOut
	SrcAtop
	DstAtop
	Xor
)

func (m Mode) String() string {
	switch m {
	case Clear:
		return "Clear"
	case Src:
		return "Src"
	case Dst:
		return "Dst"
	case SrcOver:
		return "SrcOver"
	case DstOver:
		return "DstOver"
	case SrcIn:
		return "SrcIn"
	case DstIn:
		return "DstIn"
	case SrcOut:
		return "SrcOut"
	case DstOut:
		return "DstOut"
	case SrcAtop:
		return "SrcAtop"
	case DstAtop:
		return "DstAtop"
	case Xor:
		return "Xor"
	default:
		return "Unknown"
	}
}

// in computes x*a/255 across all four channels: the portion of x that
// survives where a is opaque.
func in(x uint32, a uint8) uint32 {
	return quadMulDiv255(x, a)
}

// out computes x*(255-a)/255 across all four channels: the portion of x
// that survives where a is transparent.
func out(x uint32, a uint8) uint32 {
	return quadMulDiv255(x, 255-a)
}

// add sums two premultiplied pixels channel-wise without clamping. Callers
// pass only premultiplied operands, so no channel sum can exceed 255 by
// construction (§4.1); clamping here would paper over a caller bug rather
// than fix one.
func add(x, y uint32) uint32 {
	return pack(
		byte(x>>24)+byte(y>>24),
		byte(x>>16)+byte(y>>16),
		byte(x>>8)+byte(y>>8),
		byte(x)+byte(y),
	)
}

func pack(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

func alphaOf(x uint32) uint8 { return uint8(x >> 24) }

// Blend composites src over dst under the given mode. Both pixels are
// packed premultiplied ARGB (§3).
func Blend(src, dst uint32, mode Mode) uint32 {
	switch mode {
	case Clear:
		return 0
	case Src:
		return src
	case Dst:
		return dst
	}

	sa := alphaOf(src)
	da := alphaOf(dst)

	switch mode {
	case SrcOver:
		return add(src, out(dst, sa))
	case DstOver:
		return add(out(src, da), dst)
	case SrcIn:
		return in(src, da)
	case DstIn:
		return in(dst, sa)
	case SrcOut:
		return out(src, da)
	case DstOut:
		return out(dst, sa)
	case SrcAtop:
		return add(in(src, da), out(dst, sa))
	case DstAtop:
		return add(out(src, da), in(dst, sa))
	case Xor:
		return add(out(src, da), out(dst, sa))
	default:
		return add(src, out(dst, sa))
	}
}

// Simplify applies the mode-simplification rule: when the effective source
// alpha is zero and mode is one of {SrcIn, DstIn, SrcOut, DstAtop}, the
// blend collapses to Clear. It reports skip=true when mode resolves to Dst,
// meaning the whole draw should be skipped before scan conversion.
func Simplify(mode Mode, srcAlphaZero bool) (simplified Mode, skip bool) {
	if mode == Dst {
		return Dst, true
	}
	if srcAlphaZero {
		switch mode {
		case SrcIn, DstIn, SrcOut, DstAtop:
			return Clear, false
		}
	}
	return mode, false
}
