package speex

import "fmt"

// NBSubmode identifies one of the eight narrowband bit-rate tiers. The
// numeric values are the in-band submode codes and are not ordered by rate.
type NBSubmode int

const (
	// NBVocoderLike is the 2.15 kbps vocoder-like tier, mainly useful for
	// comfort noise.
	NBVocoderLike NBSubmode = 1
	// NBVeryLow is the 5.95 kbps tier.
	NBVeryLow NBSubmode = 2
	// NBLow is the 8 kbps tier.
	NBLow NBSubmode = 3
	// NBMedium is the 11 kbps tier.
	NBMedium NBSubmode = 4
	// NBHigh is the 15 kbps tier.
	NBHigh NBSubmode = 5
	// NBVeryHigh is the 18.2 kbps tier.
	NBVeryHigh NBSubmode = 6
	// NBExtremeHigh is the 24.6 kbps tier.
	NBExtremeHigh NBSubmode = 7
	// NBExtremeLow is the 3.95 kbps tier.
	NBExtremeLow NBSubmode = 8
)

// NBSubmodeFromInt converts a raw narrowband submode code into an NBSubmode.
func NBSubmodeFromInt(v int) (NBSubmode, error) {
	if v < int(NBVocoderLike) || v > int(NBExtremeLow) {
		return 0, fmt.Errorf("speex: invalid narrowband submode %d", v)
	}
	return NBSubmode(v), nil
}

func (s NBSubmode) String() string {
	switch s {
	case NBVocoderLike:
		return "vocoder-like (2.15 kbps)"
	case NBVeryLow:
		return "very low (5.95 kbps)"
	case NBLow:
		return "low (8 kbps)"
	case NBMedium:
		return "medium (11 kbps)"
	case NBHigh:
		return "high (15 kbps)"
	case NBVeryHigh:
		return "very high (18.2 kbps)"
	case NBExtremeHigh:
		return "extreme high (24.6 kbps)"
	case NBExtremeLow:
		return "extreme low (3.95 kbps)"
	}
	return fmt.Sprintf("NBSubmode(%d)", int(s))
}

// WBSubmode identifies one of the four high-band quantization tiers of the
// wideband mode. The embedded low band uses the narrowband submodes.
//
// Note that the wideband codes share numeric values with the narrowband ones
// while meaning something different; the two sets must not be mixed.
type WBSubmode int

const (
	// WBNoQuantize disables innovation quantization entirely.
	WBNoQuantize WBSubmode = 1
	// WBQuantizedLow quantizes the innovation below the default rate.
	WBQuantizedLow WBSubmode = 2
	// WBQuantizedMedium quantizes the innovation at the default rate.
	WBQuantizedMedium WBSubmode = 3
	// WBQuantizedHigh quantizes the innovation above the default rate.
	WBQuantizedHigh WBSubmode = 4
)

// WBSubmodeFromInt converts a raw wideband submode code into a WBSubmode.
func WBSubmodeFromInt(v int) (WBSubmode, error) {
	if v < int(WBNoQuantize) || v > int(WBQuantizedHigh) {
		return 0, fmt.Errorf("speex: invalid wideband submode %d", v)
	}
	return WBSubmode(v), nil
}

func (s WBSubmode) String() string {
	switch s {
	case WBNoQuantize:
		return "no quantization"
	case WBQuantizedLow:
		return "quantized low"
	case WBQuantizedMedium:
		return "quantized medium"
	case WBQuantizedHigh:
		return "quantized high"
	}
	return fmt.Sprintf("WBSubmode(%d)", int(s))
}

// UWBSubmode identifies the single tier of the ultra-wideband extension band.
type UWBSubmode int

// UWBOnly is the only ultra-wideband submode.
const UWBOnly UWBSubmode = 1

// UWBSubmodeFromInt converts a raw ultra-wideband submode code into a
// UWBSubmode.
func UWBSubmodeFromInt(v int) (UWBSubmode, error) {
	if v != int(UWBOnly) {
		return 0, fmt.Errorf("speex: invalid ultra-wideband submode %d", v)
	}
	return UWBOnly, nil
}

func (s UWBSubmode) String() string {
	if s == UWBOnly {
		return "ultra-wideband"
	}
	return fmt.Sprintf("UWBSubmode(%d)", int(s))
}
